package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// BackgroundPath is the embedded background drawn behind every level.
const BackgroundPath = "bg.png"

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, err
	}
	return decodeImage(b)
}

// LoadBackground loads the level background. An empty override uses the
// embedded image; otherwise the override file must exist and decode.
func LoadBackground(override string) (*ebiten.Image, error) {
	if override == "" {
		img, err := LoadImage(BackgroundPath)
		if err != nil {
			return nil, fmt.Errorf("assets: load %s: %w", BackgroundPath, err)
		}
		return img, nil
	}

	b, err := os.ReadFile(override)
	if err != nil {
		return nil, fmt.Errorf("assets: read background: %w", err)
	}
	img, err := decodeImage(b)
	if err != nil {
		return nil, fmt.Errorf("assets: decode background %s: %w", override, err)
	}
	return img, nil
}

func decodeImage(b []byte) (*ebiten.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
