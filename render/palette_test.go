package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

func TestPaletteFromSpecs(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		player, err := prefabs.LoadPlayerSpec()
		if err != nil {
			t.Fatalf("player spec: %v", err)
		}
		world, err := prefabs.LoadWorldSpec()
		if err != nil {
			t.Fatalf("world spec: %v", err)
		}

		p := PaletteFromSpecs(player, world)
		if p.Background != (color.NRGBA{B: 0xff, A: 0xff}) {
			t.Fatalf("unexpected background %v", p.Background)
		}
		if p.Platform != (color.NRGBA{G: 0xff, A: 0xff}) {
			t.Fatalf("unexpected platform %v", p.Platform)
		}
		if p.Player != (color.NRGBA{R: 0xff, A: 0xff}) {
			t.Fatalf("unexpected player %v", p.Player)
		}
	})

	t.Run("unset_falls_back", func(t *testing.T) {
		p := PaletteFromSpecs(&prefabs.PlayerSpec{}, &prefabs.WorldSpec{})
		if p != DefaultPalette() {
			t.Fatalf("expected default palette, got %+v", p)
		}
		if p.Enemy != colornames.Orange {
			t.Fatalf("unexpected enemy color %v", p.Enemy)
		}
	})
}
