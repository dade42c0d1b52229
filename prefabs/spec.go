package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "player.yaml"
	WorldSpecFile  = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec holds the player's size, spawn point and movement tuning.
type PlayerSpec struct {
	Name        string    `yaml:"name"`
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	SpawnX      float64   `yaml:"spawn_x"`
	SpawnY      float64   `yaml:"spawn_y"`
	InitialFall float64   `yaml:"initial_fall"`
	Gravity     float64   `yaml:"gravity"`
	JumpSpeed   float64   `yaml:"jump_speed"`
	JumpProbe   float64   `yaml:"jump_probe"`
	MoveSpeed   float64   `yaml:"move_speed"`
	LeftAccel   float64   `yaml:"legacy_left_accel"`
	RightAccel  float64   `yaml:"legacy_right_accel"`
	Color       YAMLColor `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: player size must be positive, got %gx%g", PlayerSpecFile, spec.Width, spec.Height)
	}
	return &spec, nil
}

// WorldSpec holds screen geometry, the scroll dead zone and palette.
type WorldSpec struct {
	ScreenWidth    float64   `yaml:"screen_width"`
	ScreenHeight   float64   `yaml:"screen_height"`
	ScrollLeft     float64   `yaml:"scroll_left"`
	ScrollRight    float64   `yaml:"scroll_right"`
	ReentryX       float64   `yaml:"reentry_x"`
	LegacyControls bool      `yaml:"legacy_controls"`
	Background     YAMLColor `yaml:"background"`
	PlatformColor  YAMLColor `yaml:"platform_color"`
	EnemyColor     YAMLColor `yaml:"enemy_color"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.ScreenWidth <= 0 || spec.ScreenHeight <= 0 {
		return nil, fmt.Errorf("prefabs: %s: screen size must be positive, got %gx%g", WorldSpecFile, spec.ScreenWidth, spec.ScreenHeight)
	}
	if spec.ScrollLeft >= spec.ScrollRight {
		return nil, fmt.Errorf("prefabs: %s: scroll_left (%g) must be below scroll_right (%g)", WorldSpecFile, spec.ScrollLeft, spec.ScrollRight)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the field was left empty.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
