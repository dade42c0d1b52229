package system

import (
	"fmt"

	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

// Config holds the world rules the session applies each frame.
type Config struct {
	// ScrollLeft and ScrollRight bound the dead zone in screen x.
	ScrollLeft  float64
	ScrollRight float64
	// ReentryX is where the player is placed after crossing a level limit.
	ReentryX float64

	SpawnX       float64
	SpawnY       float64
	PlayerWidth  float64
	PlayerHeight float64

	// LegacyControls makes left/right presses accumulate speed instead of
	// deriving it from the held keys.
	LegacyControls bool
}

func DefaultConfig() Config {
	return Config{
		ScrollLeft:   500,
		ScrollRight:  900,
		ReentryX:     120,
		SpawnX:       300,
		SpawnY:       520,
		PlayerWidth:  30,
		PlayerHeight: 50,
	}
}

func (c Config) Validate() error {
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 {
		return fmt.Errorf("session: player size must be positive, got %gx%g", c.PlayerWidth, c.PlayerHeight)
	}
	if c.ScrollLeft >= c.ScrollRight {
		return fmt.Errorf("session: scroll left bound %g must be below right bound %g", c.ScrollLeft, c.ScrollRight)
	}
	return nil
}

// ConfigFromSpecs turns the player and world prefabs into session config and
// player physics.
func ConfigFromSpecs(player *prefabs.PlayerSpec, world *prefabs.WorldSpec) (Config, obj.Physics) {
	cfg := Config{
		ScrollLeft:     world.ScrollLeft,
		ScrollRight:    world.ScrollRight,
		ReentryX:       world.ReentryX,
		SpawnX:         player.SpawnX,
		SpawnY:         player.SpawnY,
		PlayerWidth:    player.Width,
		PlayerHeight:   player.Height,
		LegacyControls: world.LegacyControls,
	}
	physics := obj.Physics{
		InitialFall: player.InitialFall,
		Gravity:     player.Gravity,
		JumpSpeed:   player.JumpSpeed,
		JumpProbe:   player.JumpProbe,
		MoveSpeed:   player.MoveSpeed,
		LeftAccel:   player.LeftAccel,
		RightAccel:  player.RightAccel,
		Floor:       world.ScreenHeight,
	}
	return cfg, physics
}
