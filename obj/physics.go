package obj

import "github.com/milk9111/platformer/common"

// Physics is the per-frame movement tuning applied to the player.
type Physics struct {
	// InitialFall is the vertical speed given on the first frame of a fall
	// from rest; afterwards Gravity is added once per frame.
	InitialFall float64
	Gravity     float64
	JumpSpeed   float64
	// JumpProbe is how far below the player the jump check looks for ground.
	JumpProbe float64
	MoveSpeed float64
	// LeftAccel and RightAccel are the per-press deltas of the legacy
	// accumulating controls.
	LeftAccel  float64
	RightAccel float64
	// Floor is the screen y acting as ground when no platform is below.
	Floor float64
}

// DefaultPhysics returns the stock tuning for a 1920x1080 screen.
func DefaultPhysics() Physics {
	return Physics{
		InitialFall: 1,
		Gravity:     0.21,
		JumpSpeed:   -12.5,
		JumpProbe:   2,
		MoveSpeed:   6,
		LeftAccel:   -6,
		RightAccel:  25,
		Floor:       common.BaseHeight,
	}
}
