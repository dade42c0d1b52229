package levels

import (
	"errors"
	"fmt"
)

var ErrInvalidLayout = errors.New("levels: invalid layout")

// Block is one authored platform: size first, then top-left position.
type Block struct {
	Width, Height float64
	X, Y          float64
}

// Spawn places a scripted enemy.
type Spawn struct {
	Script        string
	X, Y          float64
	Width, Height float64
}

// Layout is the static description of a level.
type Layout struct {
	Name string
	// Limit is the world-space x the player must pass (player x plus world
	// shift dropping below it) to move on to the next level.
	Limit     float64
	Platforms []Block
	Enemies   []Spawn
}

// Validate checks that every block and spawn has a positive size.
func (l Layout) Validate() error {
	for i, b := range l.Platforms {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: %s platform %d has size %gx%g", ErrInvalidLayout, l.Name, i, b.Width, b.Height)
		}
	}
	for i, s := range l.Enemies {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s enemy %d has size %gx%g", ErrInvalidLayout, l.Name, i, s.Width, s.Height)
		}
		if s.Script == "" {
			return fmt.Errorf("%w: %s enemy %d has no script", ErrInvalidLayout, l.Name, i)
		}
	}
	return nil
}

// All returns the authored levels in play order.
func All() []Layout {
	return []Layout{Level01, Level02}
}
