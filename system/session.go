package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// ErrQuit is returned by Update once the session has been asked to close.
var ErrQuit = errors.New("session: quit")

type State int

const (
	StateRunning State = iota
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session owns every level, the player and the rules that tie them together
// each frame: input, physics, scrolling, then level transitions.
type Session struct {
	Levels []*obj.Level
	Player *obj.Player
	Config Config

	current int
	state   State
	frames  int
}

// NewSession builds all levels up front; they live for the whole session.
func NewSession(layouts []levels.Layout, cfg Config, physics obj.Physics, scripts obj.ScriptLoader) (*Session, error) {
	if len(layouts) == 0 {
		return nil, fmt.Errorf("session: no levels")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{Config: cfg}
	for _, layout := range layouts {
		lvl, err := obj.NewLevel(layout, scripts)
		if err != nil {
			return nil, fmt.Errorf("session: build %s: %w", layout.Name, err)
		}
		s.Levels = append(s.Levels, lvl)
	}
	s.Player = obj.NewPlayer(cfg.SpawnX, cfg.SpawnY, cfg.PlayerWidth, cfg.PlayerHeight, physics)
	return s, nil
}

// Level returns the active level.
func (s *Session) Level() *obj.Level {
	return s.Levels[s.current]
}

// Current is the index of the active level.
func (s *Session) Current() int {
	return s.current
}

func (s *Session) State() State {
	return s.state
}

// Frames counts the frames the session has simulated.
func (s *Session) Frames() int {
	return s.frames
}

// SetLevel jumps straight to level i.
func (s *Session) SetLevel(i int) error {
	if i < 0 || i >= len(s.Levels) {
		return fmt.Errorf("session: level %d out of range [0, %d)", i, len(s.Levels))
	}
	s.current = i
	return nil
}

// Update advances the session by one frame.
func (s *Session) Update(in obj.Input) error {
	if s.state == StateQuit {
		return ErrQuit
	}
	if in.Quit {
		s.state = StateQuit
		log.Printf("session: quit after %d frames", s.frames)
		return ErrQuit
	}

	s.frames++
	s.applyInput(in)

	level := s.Level()
	s.Player.Update(level)
	level.Update()

	s.Scroll()
	s.CheckTransition()
	return nil
}

func (s *Session) applyInput(in obj.Input) {
	p := s.Player
	level := s.Level()

	if !s.Config.LegacyControls {
		p.Steer(in.MoveX())
		if in.JumpPressed {
			p.Jump(level)
		}
		return
	}

	if in.LeftPressed {
		p.GoLeft()
	}
	if in.RightPressed {
		p.GoRight()
	}
	if in.JumpPressed {
		p.Jump(level)
	}
	if in.LeftReleased {
		p.ReleaseLeft()
	}
	if in.RightReleased {
		p.ReleaseRight()
	}
}

// Scroll keeps the player inside the dead zone by moving the world instead.
func (s *Session) Scroll() {
	p := s.Player
	level := s.Level()

	if p.Right() >= s.Config.ScrollRight {
		diff := p.Right() - s.Config.ScrollRight
		p.SetRight(s.Config.ScrollRight)
		level.ShiftWorld(-diff)
	}

	if p.Left() <= s.Config.ScrollLeft {
		diff := s.Config.ScrollLeft - p.Left()
		p.X = s.Config.ScrollLeft
		level.ShiftWorld(diff)
	}
}

// CheckTransition moves on to the next level once the player has passed the
// active level's limit. It reports whether the level changed.
func (s *Session) CheckTransition() bool {
	p := s.Player
	level := s.Level()

	position := p.X + level.WorldShift
	if position >= level.Limit {
		return false
	}

	p.X = s.Config.ReentryX
	if s.current >= len(s.Levels)-1 {
		return false
	}

	s.current++
	log.Printf("session: %s complete, entering %s", level.Name, s.Level().Name)
	return true
}

// Retune swaps movement and world tuning in place.
func (s *Session) Retune(cfg Config, physics obj.Physics) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.Config = cfg
	s.Player.Physics = physics
	s.Player.Width = cfg.PlayerWidth
	s.Player.Height = cfg.PlayerHeight
	return nil
}

// ReloadScript recompiles an enemy script on every level that uses it.
func (s *Session) ReloadScript(name string, src []byte) error {
	for _, lvl := range s.Levels {
		if err := lvl.ReloadScript(name, src); err != nil {
			return err
		}
	}
	return nil
}
