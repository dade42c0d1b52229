package system

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

func emptyLayouts(n int) []levels.Layout {
	out := make([]levels.Layout, n)
	for i := range out {
		out[i] = levels.Layout{Name: "empty", Limit: -8200}
	}
	return out
}

func newTestSession(t *testing.T, cfg Config, layouts []levels.Layout) *Session {
	t.Helper()
	s, err := NewSession(layouts, cfg, obj.DefaultPhysics(), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(levels.All(), DefaultConfig(), obj.DefaultPhysics(), nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if len(s.Levels) != 2 || s.Current() != 0 || s.State() != StateRunning {
		t.Fatalf("unexpected initial session: levels=%d current=%d state=%v", len(s.Levels), s.Current(), s.State())
	}
	if s.Player.X != 300 || s.Player.Y != 520 || s.Player.Width != 30 || s.Player.Height != 50 {
		t.Fatalf("unexpected player spawn %+v", s.Player.Rect)
	}

	t.Run("errors", func(t *testing.T) {
		bad := DefaultConfig()
		bad.ScrollLeft = 1000

		cases := []struct {
			name    string
			layouts []levels.Layout
			cfg     Config
		}{
			{"no_levels", nil, DefaultConfig()},
			{"bad_dead_zone", levels.All(), bad},
			{"bad_layout", []levels.Layout{{Name: "bad", Platforms: []levels.Block{{Width: -1, Height: 1}}}}, DefaultConfig()},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				if _, err := NewSession(c.layouts, c.cfg, obj.DefaultPhysics(), nil); err == nil {
					t.Fatalf("expected error")
				}
			})
		}
	})
}

func TestScrollDeadZone(t *testing.T) {
	cases := []struct {
		name      string
		x         float64
		wantRight float64
		wantShift float64
	}{
		{"past_right_bound", 920, 900, -50},
		{"past_left_bound", 450, 530, 50},
		{"inside_dead_zone", 600, 630, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSession(t, DefaultConfig(), emptyLayouts(1))
			s.Player.X = c.x

			s.Scroll()
			if s.Player.Right() != c.wantRight {
				t.Fatalf("expected right edge %v, got %v", c.wantRight, s.Player.Right())
			}
			if s.Level().WorldShift != c.wantShift {
				t.Fatalf("expected world shift %v, got %v", c.wantShift, s.Level().WorldShift)
			}
		})
	}
}

func TestLevelTransition(t *testing.T) {
	cases := []struct {
		name        string
		start       int
		shift       float64
		wantX       float64
		wantCurrent int
	}{
		{"past_limit_advances", 0, -8801, 120, 1},
		{"past_limit_on_last_level_stays", 1, -8801, 120, 1},
		{"at_limit_does_nothing", 0, -8800, 600, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSession(t, DefaultConfig(), emptyLayouts(2))
			if err := s.SetLevel(c.start); err != nil {
				t.Fatalf("set level: %v", err)
			}
			s.Level().ShiftWorld(c.shift)
			s.Player.X = 600
			s.Player.Y = 1030

			if err := s.Update(obj.Input{}); err != nil {
				t.Fatalf("update: %v", err)
			}
			if s.Player.X != c.wantX {
				t.Fatalf("expected player x=%v, got %v", c.wantX, s.Player.X)
			}
			if s.Current() != c.wantCurrent {
				t.Fatalf("expected level %d, got %d", c.wantCurrent, s.Current())
			}
		})
	}
}

func TestSetLevelBounds(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), emptyLayouts(2))
	for _, i := range []int{-1, 2} {
		if err := s.SetLevel(i); err == nil {
			t.Fatalf("SetLevel(%d) should fail", i)
		}
	}
}

func TestUpdateMovesPlayer(t *testing.T) {
	t.Run("held_keys_steer", func(t *testing.T) {
		cases := []struct {
			name   string
			in     obj.Input
			wantVX float64
		}{
			{"right", obj.Input{RightHeld: true}, 6},
			{"left", obj.Input{LeftHeld: true}, -6},
			{"both", obj.Input{LeftHeld: true, RightHeld: true}, 0},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s := newTestSession(t, DefaultConfig(), emptyLayouts(1))
				s.Player.X = 600
				for i := 0; i < 3; i++ {
					if err := s.Update(c.in); err != nil {
						t.Fatalf("update: %v", err)
					}
				}
				if s.Player.VelocityX != c.wantVX {
					t.Fatalf("expected vx=%v, got %v", c.wantVX, s.Player.VelocityX)
				}
				if s.Player.X != 600+3*c.wantVX {
					t.Fatalf("expected x=%v, got %v", 600+3*c.wantVX, s.Player.X)
				}
			})
		}
	})

	t.Run("legacy_presses_accumulate", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.LegacyControls = true
		s := newTestSession(t, cfg, emptyLayouts(1))
		s.Player.X = 600

		steps := []struct {
			in     obj.Input
			wantVX float64
		}{
			{obj.Input{RightPressed: true, RightHeld: true}, 25},
			{obj.Input{RightHeld: true}, 25},
			{obj.Input{LeftPressed: true, LeftHeld: true, RightHeld: true}, 19},
			{obj.Input{LeftReleased: true, RightHeld: true}, 19},
			{obj.Input{RightReleased: true}, 0},
		}
		for i, step := range steps {
			if err := s.Update(step.in); err != nil {
				t.Fatalf("step %d: update: %v", i, err)
			}
			if s.Player.VelocityX != step.wantVX {
				t.Fatalf("step %d: expected vx=%v, got %v", i, step.wantVX, s.Player.VelocityX)
			}
		}
	})

	t.Run("jump_from_floor", func(t *testing.T) {
		s := newTestSession(t, DefaultConfig(), emptyLayouts(1))
		s.Player.X = 600
		s.Player.Y = 1030

		if err := s.Update(obj.Input{JumpPressed: true}); err != nil {
			t.Fatalf("update: %v", err)
		}
		if math.Abs(s.Player.VelocityY-(-12.29)) > 1e-9 {
			t.Fatalf("expected vy=-12.29 after one frame, got %v", s.Player.VelocityY)
		}
		if s.Player.Y >= 1030 {
			t.Fatalf("expected player to rise, y=%v", s.Player.Y)
		}
	})
}

func TestQuit(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), emptyLayouts(1))

	if err := s.Update(obj.Input{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Update(obj.Input{Quit: true, RightHeld: true}); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if s.State() != StateQuit {
		t.Fatalf("expected quit state, got %v", s.State())
	}
	frames := s.Frames()
	if err := s.Update(obj.Input{}); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit is terminal, got %v", err)
	}
	if s.Frames() != frames {
		t.Fatalf("no frames should run after quit")
	}
}

func TestRetune(t *testing.T) {
	s := newTestSession(t, DefaultConfig(), emptyLayouts(1))

	cfg := DefaultConfig()
	cfg.PlayerWidth = 40
	physics := obj.DefaultPhysics()
	physics.MoveSpeed = 10
	if err := s.Retune(cfg, physics); err != nil {
		t.Fatalf("retune: %v", err)
	}
	if s.Player.Width != 40 || s.Player.Physics.MoveSpeed != 10 {
		t.Fatalf("retune not applied: %+v", s.Player)
	}

	cfg.PlayerHeight = 0
	if err := s.Retune(cfg, physics); err == nil {
		t.Fatalf("expected invalid config to be rejected")
	}
}

func TestConfigFromEmbeddedSpecs(t *testing.T) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player spec: %v", err)
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		t.Fatalf("world spec: %v", err)
	}

	cfg, physics := ConfigFromSpecs(player, world)
	if cfg != DefaultConfig() {
		t.Fatalf("embedded config drifted from defaults: %+v", cfg)
	}
	if physics != obj.DefaultPhysics() {
		t.Fatalf("embedded physics drifted from defaults: %+v", physics)
	}
}
