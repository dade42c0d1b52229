package obj

import (
	"fmt"
	"sort"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// broadphaseMargin pads index queries so rounding drift between shifted
// platform rects and their indexed positions never drops a candidate.
const broadphaseMargin = 1.0

// Collider answers which platforms overlap a rect.
type Collider interface {
	Collide(r common.Rect) []*Platform
}

// Level owns a level's platforms and enemies and scrolls them as one.
type Level struct {
	Name  string
	Limit float64

	// Platforms keeps authored order; collision and draw order follow it.
	Platforms []*Platform
	Enemies   []*Enemy

	// WorldShift is the total horizontal scroll applied so far.
	WorldShift float64

	// space indexes platforms at their unshifted positions.
	space *cp.Space
}

// NewLevel builds a level from a layout. scripts may be nil when the layout
// has no enemies.
func NewLevel(layout levels.Layout, scripts ScriptLoader) (*Level, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	l := &Level{
		Name:      layout.Name,
		Limit:     layout.Limit,
		Platforms: make([]*Platform, 0, len(layout.Platforms)),
		space:     cp.NewSpace(),
	}

	for i, b := range layout.Platforms {
		p := NewPlatform(b)
		l.Platforms = append(l.Platforms, p)

		bb := cp.BB{L: p.X, B: p.Y, R: p.Right(), T: p.Bottom()}
		shape := cp.NewBox2(l.space.StaticBody, bb, 0)
		shape.UserData = i
		l.space.AddShape(shape)
	}

	compiled := map[string]*tengo.Compiled{}
	for _, s := range layout.Enemies {
		c, ok := compiled[s.Script]
		if !ok {
			if scripts == nil {
				return nil, fmt.Errorf("level %s: enemy script %s: no script loader", layout.Name, s.Script)
			}
			src, err := scripts(s.Script)
			if err != nil {
				return nil, fmt.Errorf("level %s: load script %s: %w", layout.Name, s.Script, err)
			}
			c, err = compileEnemyScript(src)
			if err != nil {
				return nil, fmt.Errorf("level %s: compile script %s: %w", layout.Name, s.Script, err)
			}
			compiled[s.Script] = c
		}
		l.Enemies = append(l.Enemies, newEnemy(s, c.Clone()))
	}

	return l, nil
}

// Update advances everything in the level that moves on its own.
// Platforms are static.
func (l *Level) Update() {
	for _, e := range l.Enemies {
		e.Update()
	}
}

// ShiftWorld scrolls every platform and enemy horizontally by delta.
func (l *Level) ShiftWorld(delta float64) {
	l.WorldShift += delta

	for _, p := range l.Platforms {
		p.X += delta
	}
	for _, e := range l.Enemies {
		e.X += delta
	}
}

// Collide returns every platform strictly overlapping r, in authored order.
func (l *Level) Collide(r common.Rect) []*Platform {
	if l == nil || len(l.Platforms) == 0 {
		return nil
	}

	// the index holds unshifted positions, so undo the scroll on the query
	world := r.Translate(-l.WorldShift, 0)
	bb := cp.BB{
		L: world.X - broadphaseMargin,
		B: world.Y - broadphaseMargin,
		R: world.Right() + broadphaseMargin,
		T: world.Bottom() + broadphaseMargin,
	}

	var candidates []int
	l.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if idx, ok := shape.UserData.(int); ok {
			candidates = append(candidates, idx)
		}
	}, nil)
	if len(candidates) == 0 {
		return nil
	}
	sort.Ints(candidates)

	var hits []*Platform
	for _, idx := range candidates {
		if p := l.Platforms[idx]; p.Intersects(r) {
			hits = append(hits, p)
		}
	}
	return hits
}

// ReloadScript recompiles src for every enemy running the named script.
func (l *Level) ReloadScript(name string, src []byte) error {
	var compiled *tengo.Compiled
	for _, e := range l.Enemies {
		if e.Script != name {
			continue
		}
		if compiled == nil {
			c, err := compileEnemyScript(src)
			if err != nil {
				return fmt.Errorf("level %s: compile script %s: %w", l.Name, name, err)
			}
			compiled = c
		}
		e.compiled = compiled.Clone()
	}
	return nil
}
