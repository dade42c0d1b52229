package obj

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

// ScriptLoader resolves an enemy script name to its source.
type ScriptLoader func(name string) ([]byte, error)

// Enemy is a level actor whose per-frame motion comes from a tengo script.
// The script sees __frame, __x and __y and sets dx and dy.
type Enemy struct {
	common.Rect
	Script string

	compiled *tengo.Compiled
	frame    int
}

// compileEnemyScript compiles src with the globals every enemy script reads.
func compileEnemyScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("__frame", 0)
	_ = script.Add("__x", 0.0)
	_ = script.Add("__y", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	if !compiled.IsDefined("dx") || !compiled.IsDefined("dy") {
		return nil, fmt.Errorf("script must define dx and dy")
	}
	return compiled, nil
}

func newEnemy(s levels.Spawn, compiled *tengo.Compiled) *Enemy {
	return &Enemy{
		Rect:     common.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height},
		Script:   s.Script,
		compiled: compiled,
	}
}

// Update runs the enemy's script once and applies the resulting motion.
func (e *Enemy) Update() {
	if e == nil || e.compiled == nil {
		return
	}
	dx, dy, err := e.step()
	if err != nil {
		log.Printf("enemy: script %s frame %d: %v", e.Script, e.frame, err)
		return
	}
	e.X += dx
	e.Y += dy
	e.frame++
}

func (e *Enemy) step() (float64, float64, error) {
	if err := e.compiled.Set("__frame", e.frame); err != nil {
		return 0, 0, err
	}
	if err := e.compiled.Set("__x", e.X); err != nil {
		return 0, 0, err
	}
	if err := e.compiled.Set("__y", e.Y); err != nil {
		return 0, 0, err
	}
	if err := e.compiled.Run(); err != nil {
		return 0, 0, err
	}
	return e.compiled.Get("dx").Float(), e.compiled.Get("dy").Float(), nil
}
