package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
)

const (
	viewWidth  = 1280
	viewHeight = 360
	panStep    = 40
)

// overview shows a whole layout scaled to the window height so authored
// geometry can be checked without playing through it.
type overview struct {
	layouts []levels.Layout
	current int
	palette render.Palette

	zoom float64
	panX float64
}

func newOverview(layouts []levels.Layout, start int) *overview {
	v := &overview{layouts: layouts, palette: render.DefaultPalette()}
	v.show(start)
	return v
}

func (v *overview) show(i int) {
	if i < 0 || i >= len(v.layouts) {
		return
	}
	v.current = i
	v.zoom = float64(viewHeight) / common.BaseHeight
	v.panX = 0
}

func (v *overview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		v.show(v.current + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		v.show(v.current - 1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		v.panX += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		v.panX = math.Max(0, v.panX-panStep)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		v.zoom = math.Min(1, math.Max(0.05, v.zoom*math.Pow(1.1, dy)))
	}
	return nil
}

func (v *overview) Draw(screen *ebiten.Image) {
	screen.Fill(v.palette.Background)

	layout := v.layouts[v.current]
	extent := 0.0
	for _, b := range layout.Platforms {
		v.fill(screen, common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}, v.palette.Platform)
		extent = math.Max(extent, b.X+b.Width)
	}
	for _, e := range layout.Enemies {
		v.fill(screen, common.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}, v.palette.Enemy)
	}

	floor := float32(common.BaseHeight * v.zoom)
	vector.StrokeLine(screen, 0, floor-1, viewWidth, floor-1, 1, color.White, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"%s (%d/%d)  platforms: %d  enemies: %d  extent: %.0f  limit: %.0f\n[ ] level  <- -> pan  wheel zoom",
		layout.Name, v.current+1, len(v.layouts), len(layout.Platforms), len(layout.Enemies), extent, layout.Limit,
	))
}

func (v *overview) fill(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x := float32(r.X*v.zoom - v.panX)
	y := float32(r.Y * v.zoom)
	vector.DrawFilledRect(screen, x, y, float32(r.Width*v.zoom), float32(r.Height*v.zoom), clr, false)
}

func (v *overview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}

func main() {
	level := flag.Int("level", 0, "Level index to open")
	flag.Parse()

	layouts := levels.All()
	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			log.Fatalf("levelview: %v", err)
		}
	}
	if *level < 0 || *level >= len(layouts) {
		log.Fatalf("levelview: level %d out of range [0, %d)", *level, len(layouts))
	}

	ebiten.SetWindowSize(viewWidth, viewHeight)
	ebiten.SetWindowTitle("Level Overview")
	if err := ebiten.RunGame(newOverview(layouts, *level)); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
