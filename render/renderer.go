package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/system"
)

// Renderer draws a session: background, level geometry, then the player.
type Renderer struct {
	Palette Palette
	Debug   bool

	background *ebiten.Image
}

func NewRenderer(background *ebiten.Image, palette Palette) *Renderer {
	return &Renderer{background: background, Palette: palette}
}

func (r *Renderer) Draw(screen *ebiten.Image, s *system.Session) {
	if r == nil || screen == nil || s == nil {
		return
	}

	r.DrawLevel(screen, s.Level())
	fillRect(screen, s.Player.Rect, r.Palette.Player)

	if r.Debug {
		r.drawDebug(screen, s)
	}
}

// DrawLevel paints the background at the origin, then platforms and enemies
// in the order the level holds them.
func (r *Renderer) DrawLevel(screen *ebiten.Image, level *obj.Level) {
	screen.Fill(r.Palette.Background)
	if r.background != nil {
		screen.DrawImage(r.background, &ebiten.DrawImageOptions{})
	}

	for _, p := range level.Platforms {
		fillRect(screen, p.Rect, r.Palette.Platform)
	}
	for _, e := range level.Enemies {
		fillRect(screen, e.Rect, r.Palette.Enemy)
	}
}

func (r *Renderer) drawDebug(screen *ebiten.Image, s *system.Session) {
	p := s.Player
	level := s.Level()
	msg := fmt.Sprintf(
		"Frames: %d    FPS: %.2f\nLevel: %d (%s)    Shift: %.0f / %.0f\nPlayer: (%.1f, %.1f)  v=(%.2f, %.2f)  canJump=%t",
		s.Frames(), ebiten.ActualFPS(),
		s.Current(), level.Name, level.WorldShift, level.Limit,
		p.X, p.Y, p.VelocityX, p.VelocityY, p.CanJump(level),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
