package obj

import "github.com/milk9111/platformer/common"

// Player is the controllable box. Level geometry is passed into each call
// that needs it; the player keeps no reference to a level.
type Player struct {
	common.Rect
	VelocityX float64
	VelocityY float64

	Physics Physics
}

func NewPlayer(x, y, width, height float64, physics Physics) *Player {
	return &Player{
		Rect:    common.Rect{X: x, Y: y, Width: width, Height: height},
		Physics: physics,
	}
}

// Update moves the player one frame: gravity, then x movement and x
// collisions, then y movement and y collisions. The order is fixed.
func (p *Player) Update(level Collider) {
	p.applyGravity()

	p.X += p.VelocityX
	for _, block := range level.Collide(p.Rect) {
		if p.VelocityX > 0 {
			p.SetRight(block.Left())
		} else if p.VelocityX < 0 {
			p.X = block.Right()
		}
	}

	p.Y += p.VelocityY
	for _, block := range level.Collide(p.Rect) {
		if p.VelocityY > 0 {
			p.SetBottom(block.Top())
		} else if p.VelocityY < 0 {
			p.Y = block.Bottom()
		}
		p.VelocityY = 0
	}
}

func (p *Player) applyGravity() {
	if p.VelocityY == 0 {
		p.VelocityY = p.Physics.InitialFall
	} else {
		p.VelocityY += p.Physics.Gravity
	}

	// bottom of the screen acts as ground
	if p.Y >= p.Physics.Floor-p.Height && p.VelocityY >= 0 {
		p.VelocityY = 0
		p.Y = p.Physics.Floor - p.Height
	}
}

// CanJump reports whether there is ground just below the player.
func (p *Player) CanJump(level Collider) bool {
	probe := p.Rect.Translate(0, p.Physics.JumpProbe)
	if len(level.Collide(probe)) > 0 {
		return true
	}
	return p.Bottom() >= p.Physics.Floor
}

// Jump launches the player upward when standing on something.
func (p *Player) Jump(level Collider) bool {
	if !p.CanJump(level) {
		return false
	}
	p.VelocityY = p.Physics.JumpSpeed
	return true
}

// Steer sets horizontal speed from a move axis in [-1, 1].
func (p *Player) Steer(axis float64) {
	p.VelocityX = axis * p.Physics.MoveSpeed
}

// GoLeft, GoRight and Stop are the legacy event-driven controls: each press
// adds to the current speed, and a release zeroes it.
func (p *Player) GoLeft() {
	p.VelocityX += p.Physics.LeftAccel
}

func (p *Player) GoRight() {
	p.VelocityX += p.Physics.RightAccel
}

func (p *Player) Stop() {
	p.VelocityX = 0
}

// ReleaseLeft stops the player only if it is moving left, so letting go of
// one key never cancels motion started by the other.
func (p *Player) ReleaseLeft() {
	if common.Sign(p.VelocityX) < 0 {
		p.Stop()
	}
}

func (p *Player) ReleaseRight() {
	if common.Sign(p.VelocityX) > 0 {
		p.Stop()
	}
}
