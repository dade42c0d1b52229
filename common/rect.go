package common

// Rect is an axis-aligned rectangle in screen pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// SetRight moves the rect so its right edge sits at x.
func (r *Rect) SetRight(x float64) {
	r.X = x - r.Width
}

// SetBottom moves the rect so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.Height
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether r and other overlap. Rects that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Valid reports whether the rect has a positive area.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}
