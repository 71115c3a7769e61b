package common

// Rect is an axis-aligned rectangle in playfield coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inflate returns r grown by dx on each horizontal side and dy on each
// vertical side, keeping the same center.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X:      r.X - dx,
		Y:      r.Y - dy,
		Width:  r.Width + dx*2,
		Height: r.Height + dy*2,
	}
}

// CenterX returns the horizontal center of r.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center of r.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// IntersectsCircle reports whether the circle at (cx, cy) with radius rad
// overlaps r. The circle center is clamped to the rectangle and the clamped
// point tested against the radius.
func (r Rect) IntersectsCircle(cx, cy, rad float64) bool {
	nx := Clamp(cx, r.X, r.X+r.Width)
	ny := Clamp(cy, r.Y, r.Y+r.Height)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= rad*rad
}
