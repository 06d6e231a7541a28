package pathfill

// Rect is an axis-aligned bounding box described by its top-left origin
// and its size, matching the layout produced by the upstream tessellator.
type Rect struct {
	X, Y float32
	W, H float32
}

// NewRect creates a rectangle from an origin and a size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float32 {
	return r.X + r.W
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float32 {
	return r.Y + r.H
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
