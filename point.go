package pathfill

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in path-local space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}
