package pathfill

// Mat2 is a row-major 2x2 matrix. Fragments carry one as the inverse of
// the linear part of the path's local transform, used to carry sampling
// offsets from output space into path-local space.
type Mat2 struct {
	A, B float32 // first row
	C, D float32 // second row
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{A: 1, D: 1}
}

// Scale2 returns a 2x2 scaling matrix.
func Scale2(sx, sy float32) Mat2 {
	return Mat2{A: sx, D: sy}
}

// Apply transforms a vector by the matrix.
func (m Mat2) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Mul returns the matrix product m*n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Affine is a 2D affine transform: a linear 2x2 part plus a translation.
// The render package uses one per path instance to map device pixel
// coordinates into path-local space.
type Affine struct {
	Mat2
	Tx, Ty float32
}

// IdentityAffine returns the identity affine transform.
func IdentityAffine() Affine {
	return Affine{Mat2: Identity2()}
}

// Apply transforms a point by the affine transform.
func (a Affine) Apply(p Point) Point {
	q := a.Mat2.Apply(p)
	return Point{X: q.X + a.Tx, Y: q.Y + a.Ty}
}
