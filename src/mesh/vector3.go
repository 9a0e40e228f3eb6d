package mesh

import "math"

// Epsilon is the tolerance below which a vector length is treated as zero.
const Epsilon = 1.19209e-07

// Vector3 is a 3D position or direction with float64 components.
type Vector3 struct {
	X, Y, Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(b Vector3) Vector3 {
	return Vector3{X: v.X + b.X, Y: v.Y + b.Y, Z: v.Z + b.Z}
}

func (v Vector3) Sub(b Vector3) Vector3 {
	return Vector3{X: v.X - b.X, Y: v.Y - b.Y, Z: v.Z - b.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(b Vector3) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

func (v Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		X: v.Y*b.Z - v.Z*b.Y,
		Y: v.Z*b.X - v.X*b.Z,
		Z: v.X*b.Y - v.Y*b.X,
	}
}

func (v Vector3) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Unit returns the vector scaled to unit length. The second return value is
// false when the length is below Epsilon, in which case the first return
// value is the zero vector.
func (v Vector3) Unit() (Vector3, bool) {
	n := v.Norm()
	if n < Epsilon {
		return Vector3{}, false
	}
	return v.Scale(1 / n), true
}
