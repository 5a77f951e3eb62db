package surface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Affine describes an affine transform of the profile plane via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors the profile across the x axis.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y. The angle
// th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Turn is a rotation of 3D space about the Y axis, the axis profiles are
// revolved around.
//
// It is the right-handed rotation matrix
//
//	|  cos θ  0  sin θ |
//	|    0    1    0   |
//	| −sin θ  0  cos θ |
type Turn struct {
	Sin, Cos float64
}

// TurnY returns the rotation by th radians about the Y axis.
func TurnY(th float64) Turn {
	sin, cos := math.Sincos(th)
	return Turn{Sin: sin, Cos: cos}
}

// Apply rotates the profile point pt, lying in the plane z = 0.
func (r Turn) Apply(pt Point) r3.Vec {
	return r3.Vec{
		X: r.Cos * pt.X,
		Y: pt.Y,
		Z: -r.Sin * pt.X,
	}
}

// ApplyVec rotates an arbitrary vector.
func (r Turn) ApplyVec(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: r.Cos*v.X + r.Sin*v.Z,
		Y: v.Y,
		Z: -r.Sin*v.X + r.Cos*v.Z,
	}
}
