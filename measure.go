package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Measures collects the differential-geometry measures of a profile curve and
// of its solid of revolution.
//
// SurfaceArea and Volume take the Y coordinate as the radius, which describes
// revolution about the X axis. This differs from the Y-axis lattice built by
// [Revolve].
type Measures struct {
	ArcLength   float64
	SurfaceArea float64
	Volume      float64
	// Curvature and Normals hold one value per curve sample.
	Curvature []float64
	Normals   []Vec2
}

// Analyze computes all measures of curve.
//
// The only error condition is a vanishing tangent; see [Normals].
func Analyze(curve []Point) (Measures, error) {
	normals, err := Normals(curve)
	if err != nil {
		tracer().Errorf("analyze: %v", err)
		return Measures{}, err
	}
	ds := chords(curve)
	m := Measures{
		ArcLength:   floats.Sum(ds),
		SurfaceArea: surfaceArea(curve, ds),
		Volume:      volume(curve, ds),
		Curvature:   Curvature(curve),
		Normals:     normals,
	}
	tracer().Debugf("analyze: %d samples, length %g, area %g, volume %g",
		len(curve), m.ArcLength, m.SurfaceArea, m.Volume)
	return m, nil
}

// chords returns the distances between consecutive points.
func chords(curve []Point) []float64 {
	if len(curve) < 2 {
		return nil
	}
	ds := make([]float64, len(curve)-1)
	for i := range ds {
		ds[i] = curve[i+1].Distance(curve[i])
	}
	return ds
}

// ArcLength returns the length of the polyline through curve. It is zero for
// fewer than two points.
func ArcLength(curve []Point) float64 {
	return floats.Sum(chords(curve))
}

// SurfaceArea approximates the area of the surface swept by curve, using the
// Y coordinate as the radius:
//
//	A ≈ Σᵢ 2π yᵢ ‖Pᵢ − Pᵢ₋₁‖,  i = 1 … n−1
//
// Each chord is weighted by the radius at its end point. The sum is signed: it
// assumes y ≥ 0 along the curve.
func SurfaceArea(curve []Point) float64 {
	return surfaceArea(curve, chords(curve))
}

func surfaceArea(curve []Point, ds []float64) float64 {
	var area float64
	for i := 1; i < len(curve); i++ {
		area += 2 * math.Pi * curve[i].Y * ds[i-1]
	}
	return area
}

// Volume approximates the volume enclosed by the surface swept by curve, using
// the Y coordinate as the radius:
//
//	V ≈ Σᵢ π yᵢ² ‖Pᵢ − Pᵢ₋₁‖,  i = 1 … n−1
//
// Like [SurfaceArea], it integrates along the arc length rather than along the
// axis, and weights each chord by the radius at its end point.
func Volume(curve []Point) float64 {
	return volume(curve, chords(curve))
}

func volume(curve []Point, ds []float64) float64 {
	var vol float64
	for i := 1; i < len(curve); i++ {
		r := curve[i].Y
		vol += math.Pi * r * r * ds[i-1]
	}
	return vol
}

// Gradient returns the discrete derivative of vs with respect to the sample
// index. Interior samples use central differences, (vᵢ₊₁ − vᵢ₋₁) / 2; the
// first and last sample use one-sided differences, v₁ − v₀ and vₙ₋₁ − vₙ₋₂.
// A single sample has a zero derivative.
func Gradient(vs []Vec2) []Vec2 {
	n := len(vs)
	switch n {
	case 0:
		return nil
	case 1:
		return []Vec2{{}}
	}
	d := make([]Vec2, n)
	d[0] = vs[1].Sub(vs[0])
	for i := 1; i < n-1; i++ {
		d[i] = vs[i+1].Sub(vs[i-1]).Mul(0.5)
	}
	d[n-1] = vs[n-1].Sub(vs[n-2])
	return d
}

func tangents(curve []Point) []Vec2 {
	vs := make([]Vec2, len(curve))
	for i, p := range curve {
		vs[i] = Vec2(p)
	}
	return Gradient(vs)
}

// Curvature returns the discrete curvature at every sample of curve,
//
//	κᵢ = ‖d1ᵢ × d2ᵢ‖ / ‖d1ᵢ‖³
//
// where d1 is the [Gradient] of the curve lifted into 3D (z = 0) and d2 the
// gradient of d1. Ratios that are not finite, as happens where d1 vanishes,
// are reported as 0.
func Curvature(curve []Point) []float64 {
	if len(curve) == 0 {
		return nil
	}
	d1 := tangents(curve)
	d2 := Gradient(d1)
	k := make([]float64, len(curve))
	for i := range k {
		u := r3.Vec{X: d1[i].X, Y: d1[i].Y}
		v := r3.Vec{X: d2[i].X, Y: d2[i].Y}
		speed := r3.Norm(u)
		c := r3.Norm(r3.Cross(u, v)) / (speed * speed * speed)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			c = 0
		}
		k[i] = c
	}
	return k
}

// Normals returns the unit normal at every sample of curve: the [Gradient]
// turned by a quarter turn, ⟨−dy, dx⟩, normalized.
//
// If the gradient vanishes at a sample, Normals returns a [*DegenerateError]
// wrapping [ErrZeroTangent] with the sample's index. This is the case for
// every curve of exactly one point.
func Normals(curve []Point) ([]Vec2, error) {
	if len(curve) == 0 {
		return nil, nil
	}
	d1 := tangents(curve)
	ns := make([]Vec2, len(curve))
	for i, d := range d1 {
		n := d.Turn90()
		h := n.Hypot()
		if h == 0 {
			return nil, &DegenerateError{Op: "normals", Index: i, Err: ErrZeroTangent}
		}
		ns[i] = n.Div(h)
	}
	return ns, nil
}
