package surface

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of samples per spline segment used when
// [CurveOptions.SamplesPerSegment] is zero.
const DefaultSamples = 100

// Parametrization selects the exponent α applied to chord lengths when
// assigning knot values to control points.
type Parametrization int

const (
	// Centripetal uses α = 0.5. It is the zero value, and it never produces
	// cusps or self-intersections within a segment.
	Centripetal Parametrization = iota
	// Uniform uses α = 0, spacing knots one unit apart.
	Uniform
	// Chordal uses α = 1.
	Chordal
)

// Alpha returns the exponent applied to chord lengths.
func (p Parametrization) Alpha() float64 {
	switch p {
	case Centripetal:
		return 0.5
	case Uniform:
		return 0
	case Chordal:
		return 1
	default:
		panic(fmt.Sprintf("invalid parametrization %d", int(p)))
	}
}

func (p Parametrization) String() string {
	switch p {
	case Centripetal:
		return "centripetal"
	case Uniform:
		return "uniform"
	case Chordal:
		return "chordal"
	default:
		return fmt.Sprintf("Parametrization(%d)", int(p))
	}
}

// Knots assigns parameter values to consecutive control points, starting at
// t0. Each value is the previous one plus the distance between the
// corresponding points raised to alpha:
//
//	tₖ₊₁ = tₖ + ‖Pₖ₊₁ − Pₖ‖^α
//
// The result has the same length as pts. Coincident points are not detected
// here; see [NewSegment].
func Knots(pts []Point, t0, alpha float64) []float64 {
	if len(pts) == 0 {
		return nil
	}
	ts := make([]float64, len(pts))
	ts[0] = t0
	for k := 1; k < len(pts); k++ {
		ts[k] = ts[k-1] + math.Pow(pts[k].Distance(pts[k-1]), alpha)
	}
	return ts
}

var _ ParametricCurve = Segment{}
var _ Arclener = Segment{}

// Segment is the portion of a Catmull-Rom spline between the middle two of
// four consecutive control points. It is defined for t ∈ [T[1], T[2]],
// starts at P[1] and ends at P[2].
type Segment struct {
	P [4]Point
	T [4]float64
}

// NewSegment parametrizes the window p0, p1, p2, p3 with t0 = 0.
//
// It returns a [*DegenerateError] wrapping [ErrNonFinite] if a point has a
// NaN or infinite coordinate, and one wrapping [ErrCoincidentPoints] if two
// consecutive knots coincide, which happens when consecutive points are equal
// and the parametrization isn't [Uniform]. Index is the window-relative index
// of the offending point, the second one of a coincident pair.
func NewSegment(p0, p1, p2, p3 Point, param Parametrization) (Segment, error) {
	s := Segment{P: [4]Point{p0, p1, p2, p3}}
	for k, p := range s.P {
		if p.IsNaN() || p.IsInf() {
			return Segment{}, &DegenerateError{Op: "parametrize", Index: k, Err: ErrNonFinite}
		}
	}
	copy(s.T[:], Knots(s.P[:], 0, param.Alpha()))
	for k := 1; k < 4; k++ {
		if !(s.T[k] > s.T[k-1]) {
			return Segment{}, &DegenerateError{Op: "parametrize", Index: k, Err: ErrCoincidentPoints}
		}
	}
	return s, nil
}

// Eval evaluates the segment at t using the Barry-Goldman pyramid: three
// levels of linear blends, each weighted by the position of t within the
// corresponding knot interval.
func (s Segment) Eval(t float64) Point {
	p, k := &s.P, &s.T
	a1 := p[0].Blend(p[1], k[0], k[1], t)
	a2 := p[1].Blend(p[2], k[1], k[2], t)
	a3 := p[2].Blend(p[3], k[2], k[3], t)

	b1 := a1.Blend(a2, k[0], k[2], t)
	b2 := a2.Blend(a3, k[1], k[3], t)

	return b1.Blend(b2, k[1], k[2], t)
}

func (s Segment) Domain() (float64, float64) {
	return s.T[1], s.T[2]
}

func (s Segment) Start() Point {
	return s.P[1]
}

func (s Segment) End() Point {
	return s.P[2]
}

// Tangents returns the derivatives with respect to t at the start and end of
// the segment.
func (s Segment) Tangents() (Vec2, Vec2) {
	p, k := &s.P, &s.T
	m1 := p[1].Sub(p[0]).Div(k[1] - k[0]).
		Sub(p[2].Sub(p[0]).Div(k[2] - k[0])).
		Add(p[2].Sub(p[1]).Div(k[2] - k[1]))
	m2 := p[2].Sub(p[1]).Div(k[2] - k[1]).
		Sub(p[3].Sub(p[1]).Div(k[3] - k[1])).
		Add(p[3].Sub(p[2]).Div(k[3] - k[2]))
	return m1, m2
}

// Cubic returns the segment in Bézier form. The Bézier's parameter u ∈ [0, 1]
// relates to t by u = (t − T[1]) / (T[2] − T[1]).
func (s Segment) Cubic() CubicBez {
	m1, m2 := s.Tangents()
	h := (s.T[2] - s.T[1]) / 3
	return CubicBez{
		P0: s.P[1],
		P1: s.P[1].Translate(m1.Mul(h)),
		P2: s.P[2].Translate(m2.Mul(-h)),
		P3: s.P[2],
	}
}

// Arclen returns the length of the segment.
func (s Segment) Arclen(accuracy float64) float64 {
	return s.Cubic().Arclen(accuracy)
}

// Sample evaluates the segment at n parameter values spaced evenly over
// [T[1], T[2]], both ends included, and appends the points to dst.
// For n == 1 only T[1] is sampled.
func (s Segment) Sample(dst []Point, n int) []Point {
	switch {
	case n <= 0:
		return dst
	case n == 1:
		return append(dst, s.Eval(s.T[1]))
	}
	for _, t := range floats.Span(make([]float64, n), s.T[1], s.T[2]) {
		dst = append(dst, s.Eval(t))
	}
	return dst
}

var _ Arclener = (*Spline)(nil)

// Spline is a Catmull-Rom spline through a sequence of control points. It
// passes through every control point but the first and the last.
type Spline struct {
	Segments []Segment
}

// NewSpline parametrizes every window of four consecutive control points.
// The control points are not retained.
//
// It returns [ErrTooFewPoints] for fewer than four points, and otherwise the
// first error of [NewSegment], with Index relative to points.
func NewSpline(points []Point, param Parametrization) (*Spline, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("got %d points: %w", len(points), ErrTooFewPoints)
	}
	sp := &Spline{Segments: make([]Segment, len(points)-3)}
	for i := range sp.Segments {
		s, err := NewSegment(points[i], points[i+1], points[i+2], points[i+3], param)
		if err != nil {
			if derr, ok := err.(*DegenerateError); ok {
				derr.Index += i
			}
			return nil, err
		}
		sp.Segments[i] = s
	}
	return sp, nil
}

// Arclen returns the length of the spline, the sum of its segments' lengths.
func (sp *Spline) Arclen(accuracy float64) float64 {
	if len(sp.Segments) == 0 {
		return 0
	}
	acc := accuracy / float64(len(sp.Segments))
	var sum float64
	for _, s := range sp.Segments {
		sum += s.Arclen(acc)
	}
	return sum
}

// Sample samples every segment n times, in segment order. The result has
// n × len(sp.Segments) points. With workers > 1, segments are evaluated
// concurrently; the result does not depend on the number of workers.
func (sp *Spline) Sample(n, workers int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n*len(sp.Segments))
	fill := func(i int) {
		// Appends within the capacity of the window's slot.
		sp.Segments[i].Sample(out[i*n:i*n:(i+1)*n], n)
	}
	if workers <= 1 || len(sp.Segments) == 1 {
		for i := range sp.Segments {
			fill(i)
		}
		return out
	}

	// Every window writes to its own part of out; no further coordination is
	// needed.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(workers, len(sp.Segments)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fill(i)
			}
		}()
	}
	for i := range sp.Segments {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

// CurveOptions specifies optional settings for [CatmullRomOpt].
type CurveOptions struct {
	// The number of samples per segment. Zero selects DefaultSamples.
	SamplesPerSegment int
	// The knot parametrization. The zero value is Centripetal.
	Parametrization Parametrization
	// The number of goroutines evaluating segments. Values below 2 evaluate
	// sequentially.
	Workers int
}

// Samples returns the number of samples per segment, resolving zero to
// DefaultSamples.
func (opts CurveOptions) Samples() (int, error) {
	switch {
	case opts.SamplesPerSegment < 0:
		return 0, fmt.Errorf("%d samples per segment: %w", opts.SamplesPerSegment, ErrResolution)
	case opts.SamplesPerSegment == 0:
		return DefaultSamples, nil
	default:
		return opts.SamplesPerSegment, nil
	}
}

// CatmullRom computes a dense polyline along the centripetal Catmull-Rom
// spline through points, with samplesPerSegment samples for each window of
// four consecutive points.
//
// See [CatmullRomOpt] for details.
func CatmullRom(points []Point, samplesPerSegment int) ([]Point, error) {
	return CatmullRomOpt(points, CurveOptions{SamplesPerSegment: samplesPerSegment})
}

// CatmullRomOpt computes a dense polyline along the Catmull-Rom spline through
// points.
//
// For each of the len(points) − 3 windows of four consecutive points, the
// window's middle segment is sampled at SamplesPerSegment evenly spaced
// parameter values, both segment ends included. The result therefore has
// SamplesPerSegment × (len(points) − 3) points, and the last sample of one
// window coincides with the first sample of the next.
//
// The first and last control points only shape the curve; it doesn't pass
// through them.
//
// points is not modified. The result is newly allocated.
func CatmullRomOpt(points []Point, opts CurveOptions) ([]Point, error) {
	n, err := opts.Samples()
	if err != nil {
		tracer().Errorf("catmull-rom: %v", err)
		return nil, err
	}
	sp, err := NewSpline(points, opts.Parametrization)
	if err != nil {
		tracer().Errorf("catmull-rom: %v", err)
		return nil, err
	}
	tracer().Debugf("catmull-rom: %d windows × %d samples, %s", len(sp.Segments), n, opts.Parametrization)
	return sp.Sample(n, opts.Workers), nil
}
