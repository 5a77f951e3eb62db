package surface

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultAngles is the number of rings used when
// [RevolveOptions.AngleSamples] is zero.
const DefaultAngles = 100

// Lattice is the point grid of a surface of revolution. Ring i holds the
// profile curve rotated by the i-th angle; sample j of every ring stems from
// the j-th curve point.
type Lattice struct {
	Rings   int
	Samples int
	// Points holds Rings × Samples points, ring after ring.
	Points []r3.Vec
}

// At returns the point of sample j on ring i.
func (l Lattice) At(i, j int) r3.Vec {
	if i < 0 || i >= l.Rings || j < 0 || j >= l.Samples {
		panic(fmt.Sprintf("lattice index (%d, %d) out of range (%d, %d)", i, j, l.Rings, l.Samples))
	}
	return l.Points[i*l.Samples+j]
}

// Ring returns the points of ring i. The slice aliases the lattice.
func (l Lattice) Ring(i int) []r3.Vec {
	if i < 0 || i >= l.Rings {
		panic(fmt.Sprintf("ring %d out of range [0, %d)", i, l.Rings))
	}
	return l.Points[i*l.Samples : (i+1)*l.Samples : (i+1)*l.Samples]
}

// Grid returns the X, Y and Z coordinates of the lattice as three matrices
// indexed [sample][ring]. This is the layout structured-grid mesh builders
// expect.
func (l Lattice) Grid() (x, y, z [][]float64) {
	x = make([][]float64, l.Samples)
	y = make([][]float64, l.Samples)
	z = make([][]float64, l.Samples)
	for j := range l.Samples {
		x[j] = make([]float64, l.Rings)
		y[j] = make([]float64, l.Rings)
		z[j] = make([]float64, l.Rings)
		for i := range l.Rings {
			p := l.Points[i*l.Samples+j]
			x[j][i], y[j][i], z[j][i] = p.X, p.Y, p.Z
		}
	}
	return x, y, z
}

// RevolveOptions specifies optional settings for [RevolveOpt].
type RevolveOptions struct {
	// The number of rings. Zero selects DefaultAngles.
	AngleSamples int
	// The swept angle in radians. Zero selects a full turn, 2π.
	Sweep float64
	// The number of goroutines computing rings. Values below 2 compute
	// sequentially.
	Workers int
}

// Rings returns the number of rings, resolving zero to DefaultAngles.
func (opts RevolveOptions) Rings() (int, error) {
	switch {
	case opts.AngleSamples < 0:
		return 0, fmt.Errorf("%d angle samples: %w", opts.AngleSamples, ErrResolution)
	case opts.AngleSamples == 0:
		return DefaultAngles, nil
	default:
		return opts.AngleSamples, nil
	}
}

// SweepAngle returns the swept angle, resolving zero to a full turn.
func (opts RevolveOptions) SweepAngle() (float64, error) {
	switch {
	case math.IsNaN(opts.Sweep) || math.IsInf(opts.Sweep, 0):
		return 0, fmt.Errorf("sweep %v: %w", opts.Sweep, ErrResolution)
	case opts.Sweep == 0:
		return 2 * math.Pi, nil
	default:
		return opts.Sweep, nil
	}
}

// Angles returns the ring angles: [RevolveOptions.Rings] values spaced evenly
// over [0, SweepAngle], both ends included. With a single ring, the only
// angle is 0.
func (opts RevolveOptions) Angles() ([]float64, error) {
	n, err := opts.Rings()
	if err != nil {
		return nil, err
	}
	sweep, err := opts.SweepAngle()
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{0}, nil
	}
	return floats.Span(make([]float64, n), 0, sweep), nil
}

// Revolve rotates curve about the Y axis through angleSamples angles spanning
// a full turn.
//
// See [RevolveOpt] for details.
func Revolve(curve []Point, angleSamples int) (Lattice, error) {
	return RevolveOpt(curve, RevolveOptions{AngleSamples: angleSamples})
}

// RevolveOpt rotates every point (x, y) of curve, taken to lie in the plane
// z = 0, about the Y axis, once per angle θ returned by [RevolveOptions.Angles].
// The rotated point is (x cos θ, y, −x sin θ).
//
// For a full sweep, the first and the last ring coincide, closing the seam of
// the surface.
func RevolveOpt(curve []Point, opts RevolveOptions) (Lattice, error) {
	angles, err := opts.Angles()
	if err != nil {
		tracer().Errorf("revolve: %v", err)
		return Lattice{}, err
	}
	l := Lattice{
		Rings:   len(angles),
		Samples: len(curve),
		Points:  make([]r3.Vec, len(angles)*len(curve)),
	}
	tracer().Debugf("revolve: %d rings × %d samples", l.Rings, l.Samples)
	ring := func(i int) {
		rot := TurnY(angles[i])
		dst := l.Points[i*l.Samples : (i+1)*l.Samples]
		for j, p := range curve {
			dst[j] = rot.Apply(p)
		}
	}
	if opts.Workers <= 1 {
		for i := range angles {
			ring(i)
		}
		return l, nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.Workers)
	for i := range angles {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			ring(i)
			<-sem
		}(i)
	}
	wg.Wait()
	return l, nil
}
