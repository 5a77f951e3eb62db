package surface

// Options combines the settings of the curve generator and the revolver for
// [Generate].
type Options struct {
	Curve   CurveOptions
	Revolve RevolveOptions
}

// Result holds everything computed from one set of control points. It is
// shared read-only once returned.
type Result struct {
	Curve    []Point
	Lattice  Lattice
	Measures Measures
}

// Generate samples the spline through points, revolves it, and measures it.
// It is a pure function of its arguments.
func Generate(points []Point, opts Options) (*Result, error) {
	curve, err := CatmullRomOpt(points, opts.Curve)
	if err != nil {
		return nil, err
	}
	lattice, err := RevolveOpt(curve, opts.Revolve)
	if err != nil {
		return nil, err
	}
	m, err := Analyze(curve)
	if err != nil {
		return nil, err
	}
	return &Result{
		Curve:    curve,
		Lattice:  lattice,
		Measures: m,
	}, nil
}
