// Package surface builds surfaces of revolution from smooth profile curves and
// measures them.
//
// # Profiles
//
// A profile is a [Catmull-Rom spline] through a sequence of control points in
// the plane. [CatmullRom] and [CatmullRomOpt] sample it densely and return a
// polyline. Each window of four consecutive control points contributes one
// [Segment], which runs between the window's middle two points; the curve
// therefore passes through every control point except the first and the last.
//
// Knot values are assigned by [Knots] from chord lengths raised to an exponent
// α. The default, [Centripetal] (α = 0.5), avoids cusps and self-intersections
// within segments. [Segment.Eval] uses the [Barry-Goldman] pyramid of linear
// blends. The same segment is available in Bézier form through
// [Segment.Cubic], which is how lengths of the exact spline are computed
// ([Spline.Arclen]).
//
// # Surfaces
//
// [Revolve] rotates a profile about the Y axis and returns a [Lattice] of 3D
// points, one ring per angle. Angles span [0, 2π] inclusively, so the first and
// the last ring coincide and close the seam.
//
// # Measures
//
// [Analyze] computes the polyline's arc length, per-sample [Curvature] and
// [Normals], and the [SurfaceArea] and [Volume] of the solid obtained by
// treating Y as the radius. Derivatives are taken with respect to the sample
// index by [Gradient], with one-sided differences at both ends.
//
// # Degenerate input
//
// Control points with NaN or infinite coordinates are rejected with
// [ErrNonFinite]. Coincident consecutive control points have no centripetal
// parametrization and are rejected with [ErrCoincidentPoints]. Normals reject samples whose
// tangent vanishes with [ErrZeroTangent]. Curvature reports 0 where it is
// undefined.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. [CurveOptions.Workers]
// and [RevolveOptions.Workers] let a single call spread windows and rings over
// several goroutines. Package memo caches results by input.
//
// [Catmull-Rom spline]: https://en.wikipedia.org/wiki/Centripetal_Catmull%E2%80%93Rom_spline
// [Barry-Goldman]: https://dl.acm.org/doi/10.1145/54852.378511
package surface
