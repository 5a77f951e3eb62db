package surface

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned when fewer than four control points are
	// passed to the curve generator.
	ErrTooFewPoints = errors.New("need at least 4 control points for Catmull-Rom")

	// ErrResolution is returned for negative sample or angle counts and for
	// sweep angles that aren't finite.
	ErrResolution = errors.New("resolution must be finite and not negative")

	// ErrCoincidentPoints reports consecutive control points with zero chord
	// length, for which no parametrization exists.
	ErrCoincidentPoints = errors.New("coincident consecutive control points")

	// ErrNonFinite reports a control point with a NaN or infinite
	// coordinate.
	ErrNonFinite = errors.New("non-finite control point")

	// ErrZeroTangent reports a curve sample whose tangent vanishes, so that no
	// normal is defined.
	ErrZeroTangent = errors.New("zero tangent")
)

// DegenerateError describes input geometry that a computation cannot handle.
// It wraps one of [ErrNonFinite], [ErrCoincidentPoints] and [ErrZeroTangent].
type DegenerateError struct {
	// Op is the operation that failed, such as "parametrize" or "normals".
	Op string
	// Index is the index of the offending control point or curve sample.
	Index int
	Err   error
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %v at index %d", e.Op, e.Err, e.Index)
}

func (e *DegenerateError) Unwrap() error {
	return e.Err
}
