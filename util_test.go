package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// traceTo sends the package's tracing to the test log until the test ends.
// Tests using it must not run in parallel.
func traceTo(t *testing.T, level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gotestingadapter.GetAdapter(t)))
	tracer().SetTraceLevel(level)
	t.Cleanup(func() { tracing.SetTraceSelector(nil) })
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// profile is a bump rising from the axis and falling back to it.
var profile = []Point{
	Pt(0, 0),
	Pt(1, 2),
	Pt(2, 3),
	Pt(3, 1),
	Pt(4, 0),
}
