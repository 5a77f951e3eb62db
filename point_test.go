package surface

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointBlend(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(5, -2)
	diff(t, p, p.Blend(q, 2, 4, 2))
	diff(t, q, p.Blend(q, 2, 4, 4))
	diff(t, Pt(3, 0), p.Blend(q, 2, 4, 3))
	// Blending extrapolates outside of the interval.
	diff(t, Pt(-1, 4), p.Blend(q, 2, 4, 1))
}

func TestVecTurn90(t *testing.T) {
	v := Vec(3, 4)
	n := v.Turn90()
	diff(t, Vec(-4, 3), n)
	if d := v.Dot(n); d != 0 {
		t.Errorf("got dot product %v, want 0", d)
	}
	if c := v.Cross(n); c <= 0 {
		t.Errorf("got cross product %v, want a positive value", c)
	}
}

func TestVecNormalize(t *testing.T) {
	if h := Vec(3, 4).Normalize().Hypot(); math.Abs(h-1) > 1e-15 {
		t.Errorf("got magnitude %v, want 1", h)
	}
	if !Vec(0, 0).Normalize().IsNaN() {
		t.Error("normalizing the zero vector should produce NaN")
	}
}
