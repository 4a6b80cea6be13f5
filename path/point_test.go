package path

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(4, 6, 8)

	diff(t, Pt(5, 8, 11), a.Add(b))
	diff(t, Pt(3, 4, 5), b.Sub(a))
	diff(t, Pt(2, 4, 6), a.Mul(2))
	diff(t, 40.0, a.Dot(b))
}

func TestPointDistance(t *testing.T) {
	a := Pt(1, 1, 1)
	b := Pt(4, 5, 1)

	diff(t, 5.0, a.Distance(b))
	diff(t, 25.0, a.Sub(b).Hypot2())
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0, 0)
	b := Pt(10, -10, 4)

	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(5, -5, 2), a.Lerp(b, 0.5))
}

func TestPointNormalize(t *testing.T) {
	v := Pt(3, 0, 4).Normalize()
	diff(t, 1.0, v.Hypot(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(0.6, 0, 0.8), v, cmpopts.EquateApprox(0, 1e-12))
}
