package cadgeo

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 8)

	if got := a.Add(b); got != V3(5, 8, 11) {
		t.Errorf("Add: got %s", got)
	}
	if got := b.Sub(a); got != V3(3, 4, 5) {
		t.Errorf("Sub: got %s", got)
	}
	if got := a.Mul(2); got != V3(2, 4, 6) {
		t.Errorf("Mul: got %s", got)
	}
	if got := a.Negate(); got != V3(-1, -2, -3) {
		t.Errorf("Negate: got %s", got)
	}
	if got := a.Lerp(b, 0.5); got != V3(2.5, 4, 5.5) {
		t.Errorf("Lerp: got %s", got)
	}
	if got := a.Midpoint(b); got != V3(2.5, 4, 5.5) {
		t.Errorf("Midpoint: got %s", got)
	}
	if got := b.Sub(a).Hypot(); math.Abs(got-math.Sqrt(50)) > 1e-12 {
		t.Errorf("Hypot: got %g", got)
	}
	if got := a.Distance(b); math.Abs(got-math.Sqrt(50)) > 1e-12 {
		t.Errorf("Distance: got %g", got)
	}
	if got := a.DistanceSquared(b); got != 50 {
		t.Errorf("DistanceSquared: got %g", got)
	}
	if got := a.Dot(b); got != 40 {
		t.Errorf("Dot: got %g", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("Cross: got %s", got)
	}
}

func TestVec3IsClose(t *testing.T) {
	a := V2(1, 2)
	if !a.IsClose(V2(1, 2)) {
		t.Error("identical coordinates are not close")
	}
	if !a.IsClose(V2(1+1e-13, 2)) {
		t.Error("coordinates within tolerance are not close")
	}
	if a.IsClose(V2(1.001, 2)) {
		t.Error("distinct coordinates reported close")
	}
	// Large magnitudes are compared with relative tolerance.
	if !V2(1e9, 0).IsClose(V2(1e9+0.1, 0)) {
		t.Error("relative tolerance not applied at large magnitude")
	}
}

func TestVec3V2(t *testing.T) {
	v := V2(3, 4)
	if v.Z != 0 {
		t.Errorf("V2 z = %g, want 0", v.Z)
	}
	x, y := v.XY()
	if x != 3 || y != 4 {
		t.Errorf("XY: got (%g, %g)", x, y)
	}
}
