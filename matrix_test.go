package cadgeo

import (
	"math"
	"testing"
)

func TestMatrix44Identity(t *testing.T) {
	v := V3(1, 2, 3)
	if got := Identity.Transform(v); got != v {
		t.Errorf("got %s, want %s", got, v)
	}
}

func TestMatrix44Translation(t *testing.T) {
	m := Translation(V3(10, 20, 30))
	if got := m.Transform(V3(1, 2, 3)); got != V3(11, 22, 33) {
		t.Errorf("got %s", got)
	}
}

func TestMatrix44Scaling(t *testing.T) {
	m := Scaling(2, 3, 4)
	if got := m.Transform(V3(1, 1, 1)); got != V3(2, 3, 4) {
		t.Errorf("got %s", got)
	}
}

func TestMatrix44RotationZ(t *testing.T) {
	m := RotationZ(math.Pi / 2)
	got := m.Transform(V3(1, 0, 0))
	if !got.IsClose(V3(0, 1, 0)) {
		t.Errorf("got %s, want (0, 1, 0)", got)
	}
}

func TestMatrix44Mul(t *testing.T) {
	// Row-vector convention: m.Mul(o) applies m first, then o.
	m := Scaling(2, 2, 2).Mul(Translation(V3(1, 0, 0)))
	if got := m.Transform(V3(1, 1, 0)); !got.IsClose(V3(3, 2, 0)) {
		t.Errorf("scale then translate: got %s, want (3, 2, 0)", got)
	}
	m = Translation(V3(1, 0, 0)).Mul(Scaling(2, 2, 2))
	if got := m.Transform(V3(1, 1, 0)); !got.IsClose(V3(4, 2, 0)) {
		t.Errorf("translate then scale: got %s, want (4, 2, 0)", got)
	}
}

func TestMatrix44TransformVertices(t *testing.T) {
	m := Translation(V3(1, 1, 0))
	in := []Vec3{V2(0, 0), V2(1, 0)}
	out := m.TransformVertices(in)
	if out[0] != V3(1, 1, 0) || out[1] != V3(2, 1, 0) {
		t.Errorf("got %v", out)
	}
	if in[0] != V2(0, 0) {
		t.Error("input slice was mutated")
	}
}

func TestMatrix44RotationXY(t *testing.T) {
	if got := RotationX(math.Pi / 2).Transform(V3(0, 1, 0)); !got.IsClose(V3(0, 0, 1)) {
		t.Errorf("RotationX: got %s, want (0, 0, 1)", got)
	}
	if got := RotationY(math.Pi / 2).Transform(V3(0, 0, 1)); !got.IsClose(V3(1, 0, 0)) {
		t.Errorf("RotationY: got %s, want (1, 0, 0)", got)
	}
}
