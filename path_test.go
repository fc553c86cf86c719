package cadgeo

import (
	"slices"
	"testing"
)

func TestPathLinesFlattening(t *testing.T) {
	p := NewPath(V2(0, 0))
	p.LineTo(V2(10, 0))
	p.LineTo(V2(10, 10))

	got := slices.Collect(p.Flattening(0.1))
	want := []Vec3{V2(0, 0), V2(10, 0), V2(10, 10)}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPathCurveFlattening(t *testing.T) {
	// A near-semicircle as a single cubic segment.
	p := NewPath(V2(0, 0))
	p.CurveTo(V2(0, 10), V2(10, 10), V2(10, 0))
	p.LineTo(V2(0, 0))

	vertices := slices.Collect(p.Flattening(0.01))
	if len(vertices) < PathMinSegments+2 {
		t.Fatalf("got %d vertices, want at least %d", len(vertices), PathMinSegments+2)
	}
	if vertices[0] != V2(0, 0) {
		t.Errorf("first vertex %s, want (0, 0)", vertices[0])
	}
	if last := vertices[len(vertices)-1]; last != V2(0, 0) {
		t.Errorf("last vertex %s, want (0, 0)", last)
	}
	// The curve end and the closing line produce distinct consecutive
	// vertices; junctions are never repeated.
	for i := 1; i < len(vertices); i++ {
		if vertices[i] == vertices[i-1] {
			t.Errorf("repeated vertex %s at index %d", vertices[i], i)
		}
	}
}

func TestPathStartEndClosed(t *testing.T) {
	p := NewPath(V2(0, 0))
	if p.End() != V2(0, 0) {
		t.Errorf("empty path end %s, want start", p.End())
	}
	p.LineTo(V2(10, 0))
	p.LineTo(V2(10, 10))
	if p.IsClosed() {
		t.Error("open path reported closed")
	}
	p.Close()
	if !p.IsClosed() {
		t.Error("closed path reported open")
	}
	if got := len(p.Elements()); got != 3 {
		t.Errorf("got %d elements, want 3", got)
	}
	// Closing again is a no-op.
	p.Close()
	if got := len(p.Elements()); got != 3 {
		t.Errorf("after second Close: got %d elements, want 3", got)
	}
}

func TestPathCloneIndependence(t *testing.T) {
	p := NewPath(V2(0, 0))
	p.LineTo(V2(1, 0))
	c := p.Clone()
	p.LineTo(V2(2, 0))
	if len(c.Elements()) != 1 {
		t.Errorf("clone has %d elements, want 1", len(c.Elements()))
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath(V2(0, 0))
	p.CurveTo(V2(0, 1), V2(1, 1), V2(1, 0))
	moved := p.Transform(Translation(V3(5, 0, 0)))
	if moved.Start() != V3(5, 0, 0) {
		t.Errorf("start %s, want (5, 0, 0)", moved.Start())
	}
	el := moved.Elements()[0]
	if el.C1 != V3(5, 1, 0) || el.C2 != V3(6, 1, 0) || el.End != V3(6, 0, 0) {
		t.Errorf("got %s", el)
	}
	// Original unchanged.
	if p.Start() != V2(0, 0) {
		t.Error("original path was mutated")
	}
}
