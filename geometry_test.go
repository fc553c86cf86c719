package cadgeo

import (
	"errors"
	"slices"
	"testing"
)

// signedArea returns the standard shoelace area: positive for
// counter-clockwise rings.
func signedArea(ring []Vec3) float64 {
	var sum float64
	for i := 1; i < len(ring); i++ {
		sum += ring[i-1].X*ring[i].Y - ring[i].X*ring[i-1].Y
	}
	return sum * 0.5
}

var (
	ccwSquare = []Vec3{V2(0, 0), V2(10, 0), V2(10, 10), V2(0, 10)}
	cwSquare  = []Vec3{V2(0, 0), V2(0, 10), V2(10, 10), V2(10, 0)}
)

func TestLinearRingTooFewVertices(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		if _, err := LinearRing(make([]Vec3, n), true); !errors.Is(err, ErrTooFewVertices) {
			t.Errorf("LinearRing with %d vertices: got %v, want ErrTooFewVertices", n, err)
		}
	}
}

func TestLinearRingClosesAndWinds(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input []Vec3
		ccw   bool
	}{
		{"ccw input, ccw ring", ccwSquare, true},
		{"cw input, ccw ring", cwSquare, true},
		{"ccw input, cw ring", ccwSquare, false},
		{"cw input, cw ring", cwSquare, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ring, err := LinearRing(tt.input, tt.ccw)
			if err != nil {
				t.Fatal(err)
			}
			if len(ring) != 5 {
				t.Fatalf("got %d vertices, want 5", len(ring))
			}
			if ring[0] != ring[len(ring)-1] {
				t.Error("ring is not closed")
			}
			area := signedArea(ring)
			if tt.ccw && area <= 0 {
				t.Errorf("got signed area %g, want positive", area)
			}
			if !tt.ccw && area >= 0 {
				t.Errorf("got signed area %g, want negative", area)
			}
		})
	}
}

func TestLinearRingKeepsInput(t *testing.T) {
	input := slices.Clone(cwSquare)
	if _, err := LinearRing(input, true); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(input, cwSquare) {
		t.Error("input slice was modified")
	}
}

func TestLinearRingClosedInput(t *testing.T) {
	closed := append(slices.Clone(ccwSquare), ccwSquare[0])
	ring, err := LinearRing(closed, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(ring) != 5 {
		t.Errorf("got %d vertices, want 5", len(ring))
	}
}

func TestClockwise(t *testing.T) {
	if clockwise(ccwSquare) {
		t.Error("counter-clockwise square reported clockwise")
	}
	if !clockwise(cwSquare) {
		t.Error("clockwise square reported counter-clockwise")
	}
}

func TestNewPolygonNormalizes(t *testing.T) {
	// Source winding of both rings is deliberately wrong.
	hole := []Vec3{V2(2, 2), V2(4, 2), V2(4, 4), V2(2, 4)} // ccw, must become cw
	pg, err := NewPolygon(cwSquare, [][]Vec3{hole})
	if err != nil {
		t.Fatal(err)
	}
	if area := signedArea(pg.Exterior); area <= 0 {
		t.Errorf("exterior signed area %g, want positive", area)
	}
	if area := signedArea(pg.Holes[0]); area >= 0 {
		t.Errorf("hole signed area %g, want negative", area)
	}
	if !IsLinearRing(pg.Exterior) || !IsLinearRing(pg.Holes[0]) {
		t.Error("rings are not closed")
	}
}

func TestNewPolygonBadHole(t *testing.T) {
	if _, err := NewPolygon(ccwSquare, [][]Vec3{{V2(0, 0), V2(1, 1)}}); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("got %v, want ErrTooFewVertices", err)
	}
}

func TestGeometryTypes(t *testing.T) {
	for _, tt := range []struct {
		g    Geometry
		want GeometryType
	}{
		{&Point{}, TypePoint},
		{&MultiPoint{}, TypeMultiPoint},
		{&LineString{}, TypeLineString},
		{&MultiLineString{}, TypeMultiLineString},
		{&Polygon{}, TypePolygon},
		{&MultiPolygon{}, TypeMultiPolygon},
		{&GeometryCollection{}, TypeGeometryCollection},
		{&Feature{}, TypeFeature},
		{&FeatureCollection{}, TypeFeatureCollection},
	} {
		if got := tt.g.Type(); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}
