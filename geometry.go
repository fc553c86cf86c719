package cadgeo

import (
	"fmt"
	"maps"
	"slices"
)

// GeometryType is the tag of a [Geometry] node, using the wire-form names.
type GeometryType string

const (
	TypePoint              GeometryType = "Point"
	TypeMultiPoint         GeometryType = "MultiPoint"
	TypeLineString         GeometryType = "LineString"
	TypeMultiLineString    GeometryType = "MultiLineString"
	TypePolygon            GeometryType = "Polygon"
	TypeMultiPolygon       GeometryType = "MultiPolygon"
	TypeGeometryCollection GeometryType = "GeometryCollection"
	TypeFeature            GeometryType = "Feature"
	TypeFeatureCollection  GeometryType = "FeatureCollection"
)

// Geometry is one node of the recursive, type-tagged geometry tree. The set
// of implementations is closed: *[Point], *[MultiPoint], *[LineString],
// *[MultiLineString], *[Polygon], *[MultiPolygon], *[GeometryCollection],
// *[Feature] and *[FeatureCollection].
//
// A tree owns all of its coordinate data; no node is shared between two
// trees. In-place transforms substitute coordinates only and never alter the
// shape of the tree or ring orientation.
type Geometry interface {
	// Type returns the node's tag.
	Type() GeometryType

	// clone returns a deep copy. It also seals the interface.
	clone() Geometry
}

// Point is a single coordinate.
type Point struct {
	Coordinates Vec3
}

// MultiPoint is a list of coordinates.
type MultiPoint struct {
	Coordinates []Vec3
}

// LineString is an ordered list of coordinates forming a poly-line.
type LineString struct {
	Coordinates []Vec3
}

// MultiLineString is a list of poly-lines.
type MultiLineString struct {
	Coordinates [][]Vec3
}

// Polygon is a closed exterior ring and zero or more hole rings. The
// internal form is always the (exterior, holes) pair, even when the wire
// form is a flat ring list.
//
// Every Polygon constructed by [NewPolygon] or parsed from wire form has a
// closed, counter-clockwise exterior ring and closed, clockwise hole rings.
type Polygon struct {
	Exterior []Vec3
	Holes    [][]Vec3
}

// MultiPolygon is a list of polygons in pair form.
type MultiPolygon struct {
	Polygons []*Polygon
}

// GeometryCollection is a non-empty list of geometries.
type GeometryCollection struct {
	Geometries []Geometry
}

// Feature wraps a single geometry. Geometry is nil for an unlocated feature.
// Properties is an opaque attribute mapping carried through round trips.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// FeatureCollection is a non-empty list of features.
type FeatureCollection struct {
	Features []*Feature
}

func (*Point) Type() GeometryType              { return TypePoint }
func (*MultiPoint) Type() GeometryType         { return TypeMultiPoint }
func (*LineString) Type() GeometryType         { return TypeLineString }
func (*MultiLineString) Type() GeometryType    { return TypeMultiLineString }
func (*Polygon) Type() GeometryType            { return TypePolygon }
func (*MultiPolygon) Type() GeometryType       { return TypeMultiPolygon }
func (*GeometryCollection) Type() GeometryType { return TypeGeometryCollection }
func (*Feature) Type() GeometryType            { return TypeFeature }
func (*FeatureCollection) Type() GeometryType  { return TypeFeatureCollection }

func (g *Point) clone() Geometry {
	return &Point{Coordinates: g.Coordinates}
}

func (g *MultiPoint) clone() Geometry {
	return &MultiPoint{Coordinates: slices.Clone(g.Coordinates)}
}

func (g *LineString) clone() Geometry {
	return &LineString{Coordinates: slices.Clone(g.Coordinates)}
}

func (g *MultiLineString) clone() Geometry {
	return &MultiLineString{Coordinates: cloneRings(g.Coordinates)}
}

func (g *Polygon) clone() Geometry {
	return &Polygon{
		Exterior: slices.Clone(g.Exterior),
		Holes:    cloneRings(g.Holes),
	}
}

func (g *MultiPolygon) clone() Geometry {
	out := &MultiPolygon{Polygons: make([]*Polygon, len(g.Polygons))}
	for i, pg := range g.Polygons {
		out.Polygons[i] = pg.clone().(*Polygon)
	}
	return out
}

func (g *GeometryCollection) clone() Geometry {
	out := &GeometryCollection{Geometries: make([]Geometry, len(g.Geometries))}
	for i, child := range g.Geometries {
		out.Geometries[i] = child.clone()
	}
	return out
}

func (g *Feature) clone() Geometry {
	out := &Feature{}
	if g.Geometry != nil {
		out.Geometry = g.Geometry.clone()
	}
	if g.Properties != nil {
		out.Properties = maps.Clone(g.Properties)
	}
	return out
}

func (g *FeatureCollection) clone() Geometry {
	out := &FeatureCollection{Features: make([]*Feature, len(g.Features))}
	for i, f := range g.Features {
		out.Features[i] = f.clone().(*Feature)
	}
	return out
}

func cloneRings(rings [][]Vec3) [][]Vec3 {
	out := make([][]Vec3, len(rings))
	for i, ring := range rings {
		out[i] = slices.Clone(ring)
	}
	return out
}

// clockwise reports whether points run in clockwise order, using the
// shoelace orientation test.
func clockwise(points []Vec3) bool {
	var sum float64
	for i := 1; i < len(points); i++ {
		sum += (points[i].X - points[i-1].X) * (points[i].Y + points[i-1].Y)
	}
	// An open sequence is treated as implicitly closed.
	if n := len(points); n > 1 && !points[0].IsClose(points[n-1]) {
		sum += (points[0].X - points[n-1].X) * (points[0].Y + points[n-1].Y)
	}
	return sum > 0.0
}

// IsLinearRing reports whether the first and last vertex of points coincide
// within tolerance.
func IsLinearRing(points []Vec3) bool {
	return len(points) > 1 && points[0].IsClose(points[len(points)-1])
}

// LinearRing returns points as a closed linear ring (last vertex equals
// first vertex) wound in the requested orientation: counter-clockwise for
// ccw, clockwise otherwise. The input winding is irrelevant; the ring is
// reversed when needed. It returns [ErrTooFewVertices] below three input
// vertices. The input slice is not modified.
func LinearRing(points []Vec3, ccw bool) ([]Vec3, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: %d ring vertices", ErrTooFewVertices, len(points))
	}
	ring := slices.Clone(points)
	if !ring[0].IsClose(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	if clockwise(ring) == ccw {
		slices.Reverse(ring)
	}
	return ring, nil
}

// NewPolygon constructs a polygon from an exterior vertex sequence and
// optional holes. Every ring is normalized through [LinearRing]: the
// exterior counter-clockwise, holes clockwise, independent of the source
// winding.
func NewPolygon(exterior []Vec3, holes [][]Vec3) (*Polygon, error) {
	ext, err := LinearRing(exterior, true)
	if err != nil {
		return nil, err
	}
	pg := &Polygon{Exterior: ext}
	for _, hole := range holes {
		ring, err := LinearRing(hole, false)
		if err != nil {
			return nil, err
		}
		pg.Holes = append(pg.Holes, ring)
	}
	return pg, nil
}
