package cadgeo

import (
	"fmt"
	"slices"
)

// Mapping converts a single CAD entity into a geometry node. Curved
// boundaries are flattened with the given maximum distance. Closed vertex
// sequences become Polygon nodes; forceLineString keeps them as LineString
// (or MultiLineString for hatches) instead.
//
// It returns [ErrUnsupportedEntity] for entity kinds outside the supported
// subset, including mesh and face-record polylines.
func Mapping(e Entity, distance float64, forceLineString bool) (Geometry, error) {
	switch e := e.(type) {
	case PointEntity:
		return &Point{Coordinates: e.Location()}, nil
	case LineEntity:
		return &LineString{Coordinates: []Vec3{e.StartPoint(), e.EndPoint()}}, nil
	case PolylineEntity:
		switch e.PolylineKind() {
		case Polyline2D, Polyline3D:
			// May contain arcs as bulge values.
			points := slices.Collect(e.BoundaryPath().Flattening(distance))
			return lineStringOrPolygonMapping(points, forceLineString)
		default:
			return nil, fmt.Errorf("%w: polygon mesh and polyface mesh", ErrUnsupportedEntity)
		}
	case PathEntity:
		points := slices.Collect(e.BoundaryPath().Flattening(distance))
		return lineStringOrPolygonMapping(points, forceLineString)
	case CurveEntity:
		points := slices.Collect(e.Flattening(distance))
		return lineStringOrPolygonMapping(points, forceLineString)
	case FaceEntity:
		return lineStringOrPolygonMapping(e.WCSVertices(true), forceLineString)
	case HatchEntity:
		return hatchMapping(e, distance, forceLineString)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEntity, e.DXFType())
	}
}

// lineStringOrPolygonMapping classifies a flattened vertex sequence. Fewer
// than two vertices is an error; exactly two vertices, or a forced line,
// yields a LineString; a closed sequence yields a normalized Polygon and an
// open one a LineString.
func lineStringOrPolygonMapping(points []Vec3, forceLineString bool) (Geometry, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d vertices", ErrTooFewVertices, len(points))
	}
	if len(points) == 2 || forceLineString {
		return &LineString{Coordinates: points}, nil
	}
	if IsLinearRing(points) {
		return NewPolygon(points, nil)
	}
	return &LineString{Coordinates: points}, nil
}

// hatchMapping resolves a hatch's boundary paths into a Polygon, or a
// LineString/MultiLineString when forceLineString is set.
//
// The external path is the one explicitly flagged as external. Without such
// a flag the source data is ambiguous and the first path is used as a
// fallback. Boundary winding is irrelevant here; [NewPolygon] corrects it.
func hatchMapping(h HatchEntity, distance float64, forceLineString bool) (Geometry, error) {
	boundaries := h.BoundaryPaths()
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("%w: hatch without any boundary path", ErrUnsupportedEntity)
	}

	externalIdx := slices.IndexFunc(boundaries, func(b HatchBoundary) bool {
		return b.Flags.IsExternal()
	})
	hasExplicitExternal := externalIdx >= 0
	if !hasExplicitExternal {
		// Malformed or underspecified source data; fall back to the first
		// path.
		externalIdx = 0
	}
	external := boundaries[externalIdx]

	vertices := func(b HatchBoundary) []Vec3 {
		points := slices.Collect(b.Path.Flattening(distance))
		if len(points) > 1 && !points[0].IsClose(points[len(points)-1]) {
			points = append(points, points[0])
		}
		return points
	}

	style := h.FillStyle()
	if len(boundaries) == 1 || style == FillStyleIgnore {
		return lineStringOrPolygonMapping(vertices(external), forceLineString)
	}

	// The external path may carry additional role flags; it is never its
	// own hole.
	collect := func(want func(BoundaryFlags) bool) []HatchBoundary {
		var out []HatchBoundary
		for i, b := range boundaries {
			if i != externalIdx && want(b.Flags) {
				out = append(out, b)
			}
		}
		return out
	}

	holes := collect(BoundaryFlags.IsOutermost)
	if style == FillStyleOutermost && len(holes) == 0 {
		// Outermost style without outermost paths; treat as nested.
		style = FillStyleNested
	}
	if style == FillStyleNested {
		// Nested fills have no Polygon equivalent; add the remaining paths
		// as additional holes.
		holes = append(holes, collect(BoundaryFlags.IsDefault)...)
	}

	if forceLineString {
		geometries := make([]Geometry, 0, len(holes)+1)
		g, err := lineStringOrPolygonMapping(vertices(external), true)
		if err != nil {
			return nil, err
		}
		geometries = append(geometries, g)
		for _, hole := range holes {
			g, err := lineStringOrPolygonMapping(vertices(hole), true)
			if err != nil {
				return nil, err
			}
			geometries = append(geometries, g)
		}
		return Join(geometries)
	}

	holeVertices := make([][]Vec3, len(holes))
	for i, hole := range holes {
		holeVertices[i] = vertices(hole)
	}
	return NewPolygon(vertices(external), holeVertices)
}

// Collection maps each entity independently. When all results share one
// geometry tag with a Multi* counterpart they collapse into that node;
// otherwise the results are wrapped as a GeometryCollection. It returns
// [ErrInvalidArgument] for an empty entity list.
func Collection(entities []Entity, distance float64, forceLineString bool) (Geometry, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("%w: no entities", ErrInvalidArgument)
	}
	geometries := make([]Geometry, len(entities))
	uniform := true
	for i, e := range entities {
		g, err := Mapping(e, distance, forceLineString)
		if err != nil {
			return nil, err
		}
		geometries[i] = g
		if g.Type() != geometries[0].Type() {
			uniform = false
		}
	}
	if uniform && joinable(geometries[0].Type()) {
		return Join(geometries)
	}
	return &GeometryCollection{Geometries: geometries}, nil
}

func joinable(t GeometryType) bool {
	switch t {
	case TypePoint, TypeLineString, TypePolygon:
		return true
	default:
		return false
	}
}

// Join collapses geometries of one tag into the corresponding Multi* node:
// Point into MultiPoint, LineString into MultiLineString, Polygon into
// MultiPolygon. It returns nil for an empty input list and
// [ErrTypeMismatch] when the inputs are not all of the same joinable tag.
func Join(geometries []Geometry) (Geometry, error) {
	if len(geometries) == 0 {
		return nil, nil
	}
	for _, g := range geometries {
		if g.Type() != geometries[0].Type() {
			return nil, fmt.Errorf("%w: %s and %s", ErrTypeMismatch, geometries[0].Type(), g.Type())
		}
	}
	switch geometries[0].(type) {
	case *Point:
		out := &MultiPoint{Coordinates: make([]Vec3, len(geometries))}
		for i, g := range geometries {
			out.Coordinates[i] = g.(*Point).Coordinates
		}
		return out, nil
	case *LineString:
		out := &MultiLineString{Coordinates: make([][]Vec3, len(geometries))}
		for i, g := range geometries {
			out.Coordinates[i] = g.(*LineString).Coordinates
		}
		return out, nil
	case *Polygon:
		out := &MultiPolygon{Polygons: make([]*Polygon, len(geometries))}
		for i, g := range geometries {
			out.Polygons[i] = g.(*Polygon)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has no Multi form", ErrTypeMismatch, geometries[0].Type())
	}
}

// Filter drops entities that cannot be expressed as geometry: unsupported
// kinds and mesh polylines. It mirrors the acceptance rules of [Mapping].
func Filter(entities []Entity) []Entity {
	var out []Entity
	for _, e := range entities {
		switch e := e.(type) {
		case PolylineEntity:
			if kind := e.PolylineKind(); kind == Polyline2D || kind == Polyline3D {
				out = append(out, e)
			}
		case PointEntity, LineEntity, PathEntity, CurveEntity, FaceEntity, HatchEntity:
			out = append(out, e)
		}
	}
	return out
}
