package cadgeo

import "fmt"

// Wire-form keys.
const (
	keyType        = "type"
	keyCoordinates = "coordinates"
	keyGeometries  = "geometries"
	keyGeometry    = "geometry"
	keyFeatures    = "features"
	keyProperties  = "properties"
)

// Parse recursively validates a wire-form mapping and converts it into the
// internal geometry tree. All coordinates become [Vec3] values and Polygon
// coordinates are normalized to the (exterior, holes) pair form, with ring
// closure and winding enforced.
//
// It returns [ErrMissingKey] when "type" or the type-specific required key
// ("coordinates", "features", "geometries" or "geometry") is absent,
// [ErrUnknownType] for an unrecognized "type" value, and a wrapped
// validation error for malformed coordinate data. Parse either returns a
// fully valid tree or fails before any node is returned.
func Parse(mapping map[string]any) (Geometry, error) {
	rawType, ok := mapping[keyType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, keyType)
	}
	name, ok := rawType.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, rawType)
	}

	switch GeometryType(name) {
	case TypeFeatureCollection:
		features, err := requireList(mapping, keyFeatures, name)
		if err != nil {
			return nil, err
		}
		fc := &FeatureCollection{Features: make([]*Feature, len(features))}
		for i, raw := range features {
			child, err := parseChild(raw)
			if err != nil {
				return nil, err
			}
			f, ok := child.(*Feature)
			if !ok {
				return nil, fmt.Errorf("%w: FeatureCollection member %s", ErrTypeMismatch, child.Type())
			}
			fc.Features[i] = f
		}
		return fc, nil

	case TypeGeometryCollection:
		geometries, err := requireList(mapping, keyGeometries, name)
		if err != nil {
			return nil, err
		}
		gc := &GeometryCollection{Geometries: make([]Geometry, len(geometries))}
		for i, raw := range geometries {
			child, err := parseChild(raw)
			if err != nil {
				return nil, err
			}
			gc.Geometries[i] = child
		}
		return gc, nil

	case TypeFeature:
		// The geometry key must exist; a nil value marks an unlocated
		// feature.
		raw, ok := mapping[keyGeometry]
		if !ok {
			return nil, fmt.Errorf("%w: %q in Feature", ErrMissingKey, keyGeometry)
		}
		f := &Feature{}
		if raw != nil {
			child, err := parseChild(raw)
			if err != nil {
				return nil, err
			}
			f.Geometry = child
		}
		if props, ok := mapping[keyProperties].(map[string]any); ok {
			f.Properties = props
		}
		return f, nil

	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon:
		raw, ok := mapping[keyCoordinates]
		if !ok || raw == nil {
			return nil, fmt.Errorf("%w: %q in %s", ErrMissingKey, keyCoordinates, name)
		}
		return parseCoordinates(GeometryType(name), raw)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

func parseChild(raw any) (Geometry, error) {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: geometry node is not a mapping", ErrUnknownType)
	}
	return Parse(mapping)
}

func requireList(mapping map[string]any, key, name string) ([]any, error) {
	list, ok := asList(mapping[key])
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrMissingKey, key, name)
	}
	return list, nil
}

func parseCoordinates(t GeometryType, raw any) (Geometry, error) {
	switch t {
	case TypePoint:
		v, err := parseVertex(raw)
		if err != nil {
			return nil, err
		}
		return &Point{Coordinates: v}, nil
	case TypeMultiPoint:
		vertices, err := parseVertices(raw, 1)
		if err != nil {
			return nil, err
		}
		return &MultiPoint{Coordinates: vertices}, nil
	case TypeLineString:
		vertices, err := parseVertices(raw, 2)
		if err != nil {
			return nil, err
		}
		return &LineString{Coordinates: vertices}, nil
	case TypeMultiLineString:
		lines, err := parseVertexLists(raw)
		if err != nil {
			return nil, err
		}
		return &MultiLineString{Coordinates: lines}, nil
	case TypePolygon:
		return parsePolygon(raw)
	case TypeMultiPolygon:
		list, ok := asList(raw)
		if !ok {
			return nil, invalidCoordinates(raw)
		}
		mp := &MultiPolygon{Polygons: make([]*Polygon, len(list))}
		for i, rawPolygon := range list {
			pg, err := parsePolygon(rawPolygon)
			if err != nil {
				return nil, err
			}
			mp.Polygons[i] = pg
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

// parsePolygon normalizes the two accepted Polygon coordinate layouts: a
// flat ring list is exterior-only, a list whose first element is itself a
// ring is [exterior, hole, hole, ...].
func parsePolygon(raw any) (*Polygon, error) {
	flat, err := isCoordinateSequence(raw)
	if err != nil {
		return nil, err
	}
	var exterior []Vec3
	var holes [][]Vec3
	if flat {
		exterior, err = parseVertices(raw, 2)
		if err != nil {
			return nil, err
		}
	} else {
		rings, err := parseVertexLists(raw)
		if err != nil {
			return nil, err
		}
		exterior = rings[0]
		holes = rings[1:]
	}
	return NewPolygon(exterior, holes)
}

// isCoordinateSequence reports whether raw is a sequence of coordinates such
// as [(0, 0), (1, 0)] rather than a sequence of coordinate sequences. The
// two cases are told apart by whether the first coordinate's first component
// is a scalar number. Empty sequences are malformed.
func isCoordinateSequence(raw any) (bool, error) {
	switch raw.(type) {
	case []Vec3:
		return true, nil
	case [][]Vec3:
		return false, nil
	}
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return false, invalidCoordinates(raw)
	}
	first, ok := asList(list[0])
	if !ok || len(first) == 0 {
		return false, invalidCoordinates(raw)
	}
	_, isNumber := asFloat(first[0])
	return isNumber, nil
}

func invalidCoordinates(raw any) error {
	return fmt.Errorf("%w: invalid coordinate sequence %v", ErrInvalidArgument, raw)
}

// asList widens the accepted list representations to []any: decoded JSON
// ([]any) and the natural Go forms.
func asList(raw any) ([]any, bool) {
	switch list := raw.(type) {
	case []any:
		return list, true
	case []float64:
		out := make([]any, len(list))
		for i, f := range list {
			out[i] = f
		}
		return out, true
	case []Vec3:
		out := make([]any, len(list))
		for i, v := range list {
			out[i] = v
		}
		return out, true
	case [][]Vec3:
		out := make([]any, len(list))
		for i, v := range list {
			out[i] = v
		}
		return out, true
	case [][]float64:
		out := make([]any, len(list))
		for i, v := range list {
			out[i] = v
		}
		return out, true
	case [2]float64:
		return []any{list[0], list[1]}, true
	case [3]float64:
		return []any{list[0], list[1], list[2]}, true
	default:
		return nil, false
	}
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// parseVertex accepts a single coordinate as a 2- or 3-component numeric
// sequence or a [Vec3].
func parseVertex(raw any) (Vec3, error) {
	if v, ok := raw.(Vec3); ok {
		return v, nil
	}
	list, ok := asList(raw)
	if !ok || len(list) < 2 || len(list) > 3 {
		return Vec3{}, invalidCoordinates(raw)
	}
	var v Vec3
	x, ok := asFloat(list[0])
	if !ok {
		return Vec3{}, invalidCoordinates(raw)
	}
	y, ok := asFloat(list[1])
	if !ok {
		return Vec3{}, invalidCoordinates(raw)
	}
	v.X, v.Y = x, y
	if len(list) == 3 {
		z, ok := asFloat(list[2])
		if !ok {
			return Vec3{}, invalidCoordinates(raw)
		}
		v.Z = z
	}
	return v, nil
}

// parseVertices accepts a coordinate list with at least minLen coordinates.
// An empty list, or a single-coordinate list where a line or ring is
// expected, is a parse error.
func parseVertices(raw any, minLen int) ([]Vec3, error) {
	list, ok := asList(raw)
	if !ok || len(list) == 0 || len(list) < minLen {
		return nil, invalidCoordinates(raw)
	}
	out := make([]Vec3, len(list))
	for i, rawVertex := range list {
		v, err := parseVertex(rawVertex)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseVertexLists(raw any) ([][]Vec3, error) {
	list, ok := asList(raw)
	if !ok || len(list) == 0 {
		return nil, invalidCoordinates(raw)
	}
	out := make([][]Vec3, len(list))
	for i, rawVertices := range list {
		vertices, err := parseVertices(rawVertices, 2)
		if err != nil {
			return nil, err
		}
		out[i] = vertices
	}
	return out, nil
}

// rebuild is the inverse of [Parse]: it produces the wire-form mapping.
// Coordinates are emitted as [2]float64 (x, y) tuples; 3D data is not
// round-tripped through the wire form. Polygon coordinates are the flat
// ring list when there are no holes, or [exterior, hole, ...] otherwise.
func rebuild(g Geometry) map[string]any {
	out := map[string]any{keyType: string(g.Type())}
	switch g := g.(type) {
	case *Point:
		out[keyCoordinates] = wireVertex(g.Coordinates)
	case *MultiPoint:
		out[keyCoordinates] = wireVertices(g.Coordinates)
	case *LineString:
		out[keyCoordinates] = wireVertices(g.Coordinates)
	case *MultiLineString:
		out[keyCoordinates] = wireVertexLists(g.Coordinates)
	case *Polygon:
		out[keyCoordinates] = wirePolygon(g)
	case *MultiPolygon:
		coordinates := make([]any, len(g.Polygons))
		for i, pg := range g.Polygons {
			coordinates[i] = wirePolygon(pg)
		}
		out[keyCoordinates] = coordinates
	case *GeometryCollection:
		geometries := make([]any, len(g.Geometries))
		for i, child := range g.Geometries {
			geometries[i] = rebuild(child)
		}
		out[keyGeometries] = geometries
	case *Feature:
		if g.Geometry != nil {
			out[keyGeometry] = rebuild(g.Geometry)
		} else {
			out[keyGeometry] = nil
		}
		if g.Properties != nil {
			out[keyProperties] = g.Properties
		}
	case *FeatureCollection:
		features := make([]any, len(g.Features))
		for i, f := range g.Features {
			features[i] = rebuild(f)
		}
		out[keyFeatures] = features
	}
	return out
}

func wireVertex(v Vec3) [2]float64 {
	return [2]float64{v.X, v.Y}
}

func wireVertices(vertices []Vec3) []any {
	out := make([]any, len(vertices))
	for i, v := range vertices {
		out[i] = wireVertex(v)
	}
	return out
}

func wireVertexLists(lists [][]Vec3) []any {
	out := make([]any, len(lists))
	for i, vertices := range lists {
		out[i] = wireVertices(vertices)
	}
	return out
}

// wirePolygon omits the hole wrapper when there are no holes.
func wirePolygon(pg *Polygon) any {
	if len(pg.Holes) == 0 {
		return wireVertices(pg.Exterior)
	}
	rings := make([]any, 0, len(pg.Holes)+1)
	rings = append(rings, wireVertices(pg.Exterior))
	for _, hole := range pg.Holes {
		rings = append(rings, wireVertices(hole))
	}
	return rings
}
