package cadgeo

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// This file bridges the internal geometry tree and the typed GeoJSON
// records of github.com/paulmach/go.geojson. The bridge is lossless for 2D
// data; z components are dropped like everywhere on the wire boundary.

// FromGeoJSON converts a GeoJSON geometry into a proxy. Polygon rings are
// normalized like any other input: closed, exterior counter-clockwise,
// holes clockwise.
func FromGeoJSON(g *geojson.Geometry) (*Proxy, error) {
	root, err := fromGeoJSONGeometry(g)
	if err != nil {
		return nil, err
	}
	return &Proxy{root: root}, nil
}

// FromGeoJSONFeature converts a GeoJSON feature into a proxy.
func FromGeoJSONFeature(f *geojson.Feature) (*Proxy, error) {
	root, err := fromGeoJSONFeature(f)
	if err != nil {
		return nil, err
	}
	return &Proxy{root: root}, nil
}

// FromGeoJSONFeatureCollection converts a GeoJSON feature collection into a
// proxy. An empty feature list is a structural error, as in [Parse].
func FromGeoJSONFeatureCollection(fc *geojson.FeatureCollection) (*Proxy, error) {
	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: %q in FeatureCollection", ErrMissingKey, keyFeatures)
	}
	root := &FeatureCollection{Features: make([]*Feature, len(fc.Features))}
	for i, f := range fc.Features {
		child, err := fromGeoJSONFeature(f)
		if err != nil {
			return nil, err
		}
		root.Features[i] = child
	}
	return &Proxy{root: root}, nil
}

func fromGeoJSONFeature(f *geojson.Feature) (*Feature, error) {
	out := &Feature{Properties: f.Properties}
	if f.Geometry != nil {
		g, err := fromGeoJSONGeometry(f.Geometry)
		if err != nil {
			return nil, err
		}
		out.Geometry = g
	}
	return out, nil
}

func fromGeoJSONGeometry(g *geojson.Geometry) (Geometry, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		v, err := fromGeoJSONVertex(g.Point)
		if err != nil {
			return nil, err
		}
		return &Point{Coordinates: v}, nil
	case geojson.GeometryMultiPoint:
		vertices, err := fromGeoJSONVertices(g.MultiPoint, 1)
		if err != nil {
			return nil, err
		}
		return &MultiPoint{Coordinates: vertices}, nil
	case geojson.GeometryLineString:
		vertices, err := fromGeoJSONVertices(g.LineString, 2)
		if err != nil {
			return nil, err
		}
		return &LineString{Coordinates: vertices}, nil
	case geojson.GeometryMultiLineString:
		if len(g.MultiLineString) == 0 {
			return nil, invalidCoordinates(g.MultiLineString)
		}
		lines := make([][]Vec3, len(g.MultiLineString))
		for i, line := range g.MultiLineString {
			vertices, err := fromGeoJSONVertices(line, 2)
			if err != nil {
				return nil, err
			}
			lines[i] = vertices
		}
		return &MultiLineString{Coordinates: lines}, nil
	case geojson.GeometryPolygon:
		return fromGeoJSONPolygon(g.Polygon)
	case geojson.GeometryMultiPolygon:
		if len(g.MultiPolygon) == 0 {
			return nil, invalidCoordinates(g.MultiPolygon)
		}
		mp := &MultiPolygon{Polygons: make([]*Polygon, len(g.MultiPolygon))}
		for i, rings := range g.MultiPolygon {
			pg, err := fromGeoJSONPolygon(rings)
			if err != nil {
				return nil, err
			}
			mp.Polygons[i] = pg
		}
		return mp, nil
	case geojson.GeometryCollection:
		if len(g.Geometries) == 0 {
			return nil, fmt.Errorf("%w: %q in GeometryCollection", ErrMissingKey, keyGeometries)
		}
		gc := &GeometryCollection{Geometries: make([]Geometry, len(g.Geometries))}
		for i, child := range g.Geometries {
			converted, err := fromGeoJSONGeometry(child)
			if err != nil {
				return nil, err
			}
			gc.Geometries[i] = converted
		}
		return gc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, g.Type)
	}
}

func fromGeoJSONPolygon(rings [][][]float64) (*Polygon, error) {
	if len(rings) == 0 {
		return nil, invalidCoordinates(rings)
	}
	exterior, err := fromGeoJSONVertices(rings[0], 2)
	if err != nil {
		return nil, err
	}
	holes := make([][]Vec3, len(rings)-1)
	for i, ring := range rings[1:] {
		vertices, err := fromGeoJSONVertices(ring, 2)
		if err != nil {
			return nil, err
		}
		holes[i] = vertices
	}
	return NewPolygon(exterior, holes)
}

func fromGeoJSONVertex(coordinate []float64) (Vec3, error) {
	if len(coordinate) < 2 || len(coordinate) > 3 {
		return Vec3{}, invalidCoordinates(coordinate)
	}
	v := Vec3{X: coordinate[0], Y: coordinate[1]}
	if len(coordinate) == 3 {
		v.Z = coordinate[2]
	}
	return v, nil
}

func fromGeoJSONVertices(coordinates [][]float64, minLen int) ([]Vec3, error) {
	if len(coordinates) == 0 || len(coordinates) < minLen {
		return nil, invalidCoordinates(coordinates)
	}
	out := make([]Vec3, len(coordinates))
	for i, coordinate := range coordinates {
		v, err := fromGeoJSONVertex(coordinate)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// GeoJSONGeometry converts a geometry node into a GeoJSON geometry record.
// Feature and FeatureCollection nodes are not geometries in GeoJSON and
// fail with [ErrTypeMismatch]; use [GeoJSONFeature] and
// [GeoJSONFeatureCollection] for those.
func GeoJSONGeometry(g Geometry) (*geojson.Geometry, error) {
	switch g := g.(type) {
	case *Point:
		return geojson.NewPointGeometry(geoJSONVertex(g.Coordinates)), nil
	case *MultiPoint:
		return geojson.NewMultiPointGeometry(geoJSONVertices(g.Coordinates)...), nil
	case *LineString:
		return geojson.NewLineStringGeometry(geoJSONVertices(g.Coordinates)), nil
	case *MultiLineString:
		lines := make([][][]float64, len(g.Coordinates))
		for i, vertices := range g.Coordinates {
			lines[i] = geoJSONVertices(vertices)
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case *Polygon:
		return geojson.NewPolygonGeometry(geoJSONRings(g)), nil
	case *MultiPolygon:
		polygons := make([][][][]float64, len(g.Polygons))
		for i, pg := range g.Polygons {
			polygons[i] = geoJSONRings(pg)
		}
		return geojson.NewMultiPolygonGeometry(polygons...), nil
	case *GeometryCollection:
		geometries := make([]*geojson.Geometry, len(g.Geometries))
		for i, child := range g.Geometries {
			converted, err := GeoJSONGeometry(child)
			if err != nil {
				return nil, err
			}
			geometries[i] = converted
		}
		return geojson.NewCollectionGeometry(geometries...), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a GeoJSON geometry", ErrTypeMismatch, g.Type())
	}
}

// GeoJSONFeature converts a Feature node into a GeoJSON feature record.
func GeoJSONFeature(f *Feature) (*geojson.Feature, error) {
	var geometry *geojson.Geometry
	if f.Geometry != nil {
		var err error
		geometry, err = GeoJSONGeometry(f.Geometry)
		if err != nil {
			return nil, err
		}
	}
	out := geojson.NewFeature(geometry)
	if f.Properties != nil {
		out.Properties = f.Properties
	}
	return out, nil
}

// GeoJSONFeatureCollection converts a FeatureCollection node into a GeoJSON
// feature collection record.
func GeoJSONFeatureCollection(fc *FeatureCollection) (*geojson.FeatureCollection, error) {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		converted, err := GeoJSONFeature(f)
		if err != nil {
			return nil, err
		}
		out.AddFeature(converted)
	}
	return out, nil
}

func geoJSONVertex(v Vec3) []float64 {
	return []float64{v.X, v.Y}
}

func geoJSONVertices(vertices []Vec3) [][]float64 {
	out := make([][]float64, len(vertices))
	for i, v := range vertices {
		out[i] = geoJSONVertex(v)
	}
	return out
}

// geoJSONRings emits the polygon's rings in wire order: exterior first,
// then holes. GeoJSON polygons always carry the ring list, even without
// holes.
func geoJSONRings(pg *Polygon) [][][]float64 {
	rings := make([][][]float64, 0, len(pg.Holes)+1)
	rings = append(rings, geoJSONVertices(pg.Exterior))
	for _, hole := range pg.Holes {
		rings = append(rings, geoJSONVertices(hole))
	}
	return rings
}
