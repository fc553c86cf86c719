package cadgeo

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGeoJSONPoint(t *testing.T) {
	p, err := FromGeoJSON(geojson.NewPointGeometry([]float64{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, &Point{Coordinates: V2(1, 2)}, p.Root())
}

func TestFromGeoJSONPolygonNormalizes(t *testing.T) {
	// Open clockwise exterior and counter-clockwise hole; both get closed
	// and rewound.
	g := geojson.NewPolygonGeometry([][][]float64{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 4}},
	})
	p, err := FromGeoJSON(g)
	require.NoError(t, err)
	pg := p.Root().(*Polygon)
	assert.Len(t, pg.Exterior, 5)
	assert.Positive(t, signedArea(pg.Exterior))
	require.Len(t, pg.Holes, 1)
	assert.Negative(t, signedArea(pg.Holes[0]))
}

func TestFromGeoJSONEmptyLists(t *testing.T) {
	for name, g := range map[string]*geojson.Geometry{
		"multi point":       geojson.NewMultiPointGeometry(),
		"multi line string": geojson.NewMultiLineStringGeometry(),
		"polygon":           geojson.NewPolygonGeometry(nil),
		"multi polygon":     geojson.NewMultiPolygonGeometry(),
		"collection":        geojson.NewCollectionGeometry(),
	} {
		_, err := FromGeoJSON(g)
		assert.Error(t, err, name)
	}
}

func TestFromGeoJSONShortLineString(t *testing.T) {
	_, err := FromGeoJSON(geojson.NewLineStringGeometry([][]float64{{0, 0}}))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromGeoJSONFeature(t *testing.T) {
	f := geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2}))
	f.Properties = map[string]any{"layer": "walls"}
	p, err := FromGeoJSONFeature(f)
	require.NoError(t, err)
	feature := p.Root().(*Feature)
	assert.Equal(t, V2(1, 2), feature.Geometry.(*Point).Coordinates)
	assert.Equal(t, "walls", feature.Properties["layer"])

	// A feature without geometry is an unlocated feature.
	p, err = FromGeoJSONFeature(geojson.NewFeature(nil))
	require.NoError(t, err)
	assert.Nil(t, p.Root().(*Feature).Geometry)
}

func TestFromGeoJSONFeatureCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.AddFeature(geojson.NewFeature(geojson.NewPointGeometry([]float64{1, 2})))
	p, err := FromGeoJSONFeatureCollection(fc)
	require.NoError(t, err)
	assert.Len(t, p.Root().(*FeatureCollection).Features, 1)

	_, err = FromGeoJSONFeatureCollection(geojson.NewFeatureCollection())
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestGeoJSONGeometryRoundTrip(t *testing.T) {
	hole, err := LinearRing([]Vec3{V2(2, 2), V2(4, 2), V2(4, 4), V2(2, 4)}, false)
	require.NoError(t, err)
	pg, err := NewPolygon(ccwSquare, [][]Vec3{hole})
	require.NoError(t, err)

	for name, root := range map[string]Geometry{
		"point":         &Point{Coordinates: V2(1, 2)},
		"multi point":   &MultiPoint{Coordinates: []Vec3{V2(1, 2), V2(3, 4)}},
		"line string":   &LineString{Coordinates: []Vec3{V2(0, 0), V2(1, 1)}},
		"polygon":       pg,
		"multi polygon": &MultiPolygon{Polygons: []*Polygon{pg}},
		"collection": &GeometryCollection{Geometries: []Geometry{
			&Point{Coordinates: V2(1, 2)},
		}},
	} {
		t.Run(name, func(t *testing.T) {
			record, err := GeoJSONGeometry(root)
			require.NoError(t, err)
			p, err := FromGeoJSON(record)
			require.NoError(t, err)
			assert.Equal(t, root, p.Root())
		})
	}
}

func TestGeoJSONGeometryRejectsFeatures(t *testing.T) {
	_, err := GeoJSONGeometry(&Feature{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = GeoJSONGeometry(&FeatureCollection{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestGeoJSONFeatureRoundTrip(t *testing.T) {
	f := &Feature{
		Geometry:   &Point{Coordinates: V2(1, 2)},
		Properties: map[string]any{"layer": "walls"},
	}
	record, err := GeoJSONFeature(f)
	require.NoError(t, err)
	p, err := FromGeoJSONFeature(record)
	require.NoError(t, err)
	assert.Equal(t, f, p.Root())
}

func TestGeoJSONFeatureCollection(t *testing.T) {
	fc := &FeatureCollection{Features: []*Feature{
		{Geometry: &Point{Coordinates: V2(1, 2)}},
		{Geometry: &LineString{Coordinates: []Vec3{V2(0, 0), V2(1, 0)}}},
	}}
	record, err := GeoJSONFeatureCollection(fc)
	require.NoError(t, err)
	require.Len(t, record.Features, 2)
	assert.Equal(t, geojson.GeometryPoint, record.Features[0].Geometry.Type)
	assert.Equal(t, geojson.GeometryLineString, record.Features[1].Geometry.Type)
}
