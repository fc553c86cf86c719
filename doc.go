// Package cadgeo converts between a CAD drawing's curved and polygonal
// entities and a portable, tree-structured geometry interchange format, and
// provides the parametric-curve machinery that curved entities need to
// participate in that conversion.
//
// # Components
//
// [Bezier] is an immutable cubic Bézier curve over exactly four control
// points, with point and tangent evaluation, fixed-step approximation
// ([Bezier.Approximate]) and adaptive distance-bounded flattening
// ([Bezier.Flattening]). [Path] is the boundary-path abstraction built from
// line and curve commands that polyline and hatch boundaries flatten
// through.
//
// [Proxy] owns a recursive, type-tagged [Geometry] tree (Point, MultiPoint,
// LineString, MultiLineString, Polygon, MultiPolygon, GeometryCollection,
// Feature, FeatureCollection) with strict structural validation ([Parse]),
// in-place coordinate transforms ([Proxy.ToLocal], [Proxy.ToReference]) and
// bidirectional conversion to CAD entities ([Mapping], [Collection],
// [Proxy.ToEntities]).
//
// The wire form is GeoJSON-compatible: coordinates are exchanged as (x, y)
// pairs, polygon exteriors are counter-clockwise and holes clockwise
// ([LinearRing] enforces this for every constructed [Polygon]), and the
// holes wrapper is omitted when a polygon has no holes. Typed GeoJSON
// records are bridged through [FromGeoJSON] and [GeoJSONGeometry].
//
// # Entity boundary
//
// The CAD entity layer is an external collaborator. It hands this package
// well-formed entities behind the narrow interfaces in entity.go
// ([PointEntity], [LineEntity], [PathEntity], [CurveEntity], [FaceEntity],
// [HatchEntity]) and accepts back constructed entities through
// [EntityFactory]. No file I/O, tag syntax, or CLI surface lives here.
//
// All operations are single-threaded, synchronous and CPU-bound; failures
// are reported synchronously through the sentinel errors in errors.go and
// never recovered internally.
package cadgeo
