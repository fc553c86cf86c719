package cadgeo

import "iter"

// DXF entity type tags of the supported subset.
const (
	TypeTagPoint      = "POINT"
	TypeTagLine       = "LINE"
	TypeTagLWPolyline = "LWPOLYLINE"
	TypeTagPolyline   = "POLYLINE"
	TypeTagHatch      = "HATCH"
	TypeTagSolid      = "SOLID"
	TypeTagTrace      = "TRACE"
	TypeTagFace       = "3DFACE"
	TypeTagCircle     = "CIRCLE"
	TypeTagArc        = "ARC"
	TypeTagEllipse    = "ELLIPSE"
	TypeTagSpline     = "SPLINE"
)

// Entity is the minimal contract of the external CAD entity layer. Concrete
// entities additionally implement one of the kind-specific interfaces below;
// anything else is rejected with [ErrUnsupportedEntity].
type Entity interface {
	// DXFType returns the entity's type tag, e.g. "LWPOLYLINE".
	DXFType() string
}

// PointEntity is a point entity exposing its location.
type PointEntity interface {
	Entity
	Location() Vec3
}

// LineEntity is a line entity exposing its two endpoints.
type LineEntity interface {
	Entity
	StartPoint() Vec3
	EndPoint() Vec3
}

// PathEntity is an entity whose outline is a flattenable boundary path that
// knows about embedded curve segments, such as an LW-polyline with bulge
// arcs.
type PathEntity interface {
	Entity
	BoundaryPath() *Path
}

// PolylineKind classifies a POLYLINE entity. Only 2D and 3D polylines carry
// boundary geometry; the mesh kinds are not mappable.
type PolylineKind int

const (
	Polyline2D PolylineKind = iota + 1
	Polyline3D
	PolygonMesh
	PolyfaceMesh
)

// PolylineEntity is a POLYLINE entity. Mesh and face-record polylines are
// rejected by [Mapping].
type PolylineEntity interface {
	PathEntity
	PolylineKind() PolylineKind
}

// CurveEntity is a curved entity (circle, arc, ellipse, spline) that
// flattens itself into a vertex sequence within a maximum deviation.
type CurveEntity interface {
	Entity
	Flattening(distance float64) iter.Seq[Vec3]
}

// FaceEntity is a filled face entity (solid, trace, 3D face) exposing its
// corner vertices in WCS order.
type FaceEntity interface {
	Entity
	// WCSVertices returns the face vertices; with closed set, the first
	// vertex is repeated at the end.
	WCSVertices(closed bool) []Vec3
}

// BoundaryFlags mark the role of one hatch boundary path.
type BoundaryFlags int

const (
	BoundaryExternal BoundaryFlags = 1 << iota
	BoundaryOutermost
)

// BoundaryDefault marks a path that is neither external nor outermost.
const BoundaryDefault BoundaryFlags = 0

// IsExternal reports whether the path is flagged as the external boundary.
func (f BoundaryFlags) IsExternal() bool { return f&BoundaryExternal != 0 }

// IsOutermost reports whether the path is flagged as an outermost boundary.
func (f BoundaryFlags) IsOutermost() bool { return f&BoundaryOutermost != 0 }

// IsDefault reports whether the path carries no boundary role flags.
func (f BoundaryFlags) IsDefault() bool {
	return f&(BoundaryExternal|BoundaryOutermost) == 0
}

// HatchBoundary is one closed loop contributed by a hatch entity.
type HatchBoundary struct {
	Flags BoundaryFlags
	Path  *Path
}

// FillStyle is the hatch fill style.
type FillStyle int

const (
	// FillStyleNested fills through nested boundaries with alternating
	// parity.
	FillStyleNested FillStyle = iota
	// FillStyleOutermost fills only between the external and outermost
	// boundaries.
	FillStyleOutermost
	// FillStyleIgnore fills the external boundary, ignoring all inner
	// boundaries.
	FillStyleIgnore
)

// HatchEntity is a hatch entity exposing its ordered boundary paths, fill
// style and boundary plane elevation. Boundary paths are expected in WCS;
// the elevation is informational.
type HatchEntity interface {
	Entity
	BoundaryPaths() []HatchBoundary
	FillStyle() FillStyle
	Elevation() float64
}

// Attributes is an opaque attribute bag passed through to constructed
// entities.
type Attributes map[string]any

// EntityFactory constructs CAD entities from geometry. It is implemented by
// the external entity layer; the attribute bag is passed through opaquely.
type EntityFactory interface {
	// NewPointEntity constructs a point entity at location.
	NewPointEntity(location Vec3, attribs Attributes) Entity
	// NewOutlineEntity constructs a polyline-like entity through vertices.
	NewOutlineEntity(vertices []Vec3, attribs Attributes) Entity
	// NewBoundaryFillEntity constructs a hatch-like filled entity with the
	// given exterior and hole rings.
	NewBoundaryFillEntity(exterior []Vec3, holes [][]Vec3, attribs Attributes) Entity
}

// PolygonConversion selects how Polygon nodes are expanded into entities.
type PolygonConversion int

const (
	// PolygonBoundaryFill emits one boundary-fill entity per polygon.
	PolygonBoundaryFill PolygonConversion = 1 << iota
	// PolygonOutline emits one outline entity per ring, exterior first,
	// then holes.
	PolygonOutline
)

// ToEntities expands every geometry leaf of the tree into CAD entities
// constructed through f. Polygon and MultiPolygon leaves are converted per
// conv; when both conversions are selected, boundary-fill entities are
// always emitted before outline entities. Point leaves become point
// entities, line leaves become outline entities, and multi-geometries
// expand per member. Unlocated features contribute nothing.
func (p *Proxy) ToEntities(f EntityFactory, conv PolygonConversion, attribs Attributes) iter.Seq[Entity] {
	emitPolygon := func(pg *Polygon, yield func(Entity) bool) bool {
		if conv&PolygonBoundaryFill != 0 {
			if !yield(f.NewBoundaryFillEntity(pg.Exterior, pg.Holes, attribs)) {
				return false
			}
		}
		if conv&PolygonOutline != 0 {
			if !yield(f.NewOutlineEntity(pg.Exterior, attribs)) {
				return false
			}
			for _, hole := range pg.Holes {
				if !yield(f.NewOutlineEntity(hole, attribs)) {
					return false
				}
			}
		}
		return true
	}

	return func(yield func(Entity) bool) {
		for g := range p.Geometries() {
			switch g := g.(type) {
			case *Point:
				if !yield(f.NewPointEntity(g.Coordinates, attribs)) {
					return
				}
			case *MultiPoint:
				for _, v := range g.Coordinates {
					if !yield(f.NewPointEntity(v, attribs)) {
						return
					}
				}
			case *LineString:
				if !yield(f.NewOutlineEntity(g.Coordinates, attribs)) {
					return
				}
			case *MultiLineString:
				for _, vertices := range g.Coordinates {
					if !yield(f.NewOutlineEntity(vertices, attribs)) {
						return
					}
				}
			case *Polygon:
				if !emitPolygon(g, yield) {
					return
				}
			case *MultiPolygon:
				for _, pg := range g.Polygons {
					if !emitPolygon(pg, yield) {
						return
					}
				}
			}
		}
	}
}
