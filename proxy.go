package cadgeo

import (
	"encoding/json"
	"iter"
)

// DefaultFlatteningDistance is the maximum flattening distance used for
// curve approximations when mapping entities.
const DefaultFlatteningDistance = 0.1

// Proxy owns one geometry tree and provides structural parsing, leaf
// iteration, in-place coordinate transforms and bidirectional conversion to
// CAD entities.
//
// A Proxy is not safe for concurrent transforms; callers must serialize
// access. Use [Proxy.Copy] to snapshot a tree before transforming it.
type Proxy struct {
	root Geometry
}

// NewProxy parses a wire-form mapping into a proxy. See [Parse] for the
// validation rules.
func NewProxy(mapping map[string]any) (*Proxy, error) {
	root, err := Parse(mapping)
	if err != nil {
		return nil, err
	}
	return &Proxy{root: root}, nil
}

// FromEntity maps a single CAD entity into a proxy. Closed vertex sequences
// become Polygon nodes unless forceLineString is set, in which case they
// stay LineString nodes. The distance argument bounds the deviation of
// curve flattening.
func FromEntity(e Entity, distance float64, forceLineString bool) (*Proxy, error) {
	root, err := Mapping(e, distance, forceLineString)
	if err != nil {
		return nil, err
	}
	return &Proxy{root: root}, nil
}

// FromEntities maps several CAD entities into one proxy, collapsing
// same-type results into the matching Multi* node and wrapping mixed
// results as a GeometryCollection.
func FromEntities(entities []Entity, distance float64, forceLineString bool) (*Proxy, error) {
	root, err := Collection(entities, distance, forceLineString)
	if err != nil {
		return nil, err
	}
	return &Proxy{root: root}, nil
}

// Root returns the owned geometry tree.
func (p *Proxy) Root() Geometry {
	return p.root
}

// GeoInterface returns the wire-form mapping of the owned tree.
func (p *Proxy) GeoInterface() map[string]any {
	return rebuild(p.root)
}

// Copy returns a full deep copy. The copy shares no coordinate storage with
// the original, so in-place transforms never cross-mutate.
func (p *Proxy) Copy() *Proxy {
	return &Proxy{root: p.root.clone()}
}

// Geometries iterates over every concrete geometry leaf of the tree:
// FeatureCollection descends through its Features, GeometryCollection
// through its members, and a Feature yields its geometry (nothing for an
// unlocated feature). Order is depth-first, left-to-right, and stable. The
// sequence is restartable.
func (p *Proxy) Geometries() iter.Seq[Geometry] {
	return func(yield func(Geometry) bool) {
		walkLeaves(p.root, yield)
	}
}

func walkLeaves(g Geometry, yield func(Geometry) bool) bool {
	switch g := g.(type) {
	case *FeatureCollection:
		for _, f := range g.Features {
			if !walkLeaves(f, yield) {
				return false
			}
		}
		return true
	case *GeometryCollection:
		for _, child := range g.Geometries {
			if !walkLeaves(child, yield) {
				return false
			}
		}
		return true
	case *Feature:
		if g.Geometry == nil {
			return true
		}
		return yield(g.Geometry)
	default:
		return yield(g)
	}
}

// ToLocal transforms all coordinates of the tree in place from the
// reference system into local drawing coordinates by applying m to every
// coordinate. The shape of the tree and ring orientation are unchanged.
func (p *Proxy) ToLocal(m Matrix44) {
	p.transform(m)
}

// ToReference transforms all coordinates of the tree in place from local
// drawing coordinates into the coordinate reference system by applying m to
// every coordinate. Both transform directions perform the same walk; the
// caller supplies the properly directed matrix.
func (p *Proxy) ToReference(m Matrix44) {
	p.transform(m)
}

func (p *Proxy) transform(m Matrix44) {
	for g := range p.Geometries() {
		transformLeaf(g, m)
	}
}

func transformLeaf(g Geometry, m Matrix44) {
	switch g := g.(type) {
	case *Point:
		g.Coordinates = m.Transform(g.Coordinates)
	case *MultiPoint:
		transformVertices(g.Coordinates, m)
	case *LineString:
		transformVertices(g.Coordinates, m)
	case *MultiLineString:
		for _, vertices := range g.Coordinates {
			transformVertices(vertices, m)
		}
	case *Polygon:
		transformVertices(g.Exterior, m)
		for _, hole := range g.Holes {
			transformVertices(hole, m)
		}
	case *MultiPolygon:
		for _, pg := range g.Polygons {
			transformLeaf(pg, m)
		}
	}
}

func transformVertices(vertices []Vec3, m Matrix44) {
	for i, v := range vertices {
		vertices[i] = m.Transform(v)
	}
}

// MarshalJSON encodes the wire-form mapping as JSON.
func (p *Proxy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.GeoInterface())
}

// UnmarshalJSON decodes a JSON document into the proxy, replacing the owned
// tree. The document is validated like any other wire-form input.
func (p *Proxy) UnmarshalJSON(data []byte) error {
	var mapping map[string]any
	if err := json.Unmarshal(data, &mapping); err != nil {
		return err
	}
	root, err := Parse(mapping)
	if err != nil {
		return err
	}
	p.root = root
	return nil
}
