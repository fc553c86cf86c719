package cadgeo

import (
	"fmt"
	"iter"
)

// PathMinSegments is the minimum segment count used when flattening the
// curved commands of a [Path].
const PathMinSegments = 16

type PathElementKind int

const (
	// Draw a line from the current location to the end point.
	LineToKind PathElementKind = iota + 1
	// Draw a cubic Bézier from the current location using two control
	// points and an end point.
	CurveToKind
)

// PathElement is one drawing command of a [Path].
//
// For LineTo only End is set. For CurveTo, C1 and C2 are the two interior
// control points of the cubic segment.
type PathElement struct {
	Kind PathElementKind
	C1   Vec3
	C2   Vec3
	End  Vec3
}

func (el PathElement) String() string {
	switch el.Kind {
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.End)
	case CurveToKind:
		return fmt.Sprintf("CurveTo(%s, %s, %s)", el.C1, el.C2, el.End)
	default:
		return "InvalidPathElement"
	}
}

// Path is a boundary path: a start vertex followed by line and cubic Bézier
// commands. It is the flattenable abstraction the entity layer hands to the
// mapping layer for polyline boundaries and hatch boundary paths.
type Path struct {
	start    Vec3
	elements []PathElement
}

// NewPath returns a path starting at start.
func NewPath(start Vec3) *Path {
	return &Path{start: start}
}

// Start returns the path's start vertex.
func (p *Path) Start() Vec3 {
	return p.start
}

// End returns the end vertex of the last command, or the start vertex for an
// empty path.
func (p *Path) End() Vec3 {
	if len(p.elements) == 0 {
		return p.start
	}
	return p.elements[len(p.elements)-1].End
}

// Elements returns the path's commands. The returned slice is shared with
// the path and must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// LineTo appends a line command to end.
func (p *Path) LineTo(end Vec3) {
	p.elements = append(p.elements, PathElement{Kind: LineToKind, End: end})
}

// CurveTo appends a cubic Bézier command with interior control points c1 and
// c2, ending at end.
func (p *Path) CurveTo(c1, c2, end Vec3) {
	p.elements = append(p.elements, PathElement{Kind: CurveToKind, C1: c1, C2: c2, End: end})
}

// IsClosed reports whether the end vertex coincides with the start vertex.
func (p *Path) IsClosed() bool {
	return len(p.elements) > 0 && p.start.IsClose(p.End())
}

// Close appends a line back to the start vertex when the path is open.
func (p *Path) Close() {
	if len(p.elements) > 0 && !p.IsClosed() {
		p.LineTo(p.start)
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{start: p.start}
	out.elements = append(out.elements, p.elements...)
	return out
}

// Transform returns a new path with all vertices and control points
// transformed by m.
func (p *Path) Transform(m Matrix44) *Path {
	out := &Path{
		start:    m.Transform(p.start),
		elements: make([]PathElement, len(p.elements)),
	}
	for i, el := range p.elements {
		out.elements[i] = PathElement{
			Kind: el.Kind,
			C1:   m.Transform(el.C1),
			C2:   m.Transform(el.C2),
			End:  m.Transform(el.End),
		}
	}
	return out
}

// Flattening approximates the path by a lazy vertex sequence, starting with
// the start vertex. Line commands contribute their end vertex verbatim;
// curve commands are flattened adaptively so that no produced chord deviates
// from the curve by more than distance. Junction vertices are never
// repeated.
func (p *Path) Flattening(distance float64) iter.Seq[Vec3] {
	return func(yield func(Vec3) bool) {
		if !yield(p.start) {
			return
		}
		current := p.start
		for _, el := range p.elements {
			switch el.Kind {
			case LineToKind:
				if !yield(el.End) {
					return
				}
			case CurveToKind:
				bz := Bezier{p: [4]Vec3{current, el.C1, el.C2, el.End}}
				first := true
				for v := range bz.Flattening(distance, PathMinSegments) {
					if first {
						// The curve starts at the current vertex, which has
						// already been produced.
						first = false
						continue
					}
					if !yield(v) {
						return
					}
				}
			}
			current = el.End
		}
	}
}
