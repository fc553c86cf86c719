package cadgeo

import (
	"fmt"
	"iter"
)

// DefaultMinSegments is the conventional minimum segment count for adaptive
// flattening of a single cubic Bézier segment.
const DefaultMinSegments = 4

// Bezier is a cubic Bézier curve defined by exactly four control points.
// The parameter t goes from 0 to 1, where 0 is the first control point and
// 1 is the fourth control point. A Bezier is immutable after construction
// and has no identity beyond its control points.
//
// A curve whose control points all lie on the z=0 plane is a 2D curve;
// [Bezier.Transform] always yields a 3D curve.
type Bezier struct {
	p [4]Vec3
}

// NewBezier constructs a cubic Bézier curve. It returns [ErrInvalidArity]
// unless exactly four control points are supplied.
func NewBezier(controls []Vec3) (Bezier, error) {
	if len(controls) != 4 {
		return Bezier{}, fmt.Errorf("%w, got %d", ErrInvalidArity, len(controls))
	}
	return Bezier{p: [4]Vec3{controls[0], controls[1], controls[2], controls[3]}}, nil
}

// ControlPoints returns the four control points.
func (bz Bezier) ControlPoints() [4]Vec3 {
	return bz.p
}

// bernstein3 evaluates the cubic Bernstein basis at t.
func bernstein3(t float64) (a, b, c, d float64) {
	t2 := t * t
	mt := 1.0 - t
	mt2 := mt * mt
	return mt2 * mt, 3.0 * mt2 * t, 3.0 * mt * t2, t2 * t
}

// bernstein3D1 evaluates the first derivative of the cubic Bernstein basis
// at t.
func bernstein3D1(t float64) (a, b, c, d float64) {
	t2 := t * t
	mt := 1.0 - t
	return -3.0 * mt * mt,
		3.0 * (1.0 - 4.0*t + 3.0*t2),
		3.0 * t * (2.0 - 3.0*t),
		3.0 * t2
}

// PointAt returns the curve point at parameter t. It returns [ErrOutOfRange]
// unless 0 ≤ t ≤ 1.
func (bz Bezier) PointAt(t float64) (Vec3, error) {
	if err := checkParam(t); err != nil {
		return Vec3{}, err
	}
	return bz.eval(t), nil
}

// TangentAt returns the direction vector of the tangent at parameter t. It
// returns [ErrOutOfRange] unless 0 ≤ t ≤ 1.
func (bz Bezier) TangentAt(t float64) (Vec3, error) {
	if err := checkParam(t); err != nil {
		return Vec3{}, err
	}
	a, b, c, d := bernstein3D1(t)
	return bz.weighted(a, b, c, d), nil
}

func checkParam(t float64) error {
	if t < 0.0 || t > 1.0 {
		return fmt.Errorf("%w: %g", ErrOutOfRange, t)
	}
	return nil
}

func (bz Bezier) eval(t float64) Vec3 {
	a, b, c, d := bernstein3(t)
	return bz.weighted(a, b, c, d)
}

func (bz Bezier) weighted(a, b, c, d float64) Vec3 {
	return bz.p[0].Mul(a).Add(bz.p[1].Mul(b)).Add(bz.p[2].Mul(c)).Add(bz.p[3].Mul(d))
}

// Approximate approximates the curve by segments+1 vertices at uniform
// parameter steps. The first and last vertices are exactly the first and
// fourth control points. It returns [ErrInvalidArgument] when segments < 1.
func (bz Bezier) Approximate(segments int) (iter.Seq[Vec3], error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: segments %d", ErrInvalidArgument, segments)
	}
	return func(yield func(Vec3) bool) {
		if !yield(bz.p[0]) {
			return
		}
		dt := 1.0 / float64(segments)
		for i := 1; i < segments; i++ {
			if !yield(bz.eval(dt * float64(i))) {
				return
			}
		}
		yield(bz.p[3])
	}, nil
}

// Flattening is an adaptive recursive flattening of the curve into a lazy,
// finite vertex sequence, starting with the first control point and strictly
// increasing in arc parameter. The argument segments is the minimum count of
// uniform approximation segments ([DefaultMinSegments] is conventional); a
// segment is recursively bisected while the distance from the chord midpoint
// to the analytically evaluated curve point at the interval midpoint exceeds
// distance. No produced chord deviates from the curve by more than distance
// at its midpoint parameter.
func (bz Bezier) Flattening(distance float64, segments int) iter.Seq[Vec3] {
	if segments < 1 {
		segments = DefaultMinSegments
	}
	var subdiv func(start, end Vec3, t0, t1 float64, yield func(Vec3) bool) bool
	subdiv = func(start, end Vec3, t0, t1 float64, yield func(Vec3) bool) bool {
		mid := (t0 + t1) * 0.5
		midPoint := bz.eval(mid)
		// The chord midpoint check is cheaper than projecting the curve
		// point onto the chord and converges to the same subdivision.
		if start.Lerp(end, 0.5).Distance(midPoint) < distance {
			return yield(end)
		}
		return subdiv(start, midPoint, t0, mid, yield) &&
			subdiv(midPoint, end, mid, t1, yield)
	}
	return func(yield func(Vec3) bool) {
		dt := 1.0 / float64(segments)
		t0 := 0.0
		start := bz.p[0]
		if !yield(start) {
			return
		}
		for t0 < 1.0 {
			t1 := t0 + dt
			var end Vec3
			if t1 >= 1.0 || isClose(t1, 1.0) {
				end = bz.p[3]
				t1 = 1.0
			} else {
				end = bz.eval(t1)
			}
			if !subdiv(start, end, t0, t1, yield) {
				return
			}
			t0 = t1
			start = end
		}
	}
}

// ApproximatedLength returns the estimated curve length as the sum of
// consecutive vertex distances of [Bezier.Approximate]; it is an
// approximation, not the exact arc length. 128 segments is the conventional
// count. It returns [ErrInvalidArgument] when segments < 1.
func (bz Bezier) ApproximatedLength(segments int) (float64, error) {
	vertices, err := bz.Approximate(segments)
	if err != nil {
		return 0, err
	}
	length := 0.0
	first := true
	var prev Vec3
	for v := range vertices {
		if !first {
			length += prev.Distance(v)
		}
		prev = v
		first = false
	}
	return length, nil
}

// Reverse returns a new curve with the control points in reverse order: the
// same shape with a mirrored parameterization.
func (bz Bezier) Reverse() Bezier {
	return Bezier{p: [4]Vec3{bz.p[3], bz.p[2], bz.p[1], bz.p[0]}}
}

// Transform applies a general affine transform to all control points and
// returns the new curve, which is always a 3D curve.
func (bz Bezier) Transform(m Matrix44) Bezier {
	return Bezier{p: [4]Vec3{
		m.Transform(bz.p[0]),
		m.Transform(bz.p[1]),
		m.Transform(bz.p[2]),
		m.Transform(bz.p[3]),
	}}
}
