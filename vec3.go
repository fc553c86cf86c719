package cadgeo

import (
	"fmt"
	"math"
)

// Tolerances used by [Vec3.IsClose] when deciding whether two coordinates
// are the same vertex, for example when checking ring closure.
const (
	relTolerance = 1e-9
	absTolerance = 1e-12
)

func isClose(a, b float64) bool {
	return math.Abs(a-b) <= max(relTolerance*max(math.Abs(a), math.Abs(b)), absTolerance)
}

// Vec3 is a real-valued coordinate. It is a value type; all arithmetic
// returns new values and never mutates in place.
//
// Coordinates that originate from 2D sources lie on the z=0 plane. The wire
// form only ever exchanges (x, y) pairs, so z survives entity round trips but
// not serialization.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// V2 returns the coordinate (x, y, 0).
func V2(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

// V3 returns the coordinate (x, y, z).
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// XY returns the x and y components.
func (v Vec3) XY() (float64, float64) {
	return v.X, v.Y
}

// Add adds two coordinates component-wise and returns the resulting
// coordinate.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub subtracts o from v component-wise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// Mul scales all components by f.
func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Negate returns a new coordinate with the signs of all components flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Hypot returns the magnitude of v.
func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of v.
//
// This function is more efficient than squaring the result of [Vec3.Hypot].
func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two coordinates.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Midpoint returns the midpoint of two coordinates.
func (v Vec3) Midpoint(o Vec3) Vec3 {
	return Vec3{
		X: 0.5 * (v.X + o.X),
		Y: 0.5 * (v.Y + o.Y),
		Z: 0.5 * (v.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two coordinates.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two
// coordinates.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return v.Sub(o).Hypot2()
}

// Round returns a new coordinate with all components rounded to the nearest
// integers.
func (v Vec3) Round() Vec3 {
	return Vec3{
		X: math.Round(v.X),
		Y: math.Round(v.Y),
		Z: math.Round(v.Z),
	}
}

// IsClose reports whether v and o are the same vertex within a small
// per-component tolerance.
func (v Vec3) IsClose(o Vec3) bool {
	return isClose(v.X, o.X) && isClose(v.Y, o.Y) && isClose(v.Z, o.Z)
}

// IsInf reports whether at least one component is infinite.
func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsNaN reports whether at least one component is NaN.
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}
