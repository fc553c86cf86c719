package cadgeo

import "math"

// Matrix44 is a general affine transform as a row-major 4×4 matrix using the
// row-vector convention: a point v is transformed as v′ = v·M. The fourth
// column is carried verbatim but ignored by [Matrix44.Transform]; this is a
// transformation matrix, not a projective one.
type Matrix44 [16]float64

// Identity is the identity transform.
var Identity = Matrix44{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Translation creates a transform representing translation by v.
func Translation(v Vec3) Matrix44 {
	return Matrix44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// Scaling creates a transform representing non-uniform scaling with
// different scale values for x, y and z.
func Scaling(x, y, z float64) Matrix44 {
	return Matrix44{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationZ creates a transform representing rotation about the z axis.
//
// The convention for rotation is that a positive angle rotates the positive
// x direction into positive y. The angle th is expressed in radians.
func RotationZ(th float64) Matrix44 {
	sin, cos := math.Sincos(th)
	return Matrix44{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationX creates a transform representing rotation about the x axis.
func RotationX(th float64) Matrix44 {
	sin, cos := math.Sincos(th)
	return Matrix44{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotationY creates a transform representing rotation about the y axis.
func RotationY(th float64) Matrix44 {
	sin, cos := math.Sincos(th)
	return Matrix44{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// Mul composes two transforms. Applying the result is equivalent to applying
// m first and then o: v·(m.Mul(o)) == (v·m)·o.
func (m Matrix44) Mul(o Matrix44) Matrix44 {
	var out Matrix44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for i := 0; i < 4; i++ {
				sum += m[row*4+i] * o[i*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Transform applies the transform to a single coordinate.
func (m Matrix44) Transform(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14],
	}
}

// TransformVertices applies the transform to each coordinate of vertices,
// returning a new slice.
func (m Matrix44) TransformVertices(vertices []Vec3) []Vec3 {
	out := make([]Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = m.Transform(v)
	}
	return out
}
