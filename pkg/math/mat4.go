package math

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in column-major order.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float32 {
	return m[col*4+row]
}

// Perspective returns a symmetric-frustum perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	t := math32.Tan(fovY / 2)

	return Mat4{
		1 / (aspect * t), 0, 0, 0,
		0, 1 / t, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -(2 * far * near) / (far - near), 0,
	}
}

// LookAt returns a view matrix looking from eye to center with up direction.
// The camera basis is w = normalize(eye-center), right = normalize(up x w),
// trueUp = w x right. If up is parallel to eye-center the basis collapses.
func LookAt(eye, center, up Vec3) Mat4 {
	w := eye.Sub(center).Normalize()
	right := up.Cross(w).Normalize()
	trueUp := w.Cross(right)

	return Mat4{
		right.X, trueUp.X, w.X, 0,
		right.Y, trueUp.Y, w.Y, 0,
		right.Z, trueUp.Z, w.Z, 0,
		-eye.Dot(right), -eye.Dot(trueUp), -eye.Dot(w), 1,
	}
}

// Translate returns a matrix that moves points by offset.
func Translate(offset Vec3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = offset.X, offset.Y, offset.Z
	return m
}

// About returns m applied around pivot instead of the origin:
// translate(pivot) * m * translate(-pivot).
func About(pivot Vec3, m Mat4) Mat4 {
	return Translate(pivot).Mul(m).Mul(Translate(pivot.Scale(-1)))
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	s, c := math32.Sincos(angle)

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformVec3 transforms a point (w=1) and drops the resulting w
// without a perspective divide. Suitable for affine matrices.
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	return m.MulVec4(v.Homogeneous(1)).XYZ()
}
