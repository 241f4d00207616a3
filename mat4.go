package grid

import "math"

// Mat4 represents a 4x4 transformation matrix in column-major order,
// matching the layout used by graphics APIs:
//
//	| m[0] m[4] m[8]  m[12] |
//	| m[1] m[5] m[9]  m[13] |
//	| m[2] m[6] m[10] m[14] |
//	| m[3] m[7] m[11] m[15] |
type Mat4 [16]float64

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a translation matrix.
func Translation(x, y, z float64) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling creates a scaling matrix.
func Scaling(x, y, z float64) Mat4 {
	m := Identity4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Ortho creates an orthographic projection matrix mapping the given box
// to clip space: left/right to x in [-1, 1], bottom/top to y in [-1, 1],
// near/far to z in [-1, 1].
func Ortho(left, right, bottom, top, near, far float64) Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	var m Mat4
	m[0] = -2 * lr
	m[5] = -2 * bt
	m[10] = 2 * nf
	m[12] = (left + right) * lr
	m[13] = (top + bottom) * bt
	m[14] = (far + near) * nf
	m[15] = 1
	return m
}

// Mul multiplies two matrices (m * other), so the combined transform
// applies other first, then m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// TransformPoint applies the transformation to the point (x, y, z) with
// an implicit w of 1. The result is not perspective-divided.
func (m Mat4) TransformPoint(x, y, z float64) (float64, float64, float64) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14]
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Mat4) Invert() Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if math.Abs(det) < 1e-10 {
		return Identity4()
	}
	invDet := 1 / det

	return Mat4{
		(a11*b11 - a12*b10 + a13*b09) * invDet,
		(a02*b10 - a01*b11 - a03*b09) * invDet,
		(a31*b05 - a32*b04 + a33*b03) * invDet,
		(a22*b04 - a21*b05 - a23*b03) * invDet,
		(a12*b08 - a10*b11 - a13*b07) * invDet,
		(a00*b11 - a02*b08 + a03*b07) * invDet,
		(a32*b02 - a30*b05 - a33*b01) * invDet,
		(a20*b05 - a22*b02 + a23*b01) * invDet,
		(a10*b10 - a11*b08 + a13*b06) * invDet,
		(a01*b08 - a00*b10 - a03*b06) * invDet,
		(a30*b04 - a31*b02 + a33*b00) * invDet,
		(a21*b02 - a20*b04 - a23*b00) * invDet,
		(a11*b07 - a10*b09 - a12*b06) * invDet,
		(a00*b09 - a01*b07 + a02*b06) * invDet,
		(a31*b01 - a30*b03 - a32*b00) * invDet,
		(a20*b03 - a21*b01 + a22*b00) * invDet,
	}
}

// IsIdentity4 reports whether the matrix is the identity matrix.
func (m Mat4) IsIdentity4() bool {
	return m == Identity4()
}
