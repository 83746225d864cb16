package layertree

import "math"

// Affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// determinantEpsilon is the threshold below which a matrix is treated as
// singular.
const determinantEpsilon = 1e-12

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation by angle radians (clockwise with Y pointing down).
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * o: the transform that applies o first, then m.
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Determinant returns the determinant of the linear part.
func (m Affine) Determinant() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// IsInvertible reports whether m has a usable inverse.
func (m Affine) IsInvertible() bool {
	det := m.Determinant()
	return det <= -determinantEpsilon || det >= determinantEpsilon
}

// Inverse returns the inverse of m, or Identity if m is singular.
func (m Affine) Inverse() Affine {
	if !m.IsInvertible() {
		return Identity
	}
	invDet := 1.0 / m.Determinant()
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms a point.
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyQuad transforms every corner of q.
func (m Affine) ApplyQuad(q Quad) Quad {
	return Quad{m.Apply(q[0]), m.Apply(q[1]), m.Apply(q[2]), m.Apply(q[3])}
}

// Translation returns the (tx, ty) component.
func (m Affine) Translation() Vec2 {
	return Vec2{m[4], m[5]}
}

// ApproxEqual reports whether every component of m and o differs by at most
// eps.
func (m Affine) ApproxEqual(o Affine, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
