package colorimetry

import (
	"errors"
	"fmt"
	"math"
)

var ErrSingularMatrix = errors.New("singular matrix")

// Matrix3 is a row-major 3x3 matrix acting on column vectors.
type Matrix3 [3][3]float64

var Identity = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func Diagonal(a, b, c float64) Matrix3 {
	return Matrix3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

// Mul returns m * n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

func (m Matrix3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse uses the adjugate; it fails for matrices whose determinant is
// too small to invert in float64.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.Abs(det) < 1e-300 {
		return Matrix3{}, fmt.Errorf("could not invert %v: %w", m, ErrSingularMatrix)
	}
	inv := 1 / det
	return Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, nil
}

func (m Matrix3) IsZero() bool {
	return m == Matrix3{}
}

// closeTo reports whether every element of m and n differs by at most tol.
func (m Matrix3) closeTo(n Matrix3, tol float64) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
