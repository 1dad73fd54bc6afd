// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit trackball functionality.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is 4x4 matrix organized internally as column matrix,
// which is the layout OpenGL style renderers expect.
// Element (row r, column c) is at index c*4+r.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromSlice returns a new [Matrix4] from the first 16
// elements of the given column-major slice.
func Matrix4FromSlice(array []float32) (Matrix4, error) {
	var m Matrix4
	if len(array) < 16 {
		return m, fmt.Errorf("math32.Matrix4FromSlice: need 16 elements, got %d", len(array))
	}
	copy(m[:], array)
	return m, nil
}

// Slice returns the matrix elements in column-major order.
func (m Matrix4) Slice() []float32 {
	return m[:]
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Mul returns this matrix multiplied by other (m * other).
// Applied to a vector, other acts first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for rw := 0; rw < 4; rw++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+rw] * other[c*4+k]
			}
			r[c*4+rw] = s
		}
	}
	return r
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for rw := 0; rw < 4; rw++ {
			r[rw*4+c] = m[c*4+rw]
		}
	}
	return r
}

// IsEqualTol returns whether every element of this matrix
// is within tol of the corresponding element of other.
func (m Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if !EqualTol(m[i], other[i], tol) {
			return false
		}
	}
	return true
}

// IsIdentityTol returns whether this matrix is the identity within tol.
func (m Matrix4) IsIdentityTol(tol float32) bool {
	return m.IsEqualTol(Identity4(), tol)
}

// IsRotationTol returns whether the upper 3x3 of this matrix is
// orthonormal within tol, so that it represents a pure rotation.
func (m Matrix4) IsRotationTol(tol float32) bool {
	return m.Transpose().Mul(m).IsIdentityTol(tol)
}

// String returns the matrix one row per line.
func (m Matrix4) String() string {
	var sb strings.Builder
	for rw := 0; rw < 4; rw++ {
		fmt.Fprintf(&sb, "[%9.5f %9.5f %9.5f %9.5f]", m.At(rw, 0), m.At(rw, 1), m.At(rw, 2), m.At(rw, 3))
		if rw < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
