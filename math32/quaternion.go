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
	"errors"
	"fmt"
)

var (
	// ErrNotUnit is returned when a product of quaternions that should
	// represent a pure rotation has a length greater than 1 beyond
	// [UnitTolerance]. It indicates non-unit inputs or a formula defect,
	// never a recoverable runtime condition.
	ErrNotUnit = errors.New("quaternion length is greater than 1")

	// ErrZeroLength is returned when normalizing a zero quaternion.
	ErrZeroLength = errors.New("quaternion has zero length")
)

// Quat is quaternion with X,Y,Z and W components.
// X, Y and Z are the vector part and W is the scalar part.
// Quat is a value type: every method returns a new Quat.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32

	// Label is an optional name shown in debug output.
	Label string
}

// NewQuat returns a new quaternion from the specified components,
// without any half-angle transform or unit-length check.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatVector returns a new quaternion with vector part v
// and scalar part w, without any half-angle transform.
func NewQuatVector(v Vector3, w float32) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// NewQuatAxisAngle returns a new quaternion for a rotation by angle
// radians about axis. The axis must be a unit vector for the result
// to be a pure rotation.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	s, c := Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromMatrix4 returns the quaternion for the rotation in the
// upper 3x3 of m, which must be a pure rotation.
func QuatFromMatrix4(m Matrix4) Quat {
	m11 := m[0]
	m12 := m[4]
	m13 := m[8]
	m21 := m[1]
	m22 := m[5]
	m23 := m[9]
	m31 := m[2]
	m32 := m[6]
	m33 := m[10]
	trace := m11 + m22 + m33

	var q Quat
	var s float32
	switch {
	case trace > 0:
		s = 0.5 / Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s = 2.0 * Sqrt(1.0+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s = 2.0 * Sqrt(1.0+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s = 2.0 * Sqrt(1.0+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
	return q
}

func (q Quat) String() string {
	if q.Label == "" {
		return fmt.Sprintf("Quat(%v, %v, %v, %v)", q.X, q.Y, q.Z, q.W)
	}
	return fmt.Sprintf("%s(%v, %v, %v, %v)", q.Label, q.X, q.Y, q.Z, q.W)
}

// WithLabel returns a copy of the quaternion with the given debug label.
func (q Quat) WithLabel(label string) Quat {
	q.Label = label
	return q
}

// Vector returns the vector part of the quaternion.
func (q Quat) Vector() Vector3 {
	return Vector3{q.X, q.Y, q.Z}
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns this quanternion's length squared
func (q Quat) LengthSquared() float32 {
	return q.Dot(q)
}

// Length returns the length of this quaternion. It is 1 within
// [UnitTolerance] for any quaternion representing a pure rotation.
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// IsUnit returns whether the length of q is 1 within tol.
func (q Quat) IsUnit(tol float32) bool {
	return EqualTol(q.Length(), 1, tol)
}

// IsEqualTol returns whether all components of q are within tol of other.
// Labels are ignored.
func (q Quat) IsEqualTol(other Quat, tol float32) bool {
	return EqualTol(q.X, other.X, tol) && EqualTol(q.Y, other.Y, tol) &&
		EqualTol(q.Z, other.Z, tol) && EqualTol(q.W, other.W, tol)
}

// Normal returns q divided by its length.
func (q Quat) Normal() (Quat, error) {
	l := q.Length()
	if l == 0 {
		return q, ErrZeroLength
	}
	l = 1 / l
	return Quat{X: q.X * l, Y: q.Y * l, Z: q.Z * l, W: q.W * l, Label: q.Label}, nil
}

// Conjugate returns the conjugate of this quaternion, which is
// the inverse rotation when q is a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W, Label: q.Label}
}

// hamilton returns the Hamilton product b * a, without any length check.
func hamilton(a, b Quat) Quat {
	av := a.Vector()
	bv := b.Vector()
	w := a.W*b.W - av.Dot(bv)
	v := bv.MulScalar(a.W).Add(av.MulScalar(b.W)).Add(bv.Cross(av))
	return NewQuatVector(v, w)
}

// Mul returns the product other * q: the rotation of q followed by
// the rotation of other, in the same right-to-left order as matrix
// transforms. It returns an error wrapping [ErrNotUnit], along with
// the product, if the product length exceeds 1 beyond [UnitTolerance].
func (q Quat) Mul(other Quat) (Quat, error) {
	p := hamilton(q, other)
	if q.Label != "" || other.Label != "" {
		p.Label = other.Label + "*" + q.Label
	}
	if l := p.Length(); l > 1+UnitTolerance {
		return p, fmt.Errorf("%w: |%v| = %v", ErrNotUnit, p, l)
	}
	return p, nil
}

// RotateVector3 rotates v by q using the q * v * conj(q) sandwich.
// q must be a unit quaternion.
func (q Quat) RotateVector3(v Vector3) Vector3 {
	p := NewQuatVector(v, 0)
	return hamilton(hamilton(q.Conjugate(), p), q).Vector()
}

// AxisAngle returns the unit axis and angle in radians of the rotation
// represented by q, which must be normalized. The axis of a rotation
// with no angle is returned as the X axis.
func (q Quat) AxisAngle() (Vector3, float32) {
	qw := Clamp(q.W, -1, 1)
	angle := 2 * Acos(qw)
	s := Sqrt(1 - qw*qw)
	if s < 0.0001 {
		return Vector3X, angle
	}
	return Vector3{q.X / s, q.Y / s, q.Z / s}, angle
}

// Matrix4 returns the column-major rotation matrix for this quaternion.
// The translation part is identity.
func (q Quat) Matrix4() Matrix4 {
	x2 := q.X * q.X
	y2 := q.Y * q.Y
	z2 := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Matrix4{
		1 - 2*(y2+z2), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(x2+z2), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(x2+y2), 0,
		0, 0, 0, 1,
	}
}
