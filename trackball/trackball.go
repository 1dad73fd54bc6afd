// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trackball turns 2D pointer drags into 3D rotations using the
// shoemaker projection and quaternions. A [Trackball] consumes one
// pointer [Sample] per frame and exposes the rotation matrix that a
// renderer composes into its model transform.
package trackball

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/trackball/math32"
	"github.com/EngoEngine/glm"
)

// ErrViewport is returned for samples whose viewport width or height
// is not positive.
var ErrViewport = errors.New("trackball: viewport size must be positive")

// axisEpsilon is the length below which a cross product axis is
// considered degenerate.
const axisEpsilon = 1.0e-6

// Trackball is the rotation state machine driven by pointer samples.
// It tracks the drag state, and composes the incremental rotation of
// each qualifying move into a running rotation that persists across
// drags until [Trackball.Reset].
//
// A Trackball is owned by a single update loop and is not safe for
// concurrent use.
type Trackball struct {

	// Settings are the tunable parameters.
	Settings Settings

	state States

	// prev is the reference point: the press point, or the last
	// committed point with [Settings.FollowPointer].
	prev math32.Vector3

	// current is the most recent projected point.
	current math32.Vector3

	// axis and cosAngle are from the most recent move.
	axis     math32.Vector3
	cosAngle float32

	// committed is the rotation of all but the most recent update,
	// and pending is the most recent incremental rotation.
	committed math32.Matrix4
	pending   math32.Matrix4

	updates int
}

// New returns a new idle [Trackball] with the given settings
// and an identity rotation.
func New(settings Settings) *Trackball {
	tb := &Trackball{Settings: settings}
	tb.Reset()
	return tb
}

// NewDefault returns a new [Trackball] with default settings.
func NewDefault() *Trackball {
	return New(DefaultSettings())
}

// Reset returns the trackball to [Idle] with an identity rotation.
func (tb *Trackball) Reset() {
	tb.state = Idle
	tb.prev = math32.Vector3{}
	tb.current = math32.Vector3{}
	tb.axis = math32.Vector3{}
	tb.cosAngle = 0
	tb.committed = math32.Identity4()
	tb.pending = math32.Identity4()
	tb.updates = 0
}

// Apply advances the state machine with the given sample.
func (tb *Trackball) Apply(s Sample) error {
	return tb.PointerSample(s.Held, s.X, s.Y, s.Width, s.Height)
}

// PointerSample advances the state machine with one pointer sample:
// whether the rotation button is held, the pointer position in pixels
// relative to the top-left corner of the viewport, and the viewport size.
// A held sample while idle starts a drag; a held sample while dragging
// is a move; a sample that is not held ends any drag. It returns
// [ErrViewport] for a held sample with a non-positive viewport size,
// and an error wrapping [math32.ErrNotUnit] if composing the rotation
// produces a non-unit quaternion.
func (tb *Trackball) PointerSample(held bool, x, y, width, height int) error {
	if !held {
		return tb.release()
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrViewport, width, height)
	}
	p := Project(x, y, width, height)
	if tb.state == Idle {
		tb.press(p)
		return nil
	}
	return tb.move(p)
}

// Rotation returns the current rotation matrix, to be composed into
// the model transform of the rotated object.
func (tb *Trackball) Rotation() math32.Matrix4 {
	return tb.committed.Mul(tb.pending)
}

// Orientation returns the current rotation as a unit quaternion.
// It is only meaningful when the rotation is a pure rotation,
// which is the case when [Settings.NormalizeAxis] is set.
func (tb *Trackball) Orientation() math32.Quat {
	q, err := math32.QuatFromMatrix4(tb.Rotation()).Normal()
	if err != nil {
		return math32.QuatIdentity()
	}
	return q
}

// State returns the current drag state.
func (tb *Trackball) State() States { return tb.state }

// Updates returns the number of rotation updates since the last reset.
func (tb *Trackball) Updates() int { return tb.updates }

// Prev returns the reference point that moves are measured against.
func (tb *Trackball) Prev() math32.Vector3 { return tb.prev }

// Current returns the most recent projected point.
func (tb *Trackball) Current() math32.Vector3 { return tb.current }

// Axis returns the raw cross product axis of the most recent move,
// in the viewing frame, before any normalization.
func (tb *Trackball) Axis() math32.Vector3 { return tb.axis }

// CosAngle returns the cosine between the reference point and
// the current point of the most recent move.
func (tb *Trackball) CosAngle() float32 { return tb.cosAngle }

// Pending returns the most recent incremental rotation matrix.
func (tb *Trackball) Pending() math32.Matrix4 { return tb.pending }

// Committed returns the rotation matrix of all updates before the most recent one.
func (tb *Trackball) Committed() math32.Matrix4 { return tb.committed }

func (tb *Trackball) press(p math32.Vector3) {
	tb.state = Dragging
	tb.prev = p
	tb.current = p
	slog.Debug("trackball press", "point", p)
}

func (tb *Trackball) release() error {
	if tb.state == Idle {
		return nil
	}
	tb.state = Idle
	tb.prev = math32.Vector3{}
	tb.current = math32.Vector3{}
	slog.Debug("trackball release", "updates", tb.updates)
	return tb.fold()
}

func (tb *Trackball) move(p math32.Vector3) error {
	tb.current = p
	tb.cosAngle = tb.prev.Dot(p)
	tb.axis = tb.prev.Cross(p)
	if tb.Settings.Mode == ModeQuaternion && tb.cosAngle >= tb.Settings.Threshold {
		return nil
	}
	if tb.axis.Length() < axisEpsilon {
		slog.Debug("trackball degenerate axis", "prev", tb.prev, "current", p)
		return nil
	}
	if err := tb.fold(); err != nil {
		return err
	}
	tb.pending = tb.incremental()
	tb.updates++
	slog.Debug("trackball update", "cos", tb.cosAngle, "axis", tb.axis, "updates", tb.updates)
	if tb.Settings.FollowPointer {
		tb.prev = tb.current
	}
	return nil
}

// angle returns the rotation angle for the current cosine.
func (tb *Trackball) angle() float32 {
	if tb.Settings.Angle == AngleArccos {
		return math32.Acos(math32.Clamp(tb.cosAngle, -1, 1))
	}
	return tb.cosAngle
}

// incremental returns the rotation matrix for the most recent move.
func (tb *Trackball) incremental() math32.Matrix4 {
	angle := tb.angle()
	if tb.Settings.Mode == ModeAxisAngle {
		ax := tb.axis.Normal()
		gax := glm.Vec3{ax.X, ax.Y, ax.Z}
		return math32.Matrix4(glm.HomogRotate3D(angle, &gax))
	}
	ax := tb.axis
	if tb.Settings.NormalizeAxis {
		ax = ax.Normal()
	}
	return math32.NewQuatAxisAngle(ax, angle).Matrix4()
}

// pure returns whether every incremental rotation is a pure rotation.
func (tb *Trackball) pure() bool {
	return tb.Settings.NormalizeAxis || tb.Settings.Mode == ModeAxisAngle
}

// fold composes the pending rotation into the committed one,
// leaving the overall rotation unchanged.
func (tb *Trackball) fold() error {
	if !tb.Settings.Renormalize || !tb.pure() {
		tb.committed = tb.committed.Mul(tb.pending)
		tb.pending = math32.Identity4()
		return nil
	}
	cq, err := math32.QuatFromMatrix4(tb.committed).Normal()
	if err != nil {
		return fmt.Errorf("trackball: committed rotation: %w", err)
	}
	pq, err := math32.QuatFromMatrix4(tb.pending).Normal()
	if err != nil {
		return fmt.Errorf("trackball: pending rotation: %w", err)
	}
	// pending acts first, so it is the receiver
	q, err := pq.Mul(cq)
	if err != nil {
		return fmt.Errorf("trackball: composing rotation: %w", err)
	}
	q, err = q.Normal()
	if err != nil {
		return fmt.Errorf("trackball: composing rotation: %w", err)
	}
	tb.committed = q.Matrix4()
	tb.pending = math32.Identity4()
	return nil
}
