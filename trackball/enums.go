// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import (
	"fmt"
	"strings"
)

// States are the drag states of a [Trackball].
type States int32

const (
	// Idle is the state when the rotation button is not held.
	Idle States = iota

	// Dragging is the state while the rotation button is held.
	Dragging
)

// AngleModes determine how the cosine between two projected points
// is turned into a rotation angle.
type AngleModes int32

const (
	// AngleLegacy uses the cosine itself as the angle in radians.
	// This is not the true angle between the points, but it is the
	// rotation speed that existing users of the trackball are used to.
	AngleLegacy AngleModes = iota

	// AngleArccos uses the arccosine of the cosine, which is the
	// true angle between the two points.
	AngleArccos
)

// RotationModes determine how an incremental rotation matrix is built.
type RotationModes int32

const (
	// ModeQuaternion builds the incremental rotation from a [math32.Quat],
	// ignoring moves whose cosine is at or above the jitter threshold.
	ModeQuaternion RotationModes = iota

	// ModeAxisAngle builds the incremental rotation directly as an
	// axis-angle matrix for every move, with no jitter threshold.
	// It exists to compare against the quaternion path.
	ModeAxisAngle
)

var (
	stateNames = []string{"idle", "dragging"}
	angleNames = []string{"legacy", "arccos"}
	modeNames  = []string{"quaternion", "axis-angle"}
)

func enumString(names []string, i int32, typ string) string {
	if i < 0 || int(i) >= len(names) {
		return fmt.Sprintf("%s(%d)", typ, i)
	}
	return names[i]
}

func enumParse(names []string, text []byte, typ string) (int32, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, nm := range names {
		if nm == s {
			return int32(i), nil
		}
	}
	return 0, fmt.Errorf("trackball: %q is not a valid value for %s; must be one of %v", s, typ, names)
}

func (i States) String() string { return enumString(stateNames, int32(i), "States") }

// MarshalText implements [encoding.TextMarshaler].
func (i States) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *States) UnmarshalText(text []byte) error {
	v, err := enumParse(stateNames, text, "States")
	*i = States(v)
	return err
}

func (i AngleModes) String() string { return enumString(angleNames, int32(i), "AngleModes") }

// MarshalText implements [encoding.TextMarshaler].
func (i AngleModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *AngleModes) UnmarshalText(text []byte) error {
	v, err := enumParse(angleNames, text, "AngleModes")
	*i = AngleModes(v)
	return err
}

func (i RotationModes) String() string { return enumString(modeNames, int32(i), "RotationModes") }

// MarshalText implements [encoding.TextMarshaler].
func (i RotationModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *RotationModes) UnmarshalText(text []byte) error {
	v, err := enumParse(modeNames, text, "RotationModes")
	*i = RotationModes(v)
	return err
}
