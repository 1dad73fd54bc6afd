// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import (
	"fmt"

	"cogentcore.org/trackball/base/iox/tomlx"
)

// Settings are the tunable parameters of a [Trackball].
type Settings struct {

	// Threshold is the cosine between the press point and the current
	// point at or above which a move is treated as jitter and ignored.
	// 0.9 corresponds to roughly 25.8 degrees.
	Threshold float32 `toml:"threshold" yaml:"threshold" json:"threshold"`

	// Angle determines how the cosine is turned into a rotation angle.
	Angle AngleModes `toml:"angle" yaml:"angle" json:"angle"`

	// Mode determines how incremental rotation matrices are built.
	Mode RotationModes `toml:"mode" yaml:"mode" json:"mode"`

	// NormalizeAxis normalizes the cross product axis before building
	// the rotation, so that every incremental rotation is a pure rotation.
	// Without it, the axis length (the sine between the points) scales
	// the quaternion and the resulting matrix is not orthonormal.
	NormalizeAxis bool `toml:"normalize_axis" yaml:"normalize_axis" json:"normalize_axis"`

	// FollowPointer advances the reference point to the current point
	// after every committed move. By default every move in a drag is
	// measured against the press point.
	FollowPointer bool `toml:"follow_pointer" yaml:"follow_pointer" json:"follow_pointer"`

	// Renormalize composes the committed rotation through unit
	// quaternions, which keeps it orthonormal over long sessions.
	// It only applies when every incremental rotation is a pure rotation:
	// with NormalizeAxis, or in [ModeAxisAngle].
	Renormalize bool `toml:"renormalize" yaml:"renormalize" json:"renormalize"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.Threshold = 0.9
	s.Angle = AngleLegacy
	s.Mode = ModeQuaternion
	s.NormalizeAxis = true
	s.FollowPointer = false
	s.Renormalize = true
}

// DefaultSettings returns new [Settings] with [Settings.Defaults] applied.
func DefaultSettings() Settings {
	s := Settings{}
	s.Defaults()
	return s
}

// Validate returns an error if any setting is out of range.
func (s *Settings) Validate() error {
	if s.Threshold < -1 || s.Threshold > 1 {
		return fmt.Errorf("trackball: threshold %v must be a cosine in [-1, 1]", s.Threshold)
	}
	if s.Angle < AngleLegacy || s.Angle > AngleArccos {
		return fmt.Errorf("trackball: invalid angle mode %v", s.Angle)
	}
	if s.Mode < ModeQuaternion || s.Mode > ModeAxisAngle {
		return fmt.Errorf("trackball: invalid rotation mode %v", s.Mode)
	}
	return nil
}

// Open sets the settings from defaults overlaid with the given TOML file,
// and validates the result.
func (s *Settings) Open(filename string) error {
	s.Defaults()
	if err := tomlx.Open(s, filename); err != nil {
		return err
	}
	return s.Validate()
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}
