// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, float32(0.9), s.Threshold)
	assert.Equal(t, AngleLegacy, s.Angle)
	assert.Equal(t, ModeQuaternion, s.Mode)
	assert.True(t, s.NormalizeAxis)
	assert.False(t, s.FollowPointer)
	assert.True(t, s.Renormalize)
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	s.Threshold = 1.5
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Angle = AngleModes(7)
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.Mode = RotationModes(-1)
	assert.Error(t, s.Validate())
}

func TestSettingsOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trackball.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
threshold = 0.95
angle = "arccos"
follow_pointer = true
`), 0o644))

	var s Settings
	require.NoError(t, s.Open(fn))
	assert.Equal(t, float32(0.95), s.Threshold)
	assert.Equal(t, AngleArccos, s.Angle)
	assert.True(t, s.FollowPointer)
	// unset fields keep their defaults
	assert.Equal(t, ModeQuaternion, s.Mode)
	assert.True(t, s.NormalizeAxis)

	require.NoError(t, os.WriteFile(fn, []byte(`mode = "sideways"`), 0o644))
	assert.Error(t, s.Open(fn))

	require.NoError(t, os.WriteFile(fn, []byte(`threshold = -3.0`), 0o644))
	assert.Error(t, s.Open(fn))
}

func TestSettingsSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trackball.toml")
	s := DefaultSettings()
	s.Mode = ModeAxisAngle
	s.Renormalize = false
	require.NoError(t, s.Save(fn))

	var o Settings
	require.NoError(t, o.Open(fn))
	assert.Equal(t, s, o)
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "legacy", AngleLegacy.String())
	assert.Equal(t, "axis-angle", ModeAxisAngle.String())
	assert.Equal(t, "States(5)", States(5).String())

	var m RotationModes
	require.NoError(t, m.UnmarshalText([]byte(" Axis-Angle ")))
	assert.Equal(t, ModeAxisAngle, m)
	assert.Error(t, m.UnmarshalText([]byte("euler")))

	var st States
	require.NoError(t, st.UnmarshalText([]byte("dragging")))
	assert.Equal(t, Dragging, st)

	b, err := AngleArccos.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "arccos", string(b))
}
