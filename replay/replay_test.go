// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/trackball/math32"
	"cogentcore.org/trackball/trackball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTOML(t *testing.T) {
	sc, err := Open("testdata/drag.toml")
	require.NoError(t, err)
	assert.Len(t, sc.Samples, 4)
	assert.Equal(t, trackball.AngleLegacy, sc.Settings.Angle)
	assert.True(t, sc.Settings.NormalizeAxis)

	frames, err := sc.Run()
	require.NoError(t, err)
	require.Len(t, frames, 4)
	assert.Equal(t, []bool{false, false, true, false}, []bool{frames[0].Updated, frames[1].Updated, frames[2].Updated, frames[3].Updated})
	assert.Equal(t, trackball.Dragging, frames[2].State)
	assert.Equal(t, trackball.Idle, frames[3].State)

	assert.True(t, frames[1].Rotation.IsIdentityTol(0))
	exp := math32.NewQuatAxisAngle(math32.Vector3Y, 0.8660254).Matrix4()
	assert.True(t, exp.IsEqualTol(frames[2].Rotation, 1.0e-5))
	assert.True(t, exp.IsEqualTol(frames[3].Rotation, 1.0e-5))
}

func TestOpenYAML(t *testing.T) {
	sc, err := Open("testdata/drag.yaml")
	require.NoError(t, err)
	assert.Equal(t, trackball.AngleArccos, sc.Settings.Angle)
	assert.Equal(t, float32(0.9), sc.Settings.Threshold)

	frames, err := sc.Run()
	require.NoError(t, err)
	require.Len(t, frames, 4)
	exp := math32.NewQuatAxisAngle(math32.Vector3Y, math32.DegToRad(30)).Matrix4()
	assert.True(t, exp.IsEqualTol(frames[3].Rotation, 1.0e-4))
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("testdata/drag.json")
	assert.Error(t, err)

	_, err = Open("testdata/missing.toml")
	assert.Error(t, err)

	fn := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("settings:\n  threshold: 4\n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestPlayStopsAtError(t *testing.T) {
	samples := []trackball.Sample{
		{Held: true, X: 300, Y: 300, Width: 600, Height: 600},
		{Held: true, X: 300, Y: 300, Width: 0, Height: 600},
		{Held: true, X: 450, Y: 300, Width: 600, Height: 600},
	}
	frames, err := Play(trackball.NewDefault(), samples)
	assert.ErrorIs(t, err, trackball.ErrViewport)
	assert.Len(t, frames, 1)
}

func TestWrite(t *testing.T) {
	sc, err := Open("testdata/drag.toml")
	require.NoError(t, err)
	frames, err := sc.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, frames))
	assert.Contains(t, buf.String(), "frame 2: down (450, 300) in 600x600 [dragging] *")

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, frames))
	var out []struct {
		Index    int
		State    string
		Updated  bool
		Rotation []float32
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 4)
	assert.Equal(t, "dragging", out[2].State)
	assert.True(t, out[2].Updated)
	assert.Len(t, out[2].Rotation, 16)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "drag.toml")
	data, err := os.ReadFile("testdata/drag.toml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fn, data, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan *Script, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(sc *Script, err error) {
			if err == nil {
				got <- sc
			}
		})
	}()

	select {
	case sc := <-got:
		assert.Len(t, sc.Samples, 4)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial run")
	}

	require.NoError(t, os.WriteFile(fn, []byte("[[samples]]\nheld = true\nx = 1\ny = 1\nwidth = 2\nheight = 2\n"), 0o644))
	deadline := time.After(5 * time.Second)
	for {
		select {
		case sc := <-got:
			if len(sc.Samples) == 1 {
				cancel()
				assert.NoError(t, <-done)
				return
			}
		case <-deadline:
			t.Fatal("change not seen")
		}
	}
}
