// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay plays recorded pointer sample scripts through a
// [trackball.Trackball], producing the rotation of every frame.
// Scripts are TOML or YAML files, chosen by file extension.
package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/trackball/base/iox/tomlx"
	"cogentcore.org/trackball/base/iox/yamlx"
	"cogentcore.org/trackball/math32"
	"cogentcore.org/trackball/trackball"
)

// Script is a recorded sequence of pointer samples along with
// the trackball settings to replay them with.
type Script struct {

	// Settings are the trackball settings. Fields not present in the
	// script file keep their defaults.
	Settings trackball.Settings `toml:"settings" yaml:"settings" json:"settings"`

	// Samples are the pointer samples, one per frame.
	Samples []trackball.Sample `toml:"samples" yaml:"samples" json:"samples"`
}

// Frame is the result of replaying one sample.
type Frame struct {
	Index    int              `json:"index"`
	Sample   trackball.Sample `json:"sample"`
	State    trackball.States `json:"state"`
	Updated  bool             `json:"updated"`
	Rotation math32.Matrix4   `json:"rotation"`
}

// NewScript returns a new empty [Script] with default settings.
func NewScript() *Script {
	return &Script{Settings: trackball.DefaultSettings()}
}

// Open reads a script from the given TOML (.toml) or YAML (.yaml, .yml) file.
func Open(filename string) (*Script, error) {
	sc := NewScript()
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(sc, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(sc, filename)
	default:
		return nil, fmt.Errorf("replay: unsupported script extension %q for %s", ext, filename)
	}
	if err != nil {
		return nil, err
	}
	if err := sc.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Run replays the script through a new trackball with the script settings.
func (sc *Script) Run() ([]Frame, error) {
	return Play(trackball.New(sc.Settings), sc.Samples)
}

// Play applies the samples to the given trackball in order and returns
// one frame per sample. It stops at the first sample that fails,
// returning the frames before it.
func Play(tb *trackball.Trackball, samples []trackball.Sample) ([]Frame, error) {
	frames := make([]Frame, 0, len(samples))
	for i, s := range samples {
		before := tb.Updates()
		if err := tb.Apply(s); err != nil {
			return frames, fmt.Errorf("replay: sample %d (%v): %w", i, s, err)
		}
		frames = append(frames, Frame{
			Index:    i,
			Sample:   s,
			State:    tb.State(),
			Updated:  tb.Updates() != before,
			Rotation: tb.Rotation(),
		})
	}
	return frames, nil
}

// WriteText writes the frames in a human readable form, one block per frame.
func WriteText(w io.Writer, frames []Frame) error {
	for _, f := range frames {
		mark := ""
		if f.Updated {
			mark = " *"
		}
		if _, err := fmt.Fprintf(w, "frame %d: %v [%v]%s\n%v\n", f.Index, f.Sample, f.State, mark, f.Rotation); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the frames as an indented JSON array.
func WriteJSON(w io.Writer, frames []Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}
