// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import (
	"fmt"

	"cogentcore.org/trackball/math32"
)

// Sample is one pointer sample as seen by a [Trackball]: whether the
// rotation button is held, the pointer position in pixels relative to
// the top-left corner of the viewport, and the viewport size.
type Sample struct {
	Held   bool `toml:"held" yaml:"held" json:"held"`
	X      int  `toml:"x" yaml:"x" json:"x"`
	Y      int  `toml:"y" yaml:"y" json:"y"`
	Width  int  `toml:"width" yaml:"width" json:"width"`
	Height int  `toml:"height" yaml:"height" json:"height"`
}

// NewSample returns a new [Sample] at the given position and viewport size.
func NewSample(held bool, pos, size math32.Vector2i) Sample {
	return Sample{Held: held, X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Pos returns the pointer position.
func (s Sample) Pos() math32.Vector2i { return math32.Vec2i(s.X, s.Y) }

// Size returns the viewport size.
func (s Sample) Size() math32.Vector2i { return math32.Vec2i(s.Width, s.Height) }

func (s Sample) String() string {
	st := "up"
	if s.Held {
		st = "down"
	}
	return fmt.Sprintf("%s %v in %dx%d", st, s.Pos(), s.Width, s.Height)
}
