// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit trackball functionality.

package math32

import "fmt"

// Vector2i is a 2D vector/point with X and Y int components,
// used for pixel positions and viewport sizes.
type Vector2i struct {
	X int
	Y int
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int) Vector2i {
	return Vector2i{X: x, Y: y}
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// IsNil returns true if all values are 0 (uninitialized).
func (v Vector2i) IsNil() bool {
	return v.X == 0 && v.Y == 0
}

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{v.X - other.X, v.Y - other.Y}
}

// Vector2 returns the float32 version of this vector.
func (v Vector2i) Vector2() Vector2 {
	return Vector2{float32(v.X), float32(v.Y)}
}
