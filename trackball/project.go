// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import "cogentcore.org/trackball/math32"

// NDC returns the normalized device coordinates in [-1, 1] of the given
// pixel position in a viewport of the given size. Y is flipped, because
// pixel rows grow downward while device coordinates grow upward.
// Positions outside the viewport are clamped to its edge.
// The width and height must be positive.
func NDC(x, y, width, height int) math32.Vector2 {
	w := float32(width)
	h := float32(height)
	n := math32.Vec2((2*float32(x)-w)/w, -(2*float32(y)-h)/h)
	return n.Clamp(-1, 1)
}

// Project maps the given pixel position in a viewport of the given size
// onto the front hemisphere of a unit sphere centered in the viewport
// (the shoemaker projection). Points inside the unit disc are lifted onto
// the sphere with z >= 0. Points outside it are moved onto the equator
// (z = 0) along the ray from the center, which is the nearest point on
// the sphere. The result is always a unit vector.
// The width and height must be positive.
func Project(x, y, width, height int) math32.Vector3 {
	n := NDC(x, y, width, height)
	r2 := n.LengthSquared()
	if r2 <= 1 {
		return math32.Vector3FromVector2(n, math32.Sqrt(1-r2))
	}
	return math32.Vector3FromVector2(n, 0).DivScalar(math32.Sqrt(r2))
}

// ProjectPos is [Project] for a position and size given as vectors.
func ProjectPos(pos, size math32.Vector2i) math32.Vector3 {
	return Project(pos.X, pos.Y, size.X, size.Y)
}
