// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trackball

import (
	"testing"

	"cogentcore.org/trackball/base/tolassert"
	"cogentcore.org/trackball/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func TestNDC(t *testing.T) {
	assert.Equal(t, math32.Vec2(0, 0), NDC(300, 300, 600, 600))
	assert.Equal(t, math32.Vec2(0.5, 0), NDC(450, 300, 600, 600))
	assert.Equal(t, math32.Vec2(-1, 1), NDC(0, 0, 600, 600))
	assert.Equal(t, math32.Vec2(1, -1), NDC(600, 600, 600, 600))
	// y grows downward in pixels and upward in device coordinates
	assert.Equal(t, math32.Vec2(0, 0.5), NDC(300, 150, 600, 600))

	// outside the viewport is clamped
	assert.Equal(t, math32.Vec2(-1, -1), NDC(-200, 900, 600, 600))
	assert.Equal(t, math32.Vec2(1, 1), NDC(5000, -5000, 600, 600))
}

func TestProjectCenter(t *testing.T) {
	assert.Equal(t, math32.Vector3Z, Project(300, 300, 600, 600))
	assert.Equal(t, math32.Vector3Z, ProjectPos(math32.Vec2i(40, 10), math32.Vec2i(80, 20)))

	p := Project(450, 300, 600, 600)
	tolassert.EqualTol(t, 0.5, p.X, standardTol)
	tolassert.EqualTol(t, 0, p.Y, standardTol)
	tolassert.EqualTol(t, 0.8660254, p.Z, standardTol)
}

func TestProjectInsideDisc(t *testing.T) {
	sizes := []math32.Vector2i{{X: 600, Y: 600}, {X: 800, Y: 450}, {X: 37, Y: 91}}
	for _, sz := range sizes {
		for x := -10; x <= sz.X+10; x += 3 {
			for y := -10; y <= sz.Y+10; y += 3 {
				if NDC(x, y, sz.X, sz.Y).LengthSquared() > 1 {
					continue
				}
				p := Project(x, y, sz.X, sz.Y)
				assert.GreaterOrEqual(t, p.Z, float32(0))
				tolassert.EqualTol(t, 1, p.Length(), standardTol, "(%d, %d) in %v", x, y, sz)
			}
		}
	}
}

func TestProjectOutsideDisc(t *testing.T) {
	sizes := []math32.Vector2i{{X: 600, Y: 600}, {X: 800, Y: 450}, {X: 37, Y: 91}}
	for _, sz := range sizes {
		for x := -10; x <= sz.X+10; x += 3 {
			for y := -10; y <= sz.Y+10; y += 3 {
				n := NDC(x, y, sz.X, sz.Y)
				if n.LengthSquared() <= 1 {
					continue
				}
				p := Project(x, y, sz.X, sz.Y)
				assert.Equal(t, float32(0), p.Z)
				tolassert.EqualTol(t, 1, p.Length(), standardTol, "(%d, %d) in %v", x, y, sz)
				// the point stays on the ray from the center
				tolassert.EqualTol(t, 0, n.X*p.Y-n.Y*p.X, standardTol)
			}
		}
	}
}

func TestProjectContinuousAtEdge(t *testing.T) {
	// just inside and just outside the disc land next to each other
	in := Project(599, 300, 600, 600)
	out := Project(601, 300, 600, 600)
	assert.True(t, in.IsEqualTol(out, 0.1), "%v %v", in, out)
	assert.Equal(t, math32.Vector3X, Project(600, 300, 600, 600))
}
