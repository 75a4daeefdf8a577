package primitives

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

const (
	teapotHeight = 3.15

	// Patch edges that collapse to a single point (lid knob, bottom center)
	// have no usable derivative, so normals there are taken slightly inside the patch.
	degenerateEpsilon = 1e-4
	patchNudge        = 1e-3
)

// Teapot tessellates Newell's teapot. The result is size units tall, centered
// on the origin with the spout towards +X, and has (tessellation+1)^2 vertices and
// tessellation^2*2 triangles per patch.
func Teapot(size float32, tessellation int) Geometry {

	n := tessellation
	vertsPerPatch := (n + 1) * (n + 1)
	vertCount := len(teapotPatches) * vertsPerPatch

	g := Geometry{
		Name:      string(Shape_Teapot),
		Positions: make([]gglm.Vec3, 0, vertCount),
		Normals:   make([]gglm.Vec3, 0, vertCount),
		Tangents:  make([]gglm.Vec3, 0, vertCount),
		UV0s:      make([]gglm.Vec2, 0, vertCount),
		Indices:   make([]uint32, 0, len(teapotPatches)*n*n*6),
	}

	scale := size / teapotHeight
	for p := 0; p < len(teapotPatches); p++ {

		var cps [16]vec3
		for i := 0; i < 16; i++ {
			cps[i] = teapotControlPoints[teapotPatches[p][i]]
		}

		baseVertex := uint32(len(g.Positions))
		for row := 0; row <= n; row++ {

			v := float32(row) / float32(n)
			for col := 0; col <= n; col++ {

				u := float32(col) / float32(n)

				pos := evalBezierPatch(&cps, u, v)
				du, dv := evalBezierPatchDerivs(&cps, u, v)

				if du.length() < degenerateEpsilon || dv.length() < degenerateEpsilon {
					du, dv = evalBezierPatchDerivs(&cps, nudgeParam(u), nudgeParam(v))
				}
				normal := du.cross(dv)

				// Z-up to Y-up is a rotation about X, so winding and handedness are kept
				pos = zUpToYUp(pos)
				pos[1] -= teapotHeight / 2

				g.addVertex(
					pos.scale(scale),
					zUpToYUp(normal).normalize(),
					zUpToYUp(du).normalize(),
					u, v,
				)
			}
		}

		// Rows advance along v and columns along u. Since du x dv points out of
		// the surface, (a, b, c) is counter-clockwise seen from outside
		stride := uint32(n + 1)
		for row := uint32(0); row < uint32(n); row++ {
			for col := uint32(0); col < uint32(n); col++ {

				a := baseVertex + row*stride + col
				b := a + 1
				c := a + stride
				d := c + 1

				g.Indices = append(g.Indices, a, b, c, b, d, c)
			}
		}
	}

	return g
}

func zUpToYUp(v vec3) vec3 {
	return vec3{v[0], v[2], -v[1]}
}

func nudgeParam(t float32) float32 {
	return math32.Min(math32.Max(t, patchNudge), 1-patchNudge)
}

func bernstein(t float32) [4]float32 {

	it := 1 - t
	return [4]float32{
		it * it * it,
		3 * t * it * it,
		3 * t * t * it,
		t * t * t,
	}
}

func bernsteinDeriv(t float32) [4]float32 {

	it := 1 - t
	return [4]float32{
		-3 * it * it,
		3*it*it - 6*t*it,
		6*t*it - 3*t*t,
		3 * t * t,
	}
}

// evalBezierPatch evaluates a bicubic patch whose control points are laid out row major,
// with rows along v and columns along u
func evalBezierPatch(cps *[16]vec3, u, v float32) vec3 {

	bu := bernstein(u)
	bv := bernstein(v)

	var out vec3
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out = out.add(cps[row*4+col].scale(bv[row] * bu[col]))
		}
	}

	return out
}

func evalBezierPatchDerivs(cps *[16]vec3, u, v float32) (du, dv vec3) {

	bu := bernstein(u)
	bv := bernstein(v)
	dbu := bernsteinDeriv(u)
	dbv := bernsteinDeriv(v)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cp := cps[row*4+col]
			du = du.add(cp.scale(bv[row] * dbu[col]))
			dv = dv.add(cp.scale(dbv[row] * bu[col]))
		}
	}

	return du, dv
}
