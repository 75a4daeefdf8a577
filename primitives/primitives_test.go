package primitives

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toVec3(v gglm.Vec3) vec3 {
	return vec3(v.Data)
}

func checkGeometry(t *testing.T, g Geometry) {

	t.Helper()

	vertCount := g.VertexCount()
	require.NotZero(t, vertCount)
	require.Len(t, g.Normals, vertCount)
	require.Len(t, g.Tangents, vertCount)
	require.Len(t, g.UV0s, vertCount)
	require.Zero(t, len(g.Indices)%3)

	for i, idx := range g.Indices {
		require.Less(t, int(idx), vertCount, "index %d out of range", i)
	}

	for i := range g.Normals {
		assert.InDelta(t, 1, toVec3(g.Normals[i]).length(), 1e-3, "normal %d isn't unit length", i)

		uv := g.UV0s[i]
		assert.True(t, uv.X() >= 0 && uv.X() <= 1 && uv.Y() >= 0 && uv.Y() <= 1, "uv %d out of range: %v", i, uv)
	}
}

// outwardness sums, over all non-degenerate triangles, how much the winding
// normal agrees with the direction from the origin to the triangle
func outwardness(g Geometry) (agree, disagree int) {

	for i := 0; i < len(g.Indices); i += 3 {

		a := toVec3(g.Positions[g.Indices[i]])
		b := toVec3(g.Positions[g.Indices[i+1]])
		c := toVec3(g.Positions[g.Indices[i+2]])

		faceNormal := b.sub(a).cross(c.sub(a))
		if faceNormal.length() < 1e-9 {
			continue
		}

		center := a.add(b).add(c).scale(1.0 / 3)
		d := faceNormal[0]*center[0] + faceNormal[1]*center[1] + faceNormal[2]*center[2]
		if d > 0 {
			agree++
		} else {
			disagree++
		}
	}

	return agree, disagree
}

func TestCube(t *testing.T) {

	g := Cube(2)
	checkGeometry(t, g)

	assert.Equal(t, 24, g.VertexCount())
	assert.Equal(t, 12, len(g.Indices)/3)

	min, max := g.Bounds()
	assert.Equal(t, gglm.NewVec3(-1, -1, -1), min)
	assert.Equal(t, gglm.NewVec3(1, 1, 1), max)

	agree, disagree := outwardness(g)
	assert.Equal(t, 12, agree)
	assert.Zero(t, disagree)

	// Vertex normals must agree with the winding of their triangles
	for i := 0; i < len(g.Indices); i += 3 {
		a := toVec3(g.Positions[g.Indices[i]])
		b := toVec3(g.Positions[g.Indices[i+1]])
		c := toVec3(g.Positions[g.Indices[i+2]])
		faceNormal := b.sub(a).cross(c.sub(a)).normalize()
		assert.Equal(t, toVec3(g.Normals[g.Indices[i]]), faceNormal)
	}
}

func TestSphere(t *testing.T) {

	const tess = 8
	g := Sphere(1, tess)
	checkGeometry(t, g)

	assert.Equal(t, (tess+1)*(tess*2+1), g.VertexCount())
	assert.Equal(t, tess*tess*2*2, len(g.Indices)/3)

	for i := range g.Positions {
		assert.InDelta(t, 0.5, toVec3(g.Positions[i]).length(), 1e-5)
	}

	agree, disagree := outwardness(g)
	assert.NotZero(t, agree)
	assert.Zero(t, disagree)
}

func TestTeapot(t *testing.T) {

	const tess = 8
	g := Teapot(1, tess)
	checkGeometry(t, g)

	assert.Equal(t, "teapot", g.Name)
	assert.Equal(t, 32*(tess+1)*(tess+1), g.VertexCount())
	assert.Equal(t, 32*tess*tess*2, len(g.Indices)/3)

	// Height matches the requested size and the body is centered vertically
	min, max := g.Bounds()
	assert.InDelta(t, -0.5, min.Y(), 1e-5)
	assert.InDelta(t, 0.5, max.Y(), 1e-5)

	// Spout reaches further out than the handle
	assert.Greater(t, max.X(), -min.X())

	// Lid knob points up and the bottom center points down
	var topNormal, bottomNormal gglm.Vec3
	for i := range g.Positions {
		p := g.Positions[i]
		if math32.Abs(p.X()) > 1e-6 || math32.Abs(p.Z()) > 1e-6 {
			continue
		}

		if p.Y() > 0.49 {
			topNormal = g.Normals[i]
		} else if p.Y() < -0.49 {
			bottomNormal = g.Normals[i]
		}
	}

	assert.InDelta(t, 1, topNormal.Y(), 1e-2)
	assert.InDelta(t, -1, bottomNormal.Y(), 1e-2)

	// The rim lip and the handle/spout insides face the center, but most of the surface faces out
	agree, disagree := outwardness(g)
	assert.Greater(t, agree, 2*disagree)
}

func TestTeapotScalesWithSize(t *testing.T) {

	small := Teapot(1, 4)
	big := Teapot(3, 4)

	require.Equal(t, small.VertexCount(), big.VertexCount())
	for i := range small.Positions {
		for c := 0; c < 3; c++ {
			assert.InDelta(t, small.Positions[i].Data[c]*3, big.Positions[i].Data[c], 1e-5)
		}
	}
}

func TestBezierPatchInterpolatesCorners(t *testing.T) {

	cps := [16]vec3{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cps[row*4+col] = vec3{float32(col), float32(row), 0}
		}
	}

	assert.Equal(t, vec3{0, 0, 0}, evalBezierPatch(&cps, 0, 0))
	assert.Equal(t, vec3{3, 0, 0}, evalBezierPatch(&cps, 1, 0))
	assert.Equal(t, vec3{0, 3, 0}, evalBezierPatch(&cps, 0, 1))
	assert.Equal(t, vec3{3, 3, 0}, evalBezierPatch(&cps, 1, 1))

	// Evenly spaced control points give a linear patch
	du, dv := evalBezierPatchDerivs(&cps, 0.5, 0.25)
	assert.InDelta(t, 3, du[0], 1e-5)
	assert.InDelta(t, 3, dv[1], 1e-5)
	assert.InDelta(t, 1, du.cross(dv).normalize()[2], 1e-6)
}

func TestNew(t *testing.T) {

	g, err := New(Shape_Teapot, 1, 8)
	require.NoError(t, err)
	want := Teapot(1, 8)
	assert.Equal(t, want.VertexCount(), g.VertexCount())

	g, err = New(Shape_Cube, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, 24, g.VertexCount())

	_, err = New("dodecahedron", 1, 8)
	assert.ErrorContains(t, err, "unknown primitive")

	_, err = New(Shape_Sphere, 0, 8)
	assert.Error(t, err)

	_, err = New(Shape_Sphere, 1, 0)
	assert.Error(t, err)

	assert.Equal(t, []Shape{Shape_Cube, Shape_Sphere, Shape_Teapot}, Shapes())
}
