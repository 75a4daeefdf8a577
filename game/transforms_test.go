package game

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mat64 is a row-major float64 matrix used as an independent reference
type mat64 [4][4]float64

func mul64(a, b mat64) mat64 {

	var out mat64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				out[r][c] += a[r][k] * b[k][c]
			}
		}
	}

	return out
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func det4(m *gglm.Mat4) float64 {

	var d float64
	for col := 0; col < 4; col++ {

		var minor [3][3]float64
		for r := 1; r < 4; r++ {
			mc := 0
			for c := 0; c < 4; c++ {
				if c == col {
					continue
				}
				minor[r-1][mc] = float64(m.Data[c][r])
				mc++
			}
		}

		sign := 1.0
		if col%2 == 1 {
			sign = -1
		}

		d += sign * float64(m.Data[col][0]) * det3(minor)
	}

	return d
}

func assertMat4(t *testing.T, expected mat64, actual *gglm.Mat4, delta float64) {

	t.Helper()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, expected[r][c], float64(actual.Data[c][r]), delta, "row %d col %d", r, c)
		}
	}
}

func rotX64(a float64) mat64 {
	s, c := math.Sincos(a)
	return mat64{{1, 0, 0, 0}, {0, c, -s, 0}, {0, s, c, 0}, {0, 0, 0, 1}}
}

func rotY64(a float64) mat64 {
	s, c := math.Sincos(a)
	return mat64{{c, 0, s, 0}, {0, 1, 0, 0}, {-s, 0, c, 0}, {0, 0, 0, 1}}
}

func rotZ64(a float64) mat64 {
	s, c := math.Sincos(a)
	return mat64{{c, -s, 0, 0}, {s, c, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func scale64(s float64) mat64 {
	return mat64{{s, 0, 0, 0}, {0, s, 0, 0}, {0, 0, s, 0}, {0, 0, 0, 1}}
}

func world64(t float64) mat64 {
	s := 1 + 0.2*math.Sin(1.5*t)
	return mul64(rotZ64(0.7*t), mul64(rotY64(2*t), mul64(rotX64(t), scale64(s))))
}

func perspective64(fov, aspect, near, far float64) mat64 {
	f := 1 / math.Tan(fov/2)
	return mat64{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}

// The camera sits at (0,0,5) looking down -Z, so the view is a translation by -5 on Z
var view64 = mat64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, -5}, {0, 0, 0, 1}}

func TestScaleAtStaysInRange(t *testing.T) {

	for i := 0; i <= 10000; i++ {
		s := ScaleAt(float32(i) * 0.01)
		assert.GreaterOrEqual(t, s, float32(0.8)-1e-6)
		assert.LessOrEqual(t, s, float32(1.2)+1e-6)
	}

	assert.Equal(t, float32(1), ScaleAt(0))
	assert.InDelta(t, 1.2, ScaleAt(math32.Pi/3), 1e-6)
}

func TestWorldAtZeroIsIdentity(t *testing.T) {
	world := WorldAt(0)
	assertMat4(t, scale64(1), &world, 0)
}

func TestWorldAtIsInvertible(t *testing.T) {

	for i := 0; i <= 500; i++ {

		tm := float32(i) * 0.137
		world := WorldAt(tm)

		// Rotations keep volume, so the determinant is just the scale cubed
		s := float64(ScaleAt(tm))
		d := det4(&world)
		assert.NotZero(t, d)
		assert.InDelta(t, s*s*s, d, 1e-4, "t=%f", tm)
	}
}

func TestWorldAtMatchesReference(t *testing.T) {

	for _, tm := range []float32{0.25, 1, 2, 3.7, 12.5} {
		world := WorldAt(tm)
		assertMat4(t, world64(float64(tm)), &world, 1e-5)
	}
}

func TestRotationsAreCounterClockwise(t *testing.T) {

	// A quarter turn about Z takes +X to +Y
	rz := RotationZ(math32.Pi / 2)
	assertMat4(t, rotZ64(math.Pi/2), &rz, 1e-6)
	assert.InDelta(t, 1, rz.Data[0][1], 1e-6)

	// About X takes +Y to +Z
	rx := RotationX(math32.Pi / 2)
	assert.InDelta(t, 1, rx.Data[1][2], 1e-6)

	// About Y takes +Z to +X
	ry := RotationY(math32.Pi / 2)
	assert.InDelta(t, 1, ry.Data[2][0], 1e-6)
}

func TestProjectionMapsNearAndFar(t *testing.T) {

	cam := NewSceneCamera(16.0 / 9.0)

	clipZ := func(viewZ float32) float64 {
		p := &cam.ProjMat
		z := p.Data[2][2]*viewZ + p.Data[3][2]
		w := p.Data[2][3]*viewZ + p.Data[3][3]
		return float64(z / w)
	}

	assert.InDelta(t, -1, clipZ(-NearClip), 1e-5)
	assert.InDelta(t, 1, clipZ(-FarClip), 1e-4)
}

func TestTransformsAtTwoSeconds(t *testing.T) {

	const tm = 2
	const aspect = 16.0 / 9.0

	world := WorldAt(tm)
	cam := NewSceneCamera(aspect)

	assertMat4(t, world64(tm), &world, 1e-5)
	assertMat4(t, view64, &cam.ViewMat, 1e-5)
	assertMat4(t, perspective64(math.Pi/4, aspect, 0.1, 100), &cam.ProjMat, 1e-5)

	combined := CombinedTransform(&world, &cam)
	expected := mul64(perspective64(math.Pi/4, aspect, 0.1, 100), mul64(view64, world64(tm)))
	assertMat4(t, expected, &combined, 1e-5)
}

func TestCombinedTransformIsDeterministic(t *testing.T) {

	for _, tm := range []float32{0, 0.5, 2, 100} {

		w1 := WorldAt(tm)
		c1 := NewSceneCamera(4.0 / 3.0)
		w2 := WorldAt(tm)
		c2 := NewSceneCamera(4.0 / 3.0)

		m1 := CombinedTransform(&w1, &c1)
		m2 := CombinedTransform(&w2, &c2)
		require.Equal(t, m1, m2)
	}
}

func TestClearColor(t *testing.T) {

	assert.Equal(t, float32(0), SrgbToLinear(0))
	assert.InDelta(t, 1, SrgbToLinear(255), 1e-6)
	assert.InDelta(t, 0.2158605, SrgbToLinear(128), 1e-5)

	linear := ClearColor([4]uint8{100, 149, 237, 255}, true)
	assert.InDelta(t, 0.127438, linear.Data[0], 1e-4)
	assert.InDelta(t, 0.300544, linear.Data[1], 1e-4)
	assert.InDelta(t, 0.846873, linear.Data[2], 1e-4)
	assert.Equal(t, float32(1), linear.Data[3])

	raw := ClearColor([4]uint8{100, 149, 237, 255}, false)
	assert.InDelta(t, 100.0/255, raw.Data[0], 1e-6)
	assert.InDelta(t, 237.0/255, raw.Data[2], 1e-6)
}
