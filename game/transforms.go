package game

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/camera"
	"github.com/chewxy/math32"
)

const (
	FovRad   = math32.Pi / 4
	NearClip = 0.1
	FarClip  = 100

	scaleAmplitude = 0.2
	scaleFrequency = 1.5
)

var (
	EyePos    = gglm.NewVec3(0, 0, 5)
	TargetPos = gglm.NewVec3(0, 0, 0)
	WorldUp   = gglm.NewVec3(0, 1, 0)
)

// ScaleAt is the uniform scale of the model at t seconds. It pulses within [0.8, 1.2]
func ScaleAt(t float32) float32 {
	return 1 + scaleAmplitude*math32.Sin(scaleFrequency*t)
}

func identity() gglm.Mat4 {
	return gglm.Mat4{
		Data: [4][4]float32{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationX returns a counter-clockwise rotation about +X (looking down the axis towards the origin).
// Data is column-major so Data[col][row].
func RotationX(rad float32) gglm.Mat4 {

	s, c := math32.Sincos(rad)

	m := identity()
	m.Data[1][1] = c
	m.Data[1][2] = s
	m.Data[2][1] = -s
	m.Data[2][2] = c
	return m
}

func RotationY(rad float32) gglm.Mat4 {

	s, c := math32.Sincos(rad)

	m := identity()
	m.Data[0][0] = c
	m.Data[0][2] = -s
	m.Data[2][0] = s
	m.Data[2][2] = c
	return m
}

func RotationZ(rad float32) gglm.Mat4 {

	s, c := math32.Sincos(rad)

	m := identity()
	m.Data[0][0] = c
	m.Data[0][1] = s
	m.Data[1][0] = -s
	m.Data[1][1] = c
	return m
}

// WorldAt is the model matrix at t seconds. Applied to a column vector it scales first,
// then rotates about X by t, about Y by 2t and about Z by 0.7t, then translates (by zero).
func WorldAt(t float32) gglm.Mat4 {

	s := ScaleAt(t)
	scaleMat := gglm.NewScaleMat(s, s, s)
	translationMat := gglm.NewTranslationMat(0, 0, 0)

	rotX := RotationX(t)
	rotY := RotationY(2 * t)
	rotZ := RotationZ(0.7 * t)

	world := translationMat.Mat4
	world.Mul(&rotZ).Mul(&rotY).Mul(&rotX).Mul(&scaleMat.Mat4)
	return world
}

// NewSceneCamera returns the fixed camera at (0,0,5) looking at the origin with +Y up
func NewSceneCamera(aspectRatio float32) camera.Camera {
	return camera.NewPerspectiveLookAt(&EyePos, &TargetPos, &WorldUp, NearClip, FarClip, FovRad, aspectRatio)
}

// CombinedTransform returns projection*view*world, taking model space straight to clip space
func CombinedTransform(world *gglm.Mat4, cam *camera.Camera) gglm.Mat4 {
	m := cam.ProjViewMat()
	m.Mul(world)
	return m
}

// SrgbToLinear converts an 8-bit sRGB channel to linear [0, 1]
func SrgbToLinear(c uint8) float32 {

	v := float32(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}

	return math32.Pow((v+0.055)/1.055, 2.4)
}

// ClearColor converts an 8-bit sRGB color into the float color to clear with. When the
// framebuffer does sRGB encoding on write the color channels are linearized first, alpha never is.
func ClearColor(c [4]uint8, srgbFramebuffer bool) gglm.Vec4 {

	out := gglm.Vec4{}
	for i := 0; i < 3; i++ {
		if srgbFramebuffer {
			out.Data[i] = SrgbToLinear(c[i])
		} else {
			out.Data[i] = float32(c[i]) / 255
		}
	}

	out.Data[3] = float32(c[3]) / 255
	return out
}
