package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
)

// Camera is a right-handed perspective camera. ViewMat and ProjMat are column-major
// and meant for column vectors, so a clip space position is ProjMat*ViewMat*worldPos.
type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	NearClip    float32
	FarClip     float32
	FovRad      float32
	AspectRatio float32

	ViewMat gglm.Mat4
	ProjMat gglm.Mat4
}

func (c *Camera) Update() {
	c.UpdateViewMat()
	c.UpdateProjMat()
}

func (c *Camera) UpdateViewMat() {
	targetPos := c.Pos.Clone().Add(&c.Forward)
	c.ViewMat = gglm.LookAtRH(&c.Pos, targetPos, &c.WorldUp).Mat4
}

func (c *Camera) UpdateProjMat() {
	projMat := gglm.Perspective(c.FovRad, c.AspectRatio, c.NearClip, c.FarClip)
	c.ProjMat = *projMat.Clone()
}

// SetAspectRatio only rebuilds the projection when the ratio actually changes
func (c *Camera) SetAspectRatio(aspectRatio float32) {

	assert.T(aspectRatio > 0, "Camera aspect ratio must be positive, got %f", aspectRatio)
	if aspectRatio == c.AspectRatio {
		return
	}

	c.AspectRatio = aspectRatio
	c.UpdateProjMat()
}

// ProjViewMat returns ProjMat*ViewMat
func (c *Camera) ProjViewMat() gglm.Mat4 {
	return *c.ProjMat.Clone().Mul(&c.ViewMat)
}

func NewPerspective(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, fovRadians, aspectRatio float32) Camera {

	assert.T(nearClip > 0 && farClip > nearClip, "Invalid camera clip planes. Near=%f; Far=%f", nearClip, farClip)

	cam := Camera{
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,

		NearClip:    nearClip,
		FarClip:     farClip,
		FovRad:      fovRadians,
		AspectRatio: aspectRatio,
	}

	cam.Update()
	return cam
}

// NewPerspectiveLookAt is like NewPerspective but takes the point the camera looks at
func NewPerspectiveLookAt(pos, target, worldUp *gglm.Vec3, nearClip, farClip, fovRadians, aspectRatio float32) Camera {
	forward := gglm.NewVec3(target.X()-pos.X(), target.Y()-pos.Y(), target.Z()-pos.Z())
	return NewPerspective(pos, forward.Normalize(), worldUp, nearClip, farClip, fovRadians, aspectRatio)
}
