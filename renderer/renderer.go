package renderer

import (
	"io"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assets"
	"github.com/bloeys/teapot/buffers"
	"github.com/bloeys/teapot/materials"
	"github.com/bloeys/teapot/meshes"
	"github.com/bloeys/teapot/primitives"
)

type ClearFlags uint8

const (
	ClearFlags_None  ClearFlags = 0
	ClearFlags_Depth ClearFlags = 1 << (iota - 1)
	ClearFlags_Stencil

	ClearFlags_DepthStencil = ClearFlags_Depth | ClearFlags_Stencil
)

func (cf ClearFlags) Has(flags ClearFlags) bool {
	return cf&flags == flags
}

// Device creates GPU resources
type Device interface {
	NewEffect(name string, src []byte) (*materials.Material, error)
	LoadTexture(r io.Reader, opts *assets.TextureLoadOptions) (*assets.Texture, error)
	NewPrimitive(shape primitives.Shape, size float32, tessellation int) (*meshes.Mesh, error)
	LoadModel(name, modelPath string) (*meshes.Mesh, error)
}

// Render records the commands of a frame
type Render interface {
	BackBuffer() *buffers.Framebuffer

	Clear(target *buffers.Framebuffer, color *gglm.Vec4)
	ClearDepthStencil(target *buffers.Framebuffer, flags ClearFlags)
	SetRenderTargetAndViewport(target *buffers.Framebuffer)

	// UpdateEffect uploads the effect parameters changed since the last update
	UpdateEffect(mat *materials.Material)
	DrawMesh(mesh *meshes.Mesh, mat *materials.Material)

	Resize(width, height uint32)
	FrameEnd()
}
