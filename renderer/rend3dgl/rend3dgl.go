package rend3dgl

import (
	"io"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
	"github.com/bloeys/teapot/assets"
	"github.com/bloeys/teapot/buffers"
	"github.com/bloeys/teapot/materials"
	"github.com/bloeys/teapot/meshes"
	"github.com/bloeys/teapot/primitives"
	"github.com/bloeys/teapot/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	_ renderer.Render = &Rend3DGL{}
	_ renderer.Device = &Rend3DGL{}
)

type Rend3DGL struct {
	BoundMatId     uint32
	BoundMeshVaoId uint32
	BoundFboId     uint32

	backBuffer buffers.Framebuffer
}

func (r *Rend3DGL) NewEffect(name string, src []byte) (*materials.Material, error) {

	mat, err := materials.NewMaterialSrc(name, src)
	if err != nil {
		return nil, err
	}

	return &mat, nil
}

func (r *Rend3DGL) LoadTexture(rd io.Reader, opts *assets.TextureLoadOptions) (*assets.Texture, error) {

	tex, err := assets.LoadTexture(rd, opts)
	if err != nil {
		return nil, err
	}

	return &tex, nil
}

func (r *Rend3DGL) NewPrimitive(shape primitives.Shape, size float32, tessellation int) (*meshes.Mesh, error) {

	geom, err := primitives.New(shape, size, tessellation)
	if err != nil {
		return nil, err
	}

	mesh := meshes.NewMeshFromGeometry(&geom)
	r.BoundMeshVaoId = 0
	return &mesh, nil
}

func (r *Rend3DGL) LoadModel(name, modelPath string) (*meshes.Mesh, error) {

	mesh, err := meshes.NewMesh(name, modelPath, 0)
	if err != nil {
		return nil, err
	}

	r.BoundMeshVaoId = 0
	return &mesh, nil
}

func (r *Rend3DGL) BackBuffer() *buffers.Framebuffer {
	return &r.backBuffer
}

func (r *Rend3DGL) bindTarget(target *buffers.Framebuffer) {

	if target.Id == r.BoundFboId {
		return
	}

	target.Bind()
	r.BoundFboId = target.Id
}

func (r *Rend3DGL) Clear(target *buffers.Framebuffer, color *gglm.Vec4) {
	r.bindTarget(target)
	gl.ClearColor(color.Data[0], color.Data[1], color.Data[2], color.Data[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Rend3DGL) ClearDepthStencil(target *buffers.Framebuffer, flags renderer.ClearFlags) {

	var mask uint32
	if flags.Has(renderer.ClearFlags_Depth) {
		gl.ClearDepth(1)
		mask |= gl.DEPTH_BUFFER_BIT
	}

	if flags.Has(renderer.ClearFlags_Stencil) {
		gl.ClearStencil(0)
		mask |= gl.STENCIL_BUFFER_BIT
	}

	if mask == 0 {
		return
	}

	r.bindTarget(target)
	gl.Clear(mask)
}

func (r *Rend3DGL) SetRenderTargetAndViewport(target *buffers.Framebuffer) {
	target.BindWithViewport()
	r.BoundFboId = target.Id
}

func (r *Rend3DGL) UpdateEffect(mat *materials.Material) {
	mat.Commit()
}

func (r *Rend3DGL) DrawMesh(mesh *meshes.Mesh, mat *materials.Material) {

	assert.T(len(mesh.SubMeshes) > 0, "Mesh '%s' has no submeshes to draw", mesh.Name)

	if mesh.Vao.Id != r.BoundMeshVaoId {
		mesh.Vao.Bind()
		r.BoundMeshVaoId = mesh.Vao.Id
	}

	// Always bound since texture params may change between draws
	mat.Bind()
	r.BoundMatId = mat.Id

	for i := 0; i < len(mesh.SubMeshes); i++ {
		subMesh := &mesh.SubMeshes[i]
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, subMesh.IndexCount, gl.UNSIGNED_INT, uintptr(subMesh.BaseIndex*4), subMesh.BaseVertex)
	}
}

func (r *Rend3DGL) Resize(width, height uint32) {
	r.backBuffer.Resize(width, height)
}

func (r *Rend3DGL) FrameEnd() {
	r.BoundMatId = 0
	r.BoundMeshVaoId = 0
	r.BoundFboId = 0
}

func NewRend3DGL(width, height uint32) *Rend3DGL {
	return &Rend3DGL{
		backBuffer: buffers.NewBackBuffer(width, height),
	}
}
