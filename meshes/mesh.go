package meshes

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
	"github.com/bloeys/teapot/buffers"
	"github.com/bloeys/teapot/primitives"
)

type SubMesh struct {
	BaseVertex int32
	BaseIndex  uint32
	IndexCount int32
}

type Mesh struct {
	Name string
	/*
		Vao has the following shader attribute layout:
			- Loc0: Pos
			- Loc1: Normal
			- Loc2: Tangent
			- Loc3: UV0
			- (Optional) Loc4: Color

		Color only exists for models that have a color set.
	*/
	Vao       buffers.VertexArray
	SubMeshes []SubMesh
}

// VertexLayout is the layout of every mesh vertex, minus the optional color
var VertexLayout = []buffers.Element{
	{ElementType: buffers.DataTypeVec3}, // Position
	{ElementType: buffers.DataTypeVec3}, // Normals
	{ElementType: buffers.DataTypeVec3}, // Tangents
	{ElementType: buffers.DataTypeVec2}, // UV0
}

func (m *Mesh) IndexCount() int32 {

	var count int32
	for i := 0; i < len(m.SubMeshes); i++ {
		count += m.SubMeshes[i].IndexCount
	}

	return count
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
	m.SubMeshes = nil
}

// geometryVertexData returns the interleaved vertex data of a geometry, matching VertexLayout
func geometryVertexData(geom *primitives.Geometry) []float32 {
	return interleave(
		arrToInterleave{V3s: geom.Positions},
		arrToInterleave{V3s: geom.Normals},
		arrToInterleave{V3s: geom.Tangents},
		arrToInterleave{V2s: geom.UV0s},
	)
}

// NewMeshFromGeometry uploads a generated primitive as a mesh with a single submesh
func NewMeshFromGeometry(geom *primitives.Geometry) Mesh {

	assert.T(geom.VertexCount() > 0, "Can't create a mesh from geometry '%s' with no vertices", geom.Name)

	vbo := buffers.NewVertexBuffer(cloneLayout(VertexLayout)...)
	vbo.SetData(geometryVertexData(geom), buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(geom.Indices, buffers.BufUsage_Static_Draw)

	return uploadMesh(geom.Name, vbo, ibo, []SubMesh{
		{BaseVertex: 0, BaseIndex: 0, IndexCount: int32(len(geom.Indices))},
	})
}

func uploadMesh(name string, vbo buffers.VertexBuffer, ibo buffers.IndexBuffer, subMeshes []SubMesh) Mesh {

	mesh := Mesh{
		Name:      name,
		Vao:       buffers.NewVertexArray(),
		SubMeshes: subMeshes,
	}

	mesh.Vao.AddVertexBuffer(vbo)
	mesh.Vao.SetIndexBuffer(ibo)

	// This is needed so that if you load meshes one after the other the
	// following mesh doesn't attach its vbo/ibo to this vao
	mesh.Vao.UnBind()

	return mesh
}

func cloneLayout(layout []buffers.Element) []buffers.Element {
	l := make([]buffers.Element, len(layout))
	copy(l, layout)
	return l
}

func v3sToV2s(v3s []gglm.Vec3) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, len(v3s))
	for i := 0; i < len(v3s); i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].X(), v3s[i].Y()},
		}
	}

	return v2s
}
