package meshes

import (
	"testing"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/buffers"
	"github.com/bloeys/teapot/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {

	out := interleave(
		arrToInterleave{V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3), gglm.NewVec3(4, 5, 6)}},
		arrToInterleave{V2s: []gglm.Vec2{gglm.NewVec2(7, 8), gglm.NewVec2(9, 10)}},
	)

	assert.Equal(t, []float32{1, 2, 3, 7, 8, 4, 5, 6, 9, 10}, out)
}

func TestInterleaveMismatchedLengths(t *testing.T) {

	assert.Panics(t, func() {
		interleave(
			arrToInterleave{V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3)}},
			arrToInterleave{V2s: []gglm.Vec2{gglm.NewVec2(7, 8), gglm.NewVec2(9, 10)}},
		)
	})

	assert.Panics(t, func() {
		interleave(arrToInterleave{
			V2s: []gglm.Vec2{gglm.NewVec2(7, 8)},
			V3s: []gglm.Vec3{gglm.NewVec3(1, 2, 3)},
		})
	})
}

func TestGeometryVertexData(t *testing.T) {

	geom := primitives.Cube(2)
	data := geometryVertexData(&geom)

	floatsPerVertex := layoutFloatCount(VertexLayout)
	require.Equal(t, 11, floatsPerVertex)
	require.Len(t, data, geom.VertexCount()*floatsPerVertex)

	// Each vertex starts with its position and ends with its uv
	for i := 0; i < geom.VertexCount(); i++ {
		v := data[i*floatsPerVertex : (i+1)*floatsPerVertex]
		assert.Equal(t, geom.Positions[i].Data[:], v[0:3])
		assert.Equal(t, geom.Normals[i].Data[:], v[3:6])
		assert.Equal(t, geom.Tangents[i].Data[:], v[6:9])
		assert.Equal(t, geom.UV0s[i].Data[:], v[9:11])
	}
}

func TestSameLayout(t *testing.T) {

	withColor := append(cloneLayout(VertexLayout), buffers.Element{ElementType: buffers.DataTypeVec4})

	assert.True(t, sameLayout(VertexLayout, cloneLayout(VertexLayout)))
	assert.False(t, sameLayout(VertexLayout, withColor))
	assert.Equal(t, 15, layoutFloatCount(withColor))
}

func TestMeshIndexCount(t *testing.T) {

	m := Mesh{SubMeshes: []SubMesh{{IndexCount: 6}, {BaseIndex: 6, IndexCount: 30}}}
	assert.Equal(t, int32(36), m.IndexCount())
}

func TestFlattenFacesSkipsPointsAndLines(t *testing.T) {

	faces := []asig.Face{
		{Indices: []uint{0, 1, 2}},
		{Indices: []uint{3}},
		{Indices: []uint{4, 5}},
		{Indices: []uint{2, 1, 6}},
	}

	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 6}, flattenFaces(faces))
	assert.Empty(t, flattenFaces([]asig.Face{{Indices: []uint{0, 1}}}))
}
