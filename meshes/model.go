package meshes

import (
	"errors"
	"fmt"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/buffers"
)

var (
	// DefaultMeshLoadFlags are the flags always applied when loading a new mesh regardless
	// of what post process flags are used when loading a mesh.
	//
	// Note: the vertex layout expects tangents, so without CalcTangentSpace they are zeroed.
	// SortByPType puts points and lines, which Triangulate keeps, into meshes of their own
	DefaultMeshLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace | asig.PostProcessSortByPType
)

// NewMesh imports a model file with assimp. All the meshes of the file end up as submeshes sharing one vao
func NewMesh(name, modelPath string, postProcessFlags asig.PostProcess) (Mesh, error) {

	scene, release, err := asig.ImportFile(modelPath, DefaultMeshLoadFlags|postProcessFlags)
	if err != nil {
		return Mesh{}, fmt.Errorf("failed to load model '%s'. Err: %w", modelPath, err)
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return Mesh{}, errors.New("no meshes found in file: " + modelPath)
	}

	var (
		layout     []buffers.Element
		vertexData []float32
		indexData  []uint32
		subMeshes  = make([]SubMesh, 0, len(scene.Meshes))
	)

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]
		if sceneMesh.PrimitiveTypes&asig.PrimitiveTypeTriangle == 0 {
			continue
		}

		indices := flattenFaces(sceneMesh.Faces)
		if len(indices) == 0 {
			continue
		}

		meshLayout, arrs := sceneMeshArrays(sceneMesh)
		if layout == nil {
			layout = meshLayout
		} else if !sameLayout(layout, meshLayout) {

			// One vbo is shared by all submeshes so they must have one format
			return Mesh{}, fmt.Errorf("vertex layout of submesh '%d' of mesh '%s' at path '%s' does not equal vertex layout of the first submesh. Original layout: %v; This layout: %v", i, name, modelPath, layout, meshLayout)
		}

		subMeshes = append(subMeshes, SubMesh{

			// Index of the vertex to start from (e.g. if index buffer says use vertex 5, and BaseVertex=3, the vertex used will be vertex 8)
			BaseVertex: int32(len(vertexData) / layoutFloatCount(layout)),
			// Which index (in the index buffer) to start from
			BaseIndex: uint32(len(indexData)),
			// How many indices in this submesh
			IndexCount: int32(len(indices)),
		})

		vertexData = append(vertexData, interleave(arrs...)...)
		indexData = append(indexData, indices...)
	}

	if len(subMeshes) == 0 {
		return Mesh{}, errors.New("no triangles found in file: " + modelPath)
	}

	vbo := buffers.NewVertexBuffer(layout...)
	vbo.SetData(vertexData, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(indexData, buffers.BufUsage_Static_Draw)

	return uploadMesh(name, vbo, ibo, subMeshes), nil
}

func sceneMeshArrays(sceneMesh *asig.Mesh) ([]buffers.Element, []arrToInterleave) {

	vertCount := len(sceneMesh.Vertices)

	// We always want normals, tangents and UV0
	normals := sceneMesh.Normals
	if len(normals) == 0 {
		normals = make([]gglm.Vec3, vertCount)
	}

	tangents := sceneMesh.Tangents
	if len(tangents) == 0 {
		tangents = make([]gglm.Vec3, vertCount)
	}

	uv0s := sceneMesh.TexCoords[0]
	if len(uv0s) == 0 {
		uv0s = make([]gglm.Vec3, vertCount)
	}

	layout := cloneLayout(VertexLayout)
	arrs := []arrToInterleave{
		{V3s: sceneMesh.Vertices},
		{V3s: normals},
		{V3s: tangents},
		{V2s: v3sToV2s(uv0s)},
	}

	if len(sceneMesh.ColorSets) > 0 && len(sceneMesh.ColorSets[0]) > 0 {
		layout = append(layout, buffers.Element{ElementType: buffers.DataTypeVec4})
		arrs = append(arrs, arrToInterleave{V4s: sceneMesh.ColorSets[0]})
	}

	return layout, arrs
}

func sameLayout(a, b []buffers.Element) bool {

	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if a[i].ElementType != b[i].ElementType {
			return false
		}
	}

	return true
}

func layoutFloatCount(layout []buffers.Element) int {

	count := 0
	for i := 0; i < len(layout); i++ {
		count += int(layout[i].CompCount())
	}

	return count
}

// flattenFaces returns the indices of all triangles. Point and line faces are skipped
func flattenFaces(faces []asig.Face) []uint32 {

	uints := make([]uint32, 0, len(faces)*3)
	for i := 0; i < len(faces); i++ {

		if len(faces[i].Indices) != 3 {
			continue
		}

		uints = append(uints,
			uint32(faces[i].Indices[0]),
			uint32(faces[i].Indices[1]),
			uint32(faces[i].Indices[2]),
		)
	}

	return uints
}
