package meshes

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
)

// arrToInterleave holds exactly one of its arrays
type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
	V4s []gglm.Vec4
}

func (a *arrToInterleave) setCount() int {

	count := 0
	for _, l := range [...]int{len(a.V2s), len(a.V3s), len(a.V4s)} {
		if l > 0 {
			count++
		}
	}

	return count
}

func (a *arrToInterleave) len() int {
	return len(a.V2s) + len(a.V3s) + len(a.V4s)
}

func (a *arrToInterleave) compCount() int {

	switch {
	case len(a.V2s) > 0:
		return 2
	case len(a.V3s) > 0:
		return 3
	default:
		return 4
	}
}

func (a *arrToInterleave) get(i int) []float32 {

	switch {
	case len(a.V2s) > 0:
		return a.V2s[i].Data[:]
	case len(a.V3s) > 0:
		return a.V3s[i].Data[:]
	default:
		return a.V4s[i].Data[:]
	}
}

// interleave packs the i-th element of every array one after the other,
// so with arrays (pos, uv) the output is pos0 uv0 pos1 uv1...
func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()
	assert.T(elementCount > 0, "Interleave arrays are empty")

	floatsPerElement := 0
	for i := 0; i < len(arrs); i++ {
		assert.T(arrs[i].setCount() == 1, "One array should be set in arrToInterleave, but %d arrays are set", arrs[i].setCount())
		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length. Expected %d but array %d has %d", elementCount, i, arrs[i].len())
		floatsPerElement += arrs[i].compCount()
	}

	out := make([]float32, 0, elementCount*floatsPerElement)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}
