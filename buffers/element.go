package buffers

import (
	"github.com/bloeys/teapot/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents an element that makes up a vertex (e.g. Vec3 at an offset of 12 bytes)
type Element struct {
	Offset int
	ElementType
}

// ElementType is the type of an element thats makes up a vertex (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	dataTypeCount
)

type elementTypeInfo struct {
	name      string
	glType    uint32
	compCount int32
}

// All supported types have 4 byte components
const compSizeBytes = 4

var elementTypeInfos = [dataTypeCount]elementTypeInfo{
	DataTypeUnknown: {name: "Unknown"},
	DataTypeUint32:  {name: "uint32", glType: gl.UNSIGNED_INT, compCount: 1},
	DataTypeInt32:   {name: "int32", glType: gl.INT, compCount: 1},
	DataTypeFloat32: {name: "float32", glType: gl.FLOAT, compCount: 1},
	DataTypeVec2:    {name: "Vec2", glType: gl.FLOAT, compCount: 2},
	DataTypeVec3:    {name: "Vec3", glType: gl.FLOAT, compCount: 3},
	DataTypeVec4:    {name: "Vec4", glType: gl.FLOAT, compCount: 4},
}

func (dt ElementType) IsValid() bool {
	return dt > DataTypeUnknown && dt < dataTypeCount
}

func (dt ElementType) info() elementTypeInfo {
	assert.T(dt.IsValid(), "Unknown data type passed. DataType '%d'", dt)
	return elementTypeInfos[dt]
}

func (dt ElementType) GLType() uint32 {
	return dt.info().glType
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {
	dt.info()
	return compSizeBytes
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {
	return dt.info().compCount
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.info().compCount * compSizeBytes
}

func (dt ElementType) String() string {

	if !dt.IsValid() {
		return "Unknown"
	}

	return elementTypeInfos[dt].name
}
