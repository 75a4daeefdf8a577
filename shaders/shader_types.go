package shaders

import (
	"github.com/bloeys/teapot/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type ShaderType int32

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
	ShaderType_Geometry
)

// shaderTypeTags are the names used after '//shader:' in combined shader files
var shaderTypeTags = map[string]ShaderType{
	"vertex":   ShaderType_Vertex,
	"fragment": ShaderType_Fragment,
	"geometry": ShaderType_Geometry,
}

func (s ShaderType) ToGl() uint32 {

	switch s {
	case ShaderType_Vertex:
		return gl.VERTEX_SHADER
	case ShaderType_Fragment:
		return gl.FRAGMENT_SHADER
	case ShaderType_Geometry:
		return gl.GEOMETRY_SHADER
	}

	assert.T(false, "Unknown shader type '%d'", s)
	return 0
}

func (s ShaderType) String() string {

	for tag, t := range shaderTypeTags {
		if t == s {
			return tag
		}
	}

	return "unknown"
}
