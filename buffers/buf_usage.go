package buffers

import (
	"github.com/bloeys/teapot/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type BufUsage int

// Full docs for buffer usage can be found here: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	BufUsage_Unknown BufUsage = iota

	//Buffer is set only once and used many times
	BufUsage_Static_Draw
	//Buffer is changed a lot and used many times
	BufUsage_Dynamic_Draw
	//Buffer is set only once and used by the GPU at most a few times
	BufUsage_Stream_Draw
)

var bufUsageToGl = map[BufUsage]uint32{
	BufUsage_Static_Draw:  gl.STATIC_DRAW,
	BufUsage_Dynamic_Draw: gl.DYNAMIC_DRAW,
	BufUsage_Stream_Draw:  gl.STREAM_DRAW,
}

func (b BufUsage) ToGL() uint32 {
	glUsage, ok := bufUsageToGl[b]
	assert.T(ok, "Unexpected BufUsage value '%d'", b)
	return glUsage
}
