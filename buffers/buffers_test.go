package buffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		compCount int32
		size      int32
		name      string
	}{
		{DataTypeUint32, 1, 4, "uint32"},
		{DataTypeInt32, 1, 4, "int32"},
		{DataTypeFloat32, 1, 4, "float32"},
		{DataTypeVec2, 2, 8, "Vec2"},
		{DataTypeVec3, 3, 12, "Vec3"},
		{DataTypeVec4, 4, 16, "Vec4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.dt.IsValid())
			assert.Equal(t, tt.compCount, tt.dt.CompCount())
			assert.Equal(t, int32(4), tt.dt.CompSize())
			assert.Equal(t, tt.size, tt.dt.Size())
			assert.Equal(t, tt.name, tt.dt.String())
		})
	}

	assert.False(t, DataTypeUnknown.IsValid())
	assert.Equal(t, "Unknown", ElementType(200).String())
	assert.Panics(t, func() { DataTypeUnknown.Size() })
}

func TestVertexBufferLayout(t *testing.T) {

	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec3},
		Element{ElementType: DataTypeVec2},
	)

	assert.Equal(t, int32(44), vb.Stride)

	require.Len(t, vb.layout, 4)

	offsets := make([]int, len(vb.layout))
	for i := range vb.layout {
		offsets[i] = vb.layout[i].Offset
	}
	assert.Equal(t, []int{0, 12, 24, 36}, offsets)

	// Setting a new layout recomputes everything
	vb.SetLayout(Element{ElementType: DataTypeVec4})
	assert.Equal(t, int32(16), vb.Stride)
	assert.Equal(t, 0, vb.layout[0].Offset)
}

func TestBufUsage(t *testing.T) {
	assert.NotPanics(t, func() { BufUsage_Static_Draw.ToGL() })
	assert.Panics(t, func() { BufUsage_Unknown.ToGL() })
}

func TestFramebufferAspectRatio(t *testing.T) {

	fbo := NewBackBuffer(1280, 720)
	assert.True(t, fbo.IsBackBuffer())
	assert.InDelta(t, 16.0/9, fbo.AspectRatio(), 1e-6)

	fbo.Resize(800, 800)
	assert.Equal(t, float32(1), fbo.AspectRatio())

	// Minimized windows report a zero height
	fbo.Resize(800, 0)
	assert.Equal(t, float32(1), fbo.AspectRatio())
}
