package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearFlags(t *testing.T) {

	assert.Equal(t, ClearFlags(1), ClearFlags_Depth)
	assert.Equal(t, ClearFlags(2), ClearFlags_Stencil)

	assert.True(t, ClearFlags_DepthStencil.Has(ClearFlags_Depth))
	assert.True(t, ClearFlags_DepthStencil.Has(ClearFlags_Stencil))
	assert.False(t, ClearFlags_Depth.Has(ClearFlags_Stencil))
	assert.False(t, ClearFlags_None.Has(ClearFlags_Depth))
}
