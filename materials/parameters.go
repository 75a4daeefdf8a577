package materials

import (
	"sort"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
)

// Parameter keys used by the built-in effects
const (
	ParamKey_Texture0        = "texture0"
	ParamKey_MatrixTransform = "matrixTransform"
)

type ParamKind uint8

const (
	ParamKind_Unknown ParamKind = iota
	ParamKind_Texture
	ParamKind_Mat4
)

func (k ParamKind) String() string {
	switch k {
	case ParamKind_Texture:
		return "texture"
	case ParamKind_Mat4:
		return "mat4"
	default:
		return "unknown"
	}
}

type Param struct {
	Kind ParamKind

	// Texture params
	TexId   uint32
	TexSlot uint32

	// Mat4 params
	Mat4 gglm.Mat4
}

// Parameters is a named block of effect inputs. Values set here are only sent to
// the GPU when the owning material is committed, and only if they changed since the last commit.
type Parameters struct {
	values      map[string]*Param
	dirty       map[string]struct{}
	nextTexSlot uint32
}

func (p *Parameters) param(key string, kind ParamKind) *Param {

	if p.values == nil {
		p.values = map[string]*Param{}
		p.dirty = map[string]struct{}{}
	}

	v, ok := p.values[key]
	if !ok {
		v = &Param{Kind: kind}
		p.values[key] = v
		return v
	}

	assert.T(v.Kind == kind, "Parameter '%s' is a %s but was set as a %s", key, v.Kind, kind)
	return v
}

// SetTexture binds a texture to key. The first time a key is set it gets the next free texture slot
func (p *Parameters) SetTexture(key string, texId uint32) {

	_, existed := p.values[key]
	v := p.param(key, ParamKind_Texture)
	if !existed {
		v.TexSlot = p.nextTexSlot
		p.nextTexSlot++
	}

	v.TexId = texId
	p.dirty[key] = struct{}{}
}

func (p *Parameters) SetMat4(key string, m *gglm.Mat4) {
	v := p.param(key, ParamKind_Mat4)
	v.Mat4 = *m
	p.dirty[key] = struct{}{}
}

func (p *Parameters) Get(key string) (Param, bool) {

	v, ok := p.values[key]
	if !ok {
		return Param{}, false
	}

	return *v, true
}

// Dirty returns the keys changed since the last ClearDirty, sorted
func (p *Parameters) Dirty() []string {

	keys := make([]string, 0, len(p.dirty))
	for k := range p.dirty {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

func (p *Parameters) ClearDirty() {
	for k := range p.dirty {
		delete(p.dirty, k)
	}
}

// Textures returns all texture params
func (p *Parameters) Textures() []Param {

	texes := make([]Param, 0, p.nextTexSlot)
	for _, v := range p.values {
		if v.Kind == ParamKind_Texture {
			texes = append(texes, *v)
		}
	}

	sort.Slice(texes, func(i, j int) bool { return texes[i].TexSlot < texes[j].TexSlot })
	return texes
}

// Missing returns the keys that were never set, in the order given
func (p *Parameters) Missing(keys ...string) []string {

	var missing []string
	for _, k := range keys {
		if _, ok := p.values[k]; !ok {
			missing = append(missing, k)
		}
	}

	return missing
}
