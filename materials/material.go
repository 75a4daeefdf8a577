package materials

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
	"github.com/bloeys/teapot/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	lastMatId uint32
)

// Material is an instance of an effect: a shader program plus the parameters it is drawn with
type Material struct {
	Id         uint32
	Name       string
	ShaderProg shaders.ShaderProgram
	Params     Parameters

	UnifLocs map[string]int32
}

// Bind makes the program current and binds every texture parameter to its slot
func (m *Material) Bind() {

	m.ShaderProg.Bind()

	for _, tex := range m.Params.Textures() {
		gl.ActiveTexture(gl.TEXTURE0 + tex.TexSlot)
		gl.BindTexture(gl.TEXTURE_2D, tex.TexId)
	}
}

func (m *Material) UnBind() {
	gl.UseProgram(0)
}

// Commit uploads all parameters changed since the last commit.
// Every parameter must name an active uniform, which RequireUniforms checks at load time
func (m *Material) Commit() {

	for _, key := range m.Params.Dirty() {

		p, _ := m.Params.Get(key)
		loc := m.GetUnifLoc(key)
		assert.T(loc != -1, "Parameter '%s' doesn't exist on material '%s'", key, m.Name)

		switch p.Kind {
		case ParamKind_Texture:
			gl.ProgramUniform1i(m.ShaderProg.Id, loc, int32(p.TexSlot))
		case ParamKind_Mat4:
			SetUnifMat4(m.ShaderProg.Id, loc, &p.Mat4)
		default:
			assert.T(false, "Unknown kind '%d' of parameter '%s'", p.Kind, key)
		}
	}

	m.Params.ClearDirty()
}

// RequireUniforms returns an error naming every uniform the program doesn't have as an active uniform
func (m *Material) RequireUniforms(uniformNames ...string) error {

	missing := make([]string, 0)
	for _, name := range uniformNames {
		if m.GetUnifLoc(name) == -1 {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("material '%s' is missing uniforms %v", m.Name, missing)
	}

	return nil
}

// GetUnifLoc returns the location of a uniform, or -1 if the program has no such active uniform
func (m *Material) GetUnifLoc(uniformName string) int32 {

	loc, ok := m.UnifLocs[uniformName]
	if ok {
		return loc
	}

	name := gl.Str(uniformName + "\x00")
	loc = gl.GetUniformLocation(m.ShaderProg.Id, name)
	m.UnifLocs[uniformName] = loc
	return loc
}

// SetUnifMat4 uploads a column-major matrix as is, without transposing
func SetUnifMat4(shaderProgId uint32, unifLoc int32, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(shaderProgId, unifLoc, 1, false, &mat4.Data[0][0])
}

func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func getNewMatId() uint32 {
	lastMatId++
	return lastMatId
}

func NewMaterialSrc(matName string, shaderSrc []byte) (Material, error) {

	shdrProg, err := shaders.LoadAndCompileCombinedShaderSrc(shaderSrc)
	if err != nil {
		return Material{}, fmt.Errorf("failed to create new material '%s'. Err: %w", matName, err)
	}

	return newMaterial(matName, shdrProg), nil
}

func newMaterial(matName string, shdrProg shaders.ShaderProgram) Material {
	return Material{
		Id:         getNewMatId(),
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
	}
}
