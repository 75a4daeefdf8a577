package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/teapot/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const combinedShaderMarker = "//shader:"

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	gl.DeleteShader(s.Id)
	s.Id = 0
}

// ShaderStage is the source of one stage of a combined shader
type ShaderStage struct {
	Type ShaderType
	Src  []byte
}

// SplitCombinedShader splits a file holding multiple shader stages, each one starting
// with a '//shader:<type>' line, into its stages. A vertex and a fragment stage are required.
func SplitCombinedShader(shaderSrc []byte) ([]ShaderStage, error) {

	parts := bytes.Split(shaderSrc, []byte(combinedShaderMarker))
	if len(parts) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	stages := make([]ShaderStage, 0, len(parts)-1)
	seen := map[ShaderType]bool{}
	for i, src := range parts {

		// Anything before the first marker (e.g. a leading comment) isn't part of a stage
		if i == 0 {
			if len(bytes.TrimSpace(src)) != 0 {
				logging.WarnLog.Println("Ignoring text before the first '//shader:' marker of combined shader")
			}
			continue
		}

		tagEnd := bytes.IndexAny(src, " \t\r\n")
		if tagEnd == -1 {
			tagEnd = len(src)
		}

		tag := string(src[:tagEnd])
		shdrType, ok := shaderTypeTags[tag]
		if !ok {
			return nil, fmt.Errorf("unknown shader type '%s'. Must be '//shader:vertex' or '//shader:fragment' or '//shader:geometry'", tag)
		}

		if seen[shdrType] {
			return nil, fmt.Errorf("combined shader has more than one '%s' stage", tag)
		}
		seen[shdrType] = true

		stages = append(stages, ShaderStage{Type: shdrType, Src: src[tagEnd:]})
	}

	if !seen[ShaderType_Vertex] {
		return nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !seen[ShaderType_Fragment] {
		return nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return stages, nil
}

func NewShaderProgram() (ShaderProgram, error) {

	id := gl.CreateProgram()
	if id == 0 {
		return ShaderProgram{}, errors.New("failed to create shader program")
	}

	return ShaderProgram{Id: id}, nil
}

func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	stages, err := SplitCombinedShader(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	shdrProg, err := NewShaderProgram()
	if err != nil {
		return ShaderProgram{}, errors.New("failed to create new shader program. Err: " + err.Error())
	}

	for i := 0; i < len(stages); i++ {

		shdr, err := CompileShaderOfType(stages[i].Src, stages[i].Type)
		if err != nil {
			shdrProg.Delete()
			return ShaderProgram{}, fmt.Errorf("failed to compile %s shader. Err: %w", stages[i].Type, err)
		}

		shdrProg.AttachShader(shdr)
	}

	if err := shdrProg.Link(); err != nil {
		shdrProg.Delete()
		return ShaderProgram{}, err
	}

	return shdrProg, nil
}

func CompileShaderOfType(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := gl.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl shader. OpenGl Error=%d", gl.GetError())
	}

	//Load shader source and compile
	shaderCStr, shaderFree := gl.Strs(string(shaderSource) + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)
	if err := getShaderCompileErrors(shaderId); err != nil {
		gl.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

func getShaderCompileErrors(shaderId uint32) error {

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return nil
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)

	log := gl.Str(strings.Repeat("\x00", int(logLength)+1))
	gl.GetShaderInfoLog(shaderId, logLength, nil, log)

	errMsg := gl.GoStr(log)
	logging.ErrLog.Println("Compilation of shader with id ", shaderId, " failed. Err: ", errMsg)
	return errors.New(errMsg)
}
