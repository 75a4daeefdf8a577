package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {

	p := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	return p
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Equal(t, "small_uv.png", cfg.Scene.TextureFile)
	assert.Equal(t, "teapot", cfg.Scene.Primitive)
	assert.Equal(t, CornflowerBlue, cfg.Scene.ClearColor)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {

	p := writeConfig(t, `
[window]
width = 800
vsync = false
show_fps = false

[scene]
primitive = "sphere"
clear_color = [0, 0, 0, 255]
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(720), cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.False(t, cfg.Window.ShowFps)
	assert.True(t, cfg.Window.Srgb)
	assert.Equal(t, "sphere", cfg.Scene.Primitive)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, cfg.Scene.ClearColor)
	assert.Equal(t, "small_uv.png", cfg.Scene.TextureFile)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {

	p := writeConfig(t, `
[scene]
texture = "other.png"
`)

	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {

	p := writeConfig(t, `
[scene]
tessellation = 0
`)

	_, err := Load(p)
	assert.ErrorContains(t, err, "tessellation")
}

func TestResolvePath(t *testing.T) {

	base := filepath.Join(string(filepath.Separator), "opt", "teapot")

	assert.Equal(t, filepath.Join(base, "small_uv.png"), ResolvePath(base, "small_uv.png"))
	assert.Equal(t, filepath.Join(base, "res", "a.png"), ResolvePath(base, "res/a.png"))

	abs := filepath.Join(string(filepath.Separator), "tmp", "a.png")
	assert.Equal(t, abs, ResolvePath(base, abs))
}

func TestExecutableDir(t *testing.T) {

	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
