// Package config loads the optional teapot.toml that sits next to the executable.
//
// Every field has a default, so a missing file is not an error and
// a file only needs the keys it wants to change.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const FileName = "teapot.toml"

type Window struct {
	Title     string `toml:"title"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	MSAA      bool   `toml:"msaa"`
	Srgb      bool   `toml:"srgb"`
	// ShowFps appends the frames per second to the title
	ShowFps   bool   `toml:"show_fps"`
}

type Scene struct {
	// TextureFile is bound to the effect's diffuse slot. Relative paths
	// are relative to the executable's directory.
	TextureFile string `toml:"texture_file"`

	// Primitive is the name of the built-in shape to draw, e.g. 'teapot'
	Primitive     string  `toml:"primitive"`
	PrimitiveSize float32 `toml:"primitive_size"`
	Tessellation  int     `toml:"tessellation"`

	// ModelFile, when set, is imported instead of generating Primitive
	ModelFile string `toml:"model_file"`

	// ClearColor is 8-bit sRGB
	ClearColor [4]uint8 `toml:"clear_color"`
}

type Screenshot struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type Config struct {
	Window     Window     `toml:"window"`
	Scene      Scene      `toml:"scene"`
	Screenshot Screenshot `toml:"screenshot"`
}

var (
	CornflowerBlue = [4]uint8{100, 149, 237, 255}
)

func Default() Config {
	return Config{
		Window: Window{
			Title:     "Teapot",
			Width:     1280,
			Height:    720,
			Resizable: true,
			VSync:     true,
			MSAA:      true,
			Srgb:      true,
			ShowFps:   true,
		},
		Scene: Scene{
			TextureFile:   "small_uv.png",
			Primitive:     "teapot",
			PrimitiveSize: 1,
			Tessellation:  8,
			ClearColor:    CornflowerBlue,
		},
		Screenshot: Screenshot{
			Enabled: true,
			Dir:     ".",
		},
	}
}

// Load reads the config at path on top of the defaults.
// A missing file returns the defaults.
func Load(path string) (Config, error) {

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {

		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config file '%s'. Err: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file '%s'. Err: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config file '%s'. Err: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Scene.TextureFile == "" {
		return errors.New("scene.texture_file must not be empty")
	}

	if c.Scene.ModelFile == "" && c.Scene.Primitive == "" {
		return errors.New("one of scene.primitive or scene.model_file must be set")
	}

	if c.Scene.PrimitiveSize <= 0 {
		return fmt.Errorf("scene.primitive_size must be positive, got %f", c.Scene.PrimitiveSize)
	}

	if c.Scene.Tessellation < 1 {
		return fmt.Errorf("scene.tessellation must be at least 1, got %d", c.Scene.Tessellation)
	}

	return nil
}

// ExecutableDir returns the directory holding the running binary, with symlinks resolved
func ExecutableDir() (string, error) {

	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}

	return filepath.Dir(exePath), nil
}

// ResolvePath joins p to baseDir unless p is already absolute
func ResolvePath(baseDir, p string) string {

	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(baseDir, p)
}
