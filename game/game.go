// Package game is the sample: a textured teapot that tumbles and pulses in front of a fixed camera.
package game

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/teapot/assert"
	"github.com/bloeys/teapot/assets"
	"github.com/bloeys/teapot/camera"
	"github.com/bloeys/teapot/config"
	"github.com/bloeys/teapot/engine"
	"github.com/bloeys/teapot/input"
	"github.com/bloeys/teapot/logging"
	"github.com/bloeys/teapot/materials"
	"github.com/bloeys/teapot/meshes"
	"github.com/bloeys/teapot/primitives"
	"github.com/bloeys/teapot/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed shaders/sprite.glsl
var spriteShaderSrc []byte

var _ engine.Game = &CodeOnlyGame{}

type CodeOnlyGame struct {
	Cfg config.Config
	// AssetDir is what relative asset paths are resolved against, normally the executable's directory
	AssetDir string

	Device renderer.Device
	Rend   renderer.Render

	effect  *materials.Material
	texture *assets.Texture
	mesh    *meshes.Mesh

	cam        camera.Camera
	clearColor gglm.Vec4

	isLoaded            bool
	screenshotRequested bool
}

func (g *CodeOnlyGame) LoadContent() error {

	assert.T(!g.isLoaded, "LoadContent called twice")

	effect, err := g.Device.NewEffect("sprite", spriteShaderSrc)
	if err != nil {
		return fmt.Errorf("failed to create sprite effect. Err: %w", err)
	}
	g.effect = effect

	if err := g.effect.RequireUniforms(materials.ParamKey_Texture0, materials.ParamKey_MatrixTransform); err != nil {
		g.DeInit()
		return err
	}

	texPath := config.ResolvePath(g.AssetDir, g.Cfg.Scene.TextureFile)
	tex, err := g.loadTexture(texPath)
	if err != nil {
		g.DeInit()
		return err
	}
	g.texture = tex
	g.effect.Params.SetTexture(materials.ParamKey_Texture0, tex.TexID)

	mesh, err := g.loadMesh()
	if err != nil {
		g.DeInit()
		return err
	}
	g.mesh = mesh

	g.cam = NewSceneCamera(g.Rend.BackBuffer().AspectRatio())
	g.clearColor = ClearColor(g.Cfg.Scene.ClearColor, g.Cfg.Window.Srgb)
	g.isLoaded = true

	logging.InfoLog.Printf("Loaded texture '%s' (%dx%d) and mesh '%s' (%d indices)\n", texPath, tex.Width, tex.Height, mesh.Name, mesh.IndexCount())
	return nil
}

func (g *CodeOnlyGame) loadTexture(texPath string) (*assets.Texture, error) {

	f, err := os.Open(texPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture. Err: %w", err)
	}
	defer f.Close()

	tex, err := g.Device.LoadTexture(f, &assets.TextureLoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load texture '%s'. Err: %w", texPath, err)
	}

	tex.Path = texPath
	return tex, nil
}

func (g *CodeOnlyGame) loadMesh() (*meshes.Mesh, error) {

	scene := &g.Cfg.Scene
	if scene.ModelFile != "" {

		modelPath := config.ResolvePath(g.AssetDir, scene.ModelFile)
		mesh, err := g.Device.LoadModel("model", modelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load model '%s'. Err: %w", modelPath, err)
		}

		return mesh, nil
	}

	mesh, err := g.Device.NewPrimitive(primitives.Shape(scene.Primitive), scene.PrimitiveSize, scene.Tessellation)
	if err != nil {
		return nil, fmt.Errorf("failed to create primitive '%s'. Err: %w", scene.Primitive, err)
	}

	return mesh, nil
}

func (g *CodeOnlyGame) Update(gt engine.GameTime) {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if g.Cfg.Screenshot.Enabled && input.KeyClicked(sdl.K_F12) {
		g.screenshotRequested = true
	}
}

func (g *CodeOnlyGame) Draw(gt engine.GameTime) {

	assert.T(g.isLoaded, "Draw called before LoadContent succeeded")

	t := gt.TotalSeconds()
	backBuffer := g.Rend.BackBuffer()

	g.Rend.Clear(backBuffer, &g.clearColor)
	g.Rend.ClearDepthStencil(backBuffer, renderer.ClearFlags_DepthStencil)
	g.Rend.SetRenderTargetAndViewport(backBuffer)

	world := WorldAt(t)
	g.cam.SetAspectRatio(backBuffer.AspectRatio())
	transform := CombinedTransform(&world, &g.cam)

	g.effect.Params.SetMat4(materials.ParamKey_MatrixTransform, &transform)
	missing := g.effect.Params.Missing(materials.ParamKey_Texture0, materials.ParamKey_MatrixTransform)
	assert.T(len(missing) == 0, "Effect parameters %v are unbound", missing)

	g.Rend.UpdateEffect(g.effect)
	g.Rend.DrawMesh(g.mesh, g.effect)
}

// FrameEnd runs after drawing and before the buffers are swapped, so the back buffer still holds this frame
func (g *CodeOnlyGame) FrameEnd() {

	if !g.screenshotRequested {
		return
	}
	g.screenshotRequested = false

	dir := config.ResolvePath(g.AssetDir, g.Cfg.Screenshot.Dir)
	path, err := assets.SaveScreenshot(dir, g.Rend.BackBuffer().ReadPixels(), time.Now())
	if err != nil {
		logging.ErrLog.Println(err)
		return
	}

	logging.InfoLog.Println("Saved screenshot to", path)
}

func (g *CodeOnlyGame) DeInit() {

	if g.mesh != nil {
		g.mesh.Delete()
		g.mesh = nil
	}

	if g.texture != nil {
		g.texture.Delete()
		g.texture = nil
	}

	if g.effect != nil {
		g.effect.Delete()
		g.effect = nil
	}

	g.isLoaded = false
}

func NewCodeOnlyGame(cfg config.Config, assetDir string, device renderer.Device, rend renderer.Render) *CodeOnlyGame {
	return &CodeOnlyGame{
		Cfg:      cfg,
		AssetDir: assetDir,
		Device:   device,
		Rend:     rend,
	}
}
