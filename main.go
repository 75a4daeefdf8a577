package main

import (
	"path/filepath"

	"github.com/bloeys/teapot/config"
	"github.com/bloeys/teapot/engine"
	"github.com/bloeys/teapot/game"
	"github.com/bloeys/teapot/logging"
	"github.com/bloeys/teapot/renderer/rend3dgl"
)

func main() {

	exeDir, err := config.ExecutableDir()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to find executable directory. Err:", err)
	}

	cfg, err := config.Load(filepath.Join(exeDir, config.FileName))
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}
	defer engine.DeInit()

	//Create window
	winFlags := engine.WindowFlags_ALLOW_HIGHDPI
	if cfg.Window.Resizable {
		winFlags |= engine.WindowFlags_RESIZABLE
	}

	rend := rend3dgl.NewRend3DGL(uint32(cfg.Window.Width), uint32(cfg.Window.Height))
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, winFlags, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()
	window.ShowFps = cfg.Window.ShowFps

	engine.SetMSAA(cfg.Window.MSAA)
	engine.SetVSync(cfg.Window.VSync)
	engine.SetSrgbFramebuffer(cfg.Window.Srgb)

	g := game.NewCodeOnlyGame(cfg, exeDir, rend, rend)
	if err := engine.Run(g, window); err != nil {
		logging.ErrLog.Fatalln("Failed to load content. Err:", err)
	}
}
