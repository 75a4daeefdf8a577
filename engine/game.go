package engine

import (
	"time"

	"github.com/bloeys/teapot/input"
	"github.com/bloeys/teapot/timing"
)

var (
	isRunning = false
)

// GameTime is the frame clock handed to games
type GameTime struct {
	// Total is the time since the engine started. It never decreases
	Total time.Duration
	// Elapsed is the time since the previous frame
	Elapsed    time.Duration
	FrameCount uint64
}

func (gt GameTime) TotalSeconds() float32 {
	return float32(gt.Total.Seconds())
}

// Loadable is implemented by things that create their resources once, before they are used
type Loadable interface {
	LoadContent() error
}

// Renderable is implemented by things that draw every frame
type Renderable interface {
	Draw(gt GameTime)
}

type Game interface {
	Loadable
	Renderable

	Update(gt GameTime)
	FrameEnd()
	DeInit()
}

// host is what the game loop needs from a window
type host interface {
	pollEvents()
	endFrame()
	swapBuffers()
	elapsed() time.Duration
}

func (w *Window) elapsed() time.Duration {
	return timing.Elapsed()
}

// Run loads the game content then runs frames until Quit is called or the window is closed.
// If loading fails no frame is run and the error is returned.
func Run(g Game, w *Window) error {
	return run(g, w)
}

func run(g Game, h host) error {

	if err := g.LoadContent(); err != nil {
		return err
	}

	isRunning = true
	input.ClearQuitRequest()

	gt := GameTime{}
	for isRunning {

		h.pollEvents()
		if input.IsQuitClicked() {
			break
		}

		total := h.elapsed()
		if total < gt.Total {
			total = gt.Total
		}

		gt.Elapsed = total - gt.Total
		gt.Total = total

		g.Update(gt)
		g.Draw(gt)

		g.FrameEnd()
		h.endFrame()
		h.swapBuffers()

		timing.FrameEnded()
		gt.FrameCount++
	}

	isRunning = false
	g.DeInit()

	return nil
}

// Quit stops the game loop once the current frame is done
func Quit() {
	isRunning = false
}
