// The input package tracks keyboard state and quit requests, with higher level
// constructs like pressed/released this frame.
//
// State is fed by the engine from SDL events, once per frame, before the game updates.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                sdl.Keycode
	IsPressedThisFrame bool
}

var (
	keyMap = make(map[sdl.Keycode]keyState)

	// isQuitRequested stays set until ClearQuitRequest is called
	isQuitRequested bool
)

// EventLoopStart resets per-frame state. Call it before handling the events of a new frame
func EventLoopStart() {

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		keyMap[k] = v
	}
}

// ClearKeyboardState forgets all keys, e.g. when the window loses focus and release events won't arrive
func ClearKeyboardState() {
	clear(keyMap)
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

// RequestQuit asks the engine to stop after the current frame
func RequestQuit() {
	isQuitRequested = true
}

func ClearQuitRequest() {
	isQuitRequested = false
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	ks.IsPressedThisFrame = e.State == sdl.PRESSED && e.Repeat == 0

	keyMap[ks.Key] = ks
}

func KeyClicked(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}
