package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Adapter translates SDL2 events into State mutations. It owns the
// relative-mouse (pointer lock) toggle because SDL reports absolute
// coordinates otherwise.
type Adapter struct {
	state *State
}

// NewAdapter creates an adapter feeding the given state.
func NewAdapter(state *State) *Adapter {
	return &Adapter{state: state}
}

// Poll drains the SDL event queue into the input state.
// Returns true if the host should quit.
func (a *Adapter) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if a.HandleEvent(event) {
			return true
		}
	}
	return false
}

// HandleEvent applies a single SDL event. Returns true on quit.
func (a *Adapter) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true

	case *sdl.KeyboardEvent:
		held := e.Type == sdl.KEYDOWN
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_W, sdl.SCANCODE_UP:
			a.state.SetForward(held)
		case sdl.SCANCODE_S, sdl.SCANCODE_DOWN:
			a.state.SetBackward(held)
		case sdl.SCANCODE_A, sdl.SCANCODE_LEFT:
			a.state.SetRotateLeft(held)
		case sdl.SCANCODE_D, sdl.SCANCODE_RIGHT:
			a.state.SetRotateRight(held)
		case sdl.SCANCODE_E, sdl.SCANCODE_PAGEUP:
			a.state.SetUp(held)
		case sdl.SCANCODE_Q, sdl.SCANCODE_PAGEDOWN:
			a.state.SetDown(held)
		case sdl.SCANCODE_SPACE:
			if held && e.Repeat == 0 {
				a.state.RequestJump()
			}
		case sdl.SCANCODE_ESCAPE:
			if held {
				return true
			}
		}

	case *sdl.MouseMotionEvent:
		a.state.AddPointerDelta(float32(e.XRel), float32(e.YRel))

	case *sdl.MouseButtonEvent:
		switch e.Button {
		case sdl.BUTTON_LEFT:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				a.state.BeginDrag()
			} else {
				a.state.EndDrag()
			}
		case sdl.BUTTON_MIDDLE:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				locked := a.state.TogglePointerLock()
				sdl.SetRelativeMouseMode(locked)
			}
		}
	}

	return false
}
