// Package input tracks held movement keys, mouse rotation deltas, and
// the pointer rotate mode between simulation ticks.
package input

import "sync"

// RotateMode describes how mouse motion is currently interpreted.
type RotateMode uint8

const (
	// ModeFree: mouse motion is ignored for rotation.
	ModeFree RotateMode = iota
	// ModePointerLocked: relative mouse motion rotates the camera
	// continuously (pointer-lock look-around).
	ModePointerLocked
	// ModeDragging: mouse motion rotates the camera while the left
	// button is held.
	ModeDragging
)

// String returns a readable mode name for logging.
func (m RotateMode) String() string {
	switch m {
	case ModePointerLocked:
		return "pointer-locked"
	case ModeDragging:
		return "dragging"
	default:
		return "free"
	}
}

// Sample is one tick's worth of input, taken atomically from State.
// Deltas are raw pixels; the engine applies sensitivity.
type Sample struct {
	Forward, Backward       bool
	RotateLeft, RotateRight bool
	Up, Down                bool
	Jump                    bool
	Mode                    RotateMode
	DeltaYaw, DeltaPitch    float32
}

// State accumulates input events between ticks. Event handlers mutate
// it from the host's event loop; the simulation tick is the single
// consumer via Sample(). A mutex guards the accumulators so multi-
// threaded hosts are safe too.
type State struct {
	mu sync.Mutex

	forward, backward       bool
	rotateLeft, rotateRight bool
	up, down                bool
	jump                    bool

	mode       RotateMode
	deltaYaw   float32
	deltaPitch float32
}

// New creates an empty input state in free rotate mode.
func New() *State {
	return &State{}
}

// SetForward updates the held state of the forward key.
func (s *State) SetForward(held bool) { s.setKey(&s.forward, held) }

// SetBackward updates the held state of the backward key.
func (s *State) SetBackward(held bool) { s.setKey(&s.backward, held) }

// SetRotateLeft updates the held state of the rotate-left key.
func (s *State) SetRotateLeft(held bool) { s.setKey(&s.rotateLeft, held) }

// SetRotateRight updates the held state of the rotate-right key.
func (s *State) SetRotateRight(held bool) { s.setKey(&s.rotateRight, held) }

// SetUp updates the held state of the height-up key.
func (s *State) SetUp(held bool) { s.setKey(&s.up, held) }

// SetDown updates the held state of the height-down key.
func (s *State) SetDown(held bool) { s.setKey(&s.down, held) }

func (s *State) setKey(key *bool, held bool) {
	s.mu.Lock()
	*key = held
	s.mu.Unlock()
}

// RequestJump registers an edge-triggered jump. It stays pending until
// the next Sample() consumes it.
func (s *State) RequestJump() {
	s.mu.Lock()
	s.jump = true
	s.mu.Unlock()
}

// AddPointerDelta accumulates raw mouse motion. Deltas are additive
// across events so fast movement between ticks is never lost. Motion is
// ignored in free mode.
func (s *State) AddPointerDelta(dx, dy float32) {
	s.mu.Lock()
	if s.mode != ModeFree {
		s.deltaYaw += dx
		s.deltaPitch += dy
	}
	s.mu.Unlock()
}

// BeginDrag enters drag-rotation on left-button-down. Inert while
// pointer-locked.
func (s *State) BeginDrag() {
	s.mu.Lock()
	if s.mode == ModeFree {
		s.mode = ModeDragging
	}
	s.mu.Unlock()
}

// EndDrag leaves drag-rotation on left-button-up.
func (s *State) EndDrag() {
	s.mu.Lock()
	if s.mode == ModeDragging {
		s.mode = ModeFree
	}
	s.mu.Unlock()
}

// TogglePointerLock flips between free and pointer-locked mode on
// middle-button click and returns whether the pointer is now locked.
// A toggle while dragging first cancels the drag.
func (s *State) TogglePointerLock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModePointerLocked {
		s.mode = ModeFree
		return false
	}
	s.mode = ModePointerLocked
	return true
}

// Mode returns the current rotate mode.
func (s *State) Mode() RotateMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Sample atomically reads the current input and clears the one-shot
// parts: the pointer delta accumulator and the pending jump.
func (s *State) Sample() Sample {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Sample{
		Forward:     s.forward,
		Backward:    s.backward,
		RotateLeft:  s.rotateLeft,
		RotateRight: s.rotateRight,
		Up:          s.up,
		Down:        s.down,
		Jump:        s.jump,
		Mode:        s.mode,
		DeltaYaw:    s.deltaYaw,
		DeltaPitch:  s.deltaPitch,
	}

	s.jump = false
	s.deltaYaw = 0
	s.deltaPitch = 0

	return out
}
