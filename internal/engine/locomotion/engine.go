// Package locomotion turns sampled input into a camera pose: per-tick
// orientation and position integration, terrain-dependent speed,
// building collision, gravity/jump physics, and camera bob.
package locomotion

import (
	"errors"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/metagrid/citywalk/internal/engine/input"
	"github.com/metagrid/citywalk/internal/engine/world"
	"github.com/metagrid/citywalk/pkg/math"
)

// Tuning constants. Speeds and rates are per frame at the 60 Hz
// baseline; ticks scale them by dt*baselineRate so behavior is the same
// at any frame rate.
const (
	baselineRate  = 60.0
	smoothingRate = 15.0 // exponential easing for rotation and position

	offRoadSpeedFactor = 0.5

	playerRadius = 0.3
	playerHeight = 1.7
	groundHeight = 0.0

	gravityPerFrame = 0.012
	jumpVelocity    = 0.18

	minHeightOffset    = -0.5
	maxHeightOffset    = 2.0
	heightRatePerFrame = 0.04

	bobFrequency = 10.0 // rad/s
	bobAmplitude = 0.045
)

// Options is the engine's construction-time configuration. There is no
// runtime reconfiguration; rebuild the engine instead.
type Options struct {
	BaseSpeed        float32 // world units per frame at 60 Hz
	EyeHeight        float32
	GravityEnabled   bool
	CollisionEnabled bool
	CameraBobEnabled bool

	MouseSensitivity float32 // radians per pixel
	RotationRate     float32 // radians per second (keyboard)
	InvertY          bool
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		BaseSpeed:        0.05,
		EyeHeight:        1.6,
		GravityEnabled:   true,
		CollisionEnabled: true,
		CameraBobEnabled: true,
		MouseSensitivity: 0.002,
		RotationRate:     2.0,
	}
}

// Engine is the per-tick locomotion state machine. It is the sole
// writer of its State; input handlers only touch the input.State
// accumulators, and subscribers only read published poses.
type Engine struct {
	opts  Options
	world *world.Index
	input *input.State

	state     State
	isMoving  bool
	isOnRoad  bool
	bobOffset float32

	subscribers []func(Pose)
	log         *zap.Logger
}

// New creates an engine over a built world index. The spawn point is
// the world origin at eye height.
func New(opts Options, idx *world.Index, in *input.State, log *zap.Logger) (*Engine, error) {
	if idx == nil {
		return nil, errors.New("locomotion: world index is required")
	}
	if in == nil {
		return nil, errors.New("locomotion: input state is required")
	}
	if opts.BaseSpeed <= 0 {
		return nil, errors.New("locomotion: base speed must be positive")
	}
	if opts.EyeHeight <= 0 {
		return nil, errors.New("locomotion: eye height must be positive")
	}
	if log == nil {
		log = zap.NewNop()
	}

	spawn := math.Vec3{X: 0, Y: groundHeight + opts.EyeHeight, Z: 0}
	e := &Engine{
		opts:  opts,
		world: idx,
		input: in,
		state: State{
			Position:  spawn,
			Target:    spawn,
			Vertical:  Grounded,
			JumpReady: true,
		},
		log: log,
	}

	log.Debug("locomotion engine created",
		zap.Float32("baseSpeed", opts.BaseSpeed),
		zap.Float32("eyeHeight", opts.EyeHeight),
		zap.Bool("collision", opts.CollisionEnabled),
		zap.Bool("gravity", opts.GravityEnabled))

	return e, nil
}

// OnPose registers a subscriber called with the published pose after
// every tick. Register before the first tick; not safe to call
// concurrently with Tick.
func (e *Engine) OnPose(fn func(Pose)) {
	e.subscribers = append(e.subscribers, fn)
}

// Pose returns the current camera pose, including the bob render offset.
func (e *Engine) Pose() Pose {
	p := Pose{Position: e.state.Position, Yaw: e.state.Yaw, Pitch: e.state.Pitch}
	p.Position.Y += e.bobOffset
	return p
}

// State returns a copy of the locomotion state.
func (e *Engine) State() State {
	return e.state
}

// IsMoving reports whether translation input was held last tick.
// Rotation-only input does not count; footstep consumers depend on that.
func (e *Engine) IsMoving() bool {
	return e.isMoving
}

// IsOnRoad reports whether the player stood on a road cell last tick.
func (e *Engine) IsOnRoad() bool {
	return e.isOnRoad
}

// SetOrientation sets the current and target orientation at once,
// bypassing smoothing. Used when seeding a spawn facing.
func (e *Engine) SetOrientation(yaw, pitch float32) {
	yaw = math.WrapAngle(yaw)
	pitch = math.Clamp(pitch, -math32.Pi/2, math32.Pi/2)
	e.state.Yaw, e.state.TargetYaw = yaw, yaw
	e.state.Pitch, e.state.TargetPitch = pitch, pitch
}

// Teleport moves the player to the given horizontal position,
// preserving the current height trim. Vertical motion is reset so the
// player lands standing, and the smoothed position snaps so there is no
// visible slide from the old location.
func (e *Engine) Teleport(x, z float32) {
	half := e.world.HalfExtent()
	x = math.Clamp(x, -half, half)
	z = math.Clamp(z, -half, half)

	st := &e.state
	st.Position.X, st.Position.Z = x, z
	st.Position.Y = groundHeight + e.opts.EyeHeight + st.HeightOffset
	st.Target = st.Position
	st.VerticalVelocity = 0
	st.Vertical = Grounded
	st.JumpReady = true
	st.BobPhase = 0
	e.bobOffset = 0

	e.log.Debug("teleport", zap.Float32("x", x), zap.Float32("z", z))
}
