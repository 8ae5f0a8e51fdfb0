package locomotion

import "github.com/metagrid/citywalk/pkg/math"

// VerticalState is the vertical-motion state machine.
type VerticalState uint8

const (
	// Grounded: resting on the ground plane, eligible to jump.
	Grounded VerticalState = iota
	// Airborne: under gravity after a jump.
	Airborne
)

// String returns a readable state name for logging.
func (v VerticalState) String() string {
	if v == Airborne {
		return "airborne"
	}
	return "grounded"
}

// Pose is the published camera pose.
type Pose struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
}

// State is the full locomotion state, owned by the Engine and advanced
// once per tick. Target fields accumulate raw input; the smoothed
// fields ease toward them so on-screen motion stays stable across
// irregular tick intervals.
type State struct {
	Position math.Vec3 // authoritative camera position
	Target   math.Vec3 // candidate position, pre-smoothing

	Yaw, Pitch             float32 // smoothed orientation
	TargetYaw, TargetPitch float32

	VerticalVelocity float32
	Vertical         VerticalState
	JumpReady        bool

	HeightOffset float32 // operator vertical trim, independent of gravity
	BobPhase     float32 // camera bob accumulator, 0 while standing
}
