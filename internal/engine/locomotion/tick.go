package locomotion

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/metagrid/citywalk/pkg/math"
)

// Tick advances the simulation by dt seconds: samples input, integrates
// orientation and position, resolves collision, applies vertical
// physics and camera bob, and publishes the resulting pose.
func (e *Engine) Tick(dt float32) {
	if dt <= 0 {
		return
	}

	in := e.input.Sample()
	st := &e.state
	frames := dt * baselineRate
	alpha := math.DampFactor(smoothingRate, dt)

	// Rotation intake: keyboard rate plus accumulated pointer deltas.
	if in.RotateLeft {
		st.TargetYaw += e.opts.RotationRate * dt
	}
	if in.RotateRight {
		st.TargetYaw -= e.opts.RotationRate * dt
	}
	st.TargetYaw -= in.DeltaYaw * e.opts.MouseSensitivity
	pitchDelta := -in.DeltaPitch * e.opts.MouseSensitivity
	if e.opts.InvertY {
		pitchDelta = -pitchDelta
	}
	st.TargetPitch = math.Clamp(st.TargetPitch+pitchDelta, -math32.Pi/2, math32.Pi/2)

	// Rotation smoothing along the shortest yaw path, so crossing the
	// +-Pi seam never spins the long way around.
	yawDelta := math.WrapAngle(st.TargetYaw - st.Yaw)
	st.Yaw = math.WrapAngle(st.Yaw + yawDelta*alpha)
	st.TargetYaw = math.WrapAngle(st.TargetYaw)
	st.Pitch += (st.TargetPitch - st.Pitch) * alpha

	// Horizontal direction from the smoothed yaw. Opposing keys cancel.
	var axis float32
	if in.Forward {
		axis++
	}
	if in.Backward {
		axis--
	}

	// Terrain speed: roads are full speed, everything else half.
	cell := e.world.CellAt(st.Position.X, st.Position.Z)
	e.isOnRoad = e.world.IsRoad(cell)
	speed := e.opts.BaseSpeed
	if !e.isOnRoad {
		speed *= offRoadSpeedFactor
	}

	// Candidate position and collision. The target accumulates full
	// input displacement; the smoothed position chases it below. A
	// colliding candidate collapses back to the last valid position
	// (wall stop, no sliding).
	if axis != 0 {
		dir := math.Vec3{X: math32.Sin(st.Yaw), Z: math32.Cos(st.Yaw)}.Scale(axis).Normalize()
		candidate := st.Target.Add(dir.Scale(speed * frames))
		half := e.world.HalfExtent()
		candidate.X = math.Clamp(candidate.X, -half, half)
		candidate.Z = math.Clamp(candidate.Z, -half, half)

		if e.collides(candidate) {
			st.Target.X = st.Position.X
			st.Target.Z = st.Position.Z
		} else {
			st.Target.X = candidate.X
			st.Target.Z = candidate.Z
		}
	}

	// Horizontal smoothing toward the accepted candidate.
	st.Position.X += (st.Target.X - st.Position.X) * alpha
	st.Position.Z += (st.Target.Z - st.Position.Z) * alpha

	// Vertical physics. With gravity disabled the height is pinned
	// below and jumps are ignored.
	if e.opts.GravityEnabled {
		if in.Jump && st.Vertical == Grounded && st.JumpReady {
			st.VerticalVelocity = jumpVelocity
			st.Vertical = Airborne
			st.JumpReady = false
			e.log.Debug("jump", zap.Float32("y", st.Position.Y))
		}
		if st.Vertical == Airborne {
			st.VerticalVelocity -= gravityPerFrame * frames
			st.Position.Y += st.VerticalVelocity * frames

			groundY := groundHeight + e.opts.EyeHeight + st.HeightOffset
			if st.VerticalVelocity <= 0 && st.Position.Y <= groundY {
				st.Position.Y = groundY
				st.VerticalVelocity = 0
				st.Vertical = Grounded
				st.JumpReady = true
			}
		}
	}

	// Operator height trim.
	if in.Up {
		st.HeightOffset += heightRatePerFrame * frames
	}
	if in.Down {
		st.HeightOffset -= heightRatePerFrame * frames
	}
	st.HeightOffset = math.Clamp(st.HeightOffset, minHeightOffset, maxHeightOffset)

	if st.Vertical == Grounded {
		st.Position.Y = groundHeight + e.opts.EyeHeight + st.HeightOffset
	}

	// The published moving flag follows the raw key flags; consumers
	// like footstep audio key off it. Camera bob is gated on the net
	// axis instead, so opposing keys that cancel to zero displacement
	// never swing the camera. The phase resets the moment movement
	// stops so the next step never starts mid-swing.
	e.isMoving = in.Forward || in.Backward
	if axis != 0 && e.opts.CameraBobEnabled {
		st.BobPhase += dt * bobFrequency
		e.bobOffset = math32.Sin(st.BobPhase) * bobAmplitude
	} else {
		st.BobPhase = 0
		e.bobOffset = 0
	}

	// World bounds clamp.
	half := e.world.HalfExtent()
	st.Position.X = math.Clamp(st.Position.X, -half, half)
	st.Position.Z = math.Clamp(st.Position.Z, -half, half)
	st.Target.Y = st.Position.Y

	// Publish.
	if len(e.subscribers) > 0 {
		pose := e.Pose()
		for _, fn := range e.subscribers {
			fn(pose)
		}
	}
}

// collides reports whether a player box at the candidate position
// overlaps any building volume. The box always spans the grounded
// height: the jump apex clears low roofs, and tracking the airborne Y
// would let the player drop into a footprint and get wall-stopped
// inside it with no way back out.
func (e *Engine) collides(candidate math.Vec3) bool {
	if !e.opts.CollisionEnabled {
		return false
	}

	min := math.Vec3{X: candidate.X - playerRadius, Y: groundHeight, Z: candidate.Z - playerRadius}
	max := math.Vec3{X: candidate.X + playerRadius, Y: groundHeight + playerHeight, Z: candidate.Z + playerRadius}

	for _, v := range e.world.Volumes() {
		if v.Intersects(min, max) {
			return true
		}
	}
	return false
}
