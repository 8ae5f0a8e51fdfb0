// Package picking resolves the world cell under a pointer coordinate
// by ray casting from the camera pose.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/metagrid/citywalk/internal/engine/locomotion"
	"github.com/metagrid/citywalk/internal/engine/world"
	"github.com/metagrid/citywalk/pkg/math"
)

// Params describes the virtual camera frustum used to build rays.
type Params struct {
	FOV         float32 // vertical field of view, radians
	Aspect      float32
	MaxDistance float32
}

// DefaultParams returns the standard picking frustum.
func DefaultParams() Params {
	return Params{
		FOV:         math32.Pi / 3,
		Aspect:      16.0 / 9.0,
		MaxDistance: 60,
	}
}

// Ray is a half-line in world space.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// RayFromPose builds a ray through the given normalized device
// coordinate (x right, y up, both in [-1,1]; (0,0) is screen center).
func RayFromPose(pose locomotion.Pose, ndcX, ndcY float32, p Params) Ray {
	cosPitch := math32.Cos(pose.Pitch)
	forward := math.Vec3{
		X: math32.Sin(pose.Yaw) * cosPitch,
		Y: math32.Sin(pose.Pitch),
		Z: math32.Cos(pose.Yaw) * cosPitch,
	}
	right := math.Vec3{X: math32.Cos(pose.Yaw), Z: -math32.Sin(pose.Yaw)}
	up := forward.Cross(right)

	tanHalf := math32.Tan(p.FOV / 2)
	dir := forward.
		Add(right.Scale(ndcX * tanHalf * p.Aspect)).
		Add(up.Scale(ndcY * tanHalf)).
		Normalize()

	return Ray{Origin: pose.Position, Direction: dir}
}

// IntersectAABB tests the ray against an axis-aligned box using the
// slab method. Returns the entry distance, or the exit distance when
// the ray starts inside the box.
func (r Ray) IntersectAABB(min, max math.Vec3) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{min.X, min.Y, min.Z}
	hi := [3]float32{max.X, max.Y, max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (lo[axis] - origin[axis]) / dir[axis]
			t2 := (hi[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectPlaneY intersects the ray with a horizontal plane.
func (r Ray) IntersectPlaneY(planeY float32) (x, z, t float32, ok bool) {
	if math32.Abs(r.Direction.Y) < 1e-4 {
		return 0, 0, 0, false // parallel
	}
	t = (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return 0, 0, 0, false // behind origin
	}
	return r.Origin.X + t*r.Direction.X, r.Origin.Z + t*r.Direction.Z, t, true
}

// PickCell resolves the cell under the pointer: the nearest building or
// ground hit within range. Road cells are not selectable and yield a
// miss, as does anything beyond MaxDistance.
func PickCell(ndcX, ndcY float32, pose locomotion.Pose, idx *world.Index, p Params) (world.CellID, bool) {
	ray := RayFromPose(pose, ndcX, ndcY, p)

	best := p.MaxDistance
	var cell world.CellID
	found := false

	for _, v := range idx.Volumes() {
		if t, hit := ray.IntersectAABB(v.Min, v.Max); hit && t < best {
			best = t
			cell = v.Cell
			found = true
		}
	}

	if x, z, t, ok := ray.IntersectPlaneY(0); ok && t < best {
		// Ground past the world edge belongs to no cell.
		if half := idx.HalfExtent(); x >= -half && x <= half && z >= -half && z <= half {
			cell = idx.CellAt(x, z)
			found = true
		}
	}

	if !found || idx.IsRoad(cell) {
		return world.CellID{}, false
	}
	return cell, true
}
