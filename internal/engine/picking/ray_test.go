package picking

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/metagrid/citywalk/internal/engine/locomotion"
	"github.com/metagrid/citywalk/internal/engine/world"
	"github.com/metagrid/citywalk/pkg/math"
)

func buildIndex(roads [][2]int, buildings map[[2]int]int) *world.Index {
	var cells []world.Cell
	for _, r := range roads {
		cells = append(cells, world.Cell{GridX: r[0], GridZ: r[1], IsRoad: true})
	}
	for pos, floors := range buildings {
		cells = append(cells, world.Cell{
			GridX:                pos[0],
			GridZ:                pos[1],
			HasCompletedBuilding: true,
			Floors:               floors,
		})
	}
	return world.BuildIndex(cells, world.DefaultParams())
}

func eyePose(yaw, pitch float32) locomotion.Pose {
	return locomotion.Pose{
		Position: math.Vec3{X: 0, Y: 1.6, Z: 0},
		Yaw:      yaw,
		Pitch:    pitch,
	}
}

func TestRayFromPose_CenterMatchesForward(t *testing.T) {
	ray := RayFromPose(eyePose(math32.Pi/2, 0), 0, 0, DefaultParams())

	if math32.Abs(ray.Direction.X-1) > 1e-5 ||
		math32.Abs(ray.Direction.Y) > 1e-5 ||
		math32.Abs(ray.Direction.Z) > 1e-5 {
		t.Errorf("center ray = %v, want +x", ray.Direction)
	}
}

func TestIntersectAABB(t *testing.T) {
	ray := Ray{
		Origin:    math.Vec3{X: 0, Y: 1.6, Z: 0},
		Direction: math.Vec3{X: 1, Y: 0, Z: 0},
	}

	// Two-floor building at (2,0): box [1.65,0,-0.35]-[2.35,2.4,0.35]
	min := math.Vec3{X: 1.65, Y: 0, Z: -0.35}
	max := math.Vec3{X: 2.35, Y: 2.4, Z: 0.35}

	tHit, hit := ray.IntersectAABB(min, max)
	if !hit {
		t.Fatal("expected hit")
	}
	if math32.Abs(tHit-1.65) > 1e-5 {
		t.Errorf("entry distance = %v, want 1.65", tHit)
	}

	// Pointing away misses
	ray.Direction = math.Vec3{X: -1}
	if _, hit := ray.IntersectAABB(min, max); hit {
		t.Error("ray pointing away should miss")
	}
}

func TestPickCell_Building(t *testing.T) {
	idx := buildIndex(nil, map[[2]int]int{{2, 0}: 2})
	pose := eyePose(math32.Pi/2, 0) // facing +x at eye height

	cell, ok := PickCell(0, 0, pose, idx, DefaultParams())
	if !ok {
		t.Fatal("expected building hit")
	}
	if cell != (world.CellID{X: 2, Z: 0}) {
		t.Errorf("picked %v, want (2,0)", cell)
	}
}

func TestPickCell_GroundCell(t *testing.T) {
	idx := buildIndex(nil, nil)
	pose := eyePose(math32.Pi/2, -0.6) // looking down-forward

	cell, ok := PickCell(0, 0, pose, idx, DefaultParams())
	if !ok {
		t.Fatal("expected ground hit")
	}
	// Eye 1.6 high, pitch -0.6: ground hit around x=2.3
	if cell != (world.CellID{X: 2, Z: 0}) {
		t.Errorf("picked %v, want (2,0)", cell)
	}
}

func TestPickCell_RoadIsNotSelectable(t *testing.T) {
	idx := buildIndex([][2]int{{2, 0}}, nil)
	pose := eyePose(math32.Pi/2, -0.6)

	if cell, ok := PickCell(0, 0, pose, idx, DefaultParams()); ok {
		t.Errorf("road cell must not be selectable, got %v", cell)
	}
}

func TestPickCell_NearestWins(t *testing.T) {
	idx := buildIndex(nil, map[[2]int]int{{2, 0}: 2, {4, 0}: 2})
	pose := eyePose(math32.Pi/2, 0)

	cell, ok := PickCell(0, 0, pose, idx, DefaultParams())
	if !ok || cell != (world.CellID{X: 2, Z: 0}) {
		t.Errorf("picked %v (ok=%v), want nearest building (2,0)", cell, ok)
	}
}

func TestPickCell_OutOfRange(t *testing.T) {
	idx := buildIndex(nil, map[[2]int]int{{2, 0}: 2})
	pose := eyePose(math32.Pi/2, 0)

	p := DefaultParams()
	p.MaxDistance = 1.0 // building face is 1.65 away

	if cell, ok := PickCell(0, 0, pose, idx, p); ok {
		t.Errorf("hit beyond max distance should miss, got %v", cell)
	}
}

func TestPickCell_GroundBeyondWorldEdge(t *testing.T) {
	idx := buildIndex(nil, nil)
	// Shallow downward glance: the ground hit lands about 53 units out,
	// inside pick range but past the world half extent of 50.
	pose := eyePose(math32.Pi/2, -0.03)

	if cell, ok := PickCell(0, 0, pose, idx, DefaultParams()); ok {
		t.Errorf("ground beyond the world edge must miss, got %v", cell)
	}
}

func TestPickCell_SkywardMiss(t *testing.T) {
	idx := buildIndex(nil, nil)
	pose := eyePose(0, 1.2) // looking up

	if cell, ok := PickCell(0, 0, pose, idx, DefaultParams()); ok {
		t.Errorf("looking at the sky should miss, got %v", cell)
	}
}

func TestPickCell_OffCenterNDC(t *testing.T) {
	// Building to the right of the view axis: picked only with an NDC
	// offset toward it.
	idx := buildIndex(nil, map[[2]int]int{{3, 3}: 3})
	pose := eyePose(0, 0) // facing +z from origin

	if _, ok := PickCell(0, 0, pose, idx, DefaultParams()); ok {
		t.Fatal("center ray should miss the offset building")
	}

	// ndcX sweep toward +x should eventually hit cell (3,3)
	found := false
	for ndcX := float32(0.1); ndcX <= 1.0; ndcX += 0.05 {
		if cell, ok := PickCell(ndcX, 0, pose, idx, DefaultParams()); ok {
			if cell == (world.CellID{X: 3, Z: 3}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("NDC offset toward the building never picked it")
	}
}
