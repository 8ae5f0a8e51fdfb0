package session

import (
	"testing"

	"github.com/metagrid/citywalk/internal/config"
	"github.com/metagrid/citywalk/internal/engine/world"
)

func newTestSession(t *testing.T, cells []world.Cell) *Session {
	t.Helper()
	s, err := New(config.Default(), cells, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestDemoWorld_Layout(t *testing.T) {
	cells := DemoWorld(10)

	want := 21 * 21
	if len(cells) != want {
		t.Fatalf("DemoWorld(10) has %d cells, want %d", len(cells), want)
	}

	var roads, buildings int
	for _, c := range cells {
		if c.IsRoad {
			roads++
			if c.HasCompletedBuilding {
				t.Fatalf("road cell (%d,%d) has a building", c.GridX, c.GridZ)
			}
		}
		if c.HasCompletedBuilding {
			buildings++
			if c.Floors < 1 || c.Floors > 4 {
				t.Fatalf("building at (%d,%d) has %d floors", c.GridX, c.GridZ, c.Floors)
			}
		}
		// Spawn plaza stays clear
		if c.GridX > -3 && c.GridX < 3 && c.GridZ > -3 && c.GridZ < 3 && c.HasCompletedBuilding {
			t.Fatalf("building inside spawn plaza at (%d,%d)", c.GridX, c.GridZ)
		}
	}
	if roads == 0 || buildings == 0 {
		t.Errorf("demo world needs roads and buildings, got %d/%d", roads, buildings)
	}
}

func TestDemoWorld_Deterministic(t *testing.T) {
	a := DemoWorld(8)
	b := DemoWorld(8)
	if len(a) != len(b) {
		t.Fatal("demo world size not stable")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between generations", i)
		}
	}
}

func TestSession_UpdateAdvancesEngine(t *testing.T) {
	s := newTestSession(t, DemoWorld(10))
	defer s.Close()

	s.Input().SetForward(true)
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
	}

	if pos := s.Engine().State().Position; pos.Z <= 0 {
		t.Errorf("forward input did not move player: %v", pos)
	}
	if !s.Engine().IsMoving() {
		t.Error("engine should report moving")
	}
}

func TestSession_MinimapTeleport(t *testing.T) {
	s := newTestSession(t, DemoWorld(10))
	defer s.Close()

	// Clicks do nothing until teleport mode is armed.
	if s.ClickMinimap(100, 60) {
		t.Error("click outside teleport mode must be ignored")
	}

	s.SetTeleportMode(true)
	mini := s.Minimap()
	wantX, wantZ, ok := mini.WorldAt(100, 60)
	if !ok {
		t.Fatal("test pixel should be inside the map")
	}

	if !s.ClickMinimap(100, 60) {
		t.Fatal("teleport click not handled")
	}

	pos := s.Engine().State().Position
	if approx32(pos.X, wantX) && approx32(pos.Z, wantZ) {
		return
	}
	t.Errorf("teleported to (%v, %v), want (%v, %v)", pos.X, pos.Z, wantX, wantZ)
}

func approx32(a, b float32) bool {
	d := a - b
	return d > -1e-3 && d < 1e-3
}

func TestSession_PickAt(t *testing.T) {
	// A single tall building straight ahead of the spawn facing.
	cells := []world.Cell{
		{GridX: 0, GridZ: 4, HasCompletedBuilding: true, Floors: 3},
	}
	s := newTestSession(t, cells)
	defer s.Close()

	cell, ok := s.PickAt(0, 0)
	if !ok {
		t.Fatal("expected pick hit on the building ahead")
	}
	if cell != (world.CellID{X: 0, Z: 4}) {
		t.Errorf("picked %v, want (0,4)", cell)
	}
}

func TestSession_PickAtUsesCenterWhenPointerLocked(t *testing.T) {
	cells := []world.Cell{
		{GridX: 0, GridZ: 4, HasCompletedBuilding: true, Floors: 3},
	}
	s := newTestSession(t, cells)
	defer s.Close()

	s.Input().TogglePointerLock()

	// Wildly off-center NDC still picks through the screen center.
	cell, ok := s.PickAt(0.9, -0.9)
	if !ok || cell != (world.CellID{X: 0, Z: 4}) {
		t.Errorf("pointer-locked pick = %v (ok=%v), want center hit (0,4)", cell, ok)
	}
}
