// Package world builds lookup structures over a city grid snapshot:
// a road membership set and collision volumes for completed buildings.
package world

import (
	"github.com/chewxy/math32"

	"github.com/metagrid/citywalk/pkg/math"
)

// Cell is one grid cell of the world snapshot. Cells are immutable once
// the snapshot is taken; the engine never mutates them.
type Cell struct {
	GridX                int
	GridZ                int
	IsRoad               bool
	HasCompletedBuilding bool
	Floors               int
}

// CellID identifies a grid cell.
type CellID struct {
	X, Z int
}

// Volume is an axis-aligned collision box derived from a building.
type Volume struct {
	Min, Max math.Vec3
	Cell     CellID
}

// Intersects reports whether the volume overlaps the given box.
func (v Volume) Intersects(min, max math.Vec3) bool {
	return min.X <= v.Max.X && max.X >= v.Min.X &&
		min.Y <= v.Max.Y && max.Y >= v.Min.Y &&
		min.Z <= v.Max.Z && max.Z >= v.Min.Z
}

// Params controls how the snapshot maps to world space.
type Params struct {
	GridSize          float32 // world units per cell
	FloorHeight       float32 // building height per floor
	BuildingFootprint float32 // footprint as a fraction of a cell
	HalfExtentCells   int     // world half extent in cells
}

// DefaultParams returns the standard city layout parameters.
func DefaultParams() Params {
	return Params{
		GridSize:          1.0,
		FloorHeight:       1.2,
		BuildingFootprint: 0.7,
		HalfExtentCells:   50,
	}
}

// Index holds the per-snapshot lookup structures. Built once per world
// load and never mutated; rebuilt from scratch when the snapshot changes.
type Index struct {
	params  Params
	roads   map[CellID]struct{}
	volumes []Volume
}

// BuildIndex constructs the road set and collision volumes from a
// snapshot. Malformed cells (non-positive floor count on a completed
// building, coordinates outside the world extent) contribute neither a
// road entry nor a volume.
func BuildIndex(cells []Cell, params Params) *Index {
	ix := &Index{
		params: params,
		roads:  make(map[CellID]struct{}),
	}

	half := params.HalfExtentCells
	for _, c := range cells {
		if c.GridX < -half || c.GridX > half || c.GridZ < -half || c.GridZ > half {
			continue
		}
		id := CellID{c.GridX, c.GridZ}
		if c.IsRoad {
			ix.roads[id] = struct{}{}
			continue
		}
		if !c.HasCompletedBuilding || c.Floors <= 0 {
			continue
		}
		ix.volumes = append(ix.volumes, ix.buildingVolume(id, c.Floors))
	}

	return ix
}

// buildingVolume derives the collision box for a building: footprint is
// a fixed fraction of the cell centered on the cell, height comes from
// the floor count.
func (ix *Index) buildingVolume(id CellID, floors int) Volume {
	cx := float32(id.X) * ix.params.GridSize
	cz := float32(id.Z) * ix.params.GridSize
	halfFoot := ix.params.GridSize * ix.params.BuildingFootprint / 2
	height := float32(floors) * ix.params.FloorHeight

	return Volume{
		Min:  math.Vec3{X: cx - halfFoot, Y: 0, Z: cz - halfFoot},
		Max:  math.Vec3{X: cx + halfFoot, Y: height, Z: cz + halfFoot},
		Cell: id,
	}
}

// IsRoad reports road membership for a grid cell.
func (ix *Index) IsRoad(id CellID) bool {
	_, ok := ix.roads[id]
	return ok
}

// Volumes returns the collision volumes. Callers must not mutate.
func (ix *Index) Volumes() []Volume {
	return ix.volumes
}

// CellAt returns the nearest grid cell for a world-space position.
func (ix *Index) CellAt(x, z float32) CellID {
	return CellID{
		X: int(math32.Round(x / ix.params.GridSize)),
		Z: int(math32.Round(z / ix.params.GridSize)),
	}
}

// HalfExtent returns the world half extent in world units.
func (ix *Index) HalfExtent() float32 {
	return float32(ix.params.HalfExtentCells) * ix.params.GridSize
}

// GridSize returns world units per cell.
func (ix *Index) GridSize() float32 {
	return ix.params.GridSize
}

// RoadCount returns the number of road cells, for logging.
func (ix *Index) RoadCount() int {
	return len(ix.roads)
}
