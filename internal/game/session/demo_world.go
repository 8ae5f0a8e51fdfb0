package session

import "github.com/metagrid/citywalk/internal/engine/world"

// DemoWorld generates a deterministic city snapshot for the standalone
// host: a road grid every fourth row and column, with buildings of
// varying height scattered over the remaining blocks. The spawn cell
// and its neighbors stay clear.
func DemoWorld(halfExtent int) []world.Cell {
	var cells []world.Cell
	for gx := -halfExtent; gx <= halfExtent; gx++ {
		for gz := -halfExtent; gz <= halfExtent; gz++ {
			c := world.Cell{GridX: gx, GridZ: gz}

			if gx%4 == 0 || gz%4 == 0 {
				c.IsRoad = true
				cells = append(cells, c)
				continue
			}

			// Keep a clear plaza around the spawn point.
			if gx > -3 && gx < 3 && gz > -3 && gz < 3 {
				cells = append(cells, c)
				continue
			}

			h := cellHash(gx, gz)
			if h%5 < 2 {
				c.HasCompletedBuilding = true
				c.Floors = 1 + h%4
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// cellHash mixes grid coordinates into a small non-negative value.
func cellHash(gx, gz int) int {
	h := gx*73856093 ^ gz*19349663
	if h < 0 {
		h = -h
	}
	return h
}
