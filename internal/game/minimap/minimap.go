// Package minimap maps between world space and minimap pixel space:
// player marker placement, heading indicator, and click-to-teleport
// coordinates. Drawing is left to the renderer collaborator.
package minimap

import (
	"github.com/chewxy/math32"

	"github.com/metagrid/citywalk/internal/engine/locomotion"
)

// Minimap is a square overview of the world centered on the origin.
type Minimap struct {
	// Size is the on-screen edge length in pixels.
	Size float32
	// Zoom scales the map around its center (1.0 = whole world visible).
	Zoom float32

	halfExtent float32
}

// New creates a minimap covering a world of the given half extent.
func New(halfExtent float32) *Minimap {
	return &Minimap{
		Size:       150,
		Zoom:       1.0,
		halfExtent: halfExtent,
	}
}

func (m *Minimap) scale() float32 {
	return m.Size / (2 * m.halfExtent) * m.Zoom
}

// MarkerPosition maps the player pose to minimap pixels. Pixel origin
// is the top-left corner; world +z points up the map.
func (m *Minimap) MarkerPosition(pose locomotion.Pose) (px, py float32) {
	s := m.scale()
	px = m.Size/2 + pose.Position.X*s
	py = m.Size/2 - pose.Position.Z*s
	return px, py
}

// HeadingLine returns the heading indicator: a segment from the marker
// in the facing direction, length in pixels.
func (m *Minimap) HeadingLine(pose locomotion.Pose, length float32) (x1, y1, x2, y2 float32) {
	x1, y1 = m.MarkerPosition(pose)
	x2 = x1 + math32.Sin(pose.Yaw)*length
	y2 = y1 - math32.Cos(pose.Yaw)*length
	return x1, y1, x2, y2
}

// WorldAt maps a minimap pixel back to world coordinates, for
// click-to-teleport. Reports ok=false outside the map square.
func (m *Minimap) WorldAt(px, py float32) (x, z float32, ok bool) {
	if px < 0 || px > m.Size || py < 0 || py > m.Size {
		return 0, 0, false
	}
	s := m.scale()
	x = (px - m.Size/2) / s
	z = -(py - m.Size/2) / s
	return x, z, true
}
