// Package session wires a world snapshot, the locomotion engine, and
// its consumers (minimap, footstep audio, selection) into one running
// unit.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/metagrid/citywalk/internal/config"
	"github.com/metagrid/citywalk/internal/engine/audio"
	"github.com/metagrid/citywalk/internal/engine/input"
	"github.com/metagrid/citywalk/internal/engine/locomotion"
	"github.com/metagrid/citywalk/internal/engine/picking"
	"github.com/metagrid/citywalk/internal/engine/world"
	"github.com/metagrid/citywalk/internal/game/minimap"
)

// Session owns one loaded world and its engine. Create a new session to
// load a different world; engine state does not survive a reload.
type Session struct {
	cfg   *config.Config
	index *world.Index

	input  *input.State
	engine *locomotion.Engine
	steps  *audio.Footsteps
	mini   *minimap.Minimap

	pickParams   picking.Params
	teleportMode bool

	log *zap.Logger
}

// New builds the world index from a snapshot and constructs the engine
// and its consumers. The footstep player is created but not initialized;
// call EnableAudio on hosts with a sound device.
func New(cfg *config.Config, cells []world.Cell, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}

	params := world.Params{
		GridSize:          cfg.World.GridSize,
		FloorHeight:       cfg.World.FloorHeight,
		BuildingFootprint: cfg.World.BuildingFootprint,
		HalfExtentCells:   cfg.World.HalfExtentCells,
	}
	index := world.BuildIndex(cells, params)
	log.Info("world index built",
		zap.Int("cells", len(cells)),
		zap.Int("roads", index.RoadCount()),
		zap.Int("volumes", len(index.Volumes())))

	in := input.New()
	engine, err := locomotion.New(locomotion.Options{
		BaseSpeed:        cfg.Engine.BaseSpeed,
		EyeHeight:        cfg.Engine.EyeHeight,
		GravityEnabled:   cfg.Engine.GravityEnabled,
		CollisionEnabled: cfg.Engine.CollisionEnabled,
		CameraBobEnabled: cfg.Engine.CameraBobEnabled,
		MouseSensitivity: cfg.Input.MouseSensitivity,
		RotationRate:     cfg.Input.RotationRate,
		InvertY:          cfg.Input.InvertY,
	}, index, in, log)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}

	return &Session{
		cfg:    cfg,
		index:  index,
		input:  in,
		engine: engine,
		steps: audio.NewFootsteps(audio.Options{
			MasterVolume:   cfg.Audio.MasterVolume,
			FootstepVolume: cfg.Audio.FootstepVolume,
			Muted:          cfg.Audio.Muted,
		}),
		mini:       minimap.New(index.HalfExtent()),
		pickParams: picking.DefaultParams(),
		log:        log,
	}, nil
}

// Input returns the input state fed by the host's event loop.
func (s *Session) Input() *input.State { return s.input }

// Engine returns the locomotion engine.
func (s *Session) Engine() *locomotion.Engine { return s.engine }

// Minimap returns the minimap mapper.
func (s *Session) Minimap() *minimap.Minimap { return s.mini }

// World returns the built world index.
func (s *Session) World() *world.Index { return s.index }

// EnableAudio opens the sound device for footstep playback.
func (s *Session) EnableAudio() error {
	return s.steps.Init()
}

// Update runs one simulation tick and feeds the audio consumer.
func (s *Session) Update(dt float32) {
	s.engine.Tick(dt)
	s.steps.Update(float64(dt), s.engine.IsMoving(), s.engine.IsOnRoad())
}

// SetTeleportMode toggles whether minimap clicks teleport the player.
func (s *Session) SetTeleportMode(on bool) {
	s.teleportMode = on
	s.log.Debug("teleport mode", zap.Bool("on", on))
}

// TeleportMode reports whether minimap clicks teleport.
func (s *Session) TeleportMode() bool { return s.teleportMode }

// ClickMinimap handles a click at minimap pixel coordinates. In
// teleport mode a click inside the map square teleports the player and
// returns true.
func (s *Session) ClickMinimap(px, py float32) bool {
	if !s.teleportMode {
		return false
	}
	x, z, ok := s.mini.WorldAt(px, py)
	if !ok {
		return false
	}
	s.engine.Teleport(x, z)
	return true
}

// PickAt resolves the world cell under the pointer for selection.
// While pointer-locked the ray goes through the screen center
// regardless of the given coordinate.
func (s *Session) PickAt(ndcX, ndcY float32) (world.CellID, bool) {
	if s.input.Mode() == input.ModePointerLocked {
		ndcX, ndcY = 0, 0
	}
	return picking.PickCell(ndcX, ndcY, s.engine.Pose(), s.index, s.pickParams)
}

// Close releases session resources.
func (s *Session) Close() {
	s.steps.Close()
}
