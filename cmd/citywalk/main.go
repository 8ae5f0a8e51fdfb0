// Package main is the standalone citywalk host: an SDL2 window driving
// the locomotion engine over a generated demo city.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/metagrid/citywalk/internal/config"
	"github.com/metagrid/citywalk/internal/engine/input"
	"github.com/metagrid/citywalk/internal/engine/window"
	"github.com/metagrid/citywalk/internal/game/session"
	"github.com/metagrid/citywalk/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== citywalk ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("host error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	sess, err := session.New(cfg, session.DemoWorld(cfg.World.HalfExtentCells), logger.Log)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	defer sess.Close()

	if err := sess.EnableAudio(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
	}

	adapter := input.NewAdapter(sess.Input())

	last := time.Now()
	poseLog := time.Now()

	for {
		quit := false
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if adapter.HandleEvent(event) {
				quit = true
				break
			}
			// A released left click doubles as a selection probe.
			if e, ok := event.(*sdl.MouseButtonEvent); ok &&
				e.Button == sdl.BUTTON_LEFT && e.Type == sdl.MOUSEBUTTONUP {
				pickAt(sess, win, e.X, e.Y)
			}
		}
		if quit {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		sess.Update(dt)

		if now.Sub(poseLog) >= time.Second {
			poseLog = now
			pose := sess.Engine().Pose()
			logger.Debug("pose",
				zap.Float32("x", pose.Position.X),
				zap.Float32("y", pose.Position.Y),
				zap.Float32("z", pose.Position.Z),
				zap.Float32("yaw", pose.Yaw),
				zap.Bool("moving", sess.Engine().IsMoving()),
			)
		}

		sdl.Delay(4)
	}

	return nil
}

// pickAt converts a window pixel to normalized device coordinates and
// resolves the cell under it.
func pickAt(sess *session.Session, win *window.Window, px, py int32) {
	w, h := win.GetSize()
	if w == 0 || h == 0 {
		return
	}
	ndcX := float32(px)/float32(w)*2 - 1
	ndcY := 1 - float32(py)/float32(h)*2

	if cell, ok := sess.PickAt(ndcX, ndcY); ok {
		logger.Info("selected cell", zap.Int("x", cell.X), zap.Int("z", cell.Z))
	}
}
