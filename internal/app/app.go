// Package app implements the frame loop that drives the scene, windowed or headless.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/input"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/internal/engine/window"
)

// App is the renderer instance.
type App struct {
	config    *config.Config
	log       *zap.Logger
	scene     *scene.Scene
	snapshots *debug.SnapshotWriter
	paused    bool
}

// New creates an app for cfg. No window is opened until Run.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("initializing renderer",
		zap.String("title", cfg.Screen.Title),
		zap.Int("width", cfg.Screen.Width),
		zap.Int("height", cfg.Screen.Height),
		zap.Bool("headless", cfg.Output.Headless),
	)

	snapshots, err := debug.NewSnapshotWriter(cfg.Output.Dir, "wireframe", cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot writer: %w", err)
	}

	sc, err := scene.New(cfg, log.Named("scene"))
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	return &App{
		config:    cfg,
		log:       log,
		scene:     sc,
		snapshots: snapshots,
	}, nil
}

// surface is a lockable frame target; *window.Window is the real one.
type surface interface {
	Lock() (*raster.FrameBuffer, error)
	Unlock()
}

// Scene returns the scene being drawn.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// RunHeadless renders the configured number of frames into an in-memory
// frame buffer and writes the last one as a snapshot. It returns the
// snapshot path.
func (a *App) RunHeadless() (string, error) {
	fb := raster.NewFrameBuffer(a.config.Screen.Width, a.config.Screen.Height)

	start := time.Now()
	for i := 0; i < a.config.Output.Frames; i++ {
		if err := a.scene.Render(fb); err != nil {
			return "", fmt.Errorf("render error: %w", err)
		}
		// The written frame is the one just rendered, before its update.
		if i < a.config.Output.Frames-1 {
			a.scene.Update()
		}
	}
	a.log.Debug("headless frames rendered",
		zap.Int("frames", a.config.Output.Frames),
		zap.Duration("elapsed", time.Since(start)),
	)

	path, err := a.snapshots.Write(fb, a.config.Output.Snapshot)
	if err != nil {
		return "", fmt.Errorf("snapshot error: %w", err)
	}
	a.log.Info("snapshot written", zap.String("path", path))
	return path, nil
}

// Run opens a window and runs the frame loop until the window is closed or
// the quit key is pressed.
func (a *App) Run() error {
	win, err := window.New(window.Config{
		Title:      a.config.Screen.Title,
		Width:      a.config.Screen.Width,
		Height:     a.config.Screen.Height,
		Scale:      a.config.Screen.Scale,
		Fullscreen: a.config.Screen.Fullscreen,
		VSync:      false,
	}, a.log.Named("window"))
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	in := input.New()

	// Timing
	delay := a.config.Scene.FrameDelay
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop", zap.Duration("frame_delay", delay))

	for {
		frameStart := time.Now()

		// 1. Process input
		if in.Update() {
			break
		}

		step, snapshot := false, false
		for _, event := range in.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.log.Debug("window resized", zap.Int("width", event.Width), zap.Int("height", event.Height))
			case input.EventKeyDown:
				switch event.Key {
				case input.KeyPause:
					a.paused = !a.paused
					a.log.Info("rotation toggled", zap.Bool("paused", a.paused))
				case input.KeyStep:
					step = true
				case input.KeySnapshot:
					snapshot = true
				}
			}
		}

		// 2. Render into the locked texture, then advance the scene.
		// A frame that cannot be locked is skipped, not presented.
		if !a.frame(win, snapshot, step) {
			continue
		}

		// 3. Hold the frame budget
		if elapsed := time.Since(frameStart); elapsed < delay {
			time.Sleep(delay - elapsed)
		}

		// 4. Present
		if err := win.Present(); err != nil {
			a.log.Warn("present failed", zap.Error(err))
		}

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("frame", time.Since(frameStart)))
			win.SetTitle(windowTitle(a.config.Screen.Title, frameCount, a.paused))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.scene.Frames()))
	return nil
}

// frame renders one frame into the surface and advances the scene. It
// reports whether a frame was drawn; lock and render failures are logged
// and skip the frame.
func (a *App) frame(surf surface, snapshot, step bool) bool {
	fb, err := surf.Lock()
	if err != nil {
		a.log.Warn("lock failed, skipping frame", zap.Error(err))
		return false
	}
	defer surf.Unlock()

	if err := a.scene.Render(fb); err != nil {
		a.log.Warn("render failed, skipping frame", zap.Error(err))
		return false
	}

	if snapshot {
		if path, err := a.snapshots.Write(fb, ""); err != nil {
			a.log.Warn("snapshot failed", zap.Error(err))
		} else {
			a.log.Info("snapshot written", zap.String("path", path))
		}
	}

	if !a.paused || step {
		a.scene.Update()
	}
	return true
}

// windowTitle formats the title with the last second's frame count.
func windowTitle(title string, fps int, paused bool) string {
	if paused {
		return fmt.Sprintf("%s - %d fps (paused)", title, fps)
	}
	return fmt.Sprintf("%s - %d fps", title, fps)
}
