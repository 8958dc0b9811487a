// Package window handles the SDL2 window and the streaming texture the
// renderer draws into.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/engine/raster"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int     // Frame buffer width in pixels
	Height     int     // Frame buffer height in pixels
	Scale      float32 // Window size multiplier over the frame buffer
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window, its renderer and an ARGB8888 streaming texture.
type Window struct {
	config      Config
	log         *zap.Logger
	sdlWindow   *sdl.Window
	sdlRenderer *sdl.Renderer
	texture     *sdl.Texture
	locked      bool
}

// New creates a window with a streaming texture of cfg.Width x cfg.Height.
// A nil logger disables logging.
func New(cfg Config, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	w := &Window{
		config: cfg,
		log:    log,
	}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(float32(cfg.Width)*cfg.Scale),
		int32(float32(cfg.Height)*cfg.Scale),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.sdlRenderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	w.texture, err = w.sdlRenderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ARGB8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Width),
		int32(cfg.Height),
	)
	if err != nil {
		w.sdlRenderer.Destroy()
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Float32("scale", cfg.Scale),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Lock maps the texture for writing and returns it as a frame buffer.
// The frame buffer is valid until Unlock.
func (w *Window) Lock() (*raster.FrameBuffer, error) {
	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return nil, fmt.Errorf("SDL_LockTexture failed: %w", err)
	}
	w.locked = true

	if len(pixels) < 4 {
		w.Unlock()
		return nil, fmt.Errorf("locked texture holds %d bytes", len(pixels))
	}
	words := unsafe.Slice((*uint32)(unsafe.Pointer(&pixels[0])), len(pixels)/4)

	fb, err := raster.WrapFrameBuffer(words, w.config.Width, w.config.Height, pitch)
	if err != nil {
		w.Unlock()
		return nil, err
	}
	return fb, nil
}

// Unlock releases the texture mapping returned by Lock.
func (w *Window) Unlock() {
	if w.locked {
		w.texture.Unlock()
		w.locked = false
	}
}

// Present copies the texture to the window, scaled to fit.
func (w *Window) Present() error {
	if err := w.sdlRenderer.Clear(); err != nil {
		return fmt.Errorf("SDL_RenderClear failed: %w", err)
	}
	if err := w.sdlRenderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.sdlRenderer.Present()
	return nil
}

// Close destroys the texture, renderer and window, and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	w.Unlock()
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.sdlRenderer != nil {
		w.sdlRenderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
