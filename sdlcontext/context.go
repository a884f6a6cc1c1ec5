// Package sdlcontext provides a graphics.Context backed by an SDL2 window.
package sdlcontext

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

type Context struct {
	window      *sdl.Window
	glContext   sdl.GLContext
	start       uint32
	shouldClose bool
}

// InitGraphics initializes the SDL video subsystem. Must be called from the
// main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	log.Info("SDL initialized")
	return nil
}

// TerminateGraphics shuts SDL down. Must be called from the main thread.
func TerminateGraphics() {
	sdl.Quit()
	log.Info("SDL terminated")
}

// New creates a window with an OpenGL 4.1 core context and makes it current.
func New(width, height int, title string, visible bool) (*Context, error) {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return nil, fmt.Errorf("failed to set GL attribute %d: %w", a.attr, err)
		}
	}

	var flags uint32 = sdl.WINDOW_OPENGL
	if visible {
		flags |= sdl.WINDOW_RESIZABLE
	} else {
		flags |= sdl.WINDOW_HIDDEN
	}

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		flags)
	if err != nil {
		return nil, err
	}

	glc, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to create GL context: %w", err)
	}

	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Warnf("vsync unavailable: %v", err)
	}

	return &Context{
		window:    win,
		glContext: glc,
		start:     sdl.GetTicks(),
	}, nil
}

func (c *Context) MakeCurrent() {
	if err := c.window.GLMakeCurrent(c.glContext); err != nil {
		log.Errorf("SDL make current: %v", err)
	}
}

// Shutdown deletes the GL context and destroys the window.
func (c *Context) Shutdown() {
	sdl.GLDeleteContext(c.glContext)
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.shouldClose
}

func (c *Context) EndFrame() {
	c.window.GLSwap()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.QuitEvent:
			c.shouldClose = true
		case *sdl.KeyboardEvent:
			if et.Type == sdl.KEYDOWN && et.Keysym.Sym == sdl.K_ESCAPE {
				c.shouldClose = true
			}
		}
	}
}

func (c *Context) GetFramebufferSize() (int, int) {
	w, h := c.window.GLGetDrawableSize()
	return int(w), int(h)
}

func (c *Context) Time() float64 {
	return float64(sdl.GetTicks()-c.start) / 1000.0
}
