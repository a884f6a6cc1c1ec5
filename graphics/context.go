// Package graphics defines the window/context boundary the demo renders
// through. Implementations live in glfwcontext, sdlcontext and headless.
package graphics

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	log "github.com/sirupsen/logrus"
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	// Time returns seconds elapsed since the context was created.
	Time() float64
}

var glInitOnce sync.Once
var glInitErr error

// InitGL makes ctx current and loads the OpenGL function pointers. Only the
// first call loads; later calls just make their context current.
func InitGL(ctx Context) error {
	ctx.MakeCurrent()
	glInitOnce.Do(func() {
		if glInitErr = gl.Init(); glInitErr != nil {
			return
		}
		log.WithFields(log.Fields{
			"version":  gl.GoStr(gl.GetString(gl.VERSION)),
			"renderer": gl.GoStr(gl.GetString(gl.RENDERER)),
		}).Info("OpenGL initialized")
	})
	if glInitErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return nil
}
