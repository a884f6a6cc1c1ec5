package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	log "github.com/sirupsen/logrus"

	"github.com/richinsley/spincube/graphics"
	"github.com/richinsley/spincube/shader"
)

// Renderer draws the rotating cube with a caller-supplied program. It takes
// ownership of the program and releases it in Shutdown.
type Renderer struct {
	context graphics.Context
	program *shader.Program
	vao     uint32
	vbo     uint32
	speed   float64

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
	mvpLoc        int32
}

// NewRenderer uploads the cube mesh. The program must expose either
// model/view/projection matrices or a combined mvp matrix, with position at
// attribute 0 and colour at attribute 1. The GL context must be current.
func NewRenderer(ctx graphics.Context, program *shader.Program, speed float64) (*Renderer, error) {
	r := &Renderer{
		context:       ctx,
		program:       program,
		speed:         speed,
		modelLoc:      program.UniformLocation("model"),
		viewLoc:       program.UniformLocation("view"),
		projectionLoc: program.UniformLocation("projection"),
		mvpLoc:        program.UniformLocation("mvp"),
	}

	separate := r.modelLoc != -1 && r.viewLoc != -1 && r.projectionLoc != -1
	if !separate && r.mvpLoc == -1 {
		return nil, fmt.Errorf("program %d has neither model/view/projection nor mvp uniforms", program.ID())
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*floatSize, gl.Ptr(cubeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(3*floatSize))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	log.WithFields(log.Fields{
		"program":  program.ID(),
		"vertices": cubeVertexCount(),
	}).Debug("Cube uploaded")
	return r, nil
}

// Shutdown releases the vertex array, buffer and program.
func (r *Renderer) Shutdown() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	r.program.Delete()
}

// RenderFrame draws the cube at time t into the currently bound framebuffer.
func (r *Renderer) RenderFrame(t float64, width, height int) {
	tr := FrameTransforms(t, r.speed, width, height)

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	if r.mvpLoc != -1 {
		mvp := tr.MVP()
		gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	}
	if r.modelLoc != -1 {
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &tr.Model[0])
	}
	if r.viewLoc != -1 {
		gl.UniformMatrix4fv(r.viewLoc, 1, false, &tr.View[0])
	}
	if r.projectionLoc != -1 {
		gl.UniformMatrix4fv(r.projectionLoc, 1, false, &tr.Projection[0])
	}

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, cubeVertexCount())
	gl.BindVertexArray(0)
}

// Run renders to the window until the context asks to close.
func (r *Renderer) Run() {
	var frameCount int64
	for !r.context.ShouldClose() {
		width, height := r.context.GetFramebufferSize()
		r.RenderFrame(r.context.Time(), width, height)
		r.context.EndFrame()
		frameCount++
	}
	log.Infof("Render loop finished after %d frames", frameCount)
}
