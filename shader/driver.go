package shader

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Driver is the subset of the GL API the loader needs. All methods must be
// called on the thread that owns the current context.
type Driver interface {
	CreateShader(stage Stage) uint32
	// CompileShader uploads source to shader and compiles it, returning the
	// info log when compilation fails.
	CompileShader(shader uint32, source string) (ok bool, infoLog string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links program, returning the info log when linking fails.
	LinkProgram(program uint32) (ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
}

// GLDriver implements Driver on top of go-gl's OpenGL 4.1 core bindings.
// gl.Init must have succeeded on the current context before use.
type GLDriver struct{}

func (GLDriver) CreateShader(stage Stage) uint32 {
	switch stage {
	case StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (GLDriver) CompileShader(shader uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return false, logText
	}
	return true, ""
}

func (GLDriver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (GLDriver) CreateProgram() uint32 { return gl.CreateProgram() }

func (GLDriver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (GLDriver) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (GLDriver) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		return false, logText
	}
	return true, ""
}

func (GLDriver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GLDriver) UseProgram(program uint32) { gl.UseProgram(program) }

func (GLDriver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
