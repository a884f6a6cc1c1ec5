package shader

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Translator rewrites GLSL ES 3.00 (WebGL2) sources into GLSL the current
// desktop context accepts. names maps each declared identifier to the one
// used in code.
type Translator interface {
	Translate(source string, stage Stage) (code string, names map[string]string, err error)
}

// Loader compiles and links shader programs through a Driver.
type Loader struct {
	Driver Driver
	// Translator is optional; without one, ES sources go to the driver as is.
	Translator Translator
	Logger     log.FieldLogger
}

// NewLoader returns a Loader backed by the OpenGL 4.1 core driver.
func NewLoader() *Loader {
	return &Loader{Driver: GLDriver{}, Logger: log.StandardLogger()}
}

func (l *Loader) driver() Driver {
	if l.Driver == nil {
		return GLDriver{}
	}
	return l.Driver
}

func (l *Loader) logger() log.FieldLogger {
	if l.Logger == nil {
		return log.StandardLogger()
	}
	return l.Logger
}

// Load reads the vertex and fragment sources at the given paths and links
// them into a new program. Both files are read before any driver object is
// created.
func (l *Loader) Load(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := ReadSource(vertexPath, StageVertex)
	if err != nil {
		l.logger().WithError(err).WithField("stage", StageVertex).Error("Shader source unreadable")
		return nil, err
	}
	fs, err := ReadSource(fragmentPath, StageFragment)
	if err != nil {
		l.logger().WithError(err).WithField("stage", StageFragment).Error("Shader source unreadable")
		return nil, err
	}
	return l.LoadSources(vs, fs)
}

// LoadSources compiles vs and fs and links them. Intermediate stage objects
// are released on every return path; a program is only returned when both
// stages compiled and the link succeeded.
func (l *Loader) LoadSources(vs, fs Source) (*Program, error) {
	if vs.Stage != StageVertex || fs.Stage != StageFragment {
		err := fmt.Errorf("shader pair must be vertex+fragment, got %s+%s", vs.Stage, fs.Stage)
		l.logger().WithFields(log.Fields{
			"vertex":   vs.Name,
			"fragment": fs.Name,
		}).Error(err.Error())
		return nil, err
	}
	d := l.driver()

	names := make(map[string]string)

	vertexShader, err := l.compile(vs, names)
	if err != nil {
		return nil, err
	}
	defer d.DeleteShader(vertexShader)

	fragmentShader, err := l.compile(fs, names)
	if err != nil {
		return nil, err
	}
	defer d.DeleteShader(fragmentShader)

	program := d.CreateProgram()
	d.AttachShader(program, vertexShader)
	d.AttachShader(program, fragmentShader)
	ok, infoLog := d.LinkProgram(program)
	d.DetachShader(program, vertexShader)
	d.DetachShader(program, fragmentShader)
	if !ok {
		d.DeleteProgram(program)
		lerr := &LinkError{Log: infoLog}
		l.logger().WithFields(log.Fields{
			"vertex":   vs.Name,
			"fragment": fs.Name,
		}).Error(lerr.Error())
		return nil, lerr
	}

	p := &Program{id: program, driver: d}
	if len(names) > 0 {
		p.names = names
	}
	l.logger().WithFields(log.Fields{
		"program":  program,
		"vertex":   vs.Name,
		"fragment": fs.Name,
	}).Debug("Linked shader program")
	return p, nil
}

func (l *Loader) compile(src Source, names map[string]string) (uint32, error) {
	code := src.Code
	if l.Translator != nil && isWebGL2(code) {
		translated, mapped, err := l.Translator.Translate(code, src.Stage)
		if err != nil {
			cerr := &CompileError{Stage: src.Stage, Name: src.Name, Log: err.Error()}
			l.logCompileError(cerr)
			return 0, cerr
		}
		code = translated
		for k, v := range mapped {
			names[k] = v
		}
	}

	d := l.driver()
	shader := d.CreateShader(src.Stage)
	if ok, infoLog := d.CompileShader(shader, code); !ok {
		d.DeleteShader(shader)
		cerr := &CompileError{Stage: src.Stage, Name: src.Name, Log: infoLog}
		l.logCompileError(cerr)
		return 0, cerr
	}
	return shader, nil
}

func (l *Loader) logCompileError(err *CompileError) {
	l.logger().WithFields(log.Fields{
		"stage": err.Stage,
		"name":  err.Name,
	}).Error(trimLog(err.Log))
}
