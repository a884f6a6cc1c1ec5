package shader_test

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/richinsley/spincube/shader"
)

var varyingRe = regexp.MustCompile(`(?m)^\s*(in|out)\s+\w+\s+(\w+)\s*;`)

type fakeShader struct {
	stage  shader.Stage
	source string
}

// fakeDriver stands in for the GL binding. It compiles anything without an
// #error directive and refuses to link when the fragment stage reads a
// varying the vertex stage does not write.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]map[uint32]bool
	created  map[string]int
	uniforms map[string]int32
	used     uint32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]map[uint32]bool),
		created:  make(map[string]int),
		uniforms: map[string]int32{"mvp": 3},
	}
}

func (d *fakeDriver) CreateShader(stage shader.Stage) uint32 {
	d.next++
	d.shaders[d.next] = &fakeShader{stage: stage}
	d.created["shader"]++
	return d.next
}

func (d *fakeDriver) CompileShader(id uint32, source string) (bool, string) {
	s := d.shaders[id]
	s.source = source
	if i := strings.Index(source, "#error"); i >= 0 {
		line := strings.Count(source[:i], "\n") + 1
		return false, fmt.Sprintf("ERROR: 0:%d: '#error' : %s\x00", line, strings.SplitN(source[i:], "\n", 2)[0])
	}
	return true, ""
}

func (d *fakeDriver) DeleteShader(id uint32) {
	// GL defers deletion of attached shaders until they are detached.
	for _, attached := range d.programs {
		if attached[id] {
			panic(fmt.Sprintf("shader %d deleted while still attached", id))
		}
	}
	delete(d.shaders, id)
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = make(map[uint32]bool)
	d.created["program"]++
	return d.next
}

func (d *fakeDriver) AttachShader(program, id uint32) { d.programs[program][id] = true }

func (d *fakeDriver) DetachShader(program, id uint32) { delete(d.programs[program], id) }

func (d *fakeDriver) LinkProgram(program uint32) (bool, string) {
	outs := make(map[string]bool)
	var ins []string
	for id := range d.programs[program] {
		s := d.shaders[id]
		for _, m := range varyingRe.FindAllStringSubmatch(s.source, -1) {
			switch {
			case s.stage == shader.StageVertex && m[1] == "out":
				outs[m[2]] = true
			case s.stage == shader.StageFragment && m[1] == "in":
				ins = append(ins, m[2])
			}
		}
	}
	for _, name := range ins {
		if !outs[name] {
			return false, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage\x00", name)
		}
	}
	return true, ""
}

func (d *fakeDriver) DeleteProgram(program uint32) { delete(d.programs, program) }

func (d *fakeDriver) UseProgram(program uint32) { d.used = program }

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) liveShaders() int  { return len(d.shaders) }
func (d *fakeDriver) livePrograms() int { return len(d.programs) }

// prefixTranslator pretends to be the ES translator: it rewrites the version
// line and prefixes every uniform it is told about.
type prefixTranslator struct {
	uniforms []string
	fail     bool
}

func (t *prefixTranslator) Translate(source string, stage shader.Stage) (string, map[string]string, error) {
	if t.fail {
		return "", nil, fmt.Errorf("ERROR: 0:3: 'frag_color' : undeclared identifier")
	}
	names := make(map[string]string)
	for _, u := range t.uniforms {
		names[u] = "_u" + u
		source = strings.ReplaceAll(source, u, "_u"+u)
	}
	return strings.Replace(source, "#version 300 es", "#version 410", 1), names, nil
}
