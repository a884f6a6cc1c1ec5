// Package shader loads GLSL vertex/fragment pairs and links them into GL
// program objects.
package shader

import (
	"fmt"
	"os"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Source is the text of a single shader stage. Name is used in diagnostics
// and is normally the path the text was read from.
type Source struct {
	Stage Stage
	Name  string
	Code  string
}

// ReadSource reads the whole file at path as the source of the given stage.
func ReadSource(path string, stage Stage) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, &resourceError{path: path, stage: stage, err: err}
	}
	return Source{Stage: stage, Name: path, Code: string(b)}, nil
}

// isWebGL2 reports whether the source declares GLSL ES 3.00 and so needs
// translating before a desktop core context will accept it.
func isWebGL2(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		return strings.HasPrefix(line, "#version") && strings.HasSuffix(line, " es")
	}
	return false
}
