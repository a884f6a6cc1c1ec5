package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrResourceNotFound is matched by errors returned when a shader source
// cannot be opened or read.
var ErrResourceNotFound = errors.New("shader resource not found")

type resourceError struct {
	path  string
	stage Stage
	err   error
}

func (e *resourceError) Error() string {
	return fmt.Sprintf("read %s shader %q: %v", e.stage, e.path, e.err)
}

func (e *resourceError) Is(target error) bool { return target == ErrResourceNotFound }

func (e *resourceError) Unwrap() error { return e.err }

// CompileError is returned when a stage fails to compile (or to translate).
type CompileError struct {
	Stage Stage
	Name  string
	Log   string
}

func (e *CompileError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, trimLog(e.Log))
	}
	return fmt.Sprintf("failed to compile %s shader %q: %s", e.Stage, e.Name, trimLog(e.Log))
}

// LinkError is returned when two compiled stages cannot be linked.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", trimLog(e.Log))
}

// info logs come back NUL padded from the driver
func trimLog(s string) string {
	return strings.TrimSpace(strings.TrimRight(s, "\x00"))
}
