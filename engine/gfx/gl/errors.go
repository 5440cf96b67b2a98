package glbackend

import (
	"errors"
	"fmt"
)

// ErrNotCompiled is returned by operations that need a linked program.
var ErrNotCompiled = errors.New("shader not compiled")

// CompileError reports a stage that failed to compile. Log holds the
// driver's info log, which may be empty on some drivers.
type CompileError struct {
	Stage Stage
	Name  string // source file, empty for in-memory sources
	Log   string
}

func (e *CompileError) Error() string {
	what := e.Stage.String() + " shader"
	if e.Name != "" {
		what = fmt.Sprintf("%s %q", what, e.Name)
	}
	if e.Log == "" {
		return what + " compile error"
	}
	return fmt.Sprintf("%s compile error: %s", what, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "program link error"
	}
	return "program link error: " + e.Log
}
