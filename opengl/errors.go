package opengl

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/HobyProjects/gapi"
)

// Error is a driver error reported by glGetError.
type Error struct {
	Code uint32
	Op   string
}

func (err *Error) Error() string {
	return fmt.Sprintf("opengl: %s: %s: %s", err.Op, ErrorName(err.Code), errorDescription(err.Code))
}

// ErrorName returns the GL enum name of code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("UNKNOWN(0x%04X)", code)
}

func errorDescription(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "an unacceptable value is specified for an enumerated argument"
	case gl.INVALID_VALUE:
		return "a numeric argument is out of range"
	case gl.INVALID_OPERATION:
		return "the specified operation is not allowed in the current state"
	case gl.STACK_OVERFLOW:
		return "an operation would cause an internal stack to overflow"
	case gl.STACK_UNDERFLOW:
		return "an operation would cause an internal stack to underflow"
	case gl.OUT_OF_MEMORY:
		return "there is not enough memory left to execute the command"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "the framebuffer object is not complete"
	}
	return "unknown error"
}

var debugChecks atomic.Bool

// SetDebug enables draining glGetError after driver calls.
func SetDebug(enabled bool) { debugChecks.Store(enabled) }

// Debug reports whether driver errors are checked.
func Debug() bool { return debugChecks.Load() }

// check drains the GL error queue when debugging is enabled, logs every
// error and returns the last one.
func check(op string) error {
	if !debugChecks.Load() {
		return nil
	}

	var last *Error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		last = &Error{Code: code, Op: op}
		gapi.Logger().Error("gl error", "op", op, "error", ErrorName(code))
	}
	if last == nil {
		return nil
	}
	return last
}
