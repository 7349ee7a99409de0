// Package errors provides structured error reporting for the neon toggle
// tools: a categorized error type, panic capture, and a replaceable global
// handler that logs through log/slog by default.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindRender indicates a rasterization or encoding failure.
	KindRender
	// KindIO indicates a filesystem or terminal failure.
	KindIO
	// KindScript indicates an invalid scene script step.
	KindScript
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindIO:
		return "io"
	case KindScript:
		return "script"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// NeonError is a categorized error carrying the operation that failed.
type NeonError struct {
	// Op is the operation that failed (e.g., "scene.Play").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

// New returns a NeonError wrapping err.
func New(op string, kind ErrorKind, err error) *NeonError {
	return &NeonError{Op: op, Kind: kind, Err: err}
}

// Errorf returns a NeonError whose cause is formatted like fmt.Errorf.
func Errorf(op string, kind ErrorKind, format string, args ...any) *NeonError {
	return &NeonError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *NeonError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *NeonError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first NeonError in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	if ne, ok := AsNeonError(err); ok {
		return ne.Kind
	}
	return KindUnknown
}

// AsNeonError returns the first NeonError in err's chain.
func AsNeonError(err error) (*NeonError, bool) {
	var ne *NeonError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.HandlePointer").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives reported errors and recovered panics.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *NeonError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
