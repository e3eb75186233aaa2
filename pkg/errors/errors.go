// Package errors provides structured error handling for stack layouts and
// the tools built on them.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindPrecondition indicates a violated layout contract. These are
	// programming errors and are raised as panics after being reported.
	KindPrecondition
	// KindConfig indicates an invalid scene or layout configuration.
	KindConfig
	// KindParsing indicates a failure to decode input.
	KindParsing
	// KindRender indicates a failure while rendering a debug image.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Layout contract violations.
var (
	// ErrNoFlexibleChildren is raised when the minimum-size fallback has
	// positive slack to hand out but no subview has a zero minimal main extent.
	ErrNoFlexibleChildren = stderrors.New("no flexible subviews to absorb slack")
	// ErrSpaceBetweenSingleChild is raised when space-between is asked to
	// place exactly one subview.
	ErrSpaceBetweenSingleChild = stderrors.New("space-between requires at least two subviews")
	// ErrCacheNotPopulated is raised when placement runs without sized items.
	ErrCacheNotPopulated = stderrors.New("layout cache has no sized items")
	// ErrNonFiniteGeometry is raised when a computed size or offset is NaN or infinite.
	ErrNonFiniteGeometry = stderrors.New("non-finite geometry")
)

// LayoutError represents a structured error raised by a layout or a tool.
type LayoutError struct {
	// Op is the operation that failed (e.g., "stacks.Column.PlaceSubviews").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Detail carries optional context such as the subview count.
	Detail string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.place").
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

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// ParseError represents a failure to decode a value from input.
type ParseError struct {
	// Source names the input (a file path or field name).
	Source string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %v", e.DataType, e.Source, e.Got)
}

// ErrorHandler receives errors reported by layouts and tools.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
