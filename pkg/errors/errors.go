// Package errors provides structured error handling for the stylekit framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindField indicates a style item carrying a field identifier outside
	// the known enumeration. This is a corruption bug, never user input.
	KindField
	// KindParsing indicates a theme file parsing failure.
	KindParsing
	// KindTheme indicates a theme resolution error (unknown style,
	// extends cycle, bad attribute value).
	KindTheme
	// KindApply indicates a failure while applying a chain to a target.
	KindApply
)

func (k ErrorKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindParsing:
		return "parsing"
	case KindTheme:
		return "theme"
	case KindApply:
		return "apply"
	default:
		return "unknown"
	}
}

// StyleError represents a structured error in the stylekit framework.
type StyleError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

// New constructs a StyleError for the given operation.
func New(op string, kind ErrorKind, err error) *StyleError {
	return &StyleError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Newf constructs a StyleError with a formatted underlying message.
func Newf(op string, kind ErrorKind, format string, args ...any) *StyleError {
	return New(op, kind, fmt.Errorf(format, args...))
}

// ThemeError represents a failure to load or resolve a theme file.
type ThemeError struct {
	// Path is the theme file path, if known.
	Path string
	// Style is the style entry being resolved, if any.
	Style string
	// Err is the underlying error.
	Err error
}

func (e *ThemeError) Error() string {
	switch {
	case e.Path != "" && e.Style != "":
		return fmt.Sprintf("theme %s: style %q: %v", e.Path, e.Style, e.Err)
	case e.Path != "":
		return fmt.Sprintf("theme %s: %v", e.Path, e.Err)
	case e.Style != "":
		return fmt.Sprintf("style %q: %v", e.Style, e.Err)
	default:
		return fmt.Sprintf("theme: %v", e.Err)
	}
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

// FieldError reports a style item whose field identifier falls outside the
// known enumeration for its kind. Encountering one means the item was built
// bypassing the package constructors; it is raised as a panic value, never
// returned.
type FieldError struct {
	// Kind is "object" or "float", the item's declared value kind.
	Kind string
	// Field is the raw out-of-range identifier.
	Field int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown %s style field identifier %d", e.Kind, e.Field)
}

// ErrorHandler receives errors reported by the stylekit framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StyleError)
}
