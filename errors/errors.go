package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCompile  Phase = "compile"  // attaching a layout string to a type
	PhaseResolve  Phase = "resolve"  // resilient-accessor resolution pass
	PhaseValidate Phase = "validate" // header or instruction-stream validation
)

// Kind categorizes the error
type Kind string

const (
	KindMalformed      Kind = "malformed_bytecode"
	KindUnknownKind    Kind = "unknown_reference_kind"
	KindWidthViolation Kind = "width_violation"
	KindTruncated      Kind = "truncated_layout"
	KindSelfReference  Kind = "self_referential_layout"
	KindNotInitialized Kind = "not_initialized"
)

// Error is the structured error type returned by the interpreter's two
// fallible entry points, Instantiate and ResolveResilientAccessors.
// Every other failure mode is treated as a programmer error and aborts
// via abi.Unreachable instead of returning an Error.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Truncated creates an error for a layout string that ends before the
// instruction stream it describes requires.
func Truncated(phase Phase, path []string, needed, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Path:   path,
		Detail: fmt.Sprintf("layout string needs %d bytes, only %d available", needed, have),
	}
}

// SelfReferential creates an error for a resolution pass that detects a
// layout string whose resilient-accessor chain cycles back on itself.
func SelfReferential(phase Phase, path []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSelfReference,
		Path:   path,
		Detail: "resilient accessor chain is self-referential",
	}
}

// Malformed wraps a generic decode-time problem found during compilation
// or resolution, short of the kind of violation that aborts a driver.
func Malformed(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformed,
		Path:   path,
		Detail: detail,
	}
}

// NotInitialized creates a not-initialized error for a layout string used
// before Instantiate has run.
func NotInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
