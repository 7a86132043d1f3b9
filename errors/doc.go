// Package errors provides the structured error type for valuewit's two
// fallible entry points: Instantiate and ResolveResilientAccessors.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseCompile, errors.KindMalformed).
//		Path("field", "3").
//		Detail("reference kind byte out of range").
//		Build()
//
// Or use the convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseValidate, path, 16, 9)
//	err := errors.SelfReferential(errors.PhaseResolve, path)
//
// Everything outside those two entry points is a programmer error and
// aborts instead of returning an *Error; see abi.Unreachable.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
