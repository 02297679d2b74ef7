// Package errors provides structured error types for the opus-bridge library.
//
// Errors are categorized by Phase (which bridge operation failed) and Kind
// (error category). Errors originating inside the codec library carry the
// library's own negative status code, which the bridge surface propagates
// unchanged.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.ShortBuffer(errors.PhaseEncode, "sample", 100, 320)
//	err := errors.Codec(errors.PhaseDecode, -4, "corrupted stream")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
