// Package bridge is the managed-runtime call surface of the codec
// bridge: a flat operation set exchanging opaque int64 handles and
// caller-owned buffers.
//
// # Conventions
//
// CreateEncoder/CreateDecoder return 0 on failure; no structured error
// crosses the surface at creation time. Encode/Decode return a
// negative status on failure: StatusBadArg (-1) for precondition
// violations the bridge detects before any codec call,
// StatusInvalidHandle (-8) for destroyed or wrong-kind handles, and
// the codec's own code for compression/decompression failures.
// Callers must treat any zero or negative return as authoritative and
// must not inspect partially-written output buffers.
//
// All operations are synchronous and complete on the caller's
// goroutine; the bridge performs no retries, recovery, or background
// work. Diagnostics go to an injected zap logger (no-op by default)
// and never affect results.
package bridge
