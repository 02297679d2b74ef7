// Package libopus is the real implementation of the codec capability,
// binding libopus through cgo (pkg-config: opus).
//
// The package never reimplements compression: it consumes the
// library's create/ctl/encode/decode/destroy/get-size/get-version
// primitives and nothing else. Encoder creation applies the bridge's
// fixed voice policy; encode and decode lease the caller's buffers for
// a single bounded native call and release them on every exit path.
//
// Raw negative libopus status codes are preserved on returned errors
// (errors.Error.Code) so the bridge surface can propagate them
// unchanged.
//
// Resources are destroyed explicitly, never by finalizer: the bridge
// layer owns the one-destroy-per-create contract and backstops leaks
// on Close.
package libopus
