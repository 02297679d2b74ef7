// Package opusbridge exposes the Opus codec's encode/decode operations
// and resource lifecycle to managed-runtime callers through an
// opaque-handle interface.
//
// The codec itself is an external collaborator: this library never
// implements compression. It covers handle lifecycle management,
// parameter validation, buffer marshaling between caller-owned and
// native memory, and error-code translation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	opusbridge/          Root package with the Codec/Encoder/Decoder capability interfaces
//	├── bridge/          Flat int64-handle call surface for managed-runtime callers
//	├── handle/          Checked handle table mapping opaque tokens to live resources
//	├── errors/          Structured error types with codec status codes
//	├── libopus/         Real codec implementation backed by libopus (cgo)
//	└── stub/            Interface-shape implementation for builds without the codec
//
// # Quick Start
//
// Create a bridge over the default codec and run a frame through it:
//
//	b := bridge.New(bridge.DefaultCodec())
//	defer b.Close()
//
//	h := b.CreateEncoder(16000, 1, 5, 16000)
//	if h == 0 {
//	    log.Fatal("encoder creation failed")
//	}
//	defer b.DestroyEncoder(h)
//
//	packet := make([]byte, 256)
//	n := b.Encode(h, samples, 320, packet)
//	if n < 0 {
//	    log.Fatalf("encode failed: status %d", n)
//	}
//
// # Handle Lifecycle
//
// Creation returns an opaque int64 token (0 signals failure). The token
// is valid until the matching destroy call; afterward every operation
// on it fails with a distinct invalid-handle status instead of
// corrupting memory. Handles are never reused, so stale tokens stay
// detectable for the life of the bridge.
//
// # Dual Implementations
//
// Two implementations of the Codec interface share a byte-for-byte
// identical call surface: libopus performs real codec work, stub exists
// so the surface can be linked and exercised on platforms without the
// codec. bridge.DefaultCodec selects between them at build time via the
// cgo build constraint; callers stay agnostic to which is linked.
//
// # Thread Safety
//
// The bridge and its handle tables are safe for concurrent use, and
// distinct handles are fully independent. A single handle must not be
// used from two goroutines at once: the underlying codec state is not
// reentrant and the bridge adds no per-handle locking. Buffers passed
// to Encode/Decode are leased exclusively to the bridge for the
// duration of that call.
package opusbridge
