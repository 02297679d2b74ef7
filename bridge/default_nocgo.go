//go:build !cgo

package bridge

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/stub"
)

// DefaultCodec returns the codec implementation selected at build
// time: the interface-shape stub when cgo is unavailable.
func DefaultCodec() opusbridge.Codec {
	return stub.New()
}
