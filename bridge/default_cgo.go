//go:build cgo

package bridge

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/libopus"
)

// DefaultCodec returns the codec implementation selected at build
// time: the real libopus binding when cgo is available.
func DefaultCodec() opusbridge.Codec {
	return libopus.New()
}
