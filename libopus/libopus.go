package libopus

/*
#cgo pkg-config: opus
#include <opus.h>
*/
import "C"

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/errors"
)

// Codec is the libopus-backed codec. The zero value is ready to use;
// all state lives in the resources it creates.
type Codec struct{}

// New returns the libopus codec.
func New() opusbridge.Codec {
	return Codec{}
}

// Version returns the libopus version string, e.g. "libopus 1.4".
func (Codec) Version() string {
	return C.GoString(C.opus_get_version_string())
}

// EncoderSize reports the byte footprint of an encoder state for the
// given channel count. libopus returns 0 for invalid channel counts.
func (Codec) EncoderSize(channels int) int {
	return int(C.opus_encoder_get_size(C.int(channels)))
}

// DecoderSize reports the byte footprint of a decoder state for the
// given channel count. libopus returns 0 for invalid channel counts.
func (Codec) DecoderSize(channels int) int {
	return int(C.opus_decoder_get_size(C.int(channels)))
}

// codecError wraps a raw libopus status code, attaching the library's
// own message. The code survives unchanged for surface propagation.
func codecError(phase errors.Phase, code int32) *errors.Error {
	return errors.Codec(phase, code, C.GoString(C.opus_strerror(C.int(code))))
}
