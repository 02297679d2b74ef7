// Package stub is the interface-shape implementation of the codec
// capability. It performs no codec work: creation always fails, sizes
// report 0, and the version string is a placeholder. It exists so the
// bridge's call surface can be linked and exercised on platforms
// without libopus, with sentinel and error conventions identical to
// the real implementation.
package stub

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/errors"
)

// Codec is the interface-shape codec. The zero value is ready to use.
type Codec struct{}

// New returns the interface-shape codec.
func New() opusbridge.Codec {
	return Codec{}
}

// NewEncoder always fails: no codec is linked.
func (Codec) NewEncoder(cfg opusbridge.EncoderConfig) (opusbridge.Encoder, error) {
	return nil, errors.Unsupported(errors.PhaseCreate, "codec not linked")
}

// NewDecoder always fails: no codec is linked.
func (Codec) NewDecoder(sampleRate, channels int) (opusbridge.Decoder, error) {
	return nil, errors.Unsupported(errors.PhaseCreate, "codec not linked")
}

// Version returns a non-empty placeholder identifying the stub.
func (Codec) Version() string {
	return "opus-bridge stub (codec not linked)"
}

// EncoderSize reports 0: the footprint is unknown without the codec.
func (Codec) EncoderSize(channels int) int {
	return 0
}

// DecoderSize reports 0: the footprint is unknown without the codec.
func (Codec) DecoderSize(channels int) int {
	return 0
}
