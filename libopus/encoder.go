package libopus

/*
#include <opus.h>

// opus_encoder_ctl is variadic; every request the bridge issues takes a
// single opus_int32 argument.
static int bridge_encoder_ctl(OpusEncoder *st, int request, opus_int32 value) {
	return opus_encoder_ctl(st, request, value);
}
*/
import "C"

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/errors"
)

type encoder struct {
	st       *C.OpusEncoder
	channels int
}

// NewEncoder allocates an encoder for voice use and applies the fixed
// configuration policy: constrained CBR at the requested bitrate and
// complexity, voice signal hint, 16-bit depth, DTX / in-band FEC off,
// packet-loss hint 0.
//
// Parameters are forwarded to libopus unvalidated; the library rejects
// unsupported values at creation time.
func (Codec) NewEncoder(cfg opusbridge.EncoderConfig) (opusbridge.Encoder, error) {
	var cerr C.int
	st := C.opus_encoder_create(
		C.opus_int32(cfg.SampleRate), C.int(cfg.Channels),
		C.OPUS_APPLICATION_VOIP, &cerr)
	if st == nil || cerr != C.OPUS_OK {
		return nil, errors.Allocation("encoder allocation",
			codecError(errors.PhaseCreate, int32(cerr)))
	}

	e := &encoder{st: st, channels: cfg.Channels}
	e.ctl(C.OPUS_SET_VBR_REQUEST, 0)
	e.ctl(C.OPUS_SET_VBR_CONSTRAINT_REQUEST, 1)
	e.ctl(C.OPUS_SET_BITRATE_REQUEST, C.opus_int32(cfg.Bitrate))
	e.ctl(C.OPUS_SET_COMPLEXITY_REQUEST, C.opus_int32(cfg.Complexity))
	e.ctl(C.OPUS_SET_SIGNAL_REQUEST, C.OPUS_SIGNAL_VOICE)
	e.ctl(C.OPUS_SET_LSB_DEPTH_REQUEST, 16)
	e.ctl(C.OPUS_SET_DTX_REQUEST, 0)
	e.ctl(C.OPUS_SET_INBAND_FEC_REQUEST, 0)
	e.ctl(C.OPUS_SET_PACKET_LOSS_PERC_REQUEST, 0)
	return e, nil
}

func (e *encoder) ctl(request C.int, value C.opus_int32) {
	C.bridge_encoder_ctl(e.st, request, value)
}

// Encode compresses frameSize samples per channel from pcm into
// packet, capped at packet's capacity. Both buffers are leased for the
// duration of the call and released on every exit path.
func (e *encoder) Encode(pcm []int16, frameSize int, packet []byte) (int, error) {
	if e.st == nil {
		return 0, errors.Destroyed(errors.PhaseEncode, "encoder")
	}

	var l lease
	defer l.release()
	in := (*C.opus_int16)(l.int16s(pcm))
	out := (*C.uchar)(l.bytes(packet))

	n := C.opus_encode(e.st, in, C.int(frameSize), out, C.opus_int32(len(packet)))
	if n < 0 {
		return 0, codecError(errors.PhaseEncode, int32(n))
	}
	return int(n), nil
}

// Destroy releases the native encoder state. Idempotent.
func (e *encoder) Destroy() {
	if e.st != nil {
		C.opus_encoder_destroy(e.st)
		e.st = nil
	}
}
