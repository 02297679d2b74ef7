package libopus

/*
#include <opus.h>
*/
import "C"

import (
	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/errors"
)

type decoder struct {
	st       *C.OpusDecoder
	channels int
}

// NewDecoder allocates a decoder. No configuration policy applies;
// only sample rate and channel count are needed. Parameters are
// forwarded to libopus unvalidated.
func (Codec) NewDecoder(sampleRate, channels int) (opusbridge.Decoder, error) {
	var cerr C.int
	st := C.opus_decoder_create(C.opus_int32(sampleRate), C.int(channels), &cerr)
	if st == nil || cerr != C.OPUS_OK {
		return nil, errors.Allocation("decoder allocation",
			codecError(errors.PhaseCreate, int32(cerr)))
	}
	return &decoder{st: st, channels: channels}, nil
}

// Decode decompresses packet into up to frameSize samples per channel
// of pcm, with in-band FEC decoding disabled. Both buffers are leased
// for the duration of the call and released on every exit path.
func (d *decoder) Decode(packet []byte, pcm []int16, frameSize int) (int, error) {
	if d.st == nil {
		return 0, errors.Destroyed(errors.PhaseDecode, "decoder")
	}

	var l lease
	defer l.release()
	in := (*C.uchar)(l.bytes(packet))
	out := (*C.opus_int16)(l.int16s(pcm))

	n := C.opus_decode(d.st, in, C.opus_int32(len(packet)), out, C.int(frameSize), 0)
	if n < 0 {
		return 0, codecError(errors.PhaseDecode, int32(n))
	}
	return int(n), nil
}

// Destroy releases the native decoder state. Idempotent.
func (d *decoder) Destroy() {
	if d.st != nil {
		C.opus_decoder_destroy(d.st)
		d.st = nil
	}
}
