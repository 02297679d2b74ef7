package opusbridge

// EncoderConfig carries the creation-time encoder parameters. The
// configuration is immutable for the lifetime of the encoder it
// creates.
type EncoderConfig struct {
	// SampleRate in Hz. The codec accepts 8000, 12000, 16000, 24000
	// and 48000.
	SampleRate int

	// Channels is 1 for mono, 2 for stereo.
	Channels int

	// Complexity trades CPU cost for compression quality, 0-10.
	Complexity int

	// Bitrate is the target bitrate in bits per second.
	Bitrate int
}

// Encoder is a live codec encoder resource.
type Encoder interface {
	// Encode compresses exactly frameSize samples per channel from pcm
	// into packet, capped at packet's capacity. It returns the number
	// of bytes written.
	Encode(pcm []int16, frameSize int, packet []byte) (int, error)

	// Destroy releases the underlying codec resource. Safe to call
	// more than once; operations after Destroy fail.
	Destroy()
}

// Decoder is a live codec decoder resource.
type Decoder interface {
	// Decode decompresses packet into up to frameSize samples per
	// channel of pcm. It returns the number of samples written per
	// channel.
	Decode(packet []byte, pcm []int16, frameSize int) (int, error)

	// Destroy releases the underlying codec resource. Safe to call
	// more than once; operations after Destroy fail.
	Destroy()
}

// Codec is the capability interface over the external codec library.
// Two implementations exist with identical surface: libopus (real) and
// stub (interface shape only, for builds without the codec).
type Codec interface {
	// NewEncoder allocates an encoder tuned for voice use and applies
	// the bridge's fixed configuration policy.
	NewEncoder(cfg EncoderConfig) (Encoder, error)

	// NewDecoder allocates a decoder for the given sample rate and
	// channel count.
	NewDecoder(sampleRate, channels int) (Decoder, error)

	// Version returns the codec library version string. Never empty.
	Version() string

	// EncoderSize reports the native memory footprint in bytes of an
	// encoder with the given channel count, or 0 when unknown.
	EncoderSize(channels int) int

	// DecoderSize reports the native memory footprint in bytes of a
	// decoder with the given channel count, or 0 when unknown.
	DecoderSize(channels int) int
}
