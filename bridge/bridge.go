package bridge

import (
	"go.uber.org/zap"

	opusbridge "github.com/wippyai/opus-bridge"
	"github.com/wippyai/opus-bridge/handle"
)

// Bridge is the flat call surface exposed to managed-runtime callers.
// Resources are exchanged as opaque int64 handles; 0 is the creation
// failure sentinel, negative returns from Encode/Decode are status
// codes.
//
// Encoder and decoder handles live in separate tables, so presenting a
// handle of the wrong kind fails the same way a stale one does.
type Bridge struct {
	codec    opusbridge.Codec
	encoders *handle.Table[opusbridge.Encoder]
	decoders *handle.Table[opusbridge.Decoder]
	log      *zap.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger replaces the diagnostic logger. The default is a no-op
// logger; diagnostics are best-effort and never fail an operation.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates a bridge over the given codec implementation.
func New(codec opusbridge.Codec, opts ...Option) *Bridge {
	b := &Bridge{
		codec:    codec,
		encoders: handle.NewTable[opusbridge.Encoder](),
		decoders: handle.NewTable[opusbridge.Decoder](),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateEncoder allocates an encoder tuned for voice use with the
// bridge's fixed configuration policy and returns its handle, or 0 on
// failure. Parameters are forwarded to the codec unvalidated; the
// codec rejects unsupported values.
func (b *Bridge) CreateEncoder(sampleRate, channels, complexity, bitrate int) int64 {
	enc, err := b.codec.NewEncoder(opusbridge.EncoderConfig{
		SampleRate: sampleRate,
		Channels:   channels,
		Complexity: complexity,
		Bitrate:    bitrate,
	})
	if err != nil {
		b.log.Error("encoder creation failed",
			zap.Int("sample_rate", sampleRate),
			zap.Int("channels", channels),
			zap.Error(err))
		return 0
	}

	h := b.encoders.Insert(enc)
	if h == 0 {
		enc.Destroy()
		b.log.Error("encoder registration failed: bridge closed")
		return 0
	}

	b.log.Info("encoder created",
		zap.Int64("handle", int64(h)),
		zap.Int("sample_rate", sampleRate),
		zap.Int("channels", channels),
		zap.Int("complexity", complexity),
		zap.Int("bitrate", bitrate))
	return int64(h)
}

// CreateDecoder allocates a decoder and returns its handle, or 0 on
// failure.
func (b *Bridge) CreateDecoder(sampleRate, channels int) int64 {
	dec, err := b.codec.NewDecoder(sampleRate, channels)
	if err != nil {
		b.log.Error("decoder creation failed",
			zap.Int("sample_rate", sampleRate),
			zap.Int("channels", channels),
			zap.Error(err))
		return 0
	}

	h := b.decoders.Insert(dec)
	if h == 0 {
		dec.Destroy()
		b.log.Error("decoder registration failed: bridge closed")
		return 0
	}

	b.log.Info("decoder created",
		zap.Int64("handle", int64(h)),
		zap.Int("sample_rate", sampleRate),
		zap.Int("channels", channels))
	return int64(h)
}

// Encode compresses exactly frameSize samples from samples into
// packet, capped at packet's capacity. It returns the number of bytes
// written, StatusBadArg for precondition violations detected before
// any codec call, StatusInvalidHandle for a stale handle, or the
// codec's own negative status on compression failure. Failure paths
// leave packet contents unspecified; callers must not inspect them.
func (b *Bridge) Encode(h int64, samples []int16, frameSize int, packet []byte) int32 {
	if h == 0 || len(samples) == 0 || len(packet) == 0 {
		b.log.Warn("encode rejected: missing handle or buffer",
			zap.Int64("handle", h),
			zap.Int("samples", len(samples)),
			zap.Int("packet_cap", len(packet)))
		return StatusBadArg
	}

	enc, ok := b.encoders.Get(handle.Handle(h))
	if !ok {
		b.log.Warn("encode rejected: stale handle", zap.Int64("handle", h))
		return StatusInvalidHandle
	}

	if frameSize <= 0 || len(samples) < frameSize {
		b.log.Warn("encode rejected: size mismatch",
			zap.Int64("handle", h),
			zap.Int("samples", len(samples)),
			zap.Int("frame_size", frameSize))
		return StatusBadArg
	}

	n, err := enc.Encode(samples, frameSize, packet)
	if err != nil {
		status := statusOf(err)
		b.log.Error("encode failed",
			zap.Int64("handle", h),
			zap.Int32("status", status),
			zap.Error(err))
		return status
	}
	return int32(n)
}

// Decode decompresses packetLen bytes of packet into up to frameSize
// samples of samples, with in-band FEC decoding disabled. It returns
// the number of samples written per channel, with the same status
// conventions as Encode.
func (b *Bridge) Decode(h int64, packet []byte, packetLen int, samples []int16, frameSize int) int32 {
	if h == 0 || len(packet) == 0 || len(samples) == 0 {
		b.log.Warn("decode rejected: missing handle or buffer",
			zap.Int64("handle", h),
			zap.Int("packet", len(packet)),
			zap.Int("samples", len(samples)))
		return StatusBadArg
	}

	dec, ok := b.decoders.Get(handle.Handle(h))
	if !ok {
		b.log.Warn("decode rejected: stale handle", zap.Int64("handle", h))
		return StatusInvalidHandle
	}

	if packetLen <= 0 || packetLen > len(packet) || frameSize <= 0 || len(samples) < frameSize {
		b.log.Warn("decode rejected: size mismatch",
			zap.Int64("handle", h),
			zap.Int("packet", len(packet)),
			zap.Int("packet_len", packetLen),
			zap.Int("samples", len(samples)),
			zap.Int("frame_size", frameSize))
		return StatusBadArg
	}

	n, err := dec.Decode(packet[:packetLen], samples, frameSize)
	if err != nil {
		status := statusOf(err)
		b.log.Error("decode failed",
			zap.Int64("handle", h),
			zap.Int32("status", status),
			zap.Error(err))
		return status
	}
	return int32(n)
}

// DestroyEncoder releases the encoder behind h. A zero or stale handle
// is a no-op; the handle is invalid for any further use.
func (b *Bridge) DestroyEncoder(h int64) {
	if h == 0 {
		return
	}
	enc, ok := b.encoders.Remove(handle.Handle(h))
	if !ok {
		b.log.Debug("destroy encoder: handle not live", zap.Int64("handle", h))
		return
	}
	enc.Destroy()
	b.log.Info("encoder destroyed", zap.Int64("handle", h))
}

// DestroyDecoder releases the decoder behind h. A zero or stale handle
// is a no-op; the handle is invalid for any further use.
func (b *Bridge) DestroyDecoder(h int64) {
	if h == 0 {
		return
	}
	dec, ok := b.decoders.Remove(handle.Handle(h))
	if !ok {
		b.log.Debug("destroy decoder: handle not live", zap.Int64("handle", h))
		return
	}
	dec.Destroy()
	b.log.Info("decoder destroyed", zap.Int64("handle", h))
}

// Version returns the codec library's version identifier.
func (b *Bridge) Version() string {
	return b.codec.Version()
}

// EncoderSize reports the native byte footprint of an encoder with the
// given channel count.
func (b *Bridge) EncoderSize(channels int) int32 {
	return int32(b.codec.EncoderSize(channels))
}

// DecoderSize reports the native byte footprint of a decoder with the
// given channel count.
func (b *Bridge) DecoderSize(channels int) int32 {
	return int32(b.codec.DecoderSize(channels))
}

// LiveEncoders returns the number of encoder handles not yet destroyed.
func (b *Bridge) LiveEncoders() int {
	return b.encoders.Len()
}

// LiveDecoders returns the number of decoder handles not yet destroyed.
func (b *Bridge) LiveDecoders() int {
	return b.decoders.Len()
}

// Close destroys every live resource and invalidates all handles.
// Correct callers destroy each handle themselves; Close backstops
// leaks when a bridge is torn down.
func (b *Bridge) Close() error {
	if err := b.encoders.Close(); err != nil {
		return err
	}
	return b.decoders.Close()
}
