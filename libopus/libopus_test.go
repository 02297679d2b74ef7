//go:build cgo

package libopus

import (
	"strings"
	"testing"

	opusbridge "github.com/wippyai/opus-bridge"
)

var validRates = []int{8000, 12000, 16000, 24000, 48000}

func TestVersion(t *testing.T) {
	v := New().Version()
	if v == "" {
		t.Fatal("Version() must be non-empty")
	}
	if !strings.Contains(v, "libopus") {
		t.Errorf("Version() = %q, want it to identify libopus", v)
	}
}

func TestSizes(t *testing.T) {
	c := New()
	for _, channels := range []int{1, 2} {
		enc := c.EncoderSize(channels)
		dec := c.DecoderSize(channels)
		if enc <= 0 {
			t.Errorf("EncoderSize(%d) = %d, want > 0", channels, enc)
		}
		if dec <= 0 {
			t.Errorf("DecoderSize(%d) = %d, want > 0", channels, dec)
		}
	}
	if c.EncoderSize(2) < c.EncoderSize(1) {
		t.Error("stereo encoder should not be smaller than mono")
	}
}

func TestNewEncoder_ValidPairs(t *testing.T) {
	c := New()
	for _, rate := range validRates {
		for _, channels := range []int{1, 2} {
			enc, err := c.NewEncoder(opusbridge.EncoderConfig{
				SampleRate: rate,
				Channels:   channels,
				Complexity: 5,
				Bitrate:    16000 * channels,
			})
			if err != nil {
				t.Errorf("NewEncoder(%d, %d): %v", rate, channels, err)
				continue
			}
			enc.Destroy()
		}
	}
}

func TestNewEncoder_RejectsBadRate(t *testing.T) {
	_, err := New().NewEncoder(opusbridge.EncoderConfig{
		SampleRate: 44100,
		Channels:   1,
		Complexity: 5,
		Bitrate:    16000,
	})
	if err == nil {
		t.Fatal("expected creation failure for 44100 Hz")
	}
}

func TestNewDecoder_ValidPairs(t *testing.T) {
	c := New()
	for _, rate := range validRates {
		for _, channels := range []int{1, 2} {
			dec, err := c.NewDecoder(rate, channels)
			if err != nil {
				t.Errorf("NewDecoder(%d, %d): %v", rate, channels, err)
				continue
			}
			dec.Destroy()
		}
	}
}

func TestEncode_SilenceScenario(t *testing.T) {
	c := New()
	enc, err := c.NewEncoder(opusbridge.EncoderConfig{
		SampleRate: 16000,
		Channels:   1,
		Complexity: 5,
		Bitrate:    16000,
	})
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Destroy()

	samples := make([]int16, 320) // 20ms at 16kHz mono
	packet := make([]byte, 256)
	n, err := enc.Encode(samples, 320, packet)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if n < 1 || n > 256 {
		t.Errorf("Encode wrote %d bytes, want 1..256", n)
	}
}

func TestRoundTrip_SilenceNearZero(t *testing.T) {
	c := New()
	enc, err := c.NewEncoder(opusbridge.EncoderConfig{
		SampleRate: 16000,
		Channels:   1,
		Complexity: 5,
		Bitrate:    16000,
	})
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	defer enc.Destroy()

	dec, err := c.NewDecoder(16000, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer dec.Destroy()

	const frameSize = 320
	silence := make([]int16, frameSize)
	packet := make([]byte, 256)

	n, err := enc.Encode(silence, frameSize, packet)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out := make([]int16, frameSize)
	written, err := dec.Decode(packet[:n], out, frameSize)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if written != frameSize {
		t.Fatalf("Decode wrote %d samples, want %d", written, frameSize)
	}

	// Lossy codec: silence decodes near zero, not bit-exact.
	const tolerance = 64
	for i, s := range out {
		if s < -tolerance || s > tolerance {
			t.Fatalf("sample %d = %d, outside silence tolerance %d", i, s, tolerance)
		}
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	dec, err := New().NewDecoder(16000, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	defer dec.Destroy()

	// A packet of 0xFF bytes is not a valid bitstream.
	garbage := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	pcm := make([]int16, 320)
	if _, err := dec.Decode(garbage, pcm, 320); err == nil {
		t.Error("expected decode failure for invalid bitstream")
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	c := New()

	enc, err := c.NewEncoder(opusbridge.EncoderConfig{
		SampleRate: 16000, Channels: 1, Complexity: 5, Bitrate: 16000,
	})
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	enc.Destroy()
	enc.Destroy()

	if _, err := enc.Encode(make([]int16, 320), 320, make([]byte, 256)); err == nil {
		t.Error("expected error encoding with destroyed encoder")
	}

	dec, err := c.NewDecoder(16000, 1)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	dec.Destroy()
	dec.Destroy()

	if _, err := dec.Decode([]byte{0}, make([]int16, 320), 320); err == nil {
		t.Error("expected error decoding with destroyed decoder")
	}
}
