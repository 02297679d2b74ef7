package stub

import (
	"testing"

	opusbridge "github.com/wippyai/opus-bridge"
)

func TestCodec_CreationAlwaysFails(t *testing.T) {
	c := New()

	configs := []opusbridge.EncoderConfig{
		{SampleRate: 16000, Channels: 1, Complexity: 5, Bitrate: 16000},
		{SampleRate: 48000, Channels: 2, Complexity: 10, Bitrate: 64000},
		{SampleRate: 0, Channels: 0, Complexity: 0, Bitrate: 0},
	}
	for _, cfg := range configs {
		if enc, err := c.NewEncoder(cfg); err == nil || enc != nil {
			t.Errorf("NewEncoder(%+v) = %v, %v, want nil encoder and error", cfg, enc, err)
		}
	}

	if dec, err := c.NewDecoder(16000, 1); err == nil || dec != nil {
		t.Errorf("NewDecoder = %v, %v, want nil decoder and error", dec, err)
	}
}

func TestCodec_Version(t *testing.T) {
	if v := New().Version(); v == "" {
		t.Error("Version() must be non-empty in the interface-shape variant")
	}
}

func TestCodec_Sizes(t *testing.T) {
	c := New()
	for _, ch := range []int{0, 1, 2, 255} {
		if n := c.EncoderSize(ch); n != 0 {
			t.Errorf("EncoderSize(%d) = %d, want 0", ch, n)
		}
		if n := c.DecoderSize(ch); n != 0 {
			t.Errorf("DecoderSize(%d) = %d, want 0", ch, n)
		}
	}
}
