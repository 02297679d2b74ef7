package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindCodec,
				Code:   -1,
				Detail: "invalid argument",
			},
			contains: []string{"[encode]", "codec", "status -1", "invalid argument"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindShortBuffer,
			},
			contains: []string{"[decode]", "short_buffer"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCreate,
				Kind:   KindAllocation,
				Detail: "encoder allocation",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[create]", "allocation", "encoder allocation", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want it to contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := ShortBuffer(PhaseEncode, "sample", 100, 320)

	if !errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindShortBuffer}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindShortBuffer}) {
		t.Error("expected no match on different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindNilBuffer}) {
		t.Error("expected no match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Allocation("decoder allocation", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestCodec_CarriesCode(t *testing.T) {
	err := Codec(PhaseDecode, -4, "corrupted stream")

	var bridgeErr *Error
	if !errors.As(err, &bridgeErr) {
		t.Fatal("expected errors.As to match *Error")
	}
	if bridgeErr.Code != -4 {
		t.Errorf("Code = %d, want -4", bridgeErr.Code)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"invalid handle", InvalidHandle(PhaseEncode, 42), PhaseEncode, KindInvalidHandle, "42"},
		{"nil buffer", NilBuffer(PhaseDecode, "sample"), PhaseDecode, KindNilBuffer, "sample"},
		{"short buffer", ShortBuffer(PhaseEncode, "sample", 100, 320), PhaseEncode, KindShortBuffer, "100"},
		{"invalid config", InvalidConfig("sample rate %d not supported", 44100), PhaseCreate, KindInvalidConfig, "44100"},
		{"destroyed", Destroyed(PhaseEncode, "encoder"), PhaseEncode, KindDestroyed, "encoder"},
		{"unsupported", Unsupported(PhaseCreate, "codec not linked"), PhaseCreate, KindUnsupported, "codec not linked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %q, want %q", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
