package bridge

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/opus-bridge/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int32
	}{
		{"codec code preserved", errors.Codec(errors.PhaseEncode, -4, "bad packet"), -4},
		{"codec alloc fail preserved", errors.Codec(errors.PhaseCreate, -7, "alloc"), -7},
		{"invalid handle", errors.InvalidHandle(errors.PhaseEncode, 3), StatusInvalidHandle},
		{"destroyed", errors.Destroyed(errors.PhaseEncode, "encoder"), StatusInvalidState},
		{"unsupported", errors.Unsupported(errors.PhaseCreate, "codec not linked"), StatusUnimplemented},
		{"short buffer", errors.ShortBuffer(errors.PhaseEncode, "sample", 100, 320), StatusBadArg},
		{"allocation", errors.Allocation("encoder allocation", nil), StatusAllocFail},
		{"plain error", stderrors.New("something else"), StatusInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusOf(tt.err); got != tt.want {
				t.Errorf("statusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}
