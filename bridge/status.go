package bridge

import (
	stderrors "errors"

	"github.com/wippyai/opus-bridge/errors"
)

// Status codes returned by Encode and Decode. Codes -1 through -7
// mirror the codec library's own numbering and pass through unchanged
// when the codec fails; StatusInvalidHandle is the one code the bridge
// defines itself, for handles that are stale or of the wrong kind.
const (
	StatusOK             int32 = 0
	StatusBadArg         int32 = -1
	StatusBufferTooSmall int32 = -2
	StatusInternal       int32 = -3
	StatusInvalidPacket  int32 = -4
	StatusUnimplemented  int32 = -5
	StatusInvalidState   int32 = -6
	StatusAllocFail      int32 = -7
	StatusInvalidHandle  int32 = -8
)

// statusOf translates a codec error into a surface status code. Codec
// failures keep their original code; structural bridge errors map to
// the nearest stable code; anything unrecognized reports internal
// error.
func statusOf(err error) int32 {
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Code < 0 {
			return e.Code
		}
		switch e.Kind {
		case errors.KindInvalidHandle:
			return StatusInvalidHandle
		case errors.KindDestroyed:
			return StatusInvalidState
		case errors.KindUnsupported:
			return StatusUnimplemented
		case errors.KindNilBuffer, errors.KindShortBuffer, errors.KindInvalidConfig:
			return StatusBadArg
		case errors.KindAllocation:
			return StatusAllocFail
		}
	}
	return StatusInternal
}
