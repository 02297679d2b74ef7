package libopus

import (
	"runtime"
	"unsafe"
)

// lease grants the codec temporary direct access to caller-owned
// buffers for the duration of a single native call. Acquisition pins
// the backing storage; a single deferred release covers every exit
// path, including failures after partial acquisition.
type lease struct {
	pinner runtime.Pinner
}

// int16s pins a PCM buffer and returns its base address, or nil for an
// empty buffer.
func (l *lease) int16s(s []int16) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	p := &s[0]
	l.pinner.Pin(p)
	return unsafe.Pointer(p)
}

// bytes pins a packet buffer and returns its base address, or nil for
// an empty buffer.
func (l *lease) bytes(s []byte) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	p := &s[0]
	l.pinner.Pin(p)
	return unsafe.Pointer(p)
}

// release returns all pinned buffers to the caller. Safe to call with
// nothing pinned.
func (l *lease) release() {
	l.pinner.Unpin()
}
