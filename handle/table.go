package handle

import (
	"sync"
)

// Handle is an opaque reference to a resource in a table.
// Handle 0 is reserved and always invalid.
type Handle int64

// Destroyer is optionally implemented by resource values that need
// cleanup when removed from a table.
type Destroyer interface {
	Destroy()
}

// Table maps opaque int64 handles to owned resources of type T.
//
// Handles are assigned from a monotonic counter and never reused, so a
// destroyed handle stays invalid for the table's lifetime and
// use-after-destroy is a detectable lookup failure. All methods are
// safe for concurrent use.
type Table[T any] struct {
	mu      sync.RWMutex
	entries map[Handle]T
	next    Handle
	closed  bool
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries: make(map[Handle]T),
		next:    1,
	}
}

// Insert stores a value and returns its handle, or 0 if the table is
// closed.
func (t *Table[T]) Insert(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	h := t.next
	t.next++
	t.entries[h] = value
	return h
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(h Handle) (T, bool) {
	var zero T
	if h == 0 {
		return zero, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.entries[h]
	if !ok {
		return zero, false
	}
	return value, true
}

// Remove drops a resource and returns (value, true) if it was live.
// The caller owns the returned value; the table does not invoke its
// destructor.
func (t *Table[T]) Remove(h Handle) (T, bool) {
	var zero T
	if h == 0 {
		return zero, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	value, ok := t.entries[h]
	if !ok {
		return zero, false
	}
	delete(t.entries, h)
	return value, true
}

// Len returns the number of live resources.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Each iterates over all live resources until fn returns false.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for h, value := range t.entries {
		if !fn(h, value) {
			break
		}
	}
}

// Close destroys all remaining resources and stops accepting inserts.
// Values implementing Destroyer are released. Close is idempotent.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	for h, value := range t.entries {
		if d, ok := any(value).(Destroyer); ok {
			d.Destroy()
		}
		delete(t.entries, h)
	}
	return nil
}
