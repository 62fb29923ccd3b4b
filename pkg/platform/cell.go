package platform

import "sync"

// cell is a memoizing cell: an unresolved/resolved state guarded by its
// own mutex. resolve runs its function at most once per resolution
// cycle and caches only on success, so a failed resolution leaves the
// cell unresolved for the next attempt. set and reset give explicit
// override and re-detection control.
//
// Every access takes the lock, including reads of an already-resolved
// value. This keeps resolution and explicit overrides totally ordered.
type cell[T any] struct {
	mu       sync.Mutex
	resolved bool
	value    T
}

// resolve returns the cached value, running fn to produce it first if
// the cell is unresolved. An error from fn is returned without caching
// anything.
func (c *cell[T]) resolve(fn func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		return c.value, nil
	}

	v, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}

	c.value = v
	c.resolved = true
	return v, nil
}

// set stores v as the resolved value, replacing any cached value.
func (c *cell[T]) set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.resolved = true
}

// reset returns the cell to the unresolved state so the next resolve
// re-runs detection.
func (c *cell[T]) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.resolved = false
}
