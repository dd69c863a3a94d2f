package tim

import (
	"reflect"
	"sync"
)

// scratchCache is a single opportunistic slot for a reusable scratch
// buffer of some element type, guarded by try-lock-only access: per
// spec §5, contention never blocks a sort, it just means this
// invocation allocates its own buffer instead of borrowing the cached
// one.
type scratchCache struct {
	mu  sync.Mutex
	buf any
}

// caches maps reflect.Type (of the element type T) to its scratchCache,
// so sorts over different element types don't fight over one slot.
var caches sync.Map

func cacheFor[T any]() *scratchCache {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	v, _ := caches.LoadOrStore(t, &scratchCache{})
	return v.(*scratchCache)
}

// acquirePooled returns a reusable scratch slice of length n if one is
// cached, large enough, and the cache isn't contended; otherwise it
// returns nil and the caller must allocate locally.
func acquirePooled[T any](n int) []T {
	c := cacheFor[T]()
	if !c.mu.TryLock() {
		return nil
	}
	defer c.mu.Unlock()
	buf, ok := c.buf.(*[]T)
	if !ok || buf == nil || cap(*buf) < n {
		return nil
	}
	c.buf = nil
	return (*buf)[:n]
}

// donatePooled offers buf back to the process-wide cache for reuse by a
// later sort over the same element type, but only if doing so doesn't
// require blocking and only if buf is at least as large as whatever is
// already cached.
func donatePooled[T any](buf []T) {
	if cap(buf) == 0 {
		return
	}
	c := cacheFor[T]()
	if !c.mu.TryLock() {
		return
	}
	defer c.mu.Unlock()
	if existing, ok := c.buf.(*[]T); ok && existing != nil && cap(*existing) >= cap(buf) {
		return
	}
	b := buf[:0:cap(buf)]
	c.buf = &b
}
