package bookingclient

import "sync"

// Cache holds the last-fetched snapshot of one entity collection:
// the visible items, a shadow copy for undoing client-side filters,
// the in-flight flag, the last error message, and the selected item
// for detail views. A mutex stands in for the single thread the
// pattern originally relied on.
type Cache[T any] struct {
	mu       sync.RWMutex
	items    []T
	allItems []T
	loading  bool
	err      string
	selected *T
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{items: []T{}, allItems: []T{}}
}

// Items returns a copy of the visible snapshot.
func (c *Cache[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// AllItems returns a copy of the unfiltered snapshot.
func (c *Cache[T]) AllItems() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.allItems))
	copy(out, c.allItems)
	return out
}

func (c *Cache[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the last stored error message, empty when clear.
func (c *Cache[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

func (c *Cache[T]) Selected() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.selected == nil {
		var zero T
		return zero, false
	}
	return *c.selected, true
}

// Filter narrows the visible items to those matching pred. It operates
// only on the already-fetched snapshot and never re-queries the server.
func (c *Cache[T]) Filter(pred func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
}

// ResetFilter restores the visible items from the shadow copy.
func (c *Cache[T]) ResetFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(c.allItems))
	copy(c.items, c.allItems)
}

// --- reconciliation transitions, driven by Store ---

func (c *Cache[T]) beginOp() {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()
}

func (c *Cache[T]) failOp(msg string) {
	c.mu.Lock()
	c.loading = false
	c.err = msg
	c.mu.Unlock()
}

func (c *Cache[T]) finishList(items []T) {
	c.mu.Lock()
	c.items = make([]T, len(items))
	copy(c.items, items)
	c.allItems = make([]T, len(items))
	copy(c.allItems, items)
	c.loading = false
	c.err = ""
	c.mu.Unlock()
}

func (c *Cache[T]) finishAppend(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.loading = false
	c.err = ""
	c.mu.Unlock()
}

// finishReplace swaps the element whose key matches; a missing key is
// a silent no-op, not an error.
func (c *Cache[T]) finishReplace(key string, item T, keyOf func(T) string) {
	c.mu.Lock()
	for i := range c.items {
		if keyOf(c.items[i]) == key {
			c.items[i] = item
			break
		}
	}
	c.loading = false
	c.err = ""
	c.mu.Unlock()
}

func (c *Cache[T]) finishRemove(key string, keyOf func(T) string) {
	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if keyOf(item) != key {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.loading = false
	c.err = ""
	c.mu.Unlock()
}

func (c *Cache[T]) finishSelect(item T) {
	c.mu.Lock()
	c.selected = &item
	c.loading = false
	c.err = ""
	c.mu.Unlock()
}
