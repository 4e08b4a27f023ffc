package database

import "sync"

// MemoryTable is an insertion-ordered, concurrency-safe map of records keyed by id.
// It backs the memory store driver.
type MemoryTable[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
	key   func(T) string
}

func NewMemoryTable[T any](key func(T) string) *MemoryTable[T] {
	return &MemoryTable[T]{rows: make(map[string]T), key: key}
}

// Get returns the record stored under id.
func (t *MemoryTable[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// All returns every record in insertion order.
func (t *MemoryTable[T]) All() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// Insert adds a record. It returns false if the id is already taken.
func (t *MemoryTable[T]) Insert(row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(row)
	if _, exists := t.rows[id]; exists {
		return false
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return true
}

// Update overwrites an existing record. It returns false if the id is unknown.
func (t *MemoryTable[T]) Update(row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(row)
	if _, exists := t.rows[id]; !exists {
		return false
	}
	t.rows[id] = row
	return true
}

// UpdateIf overwrites an existing record only when ok accepts the stored one.
func (t *MemoryTable[T]) UpdateIf(row T, ok func(current T) bool) (found, applied bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.key(row)
	current, exists := t.rows[id]
	if !exists {
		return false, false
	}
	if !ok(current) {
		return true, false
	}
	t.rows[id] = row
	return true, true
}

// Delete removes the record stored under id.
func (t *MemoryTable[T]) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Replace swaps the whole table for rows, keeping their order.
func (t *MemoryTable[T]) Replace(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[string]T, len(rows))
	t.order = make([]string, 0, len(rows))
	for _, row := range rows {
		id := t.key(row)
		if _, dup := t.rows[id]; !dup {
			t.order = append(t.order, id)
		}
		t.rows[id] = row
	}
}
