// Package store implements the in-memory, per-account resource
// collections everything else is built on, plus the cursor pagination
// shared by every list endpoint.
//
// The store owns the canonical copy of each record and hands the same
// shared instance back on every retrieval. Mutations made by one caller
// are visible to all future readers; that aliasing is the contract, since
// the store stands in for a single shared backend. Records live for the
// process lifetime; there is no eviction and no persistence.
package store

import "sync"

// Keyed is anything with a stable resource identifier.
type Keyed interface {
	ObjectID() string
}

type shard[T Keyed] struct {
	order []string
	byID  map[string]T
}

// Data is a per-account keyed collection preserving insertion order.
// It performs no uniqueness checks itself; create-semantics callers must
// check Contains before Put to raise a conflict.
type Data[T Keyed] struct {
	mu       sync.RWMutex
	accounts map[string]*shard[T]
}

// NewData returns an empty collection.
func NewData[T Keyed]() *Data[T] {
	return &Data[T]{accounts: make(map[string]*shard[T])}
}

// Put inserts or overwrites the record under its id. Overwriting keeps
// the record's original position in insertion order.
func (d *Data[T]) Put(accountID string, record T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.accounts[accountID]
	if !ok {
		s = &shard[T]{byID: make(map[string]T)}
		d.accounts[accountID] = s
	}
	id := record.ObjectID()
	if _, exists := s.byID[id]; !exists {
		s.order = append(s.order, id)
	}
	s.byID[id] = record
}

// Get returns the shared record instance, or false if absent.
func (d *Data[T]) Get(accountID, id string) (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var zero T
	s, ok := d.accounts[accountID]
	if !ok {
		return zero, false
	}
	record, ok := s.byID[id]
	if !ok {
		return zero, false
	}
	return record, true
}

// GetAll returns the account's records in insertion order. The slice is
// fresh but the elements are the shared instances.
func (d *Data[T]) GetAll(accountID string) []T {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.accounts[accountID]
	if !ok {
		return nil
	}
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Contains reports whether the id exists in the account's collection.
func (d *Data[T]) Contains(accountID, id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.accounts[accountID]
	if !ok {
		return false
	}
	_, ok = s.byID[id]
	return ok
}

// Remove deletes the record if present.
func (d *Data[T]) Remove(accountID, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.accounts[accountID]
	if !ok {
		return
	}
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
