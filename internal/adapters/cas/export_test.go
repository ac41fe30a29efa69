package cas

import "time"

// NewStoreWithGenerator creates a Store with a deterministic id source and clock.
func NewStoreWithGenerator(newID func() string, now func() time.Time) *Store {
	return &Store{newID: newID, now: now}
}
