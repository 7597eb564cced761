package models

import "sync/atomic"

// SheetID identifies a sheet within a process. IDs start at 1.
type SheetID int64

// IDCounter issues monotonically increasing sheet IDs. It is safe for
// concurrent use.
type IDCounter struct {
	last atomic.Int64
}

// DefaultIDs is the counter used when SheetOptions.IDs is nil.
var DefaultIDs = &IDCounter{}

// Next returns a fresh ID.
func (c *IDCounter) Next() SheetID {
	return SheetID(c.last.Add(1))
}

// Observe records an explicitly chosen ID so Next never returns it.
func (c *IDCounter) Observe(id SheetID) {
	for {
		last := c.last.Load()
		if int64(id) <= last || c.last.CompareAndSwap(last, int64(id)) {
			return
		}
	}
}

// Reset restarts numbering from 1. Intended for tests.
func (c *IDCounter) Reset() {
	c.last.Store(0)
}
