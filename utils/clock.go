package utils

import (
	"sync/atomic"
	"time"
)

// Clock supplies the ledger timestamp (unix seconds) every time-based check is made against.
type Clock interface {
	Now() uint64
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns the current unix time in seconds
func (SystemClock) Now() uint64 {
	return uint64(time.Now().UTC().Unix())
}

// FixedClock is a manually driven clock used by tests and simulations.
type FixedClock struct {
	now atomic.Uint64
}

// NewFixedClock creates a clock pinned at ts
func NewFixedClock(ts uint64) *FixedClock {
	c := &FixedClock{}
	c.now.Store(ts)
	return c
}

// Now returns the pinned timestamp
func (c *FixedClock) Now() uint64 {
	return c.now.Load()
}

// Set pins the clock at ts
func (c *FixedClock) Set(ts uint64) {
	c.now.Store(ts)
}

// Advance moves the clock forward by seconds
func (c *FixedClock) Advance(seconds uint64) {
	c.now.Add(seconds)
}
