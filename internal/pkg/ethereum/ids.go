package ethereum

import (
	"sync/atomic"
	"time"
)

// IDGenerator yields request ids for JSON-RPC envelopes.
type IDGenerator interface {
	NextID() uint64
}

type counter struct {
	last atomic.Uint64
}

// NewCounter starts at the current unix time in milliseconds and increments
// by one per id, so ids stay timestamp-like but never repeat within a process.
func NewCounter() IDGenerator {
	c := &counter{}
	c.last.Store(uint64(time.Now().UnixMilli()))
	return c
}

func (c *counter) NextID() uint64 {
	return c.last.Add(1)
}
