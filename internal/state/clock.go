package state

import "github.com/google/uuid"

// Clock hands out commit sequence numbers and stroke IDs for one store.
type Clock struct {
	counter uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	c.counter++
	return c.counter
}

func newStrokeID() string {
	return uuid.NewString()
}
