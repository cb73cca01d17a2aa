package engine

import "sync"

// ReaderID identifies one reader of an EventChannel.
type ReaderID int

// EventChannel is a multi-reader event buffer. Each registered reader sees
// every event written after it registered exactly once. Events are dropped
// once all readers have consumed them; with no readers, writes are discarded.
type EventChannel[T any] struct {
	mu      sync.Mutex
	events  []T
	base    uint64   // sequence number of events[0]
	readers []uint64 // next sequence number per reader
	written uint64
}

func NewEventChannel[T any]() *EventChannel[T] {
	return &EventChannel[T]{
		events:  make([]T, 0),
		readers: make([]uint64, 0),
	}
}

// Register adds a reader positioned at the current end of the channel.
func (c *EventChannel[T]) Register() ReaderID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readers = append(c.readers, c.base+uint64(len(c.events)))
	return ReaderID(len(c.readers) - 1)
}

func (c *EventChannel[T]) Write(ev T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written++
	if len(c.readers) == 0 {
		c.base++
		return
	}
	c.events = append(c.events, ev)
}

// Read returns the events id has not seen yet and advances it.
func (c *EventChannel[T]) Read(id ReaderID) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(id) < 0 || int(id) >= len(c.readers) {
		return nil
	}
	start := int(c.readers[id] - c.base)
	out := make([]T, len(c.events)-start)
	copy(out, c.events[start:])
	c.readers[id] = c.base + uint64(len(c.events))
	c.compact()
	return out
}

func (c *EventChannel[T]) compact() {
	low := c.base + uint64(len(c.events))
	for _, pos := range c.readers {
		if pos < low {
			low = pos
		}
	}
	drop := int(low - c.base)
	if drop == 0 {
		return
	}
	var zero T
	for i := 0; i < drop; i++ {
		c.events[i] = zero
	}
	c.events = c.events[drop:]
	c.base = low
}

// Pending returns the number of buffered events not yet read by every reader.
func (c *EventChannel[T]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// Written returns the total number of events ever written.
func (c *EventChannel[T]) Written() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written
}
