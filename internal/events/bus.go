// Package events provides the in-process bus that connects the kernel and
// session layer to the status presentation layer, together with the catalog
// of recognized event names and their payload types.
package events

import (
	"sync"
	"time"
)

// Event is a single bus message. Data carries an optional payload struct
// from this package; handlers must tolerate a nil or foreign Data value.
type Event struct {
	Type string
	Time time.Time
	Data any
}

// Bus is a minimal fan-out pub/sub bus. Publish never blocks: a subscriber
// that has fallen behind loses events rather than stalling the publisher.
type Bus interface {
	// Publish delivers e to all current subscribers. A zero Time is
	// stamped with the current time.
	Publish(e Event)

	// Subscribe registers a new subscriber with the given channel buffer
	// (a sensible default is used when buffer <= 0). The returned cancel
	// function removes the subscription and closes the channel; it is
	// safe to call more than once.
	Subscribe(buffer int) (<-chan Event, func())
}

type memoryBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
}

// NewBus returns an empty in-memory bus.
func NewBus() Bus {
	return &memoryBus{subs: make(map[int]chan Event)}
}

// Publish sends under the read lock so a concurrent unsubscribe cannot
// close a channel mid-delivery. Sends are non-blocking.
func (b *memoryBus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (b *memoryBus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, cancel
}
