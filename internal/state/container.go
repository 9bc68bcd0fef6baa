// Package state holds the planner's in-memory snapshots.
//
// A Container owns exactly one immutable snapshot. Writers replace it
// wholesale and subscribers are told about every replacement, in order,
// before the writer returns.
package state

import "sync"

// Container guards one snapshot of type T.
type Container[T any] struct {
	name string

	// writeMu serializes Set/Update and their notifications so observers see
	// transitions in mutation order. Subscribers must not write to the same
	// container from inside their callback.
	writeMu sync.Mutex

	mu     sync.RWMutex
	value  T
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// NewContainer returns a container holding initial.
func NewContainer[T any](name string, initial T) *Container[T] {
	return &Container[T]{name: name, value: initial}
}

// Name is the store key this container is persisted under.
func (c *Container[T]) Name() string {
	return c.name
}

// Get returns the current snapshot. Callers must treat it as read-only.
func (c *Container[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the snapshot and notifies subscribers.
func (c *Container[T]) Set(next T) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.replace(next)
}

// Update derives the next snapshot from the current one and publishes it as
// a single transition.
func (c *Container[T]) Update(fn func(current T) T) T {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	next := fn(c.Get())
	c.replace(next)
	return next
}

// Subscribe registers fn for future transitions and returns its cancel func.
func (c *Container[T]) Subscribe(fn func(T)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(fn)
}

// Watch is Subscribe plus an immediate call with the current snapshot,
// atomically with respect to writers.
func (c *Container[T]) Watch(fn func(T)) func() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	cancel := c.addLocked(fn)
	current := c.value
	c.mu.Unlock()

	fn(current)
	return cancel
}

func (c *Container[T]) addLocked(fn func(T)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return func() { c.unsubscribe(id) }
}

func (c *Container[T]) unsubscribe(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]subscriber[T], 0, len(c.subs))
	for _, s := range c.subs {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	c.subs = kept
}

func (c *Container[T]) replace(next T) {
	c.mu.Lock()
	c.value = next
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(next)
	}
}
