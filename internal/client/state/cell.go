package state

import (
	"context"
	"sync"
)

// View is the read side of a Cell.
type View[T any] interface {
	Get() T
	Subscribe() (<-chan T, func())
	Watch(ctx context.Context, fn func(T)) <-chan struct{}
}

// Cell holds a single observable value. Writers replace the value, readers
// either poll it with Get or receive changes through a subscription.
//
// Subscriptions have latest-value semantics: each subscriber owns a channel
// with a buffer of one, and a slow reader only ever sees the newest value.
type Cell[T any] struct {
	mu    sync.Mutex
	value T
	equal func(a, b T) bool
	subs  map[int]chan T
	next  int
}

// NewCell returns a Cell holding initial. Every write notifies subscribers.
func NewCell[T any](initial T) *Cell[T] {
	return NewCellFunc(initial, nil)
}

// NewCellFunc returns a Cell holding initial that skips notification when
// equal reports the new value equal to the current one. A nil equal notifies
// on every write.
func NewCellFunc[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{value: initial, equal: equal, subs: make(map[int]chan T)}
}

// NewComparableCell returns a Cell that only notifies when the value changes.
func NewComparableCell[T comparable](initial T) *Cell[T] {
	return NewCellFunc(initial, func(a, b T) bool { return a == b })
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(v)
}

// Update applies fn to the current value under the cell lock, stores the
// result and notifies subscribers. fn must not call back into the cell.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(fn(c.value))
	return c.value
}

// store must be called with c.mu held.
func (c *Cell[T]) store(v T) {
	if c.equal != nil && c.equal(c.value, v) {
		return
	}
	c.value = v
	c.notify()
}

// notify must be called with c.mu held. Only the cell sends on subscriber
// channels, so after draining a full buffer the send cannot block.
func (c *Cell[T]) notify() {
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- c.value
	}
}

// Subscribe registers a subscriber. The returned channel receives every
// subsequent change (coalesced to the latest value) and is closed by the
// returned cancel func. Cancel is safe to call more than once.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 1)

	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = ch
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}
	return ch, cancel
}

// Watch calls fn from a new goroutine for every change until ctx is done.
// The returned channel is closed once the goroutine has exited.
func (c *Cell[T]) Watch(ctx context.Context, fn func(T)) <-chan struct{} {
	ch, cancel := c.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				fn(v)
			}
		}
	}()

	return done
}
