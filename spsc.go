// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "github.com/joeycumines/logiface"

// Producer is the sending half of a single-producer single-consumer
// channel.
//
// A channel has exactly one Producer and one Consumer: both are created
// together by [NewSPSC] (or [BuildSPSC]) and no other way exists to reach
// the channel. A Producer must be used by one task at a time, with at most
// one Enqueue in flight.
type Producer[T any] struct {
	c *core[T]
}

// Consumer is the receiving half of a single-producer single-consumer
// channel. Same ownership rules as [Producer].
type Consumer[T any] struct {
	c *core[T]
}

// NewSPSC creates a single-producer single-consumer channel holding
// exactly capacity items, and returns its only Producer and Consumer.
//
// Each side parks in a single waker slot guarded by its own [Cell].
// Panics if capacity < 1.
func NewSPSC[T any](capacity int) (*Producer[T], *Consumer[T]) {
	return newSPSC[T](capacity, nil)
}

func newSPSC[T any](capacity int, log *logiface.Logger[logiface.Event]) (*Producer[T], *Consumer[T]) {
	c := &core[T]{
		ring:      NewSPSCRing[T](capacity),
		senders:   &singleWaiter{},
		receivers: &singleWaiter{},
		log:       log,
		kind:      kindSPSC,
	}
	return &Producer[T]{c: c}, &Consumer[T]{c: c}
}

// Enqueue starts sending v.
//
// If the channel has room, v is pushed immediately and the returned
// operation only has to notify the consumer on its first Resume.
func (p *Producer[T]) Enqueue(v T) Enqueue[T] {
	return newEnqueue(p.c, v)
}

// TryEnqueue pushes v and makes one attempt to wake the consumer.
//
// Returns nil on success, ErrWouldBlock if the channel is full (nothing
// changed), or ErrNotifyContended if v was pushed but the consumer's waker
// cell was held. In the last case call Notify to retry the wake.
func (p *Producer[T]) TryEnqueue(v T) error {
	return p.c.tryEnqueue(v)
}

// Notify makes one attempt to wake a parked consumer.
// Returns nil or ErrNotifyContended.
func (p *Producer[T]) Notify() error {
	return p.c.notifyReceivers()
}

// Ready reports whether the channel has room, i.e. whether the next
// Enqueue takes the fast path. Exact for the producer: only the consumer
// can change the answer, and only from false to true.
func (p *Producer[T]) Ready() bool {
	return p.c.hasRoom()
}

// Len returns the number of buffered items.
func (p *Producer[T]) Len() int {
	return p.c.ring.Len()
}

// Cap returns the channel capacity.
func (p *Producer[T]) Cap() int {
	return p.c.ring.Cap()
}

// Dequeue starts receiving one item. Nothing happens until the first
// Resume.
func (c *Consumer[T]) Dequeue() Dequeue[T] {
	return newDequeue(c.c)
}

// TryDequeue pops one item and makes one attempt to wake the producer.
//
// Returns (item, nil) on success, (zero-value, ErrWouldBlock) if the
// channel is empty, or (item, ErrNotifyContended) if the item was popped
// but the producer's waker cell was held. In the last case the item is
// valid and owned by the caller; call Notify to retry the wake.
func (c *Consumer[T]) TryDequeue() (T, error) {
	return c.c.tryDequeue()
}

// Notify makes one attempt to wake a parked producer.
// Returns nil or ErrNotifyContended.
func (c *Consumer[T]) Notify() error {
	return c.c.notifySenders()
}

// Ready reports whether an item is buffered, i.e. whether the next
// Dequeue completes its pop on the first Resume.
func (c *Consumer[T]) Ready() bool {
	return c.c.hasData()
}

// Len returns the number of buffered items.
func (c *Consumer[T]) Len() int {
	return c.c.ring.Len()
}

// Cap returns the channel capacity.
func (c *Consumer[T]) Cap() int {
	return c.c.ring.Cap()
}
