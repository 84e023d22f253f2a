// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "github.com/joeycumines/logiface"

// DefaultWaiters is the waiter pool width used by [Builder] when
// Waiters is not called.
const DefaultWaiters = 4

// MPMC is a multi-producer multi-consumer channel with bounded waiter
// pools.
//
// Any number of tasks may call Enqueue, Dequeue, TryEnqueue and TryDequeue
// on the same *MPMC concurrently. Each direction has a fixed array of
// waker slots, one [Cell] per slot:
//
//   - A pending operation keeps the slot its task already holds (see
//     [TaskWaker]) or parks in the first empty slot of its direction.
//     With all slots taken by other tasks it asks for an immediate
//     re-invocation instead.
//   - A successful transfer wakes every parked task of the other
//     direction (broadcast). Tasks that lose the race for the item simply
//     park again.
//
// No waiter keeps its slot across registrations and wake order among
// waiters is unspecified.
type MPMC[T any] struct {
	c core[T]
}

// NewMPMC creates a multi-producer multi-consumer channel holding exactly
// capacity items, with waiters slots per direction.
// Panics if capacity < 2 or waiters < 1.
func NewMPMC[T any](capacity, waiters int) *MPMC[T] {
	return newMPMC[T](capacity, waiters, nil)
}

func newMPMC[T any](capacity, waiters int, log *logiface.Logger[logiface.Event]) *MPMC[T] {
	if waiters < 1 {
		panic("asq: waiters must be >= 1")
	}
	return &MPMC[T]{c: core[T]{
		ring:      NewMPMCRing[T](capacity),
		senders:   newWaiterPool(waiters),
		receivers: newWaiterPool(waiters),
		log:       log,
		kind:      kindMPMC,
	}}
}

// Enqueue starts sending v.
//
// If the channel has room, v is pushed immediately and the returned
// operation only has to wake the parked dequeuers on its first Resume.
func (q *MPMC[T]) Enqueue(v T) Enqueue[T] {
	return newEnqueue(&q.c, v)
}

// Dequeue starts receiving one item. Nothing happens until the first
// Resume.
func (q *MPMC[T]) Dequeue() Dequeue[T] {
	return newDequeue(&q.c)
}

// TryEnqueue pushes v and makes one attempt to wake every parked dequeuer.
//
// Returns nil, ErrWouldBlock if the channel is full (nothing changed), or
// ErrNotifyContended if v was pushed but some dequeuer slot was held
// elsewhere. In the last case call WakeDequeuers to retry.
func (q *MPMC[T]) TryEnqueue(v T) error {
	return q.c.tryEnqueue(v)
}

// TryDequeue pops one item and makes one attempt to wake every parked
// enqueuer.
//
// Returns (item, nil), (zero-value, ErrWouldBlock) if the channel is
// empty, or (item, ErrNotifyContended) if the item was popped but some
// enqueuer slot was held elsewhere. In the last case call WakeEnqueuers to
// retry.
func (q *MPMC[T]) TryDequeue() (T, error) {
	return q.c.tryDequeue()
}

// WakeDequeuers makes one broadcast attempt over the dequeuer slots.
// Returns nil or ErrNotifyContended.
func (q *MPMC[T]) WakeDequeuers() error {
	return q.c.notifyReceivers()
}

// WakeEnqueuers makes one broadcast attempt over the enqueuer slots.
// Returns nil or ErrNotifyContended.
func (q *MPMC[T]) WakeEnqueuers() error {
	return q.c.notifySenders()
}

// HasRoom reports whether the channel had room when observed.
func (q *MPMC[T]) HasRoom() bool {
	return q.c.hasRoom()
}

// HasData reports whether an item was buffered when observed.
func (q *MPMC[T]) HasData() bool {
	return q.c.hasData()
}

// Len returns the number of buffered items (advisory).
func (q *MPMC[T]) Len() int {
	return q.c.ring.Len()
}

// Cap returns the channel capacity.
func (q *MPMC[T]) Cap() int {
	return q.c.ring.Cap()
}

// Waiters returns how many enqueuer and dequeuer slots are occupied
// (advisory; slots held by another context count as occupied).
//
// Counting briefly takes every slot cell. A concurrent TryEnqueue or
// TryDequeue may then report ErrNotifyContended, and an in-flight
// operation may wake itself for one more Resume. Avoid it on hot paths.
func (q *MPMC[T]) Waiters() (enqueuers, dequeuers int) {
	return q.c.senders.parkedCount(), q.c.receivers.parkedCount()
}
