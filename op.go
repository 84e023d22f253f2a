// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

// opState is the progress of one Enqueue or Dequeue operation.
type opState uint8

const (
	opCreated    opState = iota // transfer not attempted by Resume yet
	opAwaiting                  // ring was full/empty; parked or self-woken
	opCompleting                // transfer done; peer not yet notified
	opDone
)

// Enqueue is an in-flight enqueue of one item.
//
// Obtain it from [Producer.Enqueue] or [MPMC.Enqueue] and drive it with
// Resume until Resume returns nil. Resume never blocks: on
// [ErrWouldBlock] the operation has either parked the given waker, to be
// fired when room appears, or already called Wake on it to ask for an
// immediate re-invocation.
//
// The item counts as delivered only once Resume returns nil. Abandoning
// an Enqueue that has not transferred its item (see Transferred) loses
// the item. Abandoning one that has transferred leaves the item in the
// channel, but a parked consumer may not be woken for it.
//
// Enqueue is a value type; keep it in one variable and do not copy it
// while in flight.
type Enqueue[T any] struct {
	c     *core[T]
	item  T
	state opState
}

func newEnqueue[T any](c *core[T], v T) Enqueue[T] {
	op := Enqueue[T]{c: c, item: v}
	// Fast path: with room available the item is transferred before the
	// scheduler ever sees the operation.
	if c.ring.Enqueue(&v) == nil {
		var zero T
		op.item = zero
		op.state = opCompleting
	}
	return op
}

// Resume advances the operation by one step on behalf of the task that
// owns w. Returns nil when the item is in the channel and the consumer
// side has been notified, or ErrWouldBlock while pending.
//
// Panics if w is nil.
func (op *Enqueue[T]) Resume(w Waker) error {
	if w == nil {
		panic("asq: Resume requires a non-nil Waker")
	}
	switch op.state {
	case opDone:
		return nil
	case opCreated, opAwaiting:
		if op.c.ring.Enqueue(&op.item) != nil {
			op.state = opAwaiting
			op.c.parkSender(w)
			return ErrWouldBlock
		}
		var zero T
		op.item = zero
		op.state = opCompleting
	}

	// Fire or self-requeue: a notification is never dropped.
	if !op.c.receivers.wake() {
		op.c.trace(sideProducer, "wake contended")
		w.Wake()
		return ErrWouldBlock
	}
	op.state = opDone
	return nil
}

// Transferred reports whether the item has been pushed into the ring.
func (op *Enqueue[T]) Transferred() bool {
	return op.state >= opCompleting
}

// Done reports whether Resume has returned nil.
func (op *Enqueue[T]) Done() bool {
	return op.state == opDone
}

// Dequeue is an in-flight dequeue of one item.
//
// Obtain it from [Consumer.Dequeue] or [MPMC.Dequeue] and drive it with
// Resume until Resume returns a nil error. Unlike Enqueue, Dequeue does
// nothing at construction: the first pop happens in the first Resume, so
// an operation that is never resumed never removes an item.
//
// Abandoning a Dequeue after it popped its item (Resume returned
// ErrWouldBlock while notifying the producer side) loses the item.
type Dequeue[T any] struct {
	c     *core[T]
	item  T
	state opState
}

func newDequeue[T any](c *core[T]) Dequeue[T] {
	return Dequeue[T]{c: c}
}

// Resume advances the operation by one step on behalf of the task that
// owns w. Returns (item, nil) once an item was removed and the producer
// side has been notified, or (zero-value, ErrWouldBlock) while pending.
// After completion Resume keeps returning the same item.
//
// Panics if w is nil.
func (op *Dequeue[T]) Resume(w Waker) (T, error) {
	if w == nil {
		panic("asq: Resume requires a non-nil Waker")
	}
	var zero T
	switch op.state {
	case opDone:
		return op.item, nil
	case opCreated, opAwaiting:
		v, err := op.c.ring.Dequeue()
		if err != nil {
			op.state = opAwaiting
			op.c.parkReceiver(w)
			return zero, ErrWouldBlock
		}
		op.item = v
		op.state = opCompleting
	}

	if !op.c.senders.wake() {
		op.c.trace(sideConsumer, "wake contended")
		w.Wake()
		return zero, ErrWouldBlock
	}
	op.state = opDone
	return op.item, nil
}

// Done reports whether Resume has returned the item.
func (op *Dequeue[T]) Done() bool {
	return op.state == opDone
}
