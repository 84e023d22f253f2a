// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "testing"

// countWaker counts Wake calls. Not safe for concurrent use.
type countWaker struct {
	n int
}

func (w *countWaker) Wake() { w.n++ }

// taskWaker is a TaskWaker identified by id. Copies with the same id
// resume the same task.
type taskWaker struct {
	id   int
	hits *int
}

func (w taskWaker) Wake() { *w.hits++ }

func (w taskWaker) WillWake(other Waker) bool {
	o, ok := other.(taskWaker)
	return ok && o.id == w.id
}

// holdRing wraps a ring and runs onMiss after every failed operation,
// before the caller gets to park.
type holdRing[T any] struct {
	Ring[T]
	onMiss func()
}

func (r *holdRing[T]) Enqueue(elem *T) error {
	err := r.Ring.Enqueue(elem)
	if err != nil && r.onMiss != nil {
		r.onMiss()
	}
	return err
}

func (r *holdRing[T]) Dequeue() (T, error) {
	v, err := r.Ring.Dequeue()
	if err != nil && r.onMiss != nil {
		r.onMiss()
	}
	return v, err
}

func receiverCell[T any](p *Producer[T]) *Cell[WakerSlot] {
	return &p.c.receivers.(*singleWaiter).cell
}

func senderCell[T any](p *Producer[T]) *Cell[WakerSlot] {
	return &p.c.senders.(*singleWaiter).cell
}

func skipRaceInternal(tb testing.TB) {
	tb.Helper()
	if RaceEnabled {
		tb.Skip("skip: atomix-guarded plain memory is reported by the race detector")
	}
}
