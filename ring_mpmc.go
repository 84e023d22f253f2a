// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMCRing is a CAS-based multi-producer multi-consumer bounded ring.
//
// Uses per-slot sequence numbers which provide:
//   - Full ABA safety via sequence-based validation
//   - Works with both distinct and non-distinct values
//   - Exact capacity (slot index is position modulo capacity)
//
// A slot at position p is free for the producer when seq == p, holds data
// for the consumer when seq == p+1, and is released for the next round by
// storing p+capacity. With a single slot those states collide, so the
// minimum capacity is 2.
//
// Memory: n slots (16+ bytes per slot)
type MPMCRing[T any] struct {
	_        pad
	tail     atomix.Uint64 // Producer index
	_        pad
	head     atomix.Uint64 // Consumer index
	_        pad
	buffer   []mpmcSlot[T]
	capacity uint64
}

type mpmcSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

// NewMPMCRing creates a new MPMC ring holding exactly capacity elements.
// Panics if capacity < 2.
func NewMPMCRing[T any](capacity int) *MPMCRing[T] {
	if capacity < 2 {
		panic("asq: MPMC capacity must be >= 2")
	}

	n := uint64(capacity)
	q := &MPMCRing[T]{
		buffer:   make([]mpmcSlot[T], n),
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// Enqueue adds an element to the ring.
// Returns ErrWouldBlock if the ring is full.
func (q *MPMCRing[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		slot := &q.buffer[tail%q.capacity]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				slot.data = *elem
				slot.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element from the ring.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *MPMCRing[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		slot := &q.buffer[head%q.capacity]
		seq := slot.seq.LoadAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := slot.data
				var zero T
				slot.data = zero
				slot.seq.StoreRelease(head + q.capacity)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
}

// Cap returns the ring capacity.
func (q *MPMCRing[T]) Cap() int {
	return int(q.capacity)
}

// Len returns the number of claimed positions between head and tail.
// A position counts as soon as its producer wins the tail CAS, slightly
// before the data is visible to consumers.
func (q *MPMCRing[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail < head {
		return 0
	}
	return clampLen(tail-head, q.capacity)
}
