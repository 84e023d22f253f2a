// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import (
	"code.hybscloud.com/atomix"
)

// SPSCRing is a single-producer single-consumer bounded ring.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's dequeue index, and vice versa,
// reducing cross-core cache line traffic.
//
// Capacity is exact (no power-of-2 rounding), so a capacity-1 ring holds
// exactly one element.
//
// Memory: O(capacity) with minimal per-slot overhead
type SPSCRing[T any] struct {
	_          pad
	head       atomix.Uint64 // Consumer reads from here
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	tail       atomix.Uint64 // Producer writes here
	_          pad
	cachedHead uint64 // Producer's cached view of head
	_          pad
	buffer     []T
	capacity   uint64
}

// NewSPSCRing creates a new SPSC ring holding exactly capacity elements.
// Panics if capacity < 1.
func NewSPSCRing[T any](capacity int) *SPSCRing[T] {
	if capacity < 1 {
		panic("asq: capacity must be >= 1")
	}

	n := uint64(capacity)
	return &SPSCRing[T]{
		buffer:   make([]T, n),
		capacity: n,
	}
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *SPSCRing[T]) Enqueue(elem *T) error {
	tail := q.tail.LoadRelaxed()
	if tail-q.cachedHead >= q.capacity {
		q.cachedHead = q.head.LoadAcquire()
		if tail-q.cachedHead >= q.capacity {
			return ErrWouldBlock
		}
	}

	q.buffer[tail%q.capacity] = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *SPSCRing[T]) Dequeue() (T, error) {
	head := q.head.LoadRelaxed()
	if head >= q.cachedTail {
		q.cachedTail = q.tail.LoadAcquire()
		if head >= q.cachedTail {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	idx := head % q.capacity
	elem := q.buffer[idx]
	var zero T
	q.buffer[idx] = zero
	q.head.StoreRelease(head + 1)
	return elem, nil
}

// Cap returns the ring capacity.
func (q *SPSCRing[T]) Cap() int {
	return int(q.capacity)
}

// Len returns the number of buffered elements. Safe from either side.
func (q *SPSCRing[T]) Len() int {
	// head first: tail never falls behind a head observed earlier
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return clampLen(tail-head, q.capacity)
}
