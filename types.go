// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

// Ring is the bounded FIFO storage behind a channel.
//
// Ring provides non-blocking Enqueue and Dequeue operations. Both operations
// return ErrWouldBlock when they cannot proceed (ring full or empty). A Ring
// knows nothing about wakers; channels layer parking and notification on top.
//
// Example:
//
//	r := asq.NewSPSCRing[int](8)
//
//	// Enqueue
//	val := 42
//	if err := r.Enqueue(&val); err != nil {
//	    // Handle full ring
//	}
//
//	// Dequeue
//	elem, err := r.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Ring[T any] interface {
	// Enqueue adds an element to the ring (non-blocking).
	// The element is copied into the ring's internal buffer.
	// Returns nil on success, ErrWouldBlock if the ring is full.
	Enqueue(elem *T) error

	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the ring is empty.
	Dequeue() (T, error)

	// Cap returns the fixed capacity.
	Cap() int

	// Len returns the number of buffered elements.
	// Advisory under concurrency: the value may be stale by the time the
	// caller observes it. Always within [0, Cap()].
	Len() int
}

// Waker is the resume handle a cooperative scheduler hands to a pending
// operation. Calling Wake asks the scheduler to resume that operation.
//
// Wake may be called from any goroutine, at most once per registration,
// and possibly while a waker cell is held. Implementations must therefore
// not block and must not resume the task synchronously inside Wake; they
// should only mark the task runnable.
type Waker interface {
	Wake()
}

// TaskWaker is an optional extension of [Waker].
//
// WillWake reports whether w and other resume the same logical task.
// Waker slots use it to keep an existing registration instead of replacing
// it with an equivalent handle. Wakers without it are always replaced.
type TaskWaker interface {
	Waker
	WillWake(other Waker) bool
}
