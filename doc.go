// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asq provides bounded channels for cooperative schedulers.
//
// Every operation is non-blocking. A send or receive that cannot finish
// parks the caller's [Waker] and returns [ErrWouldBlock]; the opposite
// side fires the waker after it transfers an item. The channel layer never
// spins, sleeps or takes a blocking lock; only the lock-free MPMC ring
// retries a lost CAS. The channels can be driven by any executor that
// polls tasks and resumes them when woken.
//
// The package offers two channel kinds:
//
//   - SPSC: Single-Producer Single-Consumer, split into [Producer] and
//     [Consumer] halves
//   - MPMC: Multi-Producer Multi-Consumer, with a fixed pool of waker
//     slots per direction
//
// # Quick Start
//
// Direct constructors:
//
//	tx, rx := asq.NewSPSC[Event](1024)
//	q := asq.NewMPMC[*Request](4096, asq.DefaultWaiters)
//
// Builder API:
//
//	tx, rx := asq.BuildSPSC[Event](asq.New(1024).SingleProducer().SingleConsumer())
//	q := asq.BuildMPMC[Event](asq.New(1024).Waiters(8))
//
// # Operations
//
// Enqueue and Dequeue return small state machines. A task drives one with
// Resume, passing its own waker, until Resume reports completion:
//
//	op := tx.Enqueue(v)
//	for {
//	    if err := op.Resume(waker); err == nil {
//	        break // delivered, consumer notified
//	    }
//	    yield() // suspended until waker.Wake
//	}
//
//	recv := rx.Dequeue()
//	item, err := recv.Resume(waker)
//	if asq.IsWouldBlock(err) {
//	    // parked; resume again after waker.Wake
//	}
//
// An Enqueue whose channel has room pushes its item at construction; a
// Dequeue pops nothing until its first Resume. Both finish only after the
// opposite side has been notified.
//
// # Direct API
//
// TryEnqueue and TryDequeue make one attempt and never park:
//
//	switch err := tx.TryEnqueue(v); {
//	case err == nil:
//	case asq.IsWouldBlock(err):
//	    // full, nothing changed
//	case asq.IsNotifyContended(err):
//	    // v was pushed; the consumer was not woken yet
//	    _ = tx.Notify()
//	}
//
// # Wakers
//
// A [Waker] only marks a task runnable. Wake may run on any goroutine and
// while a waker cell is held, so it must not block and must not resume the
// task inline. Wakers that implement [TaskWaker] let a slot keep an
// existing registration for the same task.
//
// When a waker cell is momentarily held by the other side, an operation
// does not wait for it: Resume calls Wake on its own waker and returns
// ErrWouldBlock, asking to be polled again.
//
// # Exclusive Cells
//
// [Cell] is the try-only exclusive-access primitive the channels park
// with. It is exported for schedulers that need the same guarantee:
//
//	c := asq.NewCell(asq.WakerSlot{})
//	if !c.TryWith(func(s *asq.WakerSlot) { s.Register(w) }) {
//	    // held elsewhere; retry later
//	}
//
// # Error Handling
//
// [ErrWouldBlock] is an alias for [iox.ErrWouldBlock]. [ErrNotifyContended]
// wraps [iox.ErrMore]: the transfer happened and a notification is still
// owed. Both are control flow signals:
//
//	if asq.IsNonFailure(err) {
//	    // nil, would block, or notification pending
//	}
//
// # Logging
//
// [Builder.Logger] attaches a logiface logger. Park decisions are logged
// at trace level and contended direct-API notifications at debug level.
//
// # Capacity
//
// Capacity is exact. SPSC channels accept capacity >= 1 and MPMC channels
// capacity >= 2.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for ordered atomics,
// [code.hybscloud.com/iox] for semantic errors, [code.hybscloud.com/spin]
// for ring CAS retry and [github.com/joeycumines/logiface] for logging.
package asq
