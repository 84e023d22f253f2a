// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "github.com/joeycumines/logiface"

// Options configures channel creation.
type Options struct {
	// Producer/Consumer constraints (determines channel kind)
	singleProducer bool
	singleConsumer bool

	// Waker slots per direction (MPMC only)
	waiters int

	// Exact capacity
	capacity int

	logger *logiface.Logger[logiface.Event]
}

// Builder creates channels with fluent configuration.
//
// Example:
//
//	// SPSC channel, split into its two halves
//	tx, rx := asq.BuildSPSC[Event](asq.New(64).SingleProducer().SingleConsumer())
//
//	// MPMC channel with 8 parking slots per direction and trace logging
//	q := asq.BuildMPMC[Request](asq.New(256).Waiters(8).Logger(logger))
type Builder struct {
	opts Options
}

// New creates a channel builder with the given capacity.
//
// Capacity is exact. SPSC channels accept capacity >= 1, MPMC channels
// capacity >= 2.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("asq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity, waiters: DefaultWaiters}}
}

// SingleProducer declares that only one task will enqueue.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one task will dequeue.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Waiters sets how many tasks per direction may park at once on an MPMC
// channel. SPSC channels always have exactly one slot per direction and
// ignore it.
//
// Panics if n < 1.
func (b *Builder) Waiters(n int) *Builder {
	if n < 1 {
		panic("asq: waiters must be >= 1")
	}
	b.opts.waiters = n
	return b
}

// Logger attaches a structured logger. Park and notification decisions
// are logged at trace level, contended direct-API notifications at debug
// level. A nil logger (the default) disables logging.
func (b *Builder) Logger(l *logiface.Logger[logiface.Event]) *Builder {
	b.opts.logger = l
	return b
}

// BuildSPSC creates an SPSC channel and returns its only Producer and
// Consumer.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) (*Producer[T], *Consumer[T]) {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("asq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return newSPSC[T](b.opts.capacity, b.opts.logger)
}

// BuildMPMC creates an MPMC channel.
// Panics if builder has any constraints set.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("asq: BuildMPMC requires no constraints")
	}
	return newMPMC[T](b.opts.capacity, b.opts.waiters, b.opts.logger)
}

// clampLen converts an index distance into a length within [0, capacity].
func clampLen(n, capacity uint64) int {
	if n > capacity {
		return int(capacity)
	}
	return int(n)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
