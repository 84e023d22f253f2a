// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "github.com/joeycumines/logiface"

const (
	sideProducer = "producer"
	sideConsumer = "consumer"

	kindSPSC = "spsc"
	kindMPMC = "mpmc"
)

// core is the state shared by every channel kind: the ring plus one
// parking lot per direction.
//
// senders are woken when room appears (after a dequeue), receivers when
// data appears (after an enqueue).
type core[T any] struct {
	ring      Ring[T]
	senders   waiters
	receivers waiters
	log       *logiface.Logger[logiface.Event]
	kind      string
}

func (c *core[T]) hasRoom() bool {
	return c.ring.Len() < c.ring.Cap()
}

func (c *core[T]) hasData() bool {
	return c.ring.Len() > 0
}

// tryEnqueue is one push plus one notification attempt.
func (c *core[T]) tryEnqueue(v T) error {
	if err := c.ring.Enqueue(&v); err != nil {
		return err
	}
	return c.notifyReceivers()
}

// tryDequeue is one pop plus one notification attempt. On
// ErrNotifyContended the item is still returned.
func (c *core[T]) tryDequeue() (T, error) {
	v, err := c.ring.Dequeue()
	if err != nil {
		return v, err
	}
	return v, c.notifySenders()
}

func (c *core[T]) notifyReceivers() error {
	if !c.receivers.wake() {
		c.log.Debug().Str("channel", c.kind).Str("side", sideProducer).Log("notify contended")
		return ErrNotifyContended
	}
	return nil
}

func (c *core[T]) notifySenders() error {
	if !c.senders.wake() {
		c.log.Debug().Str("channel", c.kind).Str("side", sideConsumer).Log("notify contended")
		return ErrNotifyContended
	}
	return nil
}

// parkSender registers w to be woken when room appears.
// Every path leaves the task either parked or already woken.
func (c *core[T]) parkSender(w Waker) {
	c.park(c.senders, w, sideProducer, c.hasRoom)
}

// parkReceiver registers w to be woken when data appears.
func (c *core[T]) parkReceiver(w Waker) {
	c.park(c.receivers, w, sideConsumer, c.hasData)
}

func (c *core[T]) park(q waiters, w Waker, side string, ready func() bool) {
	switch q.park(w) {
	case parked:
		// The peer may have made progress between the failed ring
		// operation and the registration, and fired an empty slot.
		if ready() {
			c.trace(side, "progress raced park")
			w.Wake()
			return
		}
		c.trace(side, "parked")
	case parkContended:
		c.trace(side, "park contended")
		w.Wake()
	case parkExhausted:
		c.trace(side, "waiter pool exhausted")
		w.Wake()
	}
}

func (c *core[T]) trace(side, msg string) {
	c.log.Trace().Str("channel", c.kind).Str("side", side).Log(msg)
}
