// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

// parkResult is the outcome of one registration attempt.
type parkResult uint8

const (
	parked        parkResult = iota // waker stored (or already stored)
	parkContended                   // a cell was held elsewhere
	parkExhausted                   // every slot holds another task's waker
)

// waiters is one direction's parking lot: the tasks that wait for room
// (senders) or for data (receivers).
//
// Neither method waits. A false or non-parked result tells the caller to
// fall back to an immediate re-invocation.
type waiters interface {
	// park tries to register w.
	park(w Waker) parkResult
	// wake fires every parked waker. Returns false if some cell was held
	// elsewhere, in which case the notification may be incomplete and
	// must be retried.
	wake() bool
	// parkedCount counts occupied slots. Held cells count as occupied.
	parkedCount() int
}

// wakeSlot fires a slot; a method expression so it does not allocate.
var wakeSlot = (*WakerSlot).Wake

// singleWaiter is a single waker slot behind one cell (SPSC).
type singleWaiter struct {
	cell Cell[WakerSlot]
}

func (s *singleWaiter) park(w Waker) parkResult {
	if s.cell.TryWith(func(slot *WakerSlot) { slot.Register(w) }) {
		return parked
	}
	return parkContended
}

func (s *singleWaiter) wake() bool {
	return s.cell.TryWith(wakeSlot)
}

func (s *singleWaiter) parkedCount() int {
	empty, ok := TryApply(&s.cell, (*WakerSlot).IsEmpty)
	if ok && empty {
		return 0
	}
	return 1
}

// waiterPool is a fixed-width array of waker cells (MPMC).
//
// A task that already holds a slot keeps it. Otherwise registration takes
// the first empty slot. Waking is a broadcast over every slot.
type waiterPool struct {
	slots []Cell[WakerSlot]
}

func newWaiterPool(width int) *waiterPool {
	return &waiterPool{slots: make([]Cell[WakerSlot], width)}
}

func (p *waiterPool) park(w Waker) parkResult {
	contended := false
	free := -1
	for i := range p.slots {
		held := false
		ok := p.slots[i].TryWith(func(slot *WakerSlot) {
			switch {
			case slot.Holds(w):
				held = true
			case free < 0 && slot.IsEmpty():
				free = i
			}
		})
		if !ok {
			contended = true
			continue
		}
		if held {
			return parked
		}
	}
	if free < 0 {
		if contended {
			return parkContended
		}
		return parkExhausted
	}

	// The free slot may have been taken since the scan.
	taken := false
	ok := p.slots[free].TryWith(func(slot *WakerSlot) {
		if slot.IsEmpty() {
			slot.Register(w)
			taken = true
		}
	})
	if !ok || !taken {
		return parkContended
	}
	return parked
}

func (p *waiterPool) wake() bool {
	complete := true
	for i := range p.slots {
		if !p.slots[i].TryWith(wakeSlot) {
			complete = false
		}
	}
	return complete
}

func (p *waiterPool) parkedCount() int {
	n := 0
	for i := range p.slots {
		empty, ok := TryApply(&p.slots[i], (*WakerSlot).IsEmpty)
		if !ok || !empty {
			n++
		}
	}
	return n
}
