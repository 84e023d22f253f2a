// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import "code.hybscloud.com/atomix"

const (
	cellUnlocked uint32 = iota
	cellLocked
)

// Cell guards a value with a try-only exclusive-access flag.
//
// Cell never waits: an attempt either takes the flag (UNLOCKED → LOCKED),
// runs the caller's function with exclusive access and releases the flag,
// or observes LOCKED and returns without touching the value. There is no
// fairness among racing attempts and no queue of waiters.
//
// Critical sections must stay short and bounded. The channels in this
// package only register or fire wakers under a Cell.
//
// The zero value is an unlocked Cell holding the zero value of T.
// A Cell must not be copied after first use.
type Cell[T any] struct {
	state atomix.Uint32
	value T
}

// NewCell returns an unlocked Cell holding value.
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// TryWith runs f with exclusive access to the guarded value.
// Returns false without calling f if another context holds the cell.
//
// f must not call TryWith on the same cell: the nested attempt always
// fails.
func (c *Cell[T]) TryWith(f func(v *T)) bool {
	if !c.state.CompareAndSwapAcqRel(cellUnlocked, cellLocked) {
		return false
	}
	defer c.state.StoreRelease(cellUnlocked)
	f(&c.value)
	return true
}

// Locked reports whether some context currently holds the cell.
// Advisory only: the answer may be stale on return.
func (c *Cell[T]) Locked() bool {
	return c.state.LoadAcquire() == cellLocked
}

// TryApply runs f with exclusive access to the value guarded by c and
// returns its result. Returns (zero-value, false) without calling f if
// the cell is held elsewhere.
func TryApply[T, R any](c *Cell[T], f func(v *T) R) (R, bool) {
	var r R
	ok := c.TryWith(func(v *T) {
		r = f(v)
	})
	return r, ok
}
