// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

// WakerSlot holds at most one [Waker].
//
// WakerSlot itself is not synchronized; channels keep it behind a [Cell].
// The zero value is an empty slot.
type WakerSlot struct {
	waker Waker
}

// Register stores w, replacing any previous waker.
// If the stored waker already resumes the same task as w (see
// [TaskWaker]), the slot is left unchanged.
func (s *WakerSlot) Register(w Waker) {
	if s.waker != nil && willWake(s.waker, w) {
		return
	}
	s.waker = w
}

// Wake removes the stored waker, if any, and invokes it.
// Waking an empty slot does nothing.
func (s *WakerSlot) Wake() {
	w := s.waker
	if w == nil {
		return
	}
	s.waker = nil
	w.Wake()
}

// IsEmpty reports whether no waker is stored.
func (s *WakerSlot) IsEmpty() bool {
	return s.waker == nil
}

// Holds reports whether the stored waker resumes the same task as w.
func (s *WakerSlot) Holds(w Waker) bool {
	return s.waker != nil && willWake(s.waker, w)
}

func willWake(stored, w Waker) bool {
	tw, ok := stored.(TaskWaker)
	return ok && tw.WillWake(w)
}
