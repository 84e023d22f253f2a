// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// From the direct API:
//   - TryEnqueue: the ring is full (backpressure)
//   - TryDequeue: the ring is empty (no data available)
//
// From Resume: the operation is pending. Either its waker is parked and
// will be fired by the peer side, or Resume already called Wake on it to
// request an immediate re-invocation.
//
// ErrWouldBlock is a control flow signal, not a failure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrNotifyContended is returned by the direct API when the item was
// transferred but the peer side could not be woken because its waker cell
// was held by another context.
//
// The transfer is not undone. Call Notify (SPSC) or WakeDequeuers /
// WakeEnqueuers (MPMC) to retry the notification, or ignore it if the
// peer is known to poll without parking.
//
// It wraps [iox.ErrMore]: the operation succeeded and more work follows.
var ErrNotifyContended = fmt.Errorf("asq: peer notification contended: %w", iox.ErrMore)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsNotifyContended reports whether err is [ErrNotifyContended].
func IsNotifyContended(err error) bool {
	return errors.Is(err, ErrNotifyContended)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrNotifyContended.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
