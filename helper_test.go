// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/asq"
	"code.hybscloud.com/iox"
	"github.com/joeycumines/logiface"
)

func skipRace(tb testing.TB) {
	tb.Helper()
	if asq.RaceEnabled {
		tb.Skip("skip: atomix-guarded plain memory is reported by the race detector")
	}
}

// chanWaker wakes a goroutine parked on its channel. The buffer of one
// coalesces wakes that arrive before the goroutine waits.
type chanWaker chan struct{}

func newChanWaker() chanWaker { return make(chanWaker, 1) }

func (w chanWaker) Wake() {
	select {
	case w <- struct{}{}:
	default:
	}
}

// wait blocks until woken or until timeout, so a lost wakeup fails the
// test instead of hanging it.
func (w chanWaker) wait(t *testing.T, timeout time.Duration, what string) {
	t.Helper()
	select {
	case <-w:
	case <-time.After(timeout):
		t.Errorf("timeout after %v: %s never woken", timeout, what)
		w.Wake()
	}
}

// flagWaker records whether it was woken. Single goroutine use only.
type flagWaker struct {
	woken int
}

func (w *flagWaker) Wake() { w.woken++ }

func (w *flagWaker) take() bool {
	ok := w.woken > 0
	w.woken = 0
	return ok
}

// retryWithTimeout retries f with backoff until it returns true or the
// timeout expires.
func retryWithTimeout(t *testing.T, timeout time.Duration, f func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for !f() {
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: %s", timeout, msg)
		}
		backoff.Wait()
	}
}

// =============================================================================
// Log capture
// =============================================================================

type logEvent struct {
	logiface.UnimplementedEvent
	level  logiface.Level
	fields map[string]any
}

func (e *logEvent) Level() logiface.Level { return e.level }

func (e *logEvent) AddField(key string, val any) { e.fields[key] = val }

type logEventFactory struct{}

func (logEventFactory) NewEvent(level logiface.Level) *logEvent {
	return &logEvent{level: level, fields: make(map[string]any)}
}

type logRecorder struct {
	events []*logEvent
}

func (r *logRecorder) Write(e *logEvent) error {
	r.events = append(r.events, e)
	return nil
}

// messages returns the msg field of every recorded event at level.
func (r *logRecorder) messages(level logiface.Level) []string {
	var out []string
	for _, e := range r.events {
		if e.level == level {
			msg, _ := e.fields["msg"].(string)
			out = append(out, msg)
		}
	}
	return out
}

func newTestLogger(rec *logRecorder) *logiface.Logger[logiface.Event] {
	return logiface.New[*logEvent](
		logiface.WithEventFactory[*logEvent](logEventFactory{}),
		logiface.WithWriter[*logEvent](rec),
		logiface.WithLevel[*logEvent](logiface.LevelTrace),
	).Logger()
}
