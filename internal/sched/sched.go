// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sched is a minimal cooperative executor for driving asq
// operations in tests and examples.
//
// An Executor runs on one goroutine. Tasks are step functions: each call
// advances the task once and reports whether it finished. A task that
// does not finish runs again only after its waker fires, so a lost wakeup
// shows up as [ErrStalled] instead of a hang.
package sched

import (
	"errors"

	"code.hybscloud.com/asq"
	"github.com/eapache/queue"
	"github.com/joeycumines/logiface"
	"github.com/valyala/fastrand"
)

var (
	// ErrStalled means tasks remain unfinished but none is runnable:
	// every pending task waits for a wake that nobody will deliver.
	ErrStalled = errors.New("sched: tasks pending but none runnable")

	// ErrBudget means Run hit its step budget with tasks still pending.
	ErrBudget = errors.New("sched: step budget exhausted")
)

// Step advances a task by one resumption. It returns true once the task
// is complete. w is the task's own waker.
type Step func(w asq.Waker) bool

// Option configures an Executor.
type Option func(*Executor)

// WithShuffle makes the executor pick a random runnable task on every
// step instead of the oldest one.
func WithShuffle() Option {
	return func(e *Executor) { e.shuffle = true }
}

// WithLogger attaches a logger for task lifecycle events.
func WithLogger(l *logiface.Logger[logiface.Event]) Option {
	return func(e *Executor) { e.log = l }
}

// Executor is a single-goroutine run queue of [Task] values.
// It is not safe for concurrent use, wakers included.
type Executor struct {
	ready   *queue.Queue
	pending int
	steps   int
	shuffle bool
	log     *logiface.Logger[logiface.Event]
}

// New returns an empty Executor.
func New(opts ...Option) *Executor {
	e := &Executor{ready: queue.New()}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}
	return e
}

// Spawn adds a task and marks it runnable.
func (e *Executor) Spawn(name string, step Step) *Task {
	t := &Task{e: e, name: name, step: step}
	e.pending++
	t.schedule()
	return t
}

// Pending returns the number of unfinished tasks.
func (e *Executor) Pending() int {
	return e.pending
}

// Steps returns the total number of task steps run so far.
func (e *Executor) Steps() int {
	return e.steps
}

// RunOnce runs one runnable task for one step.
// Returns false if no task was runnable.
func (e *Executor) RunOnce() bool {
	n := e.ready.Length()
	if n == 0 {
		return false
	}
	if e.shuffle && n > 1 {
		for k := fastrand.Uint32n(uint32(n)); k > 0; k-- {
			e.ready.Add(e.ready.Remove())
		}
	}

	t := e.ready.Remove().(*Task)
	t.queued = false
	t.polls++
	e.steps++
	if t.step(t) {
		t.done = true
		e.pending--
		e.log.Debug().Str("task", t.name).Int("polls", t.polls).Log("task done")
	}
	return true
}

// Run steps tasks until all are finished.
//
// Returns nil when every task finished, ErrStalled when unfinished tasks
// remain but none is runnable, or ErrBudget after budget steps (budget
// <= 0 means unlimited).
func (e *Executor) Run(budget int) error {
	for n := 0; e.pending > 0; n++ {
		if budget > 0 && n >= budget {
			e.log.Warning().Int("pending", e.pending).Log("step budget exhausted")
			return ErrBudget
		}
		if !e.RunOnce() {
			e.log.Warning().Int("pending", e.pending).Log("executor stalled")
			return ErrStalled
		}
	}
	return nil
}

// Task is a unit of work owned by an Executor. *Task is the task's
// [asq.Waker]; it also implements [asq.TaskWaker] by identity.
type Task struct {
	e      *Executor
	name   string
	step   Step
	queued bool
	done   bool
	polls  int
	wakes  int
}

// Wake marks the task runnable. Waking a queued or finished task only
// counts the wake.
func (t *Task) Wake() {
	t.wakes++
	if t.done || t.queued {
		return
	}
	t.schedule()
}

// WillWake reports whether other is this same task.
func (t *Task) WillWake(other asq.Waker) bool {
	o, ok := other.(*Task)
	return ok && o == t
}

func (t *Task) schedule() {
	t.queued = true
	t.e.ready.Add(t)
}

// Name returns the name given to Spawn.
func (t *Task) Name() string { return t.name }

// Done reports whether the task has finished.
func (t *Task) Done() bool { return t.done }

// Polls returns how many times the task has been stepped.
func (t *Task) Polls() int { return t.polls }

// Wakes returns how many times the task's waker has fired.
func (t *Task) Wakes() int { return t.wakes }
