// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/asq"
	"code.hybscloud.com/asq/internal/sched"
)

// =============================================================================
// Executor-driven transfers
// =============================================================================

// sender returns a task step that sends values in order through start.
func sender(values []int, start func(int) asq.Enqueue[int]) sched.Step {
	i := 0
	var op asq.Enqueue[int]
	inFlight := false
	return func(w asq.Waker) bool {
		for i < len(values) {
			if !inFlight {
				op = start(values[i])
				inFlight = true
			}
			if op.Resume(w) != nil {
				return false
			}
			inFlight = false
			i++
		}
		return true
	}
}

// receiver returns a task step that receives n values into out.
func receiver(n int, out *[]int, start func() asq.Dequeue[int]) sched.Step {
	var op asq.Dequeue[int]
	inFlight := false
	return func(w asq.Waker) bool {
		for len(*out) < n {
			if !inFlight {
				op = start()
				inFlight = true
			}
			v, err := op.Resume(w)
			if err != nil {
				return false
			}
			inFlight = false
			*out = append(*out, v)
		}
		return true
	}
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func TestSchedSPSCTransfer(t *testing.T) {
	for _, capacity := range []int{1, 2, 7} {
		for _, shuffle := range []bool{false, true} {
			tx, rx := asq.NewSPSC[int](capacity)
			var opts []sched.Option
			if shuffle {
				opts = append(opts, sched.WithShuffle())
			}
			e := sched.New(opts...)

			var got []int
			e.Spawn("producer", sender(seq(0, 100), tx.Enqueue))
			e.Spawn("consumer", receiver(100, &got, rx.Dequeue))

			if err := e.Run(1_000_000); err != nil {
				t.Fatalf("cap=%d shuffle=%v: Run: %v", capacity, shuffle, err)
			}
			if !slices.Equal(got, seq(0, 100)) {
				t.Fatalf("cap=%d shuffle=%v: got %v", capacity, shuffle, got)
			}
		}
	}
}

// TestSchedMPMCTransfer runs two producers and two consumers with a
// shuffled pick order. Every item arrives exactly once and each
// producer's items stay in order.
func TestSchedMPMCTransfer(t *testing.T) {
	for _, waiters := range []int{1, 2, 4} {
		q := asq.NewMPMC[int](2, waiters)
		e := sched.New(sched.WithShuffle())

		var gotA, gotB []int
		e.Spawn("p0", sender(seq(0, 50), q.Enqueue))
		e.Spawn("p1", sender(seq(1000, 1050), q.Enqueue))
		e.Spawn("c0", receiver(50, &gotA, q.Dequeue))
		e.Spawn("c1", receiver(50, &gotB, q.Dequeue))

		if err := e.Run(1_000_000); err != nil {
			t.Fatalf("waiters=%d: Run: %v", waiters, err)
		}

		all := append(slices.Clone(gotA), gotB...)
		slices.Sort(all)
		want := append(seq(0, 50), seq(1000, 1050)...)
		if !slices.Equal(all, want) {
			t.Fatalf("waiters=%d: items lost or duplicated: %v", waiters, all)
		}
		for _, got := range [][]int{gotA, gotB} {
			last := map[bool]int{false: -1, true: -1}
			for _, v := range got {
				hi := v >= 1000
				if v <= last[hi] {
					t.Fatalf("waiters=%d: per-producer order broken: %v", waiters, got)
				}
				last[hi] = v
			}
		}
	}
}

// TestSchedConsumerStallsOnEmpty shows that a parked consumer is not
// polled again without a wake.
func TestSchedConsumerStallsOnEmpty(t *testing.T) {
	tx, rx := asq.NewSPSC[int](1)
	e := sched.New()

	var got []int
	task := e.Spawn("consumer", receiver(1, &got, rx.Dequeue))
	if err := e.Run(0); err != sched.ErrStalled {
		t.Fatalf("Run: got %v, want ErrStalled", err)
	}
	if task.Polls() != 1 {
		t.Fatalf("Polls: got %d, want 1", task.Polls())
	}

	if err := tx.TryEnqueue(8); err != nil {
		t.Fatalf("TryEnqueue: %v", err)
	}
	if err := e.Run(0); err != nil {
		t.Fatalf("Run after enqueue: %v", err)
	}
	if len(got) != 1 || got[0] != 8 {
		t.Fatalf("got %v, want [8]", got)
	}
	if task.Wakes() != 1 {
		t.Fatalf("Wakes: got %d, want 1", task.Wakes())
	}
}

// TestSchedTaskWakerKeepsSlot parks the same task twice on a W=1 pool.
// The second registration recognizes the task and does not fall back to
// a self-wake.
func TestSchedTaskWakerKeepsSlot(t *testing.T) {
	q := asq.NewMPMC[int](2, 1)
	e := sched.New()

	polls := 0
	var op asq.Dequeue[int]
	task := e.Spawn("consumer", func(w asq.Waker) bool {
		polls++
		if polls == 1 {
			op = q.Dequeue()
		}
		_, err := op.Resume(w)
		if polls == 1 {
			// Spurious re-poll before any data.
			_, err = op.Resume(w)
		}
		return err == nil
	})

	if err := e.Run(0); err != sched.ErrStalled {
		t.Fatalf("Run: got %v, want ErrStalled", err)
	}
	if task.Wakes() != 0 {
		t.Fatalf("Wakes: got %d, want 0", task.Wakes())
	}
	if _, deq := q.Waiters(); deq != 1 {
		t.Fatalf("parked dequeuers: got %d, want 1", deq)
	}
}
