// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag_test

import (
	"testing"

	"pgregory.net/rand"

	"code.hybscloud.com/swag"
)

// sumEngines returns a fresh instance of every engine capable of Sum,
// keyed by name, via the package's own registry.
func sumEngines(t *testing.T) map[string]swag.FifoWindow[int, int] {
	t.Helper()
	names := []string{"recalc", "two_stacks", "two_stacks_lite", "reactive", "flatfit"}
	out := make(map[string]swag.FifoWindow[int, int], len(names)+1)
	for _, name := range names {
		w, err := swag.NewMonoid(name, swag.SumOp[int]())
		if err != nil {
			t.Fatalf("NewMonoid(%q): %v", name, err)
		}
		out[name] = w
	}
	soe, err := swag.NewGroup("soe", swag.SumGroupOp[int]())
	if err != nil {
		t.Fatalf("NewGroup(soe): %v", err)
	}
	out["soe"] = soe
	return out
}

// TestProperty1EmptyIdentity: a freshly constructed window of any engine
// returns the operator's identity.
func TestProperty1EmptyIdentity(t *testing.T) {
	for name, w := range sumEngines(t) {
		if got := w.Query(); got != 0 {
			t.Fatalf("%s: empty Query(): got %d, want 0", name, got)
		}
		if !w.IsEmpty() || w.Len() != 0 {
			t.Fatalf("%s: empty window: IsEmpty=%v Len=%d", name, w.IsEmpty(), w.Len())
		}
	}
}

// TestProperty2PushOnlyCorrectness: pushing a known sequence with no pops
// must yield the running prefix sum after every push, for every engine.
func TestProperty2PushOnlyCorrectness(t *testing.T) {
	values := []int{5, -3, 7, 0, 2, 9, -1}
	for name, w := range sumEngines(t) {
		sum := 0
		for _, v := range values {
			w.Push(v)
			sum += v
			if got := w.Query(); got != sum {
				t.Fatalf("%s: after push %d: got %d, want %d", name, v, got, sum)
			}
		}
	}
}

// TestProperty4PopPastEmptyTolerance: popping more times than pushed must
// not panic and must leave the window empty.
func TestProperty4PopPastEmptyTolerance(t *testing.T) {
	for name, w := range sumEngines(t) {
		w.Push(1)
		w.Push(2)
		for range 10 {
			w.Pop()
		}
		if !w.IsEmpty() || w.Len() != 0 {
			t.Fatalf("%s: after over-popping: IsEmpty=%v Len=%d", name, w.IsEmpty(), w.Len())
		}
		if got := w.Query(); got != 0 {
			t.Fatalf("%s: after over-popping: Query(): got %d, want 0", name, got)
		}
	}
}

// TestProperty6IdempotentQuery: repeated Query() with no intervening
// mutation always returns the same value, across every engine.
func TestProperty6IdempotentQuery(t *testing.T) {
	for name, w := range sumEngines(t) {
		for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
			w.Push(v)
		}
		first := w.Query()
		for range 3 {
			if got := w.Query(); got != first {
				t.Fatalf("%s: Query() not idempotent: got %d, want %d", name, got, first)
			}
		}
	}
}

// traceOp is one step of a scripted push/pop sequence applied identically
// to every engine under test; randomTrace never pops an empty window.
type traceOp struct {
	push bool
	val  int
}

func randomTrace(seed uint64, length int) []traceOp {
	rng := rand.New(seed)
	trace := make([]traceOp, 0, length)
	live := 0
	for i := 0; i < length; i++ {
		if live > 0 && rng.Int63n(3) == 0 {
			trace = append(trace, traceOp{push: false})
			live--
		} else {
			v := int(rng.Int63n(20)) - 10
			trace = append(trace, traceOp{push: true, val: v})
			live++
		}
	}
	return trace
}

// TestProperty5EngineAgreement replays the same randomized trace across
// every engine and checks they agree after every step.
func TestProperty5EngineAgreement(t *testing.T) {
	trace := randomTrace(42, 500)
	engines := sumEngines(t)
	for _, op := range trace {
		for name, w := range engines {
			if op.push {
				w.Push(op.val)
			} else {
				w.Pop()
			}
			_ = name
		}
		var want int
		var wantName string
		first := true
		for name, w := range engines {
			got := w.Query()
			if first {
				want, wantName = got, name
				first = false
				continue
			}
			if got != want {
				t.Fatalf("engine disagreement: %s=%d, %s=%d", wantName, want, name, got)
			}
		}
	}
}

// TestProperty7ResizeNeutrality checks that Reactive and FlatFIT, both of
// which resize their internal storage under sustained push/pop pressure,
// continue to agree with a ReCalc baseline across many resize boundaries.
func TestProperty7ResizeNeutrality(t *testing.T) {
	baseline, err := swag.NewMonoid[int, int]("recalc", swag.SumOp[int]())
	if err != nil {
		t.Fatal(err)
	}
	reactive, err := swag.NewMonoid[int, int]("reactive", swag.SumOp[int]())
	if err != nil {
		t.Fatal(err)
	}
	flatfit, err := swag.NewMonoid[int, int]("flatfit", swag.SumOp[int]())
	if err != nil {
		t.Fatal(err)
	}
	trace := randomTrace(7, 2000)
	for _, op := range trace {
		if op.push {
			baseline.Push(op.val)
			reactive.Push(op.val)
			flatfit.Push(op.val)
		} else {
			baseline.Pop()
			reactive.Pop()
			flatfit.Pop()
		}
		want := baseline.Query()
		if got := reactive.Query(); got != want {
			t.Fatalf("reactive diverged from baseline: got %d, want %d", got, want)
		}
		if got := flatfit.Query(); got != want {
			t.Fatalf("flatfit diverged from baseline: got %d, want %d", got, want)
		}
	}
}

// FuzzInterleavedFIFOSemantics is property 3: for any interleaving of
// push/pop/query, ReCalc (the obviously-correct but slow baseline) and
// TwoStacks must agree, since both implement the same monoid contract.
func FuzzInterleavedFIFOSemantics(f *testing.F) {
	f.Add(uint64(1), 50)
	f.Add(uint64(2), 0)
	f.Add(uint64(99), 300)
	f.Fuzz(func(t *testing.T, seed uint64, length int) {
		if length < 0 {
			t.Skip()
		}
		if length > 5000 {
			length = 5000
		}
		fuzzCompareEngines(t, seed, length)
	})
}

func fuzzCompareEngines(t *testing.T, seed uint64, length int) {
	t.Helper()
	baseline, err := swag.NewMonoid[int, int]("recalc", swag.SumOp[int]())
	if err != nil {
		t.Fatal(err)
	}
	candidate, err := swag.NewMonoid[int, int]("two_stacks", swag.SumOp[int]())
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range randomTrace(seed, length) {
		if op.push {
			baseline.Push(op.val)
			candidate.Push(op.val)
		} else {
			baseline.Pop()
			candidate.Pop()
		}
		if got, want := candidate.Query(), baseline.Query(); got != want {
			t.Fatalf("two_stacks diverged: got %d, want %d", got, want)
		}
	}
}
