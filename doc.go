// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package swag provides Sliding-Window Aggregation (SWAG) algorithms: a
// family of FIFO windows that maintain "the combine of the last n pushed,
// not-yet-popped values" under push/pop and answer it on demand via Query.
//
// # Quick Start
//
// Pick an engine directly:
//
//	w := swag.NewReCalc(swag.SumOp[int]())
//	w.Push(1)
//	w.Push(2)
//	fmt.Println(w.Query()) // 3
//	w.Pop()
//	fmt.Println(w.Query()) // 2
//
// Or select one by name through the registry (useful when the algorithm is
// a runtime parameter, e.g. a benchmark or config value):
//
//	w, err := swag.NewMonoid("reactive", swag.MaxOp[int]())
//
// # Engines
//
// Six engines implement [FifoWindow], differing only in the auxiliary
// structure they keep and in whether they require a monoid or a group:
//
//	ReCalc          recalculate-from-scratch, O(n) query, any monoid
//	SoE              subtract-on-evict, O(1) all ops, requires a group
//	TwoStacks        de-amortised two-stack queue, amortised O(1), monoid
//	TwoStacksLite    single-deque variant of TwoStacks, amortised O(1), monoid
//	Reactive         flat aggregating tree (FlatFAT), O(log n), monoid
//	FlatFIT          circular buffer with path compression, amortised O(1), monoid
//
// # Operator Algebra
//
// An operator names three types — In (what callers push), Out (what Query
// returns) and Partial (the internal carrier) — plus Lift (In -> Partial)
// and Lower (Partial -> Out). This indirection exists because some
// operators, like Mean, carry a Partial (sum, count) that differs from
// both In and Out. See [Operator] and [GroupOperator].
//
// # Thread Safety
//
// Every engine is a single-owner mutable value, not a lock-free or atomic
// structure: there are no concurrent producers or consumers, no
// suspension points, and no background work. Callers needing concurrent
// access must add their own mutual exclusion; this package does not
// provide one, the same way [code.hybscloud.com/lfq] provides specialised
// SPSC/MPSC/SPMC/MPMC queues instead of bolting a mutex onto one type.
//
// # What this package deliberately does not provide
//
// A TimeWindow abstraction (insert/evict keyed by an ordered Time, not
// FIFO order) and a SubWindow abstraction (range_query over a sub-range of
// a TimeWindow) appear in the algorithm literature this package is built
// from, but neither has a FIFO-only realisation and neither is wired to
// any of the six engines here. Out-of-order insertion, eviction by
// predicate, and variable-width time-keyed windows are out of scope.
package swag
