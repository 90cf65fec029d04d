// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "code.hybscloud.com/swag/internal/queue"

// SoE (Subtract-On-Evict) keeps a deque of partials plus a running
// aggregate, updated incrementally on both push and pop. It requires an
// invertible combine (a group) and runs every operation in O(1).
type SoE[In, Out, Partial any] struct {
	op   GroupOperator[In, Out, Partial]
	vals *queue.Deque[Partial]
	agg  Partial
}

// NewSoE returns an empty SoE window for op. op must be a GroupOperator —
// there is no way to pass a monoid-only Operator here, which is how this
// package enforces "SoE requires invertibility" at compile time.
func NewSoE[In, Out, Partial any](op GroupOperator[In, Out, Partial]) *SoE[In, Out, Partial] {
	return &SoE[In, Out, Partial]{op: op, vals: queue.New[Partial](), agg: op.Identity()}
}

func (w *SoE[In, Out, Partial]) Name() string { return "soe" }

func (w *SoE[In, Out, Partial]) Push(v In) {
	lifted := w.op.Lift(v)
	w.agg = w.op.Combine(w.agg, lifted)
	w.vals.PushBack(lifted)
}

func (w *SoE[In, Out, Partial]) Pop() {
	if front, ok := w.vals.PopFront(); ok {
		w.agg = w.op.Combine(w.agg, w.op.Inverse(front))
	}
}

func (w *SoE[In, Out, Partial]) Query() Out {
	return w.op.Lower(w.agg)
}

func (w *SoE[In, Out, Partial]) Len() int { return w.vals.Len() }

func (w *SoE[In, Out, Partial]) IsEmpty() bool { return w.vals.Len() == 0 }
