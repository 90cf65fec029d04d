// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "code.hybscloud.com/swag/internal/queue"

// ReCalc keeps every partial in a deque and recomputes the aggregate from
// scratch on every Query. It works for any monoid, push and pop are O(1),
// and query is O(n).
type ReCalc[In, Out, Partial any] struct {
	op   Operator[In, Out, Partial]
	vals *queue.Deque[Partial]
}

// NewReCalc returns an empty ReCalc window for op.
func NewReCalc[In, Out, Partial any](op Operator[In, Out, Partial]) *ReCalc[In, Out, Partial] {
	return &ReCalc[In, Out, Partial]{op: op, vals: queue.New[Partial]()}
}

func (w *ReCalc[In, Out, Partial]) Name() string { return "recalc" }

func (w *ReCalc[In, Out, Partial]) Push(v In) {
	w.vals.PushBack(w.op.Lift(v))
}

func (w *ReCalc[In, Out, Partial]) Pop() {
	w.vals.PopFront()
}

func (w *ReCalc[In, Out, Partial]) Query() Out {
	agg := w.op.Identity()
	for i := 0; i < w.vals.Len(); i++ {
		agg = w.op.Combine(agg, w.vals.At(i))
	}
	return w.op.Lower(agg)
}

func (w *ReCalc[In, Out, Partial]) Len() int { return w.vals.Len() }

func (w *ReCalc[In, Out, Partial]) IsEmpty() bool { return w.vals.Len() == 0 }
