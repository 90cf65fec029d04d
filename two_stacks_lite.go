// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "code.hybscloud.com/swag/internal/queue"

// TwoStacksLite is a single-deque variant of TwoStacks. Positions
// [0, frontLen) hold cumulative suffix aggregates of the older portion of
// the window (position 0 is the combine of everything still "in front");
// positions [frontLen, Len) hold raw lifted elements whose combine equals
// aggBack. Monoid-only; amortised O(1).
type TwoStacksLite[In, Out, Partial any] struct {
	op       Operator[In, Out, Partial]
	queue    *queue.Deque[Partial]
	aggBack  Partial
	frontLen int
}

// NewTwoStacksLite returns an empty TwoStacksLite window for op.
func NewTwoStacksLite[In, Out, Partial any](op Operator[In, Out, Partial]) *TwoStacksLite[In, Out, Partial] {
	return &TwoStacksLite[In, Out, Partial]{op: op, queue: queue.New[Partial](), aggBack: op.Identity()}
}

func (w *TwoStacksLite[In, Out, Partial]) Name() string { return "two_stacks_lite" }

func (w *TwoStacksLite[In, Out, Partial]) Push(v In) {
	lifted := w.op.Lift(v)
	w.queue.PushBack(lifted)
	w.aggBack = w.op.Combine(w.aggBack, lifted)
}

func (w *TwoStacksLite[In, Out, Partial]) Pop() {
	n := w.queue.Len()
	if n == 0 {
		return
	}
	if w.frontLen == 0 {
		// Flip: turn the raw back elements into cumulative suffix
		// aggregates, scanning from back to front.
		for i := n - 2; i >= 0; i-- {
			w.queue.Set(i, w.op.Combine(w.queue.At(i), w.queue.At(i+1)))
		}
		w.frontLen = n
		w.aggBack = w.op.Identity()
	}
	w.frontLen--
	w.queue.PopFront()
}

func (w *TwoStacksLite[In, Out, Partial]) Query() Out {
	return w.op.Lower(w.op.Combine(w.aggFront(), w.aggBack))
}

func (w *TwoStacksLite[In, Out, Partial]) Len() int { return w.queue.Len() }

func (w *TwoStacksLite[In, Out, Partial]) IsEmpty() bool { return w.queue.Len() == 0 }

func (w *TwoStacksLite[In, Out, Partial]) aggFront() Partial {
	if w.frontLen == 0 {
		return w.op.Identity()
	}
	if front, ok := w.queue.Front(); ok {
		return front
	}
	return w.op.Identity()
}
