// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

// twoStacksItem pairs a partial with the combine of itself and everything
// below it in its stack (older in front, newer in back).
type twoStacksItem[Partial any] struct {
	val Partial
	agg Partial
}

// TwoStacks is the de-amortised Okasaki queue with aggregates: a push-only
// back stack and a pop-only front stack, with a drain step that moves
// elements from back to front (recomputing their aggregates along the
// way) whenever front runs dry. Monoid-only; amortised O(1), worst case
// O(n) on the draining pop.
type TwoStacks[In, Out, Partial any] struct {
	op    Operator[In, Out, Partial]
	front []twoStacksItem[Partial]
	back  []twoStacksItem[Partial]
}

// NewTwoStacks returns an empty TwoStacks window for op.
func NewTwoStacks[In, Out, Partial any](op Operator[In, Out, Partial]) *TwoStacks[In, Out, Partial] {
	return &TwoStacks[In, Out, Partial]{op: op}
}

func (w *TwoStacks[In, Out, Partial]) Name() string { return "two_stacks" }

func (w *TwoStacks[In, Out, Partial]) Push(v In) {
	lifted := w.op.Lift(v)
	w.back = append(w.back, twoStacksItem[Partial]{
		val: lifted,
		agg: w.op.Combine(stackAgg(w.op, w.back), lifted),
	})
}

func (w *TwoStacks[In, Out, Partial]) Pop() {
	if len(w.front) == 0 {
		for len(w.back) > 0 {
			top := w.back[len(w.back)-1]
			w.back = w.back[:len(w.back)-1]
			w.front = append(w.front, twoStacksItem[Partial]{
				val: top.val,
				agg: w.op.Combine(top.val, stackAgg(w.op, w.front)),
			})
		}
	}
	if len(w.front) > 0 {
		w.front = w.front[:len(w.front)-1]
	}
}

func (w *TwoStacks[In, Out, Partial]) Query() Out {
	return w.op.Lower(w.op.Combine(stackAgg(w.op, w.front), stackAgg(w.op, w.back)))
}

func (w *TwoStacks[In, Out, Partial]) Len() int { return len(w.front) + len(w.back) }

func (w *TwoStacks[In, Out, Partial]) IsEmpty() bool { return len(w.front) == 0 && len(w.back) == 0 }

// stackAgg returns the aggregate cached in a stack's top item, or identity
// if the stack is empty.
func stackAgg[In, Out, Partial any](op Operator[In, Out, Partial], stack []twoStacksItem[Partial]) Partial {
	if len(stack) == 0 {
		return op.Identity()
	}
	return stack[len(stack)-1].agg
}
