// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "code.hybscloud.com/swag/internal/flatfat"

// Reactive (a.k.a. FlatFAT) keeps live elements in a circular range
// [front, back) of a flat aggregating tree's leaves. Push/pop update a
// single leaf (O(log n)); query reads the root directly unless the live
// range wraps around the leaf array, in which case it combines a suffix
// and a prefix. The tree resizes by doubling/halving to keep the live
// range between 1/4 and 3/4 full. Monoid-only.
type Reactive[In, Out, Partial any] struct {
	op    Operator[In, Out, Partial]
	fat   *flatfat.Tree[Partial]
	size  int
	front int
	back  int
}

// NewReactive returns an empty Reactive window for op, with a starting
// capacity of 2 (the same floor FlatFIT uses).
func NewReactive[In, Out, Partial any](op Operator[In, Out, Partial]) *Reactive[In, Out, Partial] {
	return &Reactive[In, Out, Partial]{op: op, fat: flatfat.New[Partial](op, 2)}
}

func (w *Reactive[In, Out, Partial]) Name() string { return "reactive" }

func (w *Reactive[In, Out, Partial]) Push(v In) {
	w.fat.UpdateBatch(flatfat.Update[Partial]{Index: w.back, Value: w.op.Lift(v)})
	w.size++
	w.back = (w.back + 1) % w.fat.Capacity()
	if w.size > (3*w.fat.Capacity())/4 {
		w.resize(2 * w.fat.Capacity())
	}
}

func (w *Reactive[In, Out, Partial]) Pop() {
	if w.size == 0 {
		return
	}
	w.fat.UpdateBatch(flatfat.Update[Partial]{Index: w.front, Value: w.op.Identity()})
	w.size--
	w.front = (w.front + 1) % w.fat.Capacity()
	if w.size > 0 && w.size <= w.fat.Capacity()/4 {
		w.resize(w.fat.Capacity() / 2)
	}
}

func (w *Reactive[In, Out, Partial]) Query() Out {
	if w.size > 0 && w.back > 0 && w.front >= w.back {
		return w.op.Lower(w.op.Combine(w.fat.Suffix(w.front), w.fat.Prefix(w.mod(w.back-1))))
	}
	return w.op.Lower(w.fat.Aggregate())
}

func (w *Reactive[In, Out, Partial]) Len() int { return w.size }

func (w *Reactive[In, Out, Partial]) IsEmpty() bool { return w.size == 0 }

// resize reallocates the tree at the requested capacity (floored at 2),
// copying live leaves in logical order, and resets front/back to [0, size).
func (w *Reactive[In, Out, Partial]) resize(capacity int) {
	if capacity < 2 {
		capacity = 2
	}
	leaves := w.fat.Leaves()
	ordered := make([]Partial, 0, w.size)
	if w.front >= w.back && w.size > 0 {
		ordered = append(ordered, leaves[w.front:]...)
		ordered = append(ordered, leaves[:w.back]...)
	} else {
		ordered = append(ordered, leaves[w.front:w.back]...)
	}
	w.fat = flatfat.New[Partial](w.op, capacity)
	w.fat.UpdateOrdered(ordered)
	w.front = 0
	w.back = w.size
}

// mod wraps i into [0, capacity).
func (w *Reactive[In, Out, Partial]) mod(i int) int {
	cap := w.fat.Capacity()
	return ((i % cap) + cap) % cap
}
