// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

const flatFITMinCapacity = 2

// flatFITItem is one slot of FlatFIT's circular linked list: a partial
// plus the index of the next live item toward back.
type flatFITItem[Partial any] struct {
	val  Partial
	next int
}

// FlatFIT keeps a circular buffer of (val, next) items forming a linked
// list from front to back. Query walks that list once, then rewrites
// every visited slot to point directly at back with its suffix aggregate
// (in FIFO order) cached in val — path compression, so a later query over
// the same still-live range is O(1). Monoid-only; push/pop amortised
// O(1), query O(k) in the number of not-yet-compressed items.
type FlatFIT[In, Out, Partial any] struct {
	op     Operator[In, Out, Partial]
	buffer []flatFITItem[Partial]
	front  int
	back   int
	size   int
	// tracing is scratch space reused across queries to avoid an
	// allocation on every call.
	tracing []int
}

// NewFlatFIT returns an empty FlatFIT window for op.
func NewFlatFIT[In, Out, Partial any](op Operator[In, Out, Partial]) *FlatFIT[In, Out, Partial] {
	return &FlatFIT[In, Out, Partial]{op: op}
}

func (w *FlatFIT[In, Out, Partial]) Name() string { return "flatfit" }

func (w *FlatFIT[In, Out, Partial]) Push(v In) {
	if w.size+1 > len(w.buffer) {
		w.rescale(2 * len(w.buffer))
	}
	lifted := w.op.Lift(v)
	if w.size == 0 {
		// The very first element of a (re)filling window is written in
		// place rather than at an advanced index: advancing first would
		// leave buffer[front] permanently unwritten (holding stale data
		// instead of a live value) until it is eventually popped past.
		w.buffer[w.front].val = lifted
		w.back = w.front
	} else {
		prev := w.back
		w.back = (w.back + 1) % len(w.buffer)
		w.buffer[w.back].val = lifted
		w.buffer[prev].next = w.back
	}
	w.size++
}

func (w *FlatFIT[In, Out, Partial]) Pop() {
	if w.size == 0 {
		return
	}
	w.front = (w.front + 1) % len(w.buffer)
	w.size--
	if w.size < len(w.buffer)/2 {
		w.rescale(len(w.buffer) / 2)
	}
}

func (w *FlatFIT[In, Out, Partial]) Query() Out {
	agg := w.op.Identity()
	if w.size > 0 {
		w.tracing = w.tracing[:0]
		current := w.front
		for current != w.back {
			w.tracing = append(w.tracing, current)
			current = w.buffer[current].next
		}
		// Compress right-to-left so each rewritten slot caches the
		// combine of itself with everything after it, in FIFO order:
		// buffer[i] ends up holding Combine(orig[i], orig[i+1], ..., orig[back-1]).
		for i := len(w.tracing) - 1; i >= 0; i-- {
			idx := w.tracing[i]
			agg = w.op.Combine(w.buffer[idx].val, agg)
			w.buffer[idx] = flatFITItem[Partial]{val: agg, next: w.back}
		}
		agg = w.op.Combine(agg, w.buffer[w.back].val)
	}
	return w.op.Lower(agg)
}

func (w *FlatFIT[In, Out, Partial]) Len() int { return w.size }

func (w *FlatFIT[In, Out, Partial]) IsEmpty() bool { return w.size == 0 }

// rescale reallocates the buffer at newCapacity (floored at the live
// count and at flatFITMinCapacity), copying the size live slots, from
// front onward, to consecutive positions starting at 0 and translating
// their next pointers into the new indexing.
func (w *FlatFIT[In, Out, Partial]) rescale(newCapacity int) {
	if newCapacity < w.size {
		newCapacity = w.size
	}
	if newCapacity < flatFITMinCapacity {
		newCapacity = flatFITMinCapacity
	}
	newBuffer := make([]flatFITItem[Partial], newCapacity)
	id := w.op.Identity()
	for i := range newBuffer {
		newBuffer[i].val = id
	}
	last := 0
	if w.size > 0 {
		oldCapacity := len(w.buffer)
		for i := 0; i < w.size; i++ {
			item := w.buffer[(w.front+i)%oldCapacity]
			newBuffer[i].val = item.val
			newBuffer[i].next = ((item.next-w.front)%oldCapacity + oldCapacity) % oldCapacity
		}
		last = w.size - 1
	}
	w.buffer = newBuffer
	w.front = 0
	w.back = last
}
