// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

// MeanPartial carries a running sum and count so that Mean can be combined
// incrementally: the public In/Out types (a single sample, its average)
// differ from the internal carrier, which is exactly what Lift/Lower
// exist to bridge.
type MeanPartial[In Number] struct {
	Sum   In
	Count int
}

type meanCombiner[In, Out Number] struct{}

func (meanCombiner[In, Out]) Identity() MeanPartial[In] {
	return MeanPartial[In]{}
}

func (meanCombiner[In, Out]) Combine(a, b MeanPartial[In]) MeanPartial[In] {
	return MeanPartial[In]{Sum: a.Sum + b.Sum, Count: a.Count + b.Count}
}

func (meanCombiner[In, Out]) Inverse(p MeanPartial[In]) MeanPartial[In] {
	return MeanPartial[In]{Sum: -p.Sum, Count: -p.Count}
}

// MeanOp is the arithmetic mean operator. Lower of the identity (an empty
// window, Count == 0) returns the zero value of Out rather than dividing
// by zero — the explicit resolution spec.md calls for instead of the
// division-by-zero the original source leaves unhandled.
func MeanOp[In, Out Number]() Operator[In, Out, MeanPartial[In]] {
	return Operator[In, Out, MeanPartial[In]]{
		Combiner: meanCombiner[In, Out]{},
		Lift: func(v In) MeanPartial[In] {
			return MeanPartial[In]{Sum: v, Count: 1}
		},
		Lower: func(p MeanPartial[In]) Out {
			if p.Count == 0 {
				var zero Out
				return zero
			}
			return Out(p.Sum) / Out(p.Count)
		},
	}
}

// MeanGroupOp is MeanOp with the inverse exposed, for SoE. The carrier's
// (Sum, Count) pair is invertible the same way SumOp's scalar is, since
// subtraction distributes over both fields independently.
func MeanGroupOp[In, Out Number]() GroupOperator[In, Out, MeanPartial[In]] {
	return GroupOperator[In, Out, MeanPartial[In]]{
		Invertible: meanCombiner[In, Out]{},
		Lift: func(v In) MeanPartial[In] {
			return MeanPartial[In]{Sum: v, Count: 1}
		},
		Lower: func(p MeanPartial[In]) Out {
			if p.Count == 0 {
				var zero Out
				return zero
			}
			return Out(p.Sum) / Out(p.Count)
		},
	}
}
