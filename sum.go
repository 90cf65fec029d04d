// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "github.com/holiman/uint256"

// sumCombiner is the scalar addition Combiner: identity 0, combine +.
type sumCombiner[T Number] struct{}

func (sumCombiner[T]) Identity() T      { var zero T; return zero }
func (sumCombiner[T]) Combine(a, b T) T { return a + b }
func (sumCombiner[T]) Inverse(p T) T    { return -p }

func identity[T any](v T) T { return v }

// SumOp is the arithmetic sum operator: associative, commutative, and
// invertible, but exposed here as a plain monoid for engines (ReCalc,
// TwoStacks, TwoStacksLite, Reactive, FlatFIT) that don't need the
// inverse. Partial, In and Out all coincide with T.
func SumOp[T Number]() Operator[T, T, T] {
	return Operator[T, T, T]{
		Combiner: sumCombiner[T]{},
		Lift:     identity[T],
		Lower:    identity[T],
	}
}

// SumGroupOp is SumOp with the inverse exposed, for SoE.
func SumGroupOp[T Number]() GroupOperator[T, T, T] {
	return GroupOperator[T, T, T]{
		Invertible: sumCombiner[T]{},
		Lift:       identity[T],
		Lower:      identity[T],
	}
}

// uint256Combiner is the Sum combiner over 256-bit fixed-width integers,
// demonstrating that Partial need not be a machine scalar: any type with
// an associative, invertible combine works.
type uint256Combiner struct{}

func (uint256Combiner) Identity() uint256.Int {
	return *uint256.NewInt(0)
}

func (uint256Combiner) Combine(a, b uint256.Int) uint256.Int {
	var out uint256.Int
	out.Add(&a, &b)
	return out
}

func (uint256Combiner) Inverse(p uint256.Int) uint256.Int {
	var out uint256.Int
	out.Sub(uint256.NewInt(0), &p)
	return out
}

// Sum256Op is the invertible Sum operator over uint256.Int, for windows
// that aggregate 256-bit values (e.g. token amounts) without overflow at
// the machine-word scale.
func Sum256Op() GroupOperator[uint256.Int, uint256.Int, uint256.Int] {
	return GroupOperator[uint256.Int, uint256.Int, uint256.Int]{
		Invertible: uint256Combiner{},
		Lift:       identity[uint256.Int],
		Lower:      identity[uint256.Int],
	}
}
