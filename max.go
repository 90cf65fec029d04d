// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "math"

// maxCombiner is the Max Combiner: identity is the type's minimum
// representable value, combine picks the larger operand. Max has no
// inverse (knowing the max of a window says nothing about the max of the
// window minus one element), so it is monoid-only.
type maxCombiner[T Number] struct{}

func (maxCombiner[T]) Identity() T {
	return minValue[T]()
}

func (maxCombiner[T]) Combine(a, b T) T {
	if a > b {
		return a
	}
	return b
}

// MaxOp is the maximum operator over any ordered numeric type.
func MaxOp[T Number]() Operator[T, T, T] {
	return Operator[T, T, T]{
		Combiner: maxCombiner[T]{},
		Lift:     identity[T],
		Lower:    identity[T],
	}
}

// minValue returns the minimum value T can represent, the generalisation
// of the original algorithm's single-type Min trait (there it was
// implemented only for i32) to every Number this package supports.
func minValue[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case int:
		return any(int(math.MinInt)).(T)
	case int8:
		return any(int8(math.MinInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return zero // unsigned: the zero value is already the minimum
	case float32:
		return T(math.Inf(-1))
	case float64:
		return T(math.Inf(-1))
	default:
		panic("swag: MaxOp: unsupported numeric type")
	}
}
