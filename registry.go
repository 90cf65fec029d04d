// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

// NewMonoid constructs the named engine over a monoid operator. Valid
// names are "recalc", "two_stacks", "two_stacks_lite", "reactive", and
// "flatfit". SoE is excluded here since it requires a GroupOperator; see
// NewGroup.
func NewMonoid[In, Out, Partial any](name string, op Operator[In, Out, Partial]) (FifoWindow[In, Out], error) {
	switch name {
	case "recalc":
		return NewReCalc(op), nil
	case "two_stacks":
		return NewTwoStacks(op), nil
	case "two_stacks_lite":
		return NewTwoStacksLite(op), nil
	case "reactive":
		return NewReactive(op), nil
	case "flatfit":
		return NewFlatFIT(op), nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// NewGroup constructs the named engine over a group (invertible) operator.
// It accepts "soe" and, since a GroupOperator can be lowered to a plain
// Operator, every name NewMonoid accepts.
func NewGroup[In, Out, Partial any](name string, op GroupOperator[In, Out, Partial]) (FifoWindow[In, Out], error) {
	if name == "soe" {
		return NewSoE(op), nil
	}
	return NewMonoid(name, asOperator(op))
}
