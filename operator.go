// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

import "golang.org/x/exp/constraints"

// Number is the constraint satisfied by every built-in scalar operator
// (Sum, Max, Mean). It covers every ordered numeric primitive type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Combiner is an associative binary operation over a set of partial
// aggregates, with a two-sided identity element.
//
// Implementations must satisfy:
//
//	Combine(Identity(), p) == p == Combine(p, Identity())
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// Commutativity is not required and no engine in this package relies on
// it: insertion order is always honored.
type Combiner[Partial any] interface {
	Identity() Partial
	Combine(a, b Partial) Partial
}

// Invertible is a Combiner whose Combine has a two-sided inverse, i.e. a
// group. SoE is the only engine that requires one.
type Invertible[Partial any] interface {
	Combiner[Partial]

	// Inverse returns p's inverse under Combine, i.e.
	// Combine(p, Inverse(p)) == Identity().
	Inverse(p Partial) Partial
}

// Operator couples a Combiner over Partial with the Lift/Lower adapters
// that connect it to the public In/Out types. Every monoid-only engine
// (ReCalc, TwoStacks, TwoStacksLite, Reactive, FlatFIT) accepts one.
type Operator[In, Out, Partial any] struct {
	Combiner[Partial]

	// Lift embeds a single input element into the partial carrier.
	Lift func(In) Partial

	// Lower projects a partial back to the public aggregate type.
	Lower func(Partial) Out
}

// GroupOperator is an Operator whose combine is invertible. SoE is the
// only engine that accepts one; passing an Operator built from a
// non-invertible Combiner where a GroupOperator is required does not
// compile, which is how this package enforces "SoE requires a group" at
// construction time rather than at run time.
type GroupOperator[In, Out, Partial any] struct {
	Invertible[Partial]

	Lift  func(In) Partial
	Lower func(Partial) Out
}

// asOperator adapts a GroupOperator to the plain Operator shape so a group
// can be used anywhere a monoid is accepted (every group is a monoid).
func asOperator[In, Out, Partial any](g GroupOperator[In, Out, Partial]) Operator[In, Out, Partial] {
	return Operator[In, Out, Partial]{
		Combiner: g.Invertible,
		Lift:     g.Lift,
		Lower:    g.Lower,
	}
}
