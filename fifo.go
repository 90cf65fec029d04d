// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package swag

// FifoWindow is the contract shared by every SWAG engine: a mutable,
// ordered multiset of the last Len() pushed-but-not-yet-popped values,
// queryable as the combine of its elements in insertion order.
//
// Universal invariants:
//
//   - After Push(v) on a window holding S, Len grows by 1 and Query()
//     equals the aggregate of S followed by v.
//   - After Pop() on a non-empty window holding [v0, v1, ...], Len shrinks
//     by 1 and Query() equals the aggregate of [v1, ...].
//   - Pop on an empty window is a silent no-op.
//   - Query never mutates observable state (an engine may update internal
//     caches, but the returned value is insensitive to that).
type FifoWindow[In, Out any] interface {
	// Name returns the stable, lowercase algorithm identifier.
	Name() string

	// Push appends v at the back of the window.
	Push(v In)

	// Pop removes the oldest value. It is a no-op on an empty window.
	Pop()

	// Query returns the combine of every live value, in insertion order.
	// On an empty window it returns the operator's lowered identity.
	Query() Out

	// Len returns the number of live elements.
	Len() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}
