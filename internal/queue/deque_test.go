// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"testing"

	"code.hybscloud.com/swag/internal/queue"
)

func TestDequeBasic(t *testing.T) {
	d := queue.New[int]()

	if d.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", d.Len())
	}
	if _, ok := d.Front(); ok {
		t.Fatal("Front on empty: got ok=true, want false")
	}
	if _, ok := d.PopFront(); ok {
		t.Fatal("PopFront on empty: got ok=true, want false")
	}

	for i := range 5 {
		d.PushBack(i + 100)
	}
	if d.Len() != 5 {
		t.Fatalf("Len: got %d, want 5", d.Len())
	}
	for i := range 5 {
		if got := d.At(i); got != i+100 {
			t.Fatalf("At(%d): got %d, want %d", i, got, i+100)
		}
	}

	for i := range 5 {
		v, ok := d.PopFront()
		if !ok {
			t.Fatalf("PopFront(%d): ok=false", i)
		}
		if v != i+100 {
			t.Fatalf("PopFront(%d): got %d, want %d", i, v, i+100)
		}
	}
	if d.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", d.Len())
	}
}

// TestDequeWrapAround pushes and pops across many fill/drain cycles to
// exercise the modular head/tail arithmetic, the way the teacher's own
// ring buffer wrap-around tests do.
func TestDequeWrapAround(t *testing.T) {
	d := queue.New[int]()

	for round := range 20 {
		for i := range 3 {
			d.PushBack(round*100 + i)
		}
		for i := range 3 {
			v, ok := d.PopFront()
			if !ok {
				t.Fatalf("round %d: PopFront ok=false", round)
			}
			want := round*100 + i
			if v != want {
				t.Fatalf("round %d pop %d: got %d, want %d", round, i, v, want)
			}
		}
	}
}

func TestDequeGrow(t *testing.T) {
	d := queue.New[int]()
	const n = 1000
	for i := range n {
		d.PushBack(i)
	}
	for i := range n {
		v, ok := d.PopFront()
		if !ok || v != i {
			t.Fatalf("PopFront(%d): got (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
}

func TestDequeSet(t *testing.T) {
	d := queue.New[int]()
	for i := range 4 {
		d.PushBack(i)
	}
	d.Set(2, 999)
	if got := d.At(2); got != 999 {
		t.Fatalf("At(2) after Set: got %d, want 999", got)
	}
}
