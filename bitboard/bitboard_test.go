package bitboard

import "testing"

func TestEmptyIsAdditiveIdentity(t *testing.T) {
	b := FromSquare(12).Union(FromSquare(40))
	if got := b.Union(Empty); got != b {
		t.Fatalf("Union(Empty) = %v, want %v", got, b)
	}
	if got := Empty.Union(b); got != b {
		t.Fatalf("Empty.Union(b) = %v, want %v", got, b)
	}
}

func TestSetAlgebra(t *testing.T) {
	a := FromSquare(0).Union(FromSquare(1)).Union(FromSquare(2))
	b := FromSquare(1).Union(FromSquare(2)).Union(FromSquare(3))

	if got := a.Intersect(b); got != FromSquare(1).Union(FromSquare(2)) {
		t.Fatalf("Intersect = %v", got)
	}
	if got := a.Without(b); got != FromSquare(0) {
		t.Fatalf("Without = %v", got)
	}
	if got := a.Complement().Intersect(a); got != Empty {
		t.Fatalf("Complement should leave nothing in common with a, got %v", got)
	}
}

func TestCountAndHas(t *testing.T) {
	b := FromSquare(5).Union(FromSquare(9)).Union(FromSquare(63))
	if got := b.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	if !b.Has(9) || b.Has(10) {
		t.Fatalf("Has() membership wrong for %v", b)
	}
}

func TestPopLSBEnumeratesInOrder(t *testing.T) {
	want := []int{2, 7, 40, 63}
	var b Board
	for _, sq := range want {
		b = b.Set(sq)
	}
	var got []int
	for b != Empty {
		var sq int
		sq, b = b.PopLSB()
		got = append(got, sq)
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPopLSBOnEmpty(t *testing.T) {
	sq, rest := Empty.PopLSB()
	if sq != -1 || rest != Empty {
		t.Fatalf("PopLSB(Empty) = (%d, %v), want (-1, Empty)", sq, rest)
	}
}

func TestShifts(t *testing.T) {
	b := FromSquare(0)
	if got := b.ShiftLeft(8); got != FromSquare(8) {
		t.Fatalf("ShiftLeft(8) = %v", got)
	}
	top := FromSquare(63)
	if got := top.ShiftLeft(1); got != Empty {
		t.Fatalf("overflow ShiftLeft should discard, got %v", got)
	}
}
