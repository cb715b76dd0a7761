package search

import (
	"testing"

	"github.com/phaul/chess/position"
)

// TestOverwritePolicy checks that an Exact entry wins over a bound entry
// regardless of insertion order.
func TestOverwritePolicy(t *testing.T) {
	tt := NewTransPosTable(16)
	pos := position.NewInitial()

	tt.Insert(pos, 4, LowerBound, Result{Score: 10})
	tt.Insert(pos, 4, Exact, Result{Score: 20})
	lr := tt.Lookup(pos, 0)
	if lr.Outcome != Hit || lr.Kind != Exact || lr.Result.Score != 20 {
		t.Fatalf("expected Exact/20 after Exact-over-LowerBound insert, got %+v", lr)
	}

	tt.Insert(pos, 4, LowerBound, Result{Score: 99})
	lr = tt.Lookup(pos, 0)
	if lr.Outcome != Hit || lr.Kind != Exact || lr.Result.Score != 20 {
		t.Fatalf("LowerBound insert must not overwrite an existing Exact, got %+v", lr)
	}
}

// TestLRUEviction checks that the oldest unused entry is evicted once the
// table exceeds its capacity.
func TestLRUEviction(t *testing.T) {
	const capacity = 4
	tt := NewTransPosTable(capacity)

	positions := make([]*position.Position, capacity+1)
	for i := range positions {
		p := position.New()
		p.AddPiece(position.White, position.King, i)
		p.AddPiece(position.Black, position.King, 63-i)
		positions[i] = p
	}

	for _, p := range positions {
		tt.Insert(p, 1, Exact, Result{Score: 1})
	}

	if tt.Len() != capacity {
		t.Fatalf("table length = %d, want capacity %d", tt.Len(), capacity)
	}
	if lr := tt.Lookup(positions[0], 0); lr.Outcome != Miss {
		t.Fatalf("least-recently-used entry should have been evicted, got %+v", lr)
	}
	if lr := tt.Lookup(positions[capacity], 0); lr.Outcome != Hit {
		t.Fatalf("most recently inserted entry should still be present")
	}
}

func TestShallowReturnsHintNotEntry(t *testing.T) {
	tt := NewTransPosTable(16)
	pos := position.NewInitial()

	tt.Insert(pos, 2, Exact, Result{Score: 5, Variation: nil})
	lr := tt.Lookup(pos, 8)
	if lr.Outcome != Shallow {
		t.Fatalf("stored depth 2 looked up at depth 8 should be Shallow, got %v", lr.Outcome)
	}
	if lr.Result.Score != 0 || lr.HasHint {
		t.Fatalf("Shallow should carry only the (here absent) move hint, not the stored entry, got %+v", lr)
	}
}

func TestDistinctPositionsDoNotAliasInTT(t *testing.T) {
	tt := NewTransPosTable(16)
	a := position.NewInitial()
	b := position.New()
	b.AddPiece(position.White, position.King, 4)
	b.AddPiece(position.Black, position.King, 60)

	tt.Insert(a, 1, Exact, Result{Score: 1})
	if lr := tt.Lookup(b, 0); lr.Outcome == Hit {
		t.Fatalf("unrelated position should not hit a's entry")
	}
}
