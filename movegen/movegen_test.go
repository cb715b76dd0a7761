package movegen

import (
	"testing"

	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/position"
)

func newGen() *Generator {
	return New(magic.NewDB())
}

func perft(g *Generator, pos *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := g.Moves(pos)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		g.MakeMove(pos, m)
		nodes += perft(g, pos, depth-1)
		g.UnmakeMove(pos, m)
	}
	return nodes
}

// TestInitialPositionMoveCount checks the well-known perft(1)/perft(2)
// node counts from the standard starting position: 20 legal moves, 400
// replies across all of them.
func TestInitialPositionMoveCount(t *testing.T) {
	g := newGen()
	pos := position.NewInitial()

	if got := perft(g, pos, 1); got != 20 {
		t.Fatalf("perft(1) from start = %d, want 20", got)
	}
	if got := perft(g, pos, 2); got != 400 {
		t.Fatalf("perft(2) from start = %d, want 400", got)
	}
	if !pos.Validate() {
		t.Fatalf("position invariants broken after perft")
	}
}

// TestMakeUnmakeRestoresHash exercises every legal move from the start
// position one ply deep and checks that unmaking restores the original
// Zobrist hash exactly, the round-trip property the transposition table
// depends on.
func TestMakeUnmakeRestoresHash(t *testing.T) {
	g := newGen()
	pos := position.NewInitial()
	want := pos.Hash()

	for _, m := range g.Moves(pos) {
		g.MakeMove(pos, m)
		g.UnmakeMove(pos, m)
		if pos.Hash() != want {
			t.Fatalf("move %v: hash not restored, got %x want %x", m, pos.Hash(), want)
		}
		if !pos.Validate() {
			t.Fatalf("move %v: position invariants broken after unmake", m)
		}
	}
}

// TestCastlingRequiresClearPathAndSafety checks that castling is excluded
// when squares in the king's path are attacked, and included once they
// are not (a minimal position built directly rather than via FEN, since
// fen is a separate collaborator).
func TestCastlingRequiresClearPathAndSafety(t *testing.T) {
	g := newGen()
	pos := position.New()
	pos.AddPiece(position.White, position.King, 4)
	pos.AddPiece(position.White, position.Rook, 7)
	pos.AddPiece(position.White, position.Rook, 0)
	pos.AddPiece(position.Black, position.King, 60)
	pos.AddPiece(position.Black, position.Rook, 56)
	pos.PushCastlingRights(position.White, position.CastleRights(position.Short|position.Long))
	pos.PushCastlingRights(position.Black, position.CastleRights(position.Long))

	found := false
	for _, m := range g.Moves(pos) {
		if m.Flag() == FlagCastleShort {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected short castle to be available with a clear, unattacked path")
	}

	// Black rook on e8's file attacks e1, so White may not castle through
	// check even though the squares are empty.
	pos2 := position.New()
	pos2.AddPiece(position.White, position.King, 4)
	pos2.AddPiece(position.White, position.Rook, 7)
	pos2.AddPiece(position.Black, position.King, 60)
	pos2.AddPiece(position.Black, position.Rook, 12) // e2, attacks e1 via file
	pos2.PushCastlingRights(position.White, position.CastleRights(position.Short))
	pos2.PushCastlingRights(position.Black, position.CastleRights(0))

	for _, m := range g.Moves(pos2) {
		if m.Flag() == FlagCastleShort {
			t.Fatalf("short castle should be illegal while king is in check")
		}
	}
}

func TestMoveStringFormatsCoordinates(t *testing.T) {
	queen := position.Queen
	m := NewMove(12, 60, position.Pawn, nil, &queen, FlagNone)
	if got, want := m.String(), "e2e8q"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
