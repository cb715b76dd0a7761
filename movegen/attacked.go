package movegen

import (
	"github.com/phaul/chess/bitboard"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/position"
)

// Attacked reports whether sq is attacked by any piece belonging to by,
// given pos's current occupancy. It underlies check detection for both
// legality filtering and the "gives check" test ForcingMoves uses to
// decide whether a quiet move is forcing, grounded on
// goosemg/movegen.go's isAttacked.
func (g *Generator) Attacked(pos *position.Position, sq int, by position.Color) bool {
	occ := pos.Occupied()

	if knightAttacks[sq].Intersect(pos.Bitboard(by, position.Knight)) != bitboard.Empty {
		return true
	}
	if kingAttacks[sq].Intersect(pos.Bitboard(by, position.King)) != bitboard.Empty {
		return true
	}
	// A pawn of color `by` attacks sq iff sq lies diagonally in front of it;
	// equivalently, sq is attacked by a `by` pawn iff one of the squares the
	// opposite-colored pawn table reaches from sq holds a `by` pawn.
	if pawnAttacks[by.Other()][sq].Intersect(pos.Bitboard(by, position.Pawn)) != bitboard.Empty {
		return true
	}
	rookLike := pos.Bitboard(by, position.Rook).Union(pos.Bitboard(by, position.Queen))
	if g.magic.Attacks(magic.Rook, sq, occ).Intersect(rookLike) != bitboard.Empty {
		return true
	}
	bishopLike := pos.Bitboard(by, position.Bishop).Union(pos.Bitboard(by, position.Queen))
	if g.magic.Attacks(magic.Bishop, sq, occ).Intersect(bishopLike) != bitboard.Empty {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (g *Generator) InCheck(pos *position.Position, c position.Color) bool {
	kingBB := pos.Bitboard(c, position.King)
	if kingBB.IsEmpty() {
		return false
	}
	sq := kingBB.LSB()
	return g.Attacked(pos, sq, c.Other())
}
