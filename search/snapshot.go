package search

import (
	"github.com/phaul/chess/bitboard"
	"github.com/phaul/chess/position"
)

// snapshot captures the fields a position's full state compares on,
// without holding a live *position.Position (which would keep growing its
// history stacks for as long as the TT entry survives). Collision
// detection compares a stored snapshot against a live position's current
// state.
type snapshot struct {
	colorBB [2]bitboard.Board
	typeBB  [6]bitboard.Board
	side    position.Color
	epSq    int
	epHas   bool
	white   position.CastleRights
	black   position.CastleRights
}

func takeSnapshot(pos *position.Position) snapshot {
	s := snapshot{
		colorBB: [2]bitboard.Board{pos.ColorBitboard(position.White), pos.ColorBitboard(position.Black)},
		side:    pos.SideToMove(),
		white:   pos.CastlingRights(position.White),
		black:   pos.CastlingRights(position.Black),
	}
	for pt := position.Pawn; pt <= position.King; pt++ {
		s.typeBB[pt] = pos.PieceBitboard(pt)
	}
	s.epSq, s.epHas = pos.EnPassantSquare()
	return s
}

func (s snapshot) matches(pos *position.Position) bool {
	if s.colorBB != [2]bitboard.Board{pos.ColorBitboard(position.White), pos.ColorBitboard(position.Black)} {
		return false
	}
	for pt := position.Pawn; pt <= position.King; pt++ {
		if s.typeBB[pt] != pos.PieceBitboard(pt) {
			return false
		}
	}
	if s.side != pos.SideToMove() {
		return false
	}
	epSq, epHas := pos.EnPassantSquare()
	if s.epHas != epHas || (epHas && s.epSq != epSq) {
		return false
	}
	return s.white == pos.CastlingRights(position.White) && s.black == pos.CastlingRights(position.Black)
}
