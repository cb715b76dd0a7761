// Package movegen implements the MoveGen collaborator: pseudo-legal-move
// generation (filtered down to fully legal moves, per the contract the
// Searcher actually relies on), capture/check-only generation for
// quiescence, and the makeMove/unmakeMove primitives that drive
// Position's history stacks. It is grounded on
// Oliverans-GooseEngine/goosemg/movegen.go's attack-table structure, but
// consults a real magic.MagicDB for sliding pieces instead of software
// pext/pdep, and generates full legality directly (make, test check,
// unmake) rather than goosemg's pin/check-mask fast path, which is out of
// this core's scope.
package movegen

import (
	"strings"

	"github.com/phaul/chess/position"
)

// Move encodes a chess move in a single machine word: source and
// destination squares, the moved and captured piece types, an optional
// promotion piece type, and a small flag for the moves that need special
// handling on make/unmake (castling, en passant, double pawn push).
type Move uint32

const (
	fromShift     = 0
	toShift       = 6
	movedShift    = 12
	capturedShift = 15
	promoShift    = 18
	flagShift     = 21
)

// Flag distinguishes moves whose make/unmake needs extra bookkeeping
// beyond "move a piece from one square to another".
type Flag uint8

const (
	FlagNone Flag = iota
	FlagCastleShort
	FlagCastleLong
	FlagEnPassant
	FlagDoublePush
)

// noPieceType is stored in the captured/promotion fields when there is no
// captured piece or no promotion; it is one past King so it never collides
// with a real PieceType.
const noPieceType = position.King + 1

// NewMove packs a move's components into a Move value.
func NewMove(from, to int, moved position.PieceType, captured, promo *position.PieceType, flag Flag) Move {
	capVal := noPieceType
	if captured != nil {
		capVal = *captured
	}
	promoVal := noPieceType
	if promo != nil {
		promoVal = *promo
	}
	return Move(
		uint32(from)<<fromShift |
			uint32(to)<<toShift |
			uint32(moved)<<movedShift |
			uint32(capVal)<<capturedShift |
			uint32(promoVal)<<promoShift |
			uint32(flag)<<flagShift,
	)
}

func (m Move) From() int                  { return int(m>>fromShift) & 0x3F }
func (m Move) To() int                    { return int(m>>toShift) & 0x3F }
func (m Move) MovedPieceType() position.PieceType { return position.PieceType(m>>movedShift) & 0x7 }
func (m Move) Flag() Flag                 { return Flag(m>>flagShift) & 0x7 }

// CapturedPieceType returns the captured piece type and true, or
// (_, false) if the move is not a capture.
func (m Move) CapturedPieceType() (position.PieceType, bool) {
	v := position.PieceType(m>>capturedShift) & 0x7
	return v, v != noPieceType
}

// PromotionPieceType returns the promotion piece type and true, or
// (_, false) if the move is not a promotion.
func (m Move) PromotionPieceType() (position.PieceType, bool) {
	v := position.PieceType(m>>promoShift) & 0x7
	return v, v != noPieceType
}

// IsCapture reports whether the move captures a piece, including en
// passant.
func (m Move) IsCapture() bool {
	_, ok := m.CapturedPieceType()
	return ok || m.Flag() == FlagEnPassant
}

var fileLetters = "abcdefgh"

func squareString(sq int) string {
	return string([]byte{fileLetters[sq%8], byte('1' + sq/8)})
}

var promoLetters = map[position.PieceType]string{
	position.Knight: "n", position.Bishop: "b", position.Rook: "r", position.Queen: "q",
}

// String renders the move in coordinate algebraic notation (e.g. "e2e4",
// "e7e8q"), the wire format the info lines use.
func (m Move) String() string {
	var b strings.Builder
	b.WriteString(squareString(m.From()))
	b.WriteString(squareString(m.To()))
	if promo, ok := m.PromotionPieceType(); ok {
		b.WriteString(promoLetters[promo])
	}
	return b.String()
}
