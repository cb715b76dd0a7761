// Package position implements the bitboard position representation:
// eight bitboards (one per color, one per piece type), the side to
// move, and the growable en-passant/castling-rights history stacks that
// makeMove/unmakeMove push and pop. Zobrist hashing is maintained
// incrementally as pieces are added and removed, so Hash is O(1).
package position

import (
	"fmt"

	"github.com/phaul/chess/bitboard"
	"github.com/phaul/chess/zobrist"
)

// Color is one of the two sides.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is the colorless kind of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numPieceTypes
)

// Piece packs a Color and a PieceType into the value stored in the
// square-indexed lookup array; it is an implementation detail used to make
// AddPiece/RemovePiece O(1) and is not part of the position's public data
// model, which is defined purely in terms of the eight bitboards.
type Piece uint8

// NoPiece marks an empty square in the pieceAt lookup array.
const NoPiece Piece = 0xFF

func makePiece(c Color, pt PieceType) Piece { return Piece(c)<<4 | Piece(pt) }

// Color returns the color encoded in p. p must not be NoPiece.
func (p Piece) Color() Color { return Color(p >> 4) }

// Type returns the piece type encoded in p. p must not be NoPiece.
func (p Piece) Type() PieceType { return PieceType(p & 0xF) }

// CastleRight is one of the two castling privileges a side may hold.
type CastleRight uint8

const (
	Short CastleRight = 1 << 0
	Long  CastleRight = 1 << 1
)

// CastleRights is a subset of {Short, Long}.
type CastleRights uint8

// Has reports whether r grants the given right.
func (r CastleRights) Has(right CastleRight) bool { return r&CastleRights(right) != 0 }

// NoSquare marks the absence of an en-passant target.
const NoSquare = -1

// Position is the complete, mutable game state: bitboards, side to move,
// castling rights and en-passant target.
//
// Entity equality (used by the transposition table to detect hash
// collisions) compares the eight bitboards, sideToMove, and only the TOP
// of the en-passant/castling-rights stacks — historical stack tails exist
// purely to support unmakeMove and are not part of identity. This means
// two positions with identical "current" state but different histories
// compare equal even though they are not interchangeable for
// threefold-repetition purposes; the core does not detect repetition, by
// design.
type Position struct {
	colorBB [2]bitboard.Board
	typeBB  [numPieceTypes]bitboard.Board
	pieceAt [64]Piece

	sideToMove Color

	// epStack holds one entry per ply made; NoSquare means "no en-passant
	// target this ply". The top of the stack is the current ep square.
	epStack []int

	// castleStack[c] holds one entry per ply made for color c; the top of
	// each stack is that color's current castling rights.
	castleStack [2][]CastleRights

	hash uint64
}

// New returns an empty position: no pieces, White to move, no castling
// rights, no en-passant target. Callers typically populate it via
// AddPiece or via a FenDecoder.
func New() *Position {
	p := &Position{}
	for sq := range p.pieceAt {
		p.pieceAt[sq] = NoPiece
	}
	p.epStack = []int{NoSquare}
	p.castleStack[White] = []CastleRights{0}
	p.castleStack[Black] = []CastleRights{0}
	p.hash = zobrist.EnPassantNone() ^ zobrist.Castle(castleNibble(0, 0))
	return p
}

// ColorBitboard returns the occupancy of every piece belonging to c.
func (p *Position) ColorBitboard(c Color) bitboard.Board { return p.colorBB[c] }

// PieceBitboard returns the occupancy of every piece of type pt, both
// colors combined.
func (p *Position) PieceBitboard(pt PieceType) bitboard.Board { return p.typeBB[pt] }

// Bitboard returns the occupancy of pieces of type pt belonging to c.
func (p *Position) Bitboard(c Color, pt PieceType) bitboard.Board {
	return p.colorBB[c].Intersect(p.typeBB[pt])
}

// Occupied returns the occupancy of all pieces, either color.
func (p *Position) Occupied() bitboard.Board { return p.colorBB[White].Union(p.colorBB[Black]) }

// SideToMove reports which color is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// SetSideToMove forces the side to move, updating the hash. Used by
// FenDecoder, and by MoveGen's MakeMove/UnmakeMove to toggle the side as
// part of applying and reverting a move.
func (p *Position) SetSideToMove(c Color) {
	if p.sideToMove == c {
		return
	}
	p.sideToMove = c
	p.hash ^= zobrist.Side()
}

// PieceAt returns the piece occupying sq and whether the square is
// occupied.
func (p *Position) PieceAt(sq int) (Piece, bool) {
	pc := p.pieceAt[sq]
	return pc, pc != NoPiece
}

// EnPassantSquare returns the current en-passant target, or (NoSquare,
// false) if none.
func (p *Position) EnPassantSquare() (int, bool) {
	sq := p.epStack[len(p.epStack)-1]
	return sq, sq != NoSquare
}

// CastlingRights returns the current castling rights for c.
func (p *Position) CastlingRights(c Color) CastleRights {
	s := p.castleStack[c]
	return s[len(s)-1]
}

// Hash returns the Zobrist key maintained incrementally as the position's
// bitboards, side to move, castling rights and en-passant square change.
// It is invariant under insertion order: two positions built by different move sequences that
// reach the same piece placement, side, castling rights and en-passant
// square hash identically.
func (p *Position) Hash() uint64 { return p.hash }

// Equal implements the entity equality relation: all eight bitboards,
// sideToMove, and the TOP of both history stacks must match.
// Historical stack tails are deliberately ignored.
func (p *Position) Equal(other *Position) bool {
	if p == other {
		return true
	}
	if p.colorBB != other.colorBB || p.typeBB != other.typeBB {
		return false
	}
	if p.sideToMove != other.sideToMove {
		return false
	}
	pep, pok := p.EnPassantSquare()
	oep, ook := other.EnPassantSquare()
	if pok != ook || (pok && pep != oep) {
		return false
	}
	if p.CastlingRights(White) != other.CastlingRights(White) {
		return false
	}
	if p.CastlingRights(Black) != other.CastlingRights(Black) {
		return false
	}
	return true
}

// AddPiece places a piece of type pt and color c on an empty square sq, updating the
// bitboards, the square lookup, and the Zobrist hash. It panics (a
// programming error) if sq is already occupied.
func (p *Position) AddPiece(c Color, pt PieceType, sq int) {
	if p.pieceAt[sq] != NoPiece {
		panic(fmt.Sprintf("position: AddPiece on occupied square %d", sq))
	}
	p.pieceAt[sq] = makePiece(c, pt)
	p.colorBB[c] = p.colorBB[c].Set(sq)
	p.typeBB[pt] = p.typeBB[pt].Set(sq)
	p.hash ^= zobrist.Piece(int(c), int(pt)+1, sq)
}

// RemovePiece removes whatever piece occupies sq, updating the bitboards,
// the square lookup, and the Zobrist hash, and returns it. It panics if sq
// is empty.
func (p *Position) RemovePiece(sq int) (Color, PieceType) {
	pc := p.pieceAt[sq]
	if pc == NoPiece {
		panic(fmt.Sprintf("position: RemovePiece on empty square %d", sq))
	}
	c, pt := pc.Color(), pc.Type()
	p.pieceAt[sq] = NoPiece
	p.colorBB[c] = p.colorBB[c].Clear(sq)
	p.typeBB[pt] = p.typeBB[pt].Clear(sq)
	p.hash ^= zobrist.Piece(int(c), int(pt)+1, sq)
	return c, pt
}

// PushEnPassant records a new current en-passant target (NoSquare for
// "none this ply"), growing the stack. Pairs with PopEnPassant.
func (p *Position) PushEnPassant(sq int) {
	cur, _ := p.EnPassantSquare()
	if cur != NoSquare {
		p.hash ^= zobrist.EnPassant(cur % 8)
	} else {
		p.hash ^= zobrist.EnPassantNone()
	}
	p.epStack = append(p.epStack, sq)
	if sq != NoSquare {
		p.hash ^= zobrist.EnPassant(sq % 8)
	} else {
		p.hash ^= zobrist.EnPassantNone()
	}
}

// PopEnPassant undoes the most recent PushEnPassant, restoring the
// previous en-passant target and its contribution to the hash. It panics
// if the stack would underflow past its permanent bottom entry.
func (p *Position) PopEnPassant() {
	if len(p.epStack) <= 1 {
		panic("position: PopEnPassant on empty history")
	}
	cur := p.epStack[len(p.epStack)-1]
	if cur != NoSquare {
		p.hash ^= zobrist.EnPassant(cur % 8)
	} else {
		p.hash ^= zobrist.EnPassantNone()
	}
	p.epStack = p.epStack[:len(p.epStack)-1]
	prev := p.epStack[len(p.epStack)-1]
	if prev != NoSquare {
		p.hash ^= zobrist.EnPassant(prev % 8)
	} else {
		p.hash ^= zobrist.EnPassantNone()
	}
}

// PushCastlingRights records a new current castling-rights set for c,
// growing that color's stack. Pairs with PopCastlingRights.
func (p *Position) PushCastlingRights(c Color, rights CastleRights) {
	p.hash ^= zobrist.Castle(castleNibble(p.CastlingRights(White), p.CastlingRights(Black)))
	p.castleStack[c] = append(p.castleStack[c], rights)
	p.hash ^= zobrist.Castle(castleNibble(p.CastlingRights(White), p.CastlingRights(Black)))
}

// PopCastlingRights undoes the most recent PushCastlingRights for c. It
// panics if c's stack would underflow past its permanent bottom entry.
func (p *Position) PopCastlingRights(c Color) {
	if len(p.castleStack[c]) <= 1 {
		panic("position: PopCastlingRights on empty history")
	}
	p.hash ^= zobrist.Castle(castleNibble(p.CastlingRights(White), p.CastlingRights(Black)))
	p.castleStack[c] = p.castleStack[c][:len(p.castleStack[c])-1]
	p.hash ^= zobrist.Castle(castleNibble(p.CastlingRights(White), p.CastlingRights(Black)))
}

func castleNibble(white, black CastleRights) int {
	return int(white&3) | int(black&3)<<2
}

// Validate cross-checks the per-color and per-type bitboards against the
// square lookup array and recomputes the Zobrist hash from scratch,
// returning false on any mismatch. It exists for tests; production code
// never calls it on a hot path.
func (p *Position) Validate() bool {
	var colorBB [2]bitboard.Board
	var typeBB [numPieceTypes]bitboard.Board
	for sq := 0; sq < 64; sq++ {
		pc := p.pieceAt[sq]
		if pc == NoPiece {
			continue
		}
		colorBB[pc.Color()] = colorBB[pc.Color()].Set(sq)
		typeBB[pc.Type()] = typeBB[pc.Type()].Set(sq)
	}
	if colorBB != p.colorBB || typeBB != p.typeBB {
		return false
	}
	return p.Hash() == p.recomputeHash()
}

func (p *Position) recomputeHash() uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		if pc := p.pieceAt[sq]; pc != NoPiece {
			h ^= zobrist.Piece(int(pc.Color()), int(pc.Type())+1, sq)
		}
	}
	if p.sideToMove == Black {
		h ^= zobrist.Side()
	}
	h ^= zobrist.Castle(castleNibble(p.CastlingRights(White), p.CastlingRights(Black)))
	if sq, ok := p.EnPassantSquare(); ok {
		h ^= zobrist.EnPassant(sq % 8)
	} else {
		h ^= zobrist.EnPassantNone()
	}
	return h
}
