package movegen

import (
	"github.com/phaul/chess/bitboard"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/position"
)

// Generator implements the MoveGen collaborator against a concrete
// magic.MagicDB for sliding attacks. A single Generator is
// stateless and safe to share across searches and goroutines; all mutable
// state lives in the *position.Position passed to each call.
type Generator struct {
	magic *magic.MagicDB
}

// New returns a Generator backed by db.
func New(db *magic.MagicDB) *Generator {
	return &Generator{magic: db}
}

var promotionPieces = []position.PieceType{position.Queen, position.Rook, position.Bishop, position.Knight}

// pseudoLegal appends every pseudo-legal move for the side to move to out,
// without checking whether the move leaves that side's own king in check.
// Fully legal generation layers a check filter on top; see Moves.
func (g *Generator) pseudoLegal(pos *position.Position, out []Move) []Move {
	us := pos.SideToMove()
	them := us.Other()
	occ := pos.Occupied()
	ours := pos.ColorBitboard(us)
	theirs := pos.ColorBitboard(them)

	out = g.pawnMoves(pos, us, them, occ, out)

	for _, sq := range pos.Bitboard(us, position.Knight).Squares() {
		out = addJumps(out, sq, position.Knight, knightAttacks[sq].Without(ours), theirs, pos)
	}
	for _, sq := range pos.Bitboard(us, position.King).Squares() {
		out = addJumps(out, sq, position.King, kingAttacks[sq].Without(ours), theirs, pos)
	}
	for _, sq := range pos.Bitboard(us, position.Bishop).Squares() {
		out = addJumps(out, sq, position.Bishop, g.magic.Attacks(magic.Bishop, sq, occ).Without(ours), theirs, pos)
	}
	for _, sq := range pos.Bitboard(us, position.Rook).Squares() {
		out = addJumps(out, sq, position.Rook, g.magic.Attacks(magic.Rook, sq, occ).Without(ours), theirs, pos)
	}
	for _, sq := range pos.Bitboard(us, position.Queen).Squares() {
		attacks := g.magic.Attacks(magic.Rook, sq, occ).Union(g.magic.Attacks(magic.Bishop, sq, occ))
		out = addJumps(out, sq, position.Queen, attacks.Without(ours), theirs, pos)
	}

	out = g.castlingMoves(pos, us, occ, out)
	return out
}

// addJumps emits one move per destination in targets for a non-pawn piece
// of type pt standing on from; a destination is a capture iff it lies in
// theirs.
func addJumps(out []Move, from int, pt position.PieceType, targets, theirs bitboard.Board, pos *position.Position) []Move {
	for _, to := range targets.Squares() {
		if theirs.Has(to) {
			cap, _ := pos.PieceAt(to)
			capType := cap.Type()
			out = append(out, NewMove(from, to, pt, &capType, nil, FlagNone))
		} else {
			out = append(out, NewMove(from, to, pt, nil, nil, FlagNone))
		}
	}
	return out
}

func (g *Generator) pawnMoves(pos *position.Position, us, them position.Color, occ bitboard.Board, out []Move) []Move {
	var startRank, promoRank, dir int
	if us == position.White {
		startRank, promoRank, dir = 1, 7, 1
	} else {
		startRank, promoRank, dir = 6, 0, -1
	}
	theirs := pos.ColorBitboard(them)

	for _, sq := range pos.Bitboard(us, position.Pawn).Squares() {
		file, rank := sq%8, sq/8
		one := sq + dir*8

		if one >= 0 && one < 64 && !occ.Has(one) {
			out = appendPawnAdvance(out, sq, one, promoRank)
			two := sq + dir*16
			if rank == startRank && !occ.Has(two) {
				out = append(out, NewMove(sq, two, position.Pawn, nil, nil, FlagDoublePush))
			}
		}
		for _, df := range []int{-1, 1} {
			tf := file + df
			if tf < 0 || tf >= 8 {
				continue
			}
			to := one + df
			if to < 0 || to >= 64 {
				continue
			}
			if theirs.Has(to) {
				cap, _ := pos.PieceAt(to)
				capType := cap.Type()
				if to/8 == promoRank {
					for _, promo := range promotionPieces {
						p := promo
						out = append(out, NewMove(sq, to, position.Pawn, &capType, &p, FlagNone))
					}
				} else {
					out = append(out, NewMove(sq, to, position.Pawn, &capType, nil, FlagNone))
				}
				continue
			}
			if epSq, ok := pos.EnPassantSquare(); ok && to == epSq {
				capType := position.Pawn
				out = append(out, NewMove(sq, to, position.Pawn, &capType, nil, FlagEnPassant))
			}
		}
	}
	return out
}

func appendPawnAdvance(out []Move, from, to, promoRank int) []Move {
	if to/8 == promoRank {
		for _, promo := range promotionPieces {
			p := promo
			out = append(out, NewMove(from, to, position.Pawn, nil, &p, FlagNone))
		}
		return out
	}
	return append(out, NewMove(from, to, position.Pawn, nil, nil, FlagNone))
}

// castling squares, fixed for standard chess (no Chess960 support;
// goosemg doesn't have any either).
const (
	whiteKingHome, whiteRookShort, whiteRookLong = 4, 7, 0
	blackKingHome, blackRookShort, blackRookLong = 60, 63, 56
)

func (g *Generator) castlingMoves(pos *position.Position, us position.Color, occ bitboard.Board, out []Move) []Move {
	rights := pos.CastlingRights(us)
	if rights == 0 {
		return out
	}
	them := us.Other()

	if us == position.White {
		if rights.Has(position.Short) && !occ.Has(5) && !occ.Has(6) &&
			!g.Attacked(pos, 4, them) && !g.Attacked(pos, 5, them) && !g.Attacked(pos, 6, them) {
			out = append(out, NewMove(4, 6, position.King, nil, nil, FlagCastleShort))
		}
		if rights.Has(position.Long) && !occ.Has(1) && !occ.Has(2) && !occ.Has(3) &&
			!g.Attacked(pos, 4, them) && !g.Attacked(pos, 3, them) && !g.Attacked(pos, 2, them) {
			out = append(out, NewMove(4, 2, position.King, nil, nil, FlagCastleLong))
		}
	} else {
		if rights.Has(position.Short) && !occ.Has(61) && !occ.Has(62) &&
			!g.Attacked(pos, 60, them) && !g.Attacked(pos, 61, them) && !g.Attacked(pos, 62, them) {
			out = append(out, NewMove(60, 62, position.King, nil, nil, FlagCastleShort))
		}
		if rights.Has(position.Long) && !occ.Has(57) && !occ.Has(58) && !occ.Has(59) &&
			!g.Attacked(pos, 60, them) && !g.Attacked(pos, 59, them) && !g.Attacked(pos, 58, them) {
			out = append(out, NewMove(60, 58, position.King, nil, nil, FlagCastleLong))
		}
	}
	return out
}
