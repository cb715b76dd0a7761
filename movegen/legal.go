package movegen

import "github.com/phaul/chess/position"

// Moves returns every fully legal move for the side to move: pseudo-legal
// generation (generate.go) filtered by a make/test-check/unmake pass, so
// the Searcher never has to reason about moves that leave its own king in
// check. This is deliberately simpler than goosemg's pin/check-mask fast
// path, which this core's scope does not need.
func (g *Generator) Moves(pos *position.Position) []Move {
	us := pos.SideToMove()
	candidates := g.pseudoLegal(pos, make([]Move, 0, 48))
	out := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		g.MakeMove(pos, m)
		if !g.InCheck(pos, us) {
			out = append(out, m)
		}
		g.UnmakeMove(pos, m)
	}
	return out
}

// ForcingMoves returns the subset of legal moves quiescence search should
// keep examining past the nominal horizon: captures, promotions, and
// moves that give check.
func (g *Generator) ForcingMoves(pos *position.Position) []Move {
	us := pos.SideToMove()
	them := us.Other()
	candidates := g.pseudoLegal(pos, make([]Move, 0, 48))
	out := make([]Move, 0, 8)
	for _, m := range candidates {
		_, isPromo := m.PromotionPieceType()
		if !m.IsCapture() && !isPromo {
			g.MakeMove(pos, m)
			gives := g.InCheck(pos, them)
			legal := !g.InCheck(pos, us)
			g.UnmakeMove(pos, m)
			if !legal || !gives {
				continue
			}
			out = append(out, m)
			continue
		}
		g.MakeMove(pos, m)
		legal := !g.InCheck(pos, us)
		g.UnmakeMove(pos, m)
		if legal {
			out = append(out, m)
		}
	}
	return out
}

// AnyMove reports whether the side to move has at least one legal move,
// short-circuiting the legality check as soon as one is found; Searcher
// uses this to detect checkmate and stalemate. It still generates every
// pseudo-legal move first.
func (g *Generator) AnyMove(pos *position.Position) bool {
	us := pos.SideToMove()
	candidates := g.pseudoLegal(pos, make([]Move, 0, 48))
	for _, m := range candidates {
		g.MakeMove(pos, m)
		ok := !g.InCheck(pos, us)
		g.UnmakeMove(pos, m)
		if ok {
			return true
		}
	}
	return false
}

func castleRookSquares(us position.Color, flag Flag) (from, to int) {
	switch {
	case us == position.White && flag == FlagCastleShort:
		return whiteRookShort, 5
	case us == position.White && flag == FlagCastleLong:
		return whiteRookLong, 3
	case us == position.Black && flag == FlagCastleShort:
		return blackRookShort, 61
	default:
		return blackRookLong, 59
	}
}

func epCaptureSquare(us position.Color, to int) int {
	if us == position.White {
		return to - 8
	}
	return to + 8
}

// MakeMove applies m to pos in place: it moves (or removes and replaces,
// for captures/promotions/en passant/castling) the relevant pieces, then
// pushes new en-passant and castling-rights entries and toggles the side
// to move. Every call must be paired with a matching UnmakeMove(pos, m)
// once the caller is done exploring the resulting position, in LIFO order
// with any other push made in between (search's recursion naturally
// nests this way).
func (g *Generator) MakeMove(pos *position.Position, m Move) {
	us := pos.SideToMove()
	them := us.Other()
	from, to := m.From(), m.To()
	pt := m.MovedPieceType()

	switch m.Flag() {
	case FlagEnPassant:
		pos.RemovePiece(from)
		pos.RemovePiece(epCaptureSquare(us, to))
		pos.AddPiece(us, pt, to)
	case FlagCastleShort, FlagCastleLong:
		pos.RemovePiece(from)
		pos.AddPiece(us, pt, to)
		rFrom, rTo := castleRookSquares(us, m.Flag())
		pos.RemovePiece(rFrom)
		pos.AddPiece(us, position.Rook, rTo)
	default:
		if _, ok := m.CapturedPieceType(); ok {
			pos.RemovePiece(to)
		}
		pos.RemovePiece(from)
		if promo, ok := m.PromotionPieceType(); ok {
			pos.AddPiece(us, promo, to)
		} else {
			pos.AddPiece(us, pt, to)
		}
	}

	newEP := position.NoSquare
	if m.Flag() == FlagDoublePush {
		newEP = (from + to) / 2
	}
	pos.PushEnPassant(newEP)

	newWhite, newBlack := pos.CastlingRights(position.White), pos.CastlingRights(position.Black)
	switch {
	case pt == position.King && us == position.White:
		newWhite = 0
	case pt == position.King && us == position.Black:
		newBlack = 0
	}
	newWhite, newBlack = revokeOnRookSquare(newWhite, newBlack, from)
	newWhite, newBlack = revokeOnRookSquare(newWhite, newBlack, to)
	pos.PushCastlingRights(position.White, newWhite)
	pos.PushCastlingRights(position.Black, newBlack)

	pos.SetSideToMove(them)
}

func revokeOnRookSquare(white, black position.CastleRights, sq int) (position.CastleRights, position.CastleRights) {
	switch sq {
	case whiteRookShort:
		white &^= position.CastleRights(position.Short)
	case whiteRookLong:
		white &^= position.CastleRights(position.Long)
	case blackRookShort:
		black &^= position.CastleRights(position.Short)
	case blackRookLong:
		black &^= position.CastleRights(position.Long)
	}
	return white, black
}

// UnmakeMove reverses the effect of MakeMove(pos, m). m must be the most
// recently made move not yet unmade (the usual make/recurse/unmake
// discipline); passing any other move corrupts pos's history stacks.
func (g *Generator) UnmakeMove(pos *position.Position, m Move) {
	them := pos.SideToMove()
	us := them.Other()

	pos.PopCastlingRights(position.Black)
	pos.PopCastlingRights(position.White)
	pos.PopEnPassant()

	from, to := m.From(), m.To()
	pt := m.MovedPieceType()

	switch m.Flag() {
	case FlagEnPassant:
		pos.RemovePiece(to)
		pos.AddPiece(us, pt, from)
		pos.AddPiece(them, position.Pawn, epCaptureSquare(us, to))
	case FlagCastleShort, FlagCastleLong:
		rFrom, rTo := castleRookSquares(us, m.Flag())
		pos.RemovePiece(rTo)
		pos.AddPiece(us, position.Rook, rFrom)
		pos.RemovePiece(to)
		pos.AddPiece(us, pt, from)
	default:
		pos.RemovePiece(to)
		pos.AddPiece(us, pt, from)
		if capType, ok := m.CapturedPieceType(); ok {
			pos.AddPiece(them, capType, to)
		}
	}

	pos.SetSideToMove(us)
}
