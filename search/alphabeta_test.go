package search

import (
	"testing"

	"github.com/phaul/chess/fen"
	"github.com/phaul/chess/position"
)

// referenceQuiescence is an independent, TT-free restatement of
// quiescence: same forcing-move extension, same stand-pat cutoff, but
// with no transposition-table lookup or insert, so it cannot share a bug
// (or a cache entry) with the package's own quiescence.
func (s *Searcher) referenceQuiescence(alpha, beta, colorSign int) Result {
	s.nodes++
	standPat := colorSign * s.eval.Evaluate(s.pos)
	if standPat >= beta {
		return Result{Score: standPat}
	}

	alphaPrime := alpha
	if standPat > alphaPrime {
		alphaPrime = standPat
	}

	best := Result{Score: alphaPrime}
	for _, m := range s.gen.ForcingMoves(s.pos) {
		s.gen.MakeMove(s.pos, m)
		child := s.referenceQuiescence(-beta, -alphaPrime, -colorSign).Negate().Prepend(m)
		s.gen.UnmakeMove(s.pos, m)

		if child.Score >= beta {
			return child
		}
		if child.Score > best.Score {
			best = child
			alphaPrime = child.Score
		}
	}
	return best
}

// referenceAlphaBeta is a plain alpha-beta search, fail-soft on a beta
// cutoff and returning alpha when no move improves on it: full window
// on every move, no null-window scout, no transposition table, no killer
// ordering. It shares only terminalResult (a pure function of the
// position, touching no cache) and the MoveGen/Evaluator collaborators
// with negascout, so it is a genuinely independent way to compute the
// same minimax value negascout's PVS is supposed to agree with.
func (s *Searcher) referenceAlphaBeta(maxDepth, depthRemaining, alpha, beta, colorSign int) Result {
	ply := maxDepth - depthRemaining

	if !s.gen.AnyMove(s.pos) {
		s.nodes++
		return s.terminalResult(ply)
	}
	if depthRemaining == 0 {
		return s.referenceQuiescence(alpha, beta, colorSign)
	}

	best := Result{Score: alpha}
	for _, m := range s.gen.Moves(s.pos) {
		s.gen.MakeMove(s.pos, m)
		child := s.referenceAlphaBeta(maxDepth, depthRemaining-1, -beta, -best.Score, -colorSign).Negate().Prepend(m)
		s.gen.UnmakeMove(s.pos, m)

		if child.Score >= beta {
			return child
		}
		if child.Score > best.Score {
			best = child
		}
	}
	return best
}

// referenceAlphaBetaSearch runs referenceAlphaBeta from the root with a
// full (-MaxScore, MaxScore) window, the same window Search seeds
// negascout with.
func (s *Searcher) referenceAlphaBetaSearch(depth int) Result {
	colorSign := 1
	if s.pos.SideToMove() == position.Black {
		colorSign = -1
	}
	return s.referenceAlphaBeta(depth, depth, -MaxScore, MaxScore, colorSign)
}

func TestNegascoutMatchesPlainAlphaBeta(t *testing.T) {
	positions := []struct {
		fen   string
		depth int
	}{
		{fen.StartPos, 2},
		{fen.StartPos, 3},
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", 3},
		{"6k1/5ppp/8/8/8/8/5PPP/R6K w - - 0 1", 2},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
	}

	for _, tc := range positions {
		pvsSearcher := newSearcher()
		pvsSearcher.SetPosition(mustDecode(t, tc.fen))
		pvsScore := pvsSearcher.Search(tc.depth).Score

		abSearcher := newSearcher()
		abSearcher.SetPosition(mustDecode(t, tc.fen))
		abScore := abSearcher.referenceAlphaBetaSearch(tc.depth).Score

		if pvsScore != abScore {
			t.Fatalf("%s depth %d: negascout score %d, plain alpha-beta score %d", tc.fen, tc.depth, pvsScore, abScore)
		}
	}
}
