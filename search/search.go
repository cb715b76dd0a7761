package search

import (
	"fmt"

	"github.com/phaul/chess/eval"
	"github.com/phaul/chess/movegen"
	"github.com/phaul/chess/position"
)

// MaxScore and DrawScore are the sentinel score values: the root window is
// (-MaxScore, +MaxScore), and an int leaves room for both -beta and
// -alpha-1 without overflowing. A side that is mated scores
// -(MaxScore - ply) (see terminalResult), so mate scores lie just inside
// the window, not inside (-MaxScore/2, +MaxScore/2); for any ply below
// MaxPly their magnitude is above MateThreshold. Grounded on
// engine/search.go's MaxScore=32500/Checkmate=20000/DrawScore=0 constants.
const (
	MaxScore      = 32500
	MateThreshold = 20000
	DrawScore     = 0
)

// Searcher owns one search's state (position, tt, killers, node
// counters) and drives negascout/quiescence against the MoveGen and
// Evaluator collaborators. A Searcher is not safe for concurrent use; the
// core is single-threaded by design.
type Searcher struct {
	gen  *movegen.Generator
	eval *eval.Evaluator
	tt   *TransPosTable
	kill *KillerTable
	sink InfoSink

	pos   *position.Position
	nodes int
}

// NewSearcher wires a Searcher to its collaborators and an info sink.
func NewSearcher(gen *movegen.Generator, evaluator *eval.Evaluator, sink InfoSink) *Searcher {
	return &Searcher{
		gen:  gen,
		eval: evaluator,
		tt:   NewTransPosTable(DefaultTTCapacity),
		kill: NewKillerTable(),
		sink: sink,
	}
}

// SetPosition installs pos as the position future Search calls explore
// from. The Searcher takes ownership of mutating it in place via
// makeMove/unmakeMove during search and restores it exactly before
// returning.
func (s *Searcher) SetPosition(pos *position.Position) {
	s.pos = pos
}

// Search performs iterative deepening from depth 1 to maxDepth, returning
// the final iteration's result. Each iteration seeds the killer table
// from its own principal variation before the next iteration starts.
func (s *Searcher) Search(maxDepth int) Result {
	if maxDepth > MaxPly {
		panic(fmt.Sprintf("search: maxDepth %d exceeds MaxPly %d", maxDepth, MaxPly))
	}

	colorSign := 1
	if s.pos.SideToMove() == position.Black {
		colorSign = -1
	}

	var result Result
	for d := 1; d <= maxDepth; d++ {
		s.nodes = 0
		s.sink.Depth(d)
		result = s.negascout(d, d, -MaxScore, MaxScore, colorSign)
		s.kill.InsertPVInKiller(result.Variation)
	}
	return result
}

// negascout is the principal-variation search over (maxDepth,
// depthRemaining, alpha, beta, colorSign), with its transposition-table
// consultation inlined rather than factored into a separate higher-order
// wrapper — Go has no convenient way to thread "continue with a
// possibly-adjusted alpha/beta/hint" through a wrapper without the
// wrapper becoming this function's body anyway.
func (s *Searcher) negascout(maxDepth, depthRemaining, alpha, beta, colorSign int) Result {
	ply := maxDepth - depthRemaining
	if ply >= MaxPly {
		panic(fmt.Sprintf("search: recursion exceeded MaxPly (%d)", MaxPly))
	}

	var hint movegen.Move
	hasHint := false

	lr := s.tt.Lookup(s.pos, depthRemaining)
	switch lr.Outcome {
	case Hit:
		switch lr.Kind {
		case Exact:
			return lr.Result
		case LowerBound:
			if lr.Result.Score > alpha {
				alpha = lr.Result.Score
			}
			if alpha >= beta {
				return Result{Score: alpha}
			}
			hint, hasHint = lr.Result.First()
		case UpperBound:
			if lr.Result.Score < beta {
				beta = lr.Result.Score
			}
			if alpha >= beta {
				return Result{Score: alpha}
			}
			hint, hasHint = lr.Result.First()
		}
	case Shallow:
		hint, hasHint = lr.Hint, lr.HasHint
	case Miss:
	}

	if !s.gen.AnyMove(s.pos) {
		s.nodes++
		return s.terminalResult(ply)
	}

	if depthRemaining == 0 {
		return s.quiescence(alpha, beta, colorSign)
	}

	moves := s.gen.Moves(s.pos)
	moves = prependHint(moves, hint, hasHint)
	moves = s.kill.KillerOrdered(ply, moves)

	reportInfo := depthRemaining == maxDepth
	result, kind := s.iterateMoves(moves, maxDepth, depthRemaining, alpha, beta, colorSign, reportInfo)

	if kind == LowerBound {
		if m, ok := result.First(); ok && !m.IsCapture() {
			s.kill.InsertKiller(ply, m)
		}
	}
	s.tt.Insert(s.pos, depthRemaining, kind, result)
	return result
}

// terminalResult computes colorSign·evaluate(position) for a position
// with no legal moves. Evaluator cannot detect this on its own (it has no
// MoveGen access, see eval.Evaluate's doc comment), so the Searcher
// substitutes the mate/stalemate sentinel directly; this is algebraically
// the same value colorSign·evaluate(position) would be (colorSign is its
// own inverse), expressed without the detour through a White-relative
// score and back.
func (s *Searcher) terminalResult(ply int) Result {
	if s.gen.InCheck(s.pos, s.pos.SideToMove()) {
		return Result{Score: -(MaxScore - ply)}
	}
	return Result{Score: DrawScore}
}

func prependHint(moves []movegen.Move, hint movegen.Move, has bool) []movegen.Move {
	if !has {
		return moves
	}
	for _, m := range moves {
		if m == hint {
			out := make([]movegen.Move, 0, len(moves))
			out = append(out, hint)
			for _, m2 := range moves {
				if m2 != hint {
					out = append(out, m2)
				}
			}
			return out
		}
	}
	return moves
}

// iterateMoves runs the PVS move loop: for each candidate move it
// searches with a null window (a full window for the first move),
// re-searching on a window fail, and tracks the best result seen so far,
// returning early on a beta cutoff.
func (s *Searcher) iterateMoves(moves []movegen.Move, maxDepth, depthRemaining, alpha, beta, colorSign int, reportInfo bool) (Result, EntryKind) {
	best := Result{Score: alpha}
	kind := UpperBound

	for i, m := range moves {
		child := s.searchMove(m, i == 0, maxDepth, depthRemaining, best.Score, alpha, beta, colorSign)

		if reportInfo {
			s.sink.RootMove(s.tt.HitRatio(), s.nodes/1000, child.PV(), m.String())
		}

		if child.Score >= beta {
			return Result{Score: beta, Variation: []movegen.Move{m}}, LowerBound
		}
		if child.Score > best.Score {
			best = child
			kind = Exact
		}
	}
	return best, kind
}

// searchMove applies m, runs the PVS-scheduled recursive search, and
// restores the position before returning — grounded on
// engine/search.go's applyMoveWithState/searchMoveWithPVS pattern.
func (s *Searcher) searchMove(m movegen.Move, isFirst bool, maxDepth, depthRemaining, runningAlpha, windowAlpha, beta, colorSign int) Result {
	s.gen.MakeMove(s.pos, m)
	defer s.gen.UnmakeMove(s.pos, m)

	var child Result
	if isFirst {
		child = s.negascout(maxDepth, depthRemaining-1, -beta, -windowAlpha, -colorSign).Negate()
	} else {
		child = s.negascout(maxDepth, depthRemaining-1, -runningAlpha-1, -runningAlpha, -colorSign).Negate()
		if runningAlpha < child.Score && child.Score < beta {
			child = s.negascout(maxDepth, depthRemaining-1, -beta, -runningAlpha, -colorSign).Negate()
		}
	}
	return child.Prepend(m)
}

// quiescence is a restricted search over (alpha, beta, colorSign) that
// extends only forcing moves past the nominal horizon, with no
// killer-move use and no further depth decrement (it recurses on itself
// until forcingMoves is exhausted). It consults the same transposition
// table negascout uses, keyed at depth 0; unlike negascout it does not
// narrow alpha/beta from a LowerBound or UpperBound hit, only
// short-circuits on an Exact hit and otherwise takes a move-ordering
// hint, since quiescence windows are already tight enough that the extra
// bookkeeping buys little.
func (s *Searcher) quiescence(alpha, beta, colorSign int) Result {
	var hint movegen.Move
	hasHint := false
	lr := s.tt.Lookup(s.pos, 0)
	switch lr.Outcome {
	case Hit:
		if lr.Kind == Exact {
			return lr.Result
		}
		hint, hasHint = lr.Result.First()
	case Shallow:
		hint, hasHint = lr.Hint, lr.HasHint
	}

	s.nodes++
	standPat := colorSign * s.eval.Evaluate(s.pos)

	if standPat >= beta {
		s.tt.Insert(s.pos, 0, LowerBound, Result{Score: beta})
		return Result{Score: beta}
	}

	alphaPrime := alpha
	if standPat > alphaPrime {
		alphaPrime = standPat
	}

	moves := prependHint(s.gen.ForcingMoves(s.pos), hint, hasHint)

	best := Result{Score: alphaPrime}
	kind := UpperBound
	for _, m := range moves {
		s.gen.MakeMove(s.pos, m)
		child := s.quiescence(-beta, -alphaPrime, -colorSign).Negate().Prepend(m)
		s.gen.UnmakeMove(s.pos, m)

		if child.Score >= beta {
			s.tt.Insert(s.pos, 0, LowerBound, Result{Score: beta, Variation: child.Variation})
			return Result{Score: beta, Variation: child.Variation}
		}
		if child.Score > best.Score {
			best = child
			alphaPrime = child.Score
			kind = Exact
		}
	}
	s.tt.Insert(s.pos, 0, kind, best)
	return best
}
