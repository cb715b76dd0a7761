// Package search implements a negascout/PVS alpha-beta search with
// iterative deepening, quiescence, transposition-table and killer-move
// integration, grounded on
// Oliverans-GooseEngine/engine/search.go's alphabeta/searchMoveWithPVS
// structure and on engine/transposition.go and engine/killer.go for the
// supporting tables.
package search

import (
	"strings"

	"github.com/phaul/chess/movegen"
)

// Result aggregates a centipawn score with the principal variation that
// produced it, plus the composition operators the negascout recursion
// threads results through.
type Result struct {
	Score     int
	Variation []movegen.Move
}

// Negate flips the score, keeping the variation, for the classic
// negamax sign flip across a ply boundary.
func (r Result) Negate() Result {
	return Result{Score: -r.Score, Variation: r.Variation}
}

// Prepend returns r with m inserted at the front of the variation,
// without mutating r's backing slice.
func (r Result) Prepend(m movegen.Move) Result {
	v := make([]movegen.Move, len(r.Variation)+1)
	v[0] = m
	copy(v[1:], r.Variation)
	return Result{Score: r.Score, Variation: v}
}

// First returns the first move of the variation, if any.
func (r Result) First() (movegen.Move, bool) {
	if len(r.Variation) == 0 {
		return 0, false
	}
	return r.Variation[0], true
}

// PV renders the variation as space-joined coordinate moves, the format
// the root info line uses.
func (r Result) PV() string {
	parts := make([]string, len(r.Variation))
	for i, m := range r.Variation {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
