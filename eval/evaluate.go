// Package eval implements the Evaluator collaborator: evaluate(position)
// returning a centipawn score from White's perspective. It is grounded on
// Oliverans-GooseEngine/engine/evaluation.go's tapered material plus
// piece-square-table scheme, reduced to the material and placement terms
// (intentionally simpler than tournament strength); mobility, king
// safety, pawn structure and imbalance terms are not ported.
//
// Detecting checkmate and stalemate needs legal-move information this
// package deliberately does not have (MoveGen is a separate
// collaborator), so Evaluate never returns a mate or draw score on its
// own: the Searcher substitutes those terminal scores itself once
// MoveGen.AnyMove reports no legal moves, using MoveGen.InCheck to pick
// between them.
package eval

import "github.com/phaul/chess/position"

// Evaluator is stateless; a single value is safe to share across
// searches and goroutines.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Evaluate returns a centipawn score for pos from White's perspective:
// positive favors White, negative favors Black. It tapers between the
// midgame and endgame piece-square tables by the classical phase-weight
// interpolation (queens and rooks off the board pulls the score toward
// the endgame tables).
func (e *Evaluator) Evaluate(pos *position.Position) int {
	mg, eg, phase := 0, 0, 0

	for pt := position.Pawn; pt <= position.King; pt++ {
		whiteBB := pos.Bitboard(position.White, pt)
		for _, sq := range whiteBB.Squares() {
			mg += materialMG[pt] + psqtMG[pt][sq]
			eg += materialEG[pt] + psqtEG[pt][sq]
			phase += phaseWeight[pt]
		}
		blackBB := pos.Bitboard(position.Black, pt)
		for _, sq := range blackBB.Squares() {
			mirrored := mirrorSquare(sq)
			mg -= materialMG[pt] + psqtMG[pt][mirrored]
			eg -= materialEG[pt] + psqtEG[pt][mirrored]
			phase += phaseWeight[pt]
		}
	}

	if phase > totalPhase {
		phase = totalPhase
	}
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}

// mirrorSquare flips a square vertically (rank r -> rank 7-r, file
// unchanged), so a piece-square table written from White's point of view
// can be reused for Black.
func mirrorSquare(sq int) int {
	return sq ^ 0x38
}
