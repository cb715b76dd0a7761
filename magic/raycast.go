package magic

import "github.com/phaul/chess/bitboard"

// Piece is the slider kind a MagicDB table is built for.
type Piece int

const (
	Rook Piece = iota
	Bishop
)

// directions for each slider, as (file delta, rank delta) pairs. Rooks slide
// along ranks and files; bishops along diagonals.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func dirsFor(pt Piece) [4][2]int {
	if pt == Rook {
		return rookDirs
	}
	return bishopDirs
}

// rayCastAttacks brute-force casts four rays from sq, stopping (inclusive)
// at the first occupied square in each direction. This is the reference
// every magic table entry is checked against.
func rayCastAttacks(pt Piece, sq int, occ bitboard.Board) bitboard.Board {
	file, rank := sq%8, sq/8
	var attacks bitboard.Board
	for _, d := range dirsFor(pt) {
		f, r := file+d[0], rank+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			target := r*8 + f
			attacks = attacks.Set(target)
			if occ.Has(target) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// slidingMask computes the relevant-occupancy mask for sq: the reference
// ray-cast attack set on an empty board, with board edges stripped unless
// they lie on sq's own rank/file (an edge square can never itself block
// further travel along that ray, so it never needs to be distinguished by
// the magic index).
func slidingMask(pt Piece, sq int) bitboard.Board {
	file, rank := sq%8, sq/8
	full := rayCastAttacks(pt, sq, bitboard.Empty)

	var mask bitboard.Board
	for _, q := range full.Squares() {
		qf, qr := q%8, q/8
		rankEdge := qr == 0 || qr == 7
		fileEdge := qf == 0 || qf == 7
		keepRank := !rankEdge || qr == rank
		keepFile := !fileEdge || qf == file
		if keepRank && keepFile {
			mask = mask.Set(q)
		}
	}
	return mask
}
