package movegen

import "github.com/phaul/chess/bitboard"

// knightAttacks, kingAttacks and pawnAttacks are precomputed once at
// package init, mirroring goosemg/movegen.go's jump-table approach for the
// non-sliding pieces (sliders go through magic.MagicDB instead).
var (
	knightAttacks [64]bitboard.Board
	kingAttacks   [64]bitboard.Board
	pawnAttacks   [2][64]bitboard.Board
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		for _, d := range knightDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				knightAttacks[sq] = knightAttacks[sq].Set(r*8 + f)
			}
		}
		for _, d := range kingDeltas {
			f, r := file+d[0], rank+d[1]
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				kingAttacks[sq] = kingAttacks[sq].Set(r*8 + f)
			}
		}
		for _, df := range []int{-1, 1} {
			f, r := file+df, rank+1
			if f >= 0 && f < 8 && r < 8 {
				pawnAttacks[0][sq] = pawnAttacks[0][sq].Set(r*8 + f)
			}
			f, r = file+df, rank-1
			if f >= 0 && f < 8 && r >= 0 {
				pawnAttacks[1][sq] = pawnAttacks[1][sq].Set(r*8 + f)
			}
		}
	}
}
