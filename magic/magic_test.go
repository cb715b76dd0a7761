package magic

import "testing"

import "github.com/phaul/chess/bitboard"

// TestMagicDBCorrectness checks that for every piece type, every square,
// and every occupancy subset of the square's mask, the magic lookup
// equals the ray-cast reference.
func TestMagicDBCorrectness(t *testing.T) {
	for _, pt := range []Piece{Rook, Bishop} {
		db := Build(pt)
		for sq := 0; sq < 64; sq++ {
			mask := db.entries[sq].mask
			var subset bitboard.Board
			for {
				want := rayCastAttacks(pt, sq, subset)
				got := db.Attacks(sq, subset)
				if got != want {
					t.Fatalf("%v sq=%d occ=%v: got %v want %v", pt, sq, subset, got, want)
				}
				subset = (subset - mask) & mask
				if subset == 0 {
					break
				}
			}
		}
	}
}

// TestEmptyBoardSymmetry checks magic lookups against an empty board.
func TestEmptyBoardSymmetry(t *testing.T) {
	for _, pt := range []Piece{Rook, Bishop} {
		db := Build(pt)
		for sq := 0; sq < 64; sq++ {
			want := rayCastAttacks(pt, sq, bitboard.Empty)
			got := db.Attacks(sq, bitboard.Empty)
			if got != want {
				t.Fatalf("%v sq=%d: empty-board attacks got %v want %v", pt, sq, got, want)
			}
		}
	}
}

// TestRookA1KnownAttackSet checks a hand-derived rook attack set against
// two blockers.
func TestRookA1KnownAttackSet(t *testing.T) {
	db := Build(Rook)
	occ := bitboard.FromSquare(24 /* a4 */).Union(bitboard.FromSquare(3 /* d1 */))
	got := db.Attacks(0 /* a1 */, occ)

	want := bitboard.FromSquare(8 /* a2 */).
		Union(bitboard.FromSquare(16 /* a3 */)).
		Union(bitboard.FromSquare(24 /* a4 */)).
		Union(bitboard.FromSquare(1 /* b1 */)).
		Union(bitboard.FromSquare(2 /* c1 */)).
		Union(bitboard.FromSquare(3 /* d1 */))

	if got != want {
		t.Fatalf("rook a1 attacks with blockers a4,d1 = %v, want %v", got, want)
	}
}

func TestMagicDBCombinedLookup(t *testing.T) {
	db := NewDB()
	occ := bitboard.FromSquare(24).Union(bitboard.FromSquare(3))
	if got := db.Attacks(Rook, 0, occ); got.Count() != 6 {
		t.Fatalf("combined DB rook lookup wrong: %v", got)
	}
}
