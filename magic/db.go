package magic

import "github.com/phaul/chess/bitboard"

// MagicDB bundles the rook and bishop attack tables that MoveGen consults
// for every sliding-piece move. It is built once at startup (NewDB) and is
// thereafter immutable and safe to share across the whole process.
type MagicDB struct {
	rook   *DB
	bishop *DB
}

// NewDB builds both tables. This does real work (two 64-square magic
// searches) and is intended to run exactly once per process.
func NewDB() *MagicDB {
	return &MagicDB{
		rook:   Build(Rook),
		bishop: Build(Bishop),
	}
}

// Attacks returns the attack bitboard for a slider of kind pt standing on
// sq given the full-board occupancy occ.
func (db *MagicDB) Attacks(pt Piece, sq int, occ bitboard.Board) bitboard.Board {
	if pt == Rook {
		return db.rook.Attacks(sq, occ)
	}
	return db.bishop.Attacks(sq, occ)
}

// Mask exposes the relevant-occupancy mask for a square, mostly useful to
// MoveGen and to tests that want to enumerate exactly the occupancies that
// matter for a given square.
func (db *MagicDB) Mask(pt Piece, sq int) bitboard.Board {
	if pt == Rook {
		return db.rook.entries[sq].mask
	}
	return db.bishop.entries[sq].mask
}
