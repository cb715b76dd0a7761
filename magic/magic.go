// Package magic implements a precomputed sliding-piece attack database: a
// perfect-hash scheme that maps (square, occupancy ∩ mask) to a
// precomputed attack bitboard via one 64-bit multiply, one shift, and one
// indexed load.
//
// Table construction runs once, offline (conventionally at process
// startup, via Build), using a reproducible PRNG seeded at a fixed
// constant so the discovered magic numbers — and therefore the resulting
// DB — are identical across runs and machines. This mirrors
// csgarlock-Ghobos/src/Magic.go's rejection-sampling search, generalized
// to both piece kinds and packed into one flat array per piece type
// instead of Ghobos's two fixed-size globals.
package magic

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/phaul/chess/bitboard"
)

// Seed is the fixed PRNG seed so magic numbers are reproducible across
// runs.
const Seed = 0

// entry holds the per-square magic parameters plus that square's offset
// into the owning DB's flat attack table.
type entry struct {
	mask    bitboard.Board
	magic   uint64
	shift   uint
	spanBase int
}

// DB is the attack database for one slider piece kind (Rook or Bishop). It
// is immutable after Build and safe to share across concurrent readers —
// the core never mutates it once the engine has started.
type DB struct {
	piece   Piece
	entries [64]entry
	dat     []bitboard.Board
}

// Attacks returns the sliding-attack bitboard for a piece of this DB's kind
// standing on sq, given the full-board occupancy occ. Runtime cost is
// exactly one mask-AND, one 64-bit multiply, one shift, one add and one
// indexed load. magicIndex is provably in
// [spanBase, spanBase+2^popcount(mask)) for every occupancy, so every
// lookup this function performs is in range.
func (db *DB) Attacks(sq int, occ bitboard.Board) bitboard.Board {
	e := &db.entries[sq]
	idx := magicIndex(e, occ)
	return db.dat[idx]
}

func magicIndex(e *entry, occ bitboard.Board) int {
	relevant := uint64(e.mask.Intersect(occ))
	return e.spanBase + int((relevant*e.magic)>>e.shift)
}

// Build constructs the attack database for pt by running the magic-number
// search (magicFor) for every square, packing the results into one
// "fancy"-layout flat array with exclusive-prefix-sum offsets. It fails
// fast (panics) if the search cannot find a magic number for some square,
// which should never happen with this seeding for standard 8x8 rook/bishop
// tables.
func Build(pt Piece) *DB {
	db := &DB{piece: pt}
	rng := rand.New(rand.NewSource(Seed))

	base := 0
	for sq := 0; sq < 64; sq++ {
		mask := slidingMask(pt, sq)
		bitsInMask := mask.Count()
		shift := uint(64 - bitsInMask)
		span := 1 << bitsInMask

		reference := referenceAttacks(pt, sq, mask)
		magicNum, table, ok := findMagic(rng, mask, shift, reference)
		if !ok {
			panic(fmt.Sprintf("magic: failed to find a magic number for %v square %d", pt, sq))
		}

		db.entries[sq] = entry{mask: mask, magic: magicNum, shift: shift, spanBase: base}
		db.dat = append(db.dat, table...)
		base += span
	}
	return db
}

// referenceAttacks enumerates every occupancy subset of mask (the
// carry-rippler technique, which visits subsets in increasing numeric
// order) and computes its ray-cast attack set. Index i of the returned
// slice corresponds to the i-th subset carry-rippler visits, which is
// also the PEXT-style dense index — but NOT the magic index; findMagic
// enumerates the subsets in the same order and pairs the i-th one with
// reference[i] when it fills the magic-indexed table.
func referenceAttacks(pt Piece, sq int, mask bitboard.Board) []bitboard.Board {
	n := 1 << mask.Count()
	out := make([]bitboard.Board, n)
	i := 0
	var subset bitboard.Board
	for {
		out[i] = rayCastAttacks(pt, sq, subset)
		i++
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}
	return out
}

// findMagic performs a rejection-sampling search: draw a sparse random
// candidate (bitwise AND of three uniform randoms,
// which biases the candidate toward few set bits — multiplying by a
// sparse magic tends to produce better-distributed high bits) until
// popcount((candidate*mask)>>56) >= 6, then verify the resulting index
// function is injective over every occupancy subset of mask and agrees
// with the ray-cast reference on each. It returns the first candidate
// that verifies cleanly, walking the same rng forward otherwise.
func findMagic(rng *rand.Rand, mask bitboard.Board, shift uint, reference []bitboard.Board) (uint64, []bitboard.Board, bool) {
	span := 1 << mask.Count()
	occupancies := make([]bitboard.Board, 0, span)
	{
		var subset bitboard.Board
		for {
			occupancies = append(occupancies, subset)
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
	}

	const maxAttempts = 100_000_000
	table := make([]bitboard.Board, span)
	used := make([]bool, span)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := rng.Uint64() & rng.Uint64() & rng.Uint64()
		if bits.OnesCount64((candidate*uint64(mask))>>56) < 6 {
			continue
		}

		for i := range used {
			used[i] = false
		}
		ok := true
		for i, occ := range occupancies {
			relevant := uint64(occ.Intersect(mask))
			idx := int((relevant * candidate) >> shift)
			if used[idx] && table[idx] != reference[i] {
				ok = false
				break
			}
			used[idx] = true
			table[idx] = reference[i]
		}
		if ok {
			result := make([]bitboard.Board, span)
			copy(result, table)
			return candidate, result, true
		}
	}
	return 0, nil, false
}
