// Package zobrist holds the process-wide random constants used to fold a
// Position into a single 64-bit hash. The tables are derived from a fixed
// seed so that two runs of the engine agree on the hash of any given
// position, which Searcher determinism and the transposition table both
// depend on.
package zobrist

import "math/rand"

// Square, Color and PieceType indices mirror the position package's own
// constants; zobrist does not import position to avoid a cycle, so callers
// pass plain ints.

const (
	numSquares    = 64
	numColors     = 2
	numPieceTypes = 6 // pawn..king, 1-indexed by caller; slot 0 unused
	numCastleMask = 16
	numEPFiles    = 8
)

// seed is fixed so zobrist keys are stable across runs.
const seed = 0xC0FFEE

// piece[color][pieceType][square], pieceType is 1..6 (slot 0 unused); the
// position package's PieceType is 0-based, so it passes its value plus one.
var piece [numColors][numPieceTypes + 1][numSquares]uint64

// side is XORed in when Black is to move (White contributes nothing, by
// convention, matching goosemg's own scheme).
var side uint64

// castle is indexed by the 4-bit combination of (black rights << 2 |
// white rights), each right pair using the Short=1,Long=2 bit encoding.
var castle [numCastleMask]uint64

// enPassant is indexed by file (0..7); enPassantNone covers "no ep square".
var enPassant [numEPFiles]uint64
var enPassantNone uint64

func init() {
	rnd := rand.New(rand.NewSource(seed))
	for c := 0; c < numColors; c++ {
		for pt := 1; pt <= numPieceTypes; pt++ {
			for sq := 0; sq < numSquares; sq++ {
				piece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	side = rnd.Uint64()
	for i := range castle {
		castle[i] = rnd.Uint64()
	}
	for i := range enPassant {
		enPassant[i] = rnd.Uint64()
	}
	enPassantNone = rnd.Uint64()
}

// Piece returns the key contributed by a piece of the given color and type
// (1..6) occupying sq (0..63).
func Piece(color, pieceType, sq int) uint64 { return piece[color][pieceType][sq] }

// Side returns the key contributed by Black being to move; White
// contributes the identity (no XOR).
func Side() uint64 { return side }

// Castle returns the key for a combined castling-rights nibble in
// [0,16): bits 0-1 are White's {Short,Long}, bits 2-3 are Black's.
func Castle(rights int) uint64 { return castle[rights&0xF] }

// EnPassant returns the key for an en-passant target on the given file
// (0..7).
func EnPassant(file int) uint64 { return enPassant[file&0x7] }

// EnPassantNone returns the key contributed when there is no current
// en-passant target. The fold always includes exactly one of EnPassant or
// EnPassantNone.
func EnPassantNone() uint64 { return enPassantNone }
