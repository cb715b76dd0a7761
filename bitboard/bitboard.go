// Package bitboard implements the 64-bit occupancy set used throughout the
// engine: one bit per board square, LSB (bit 0) is a1 and bit 63 is h8.
package bitboard

import "math/bits"

// Board is a set of the 64 board squares packed into a single machine word.
type Board uint64

// Empty is the additive identity: the set containing no squares.
const Empty Board = 0

// Full is the set containing every square.
const Full Board = ^Board(0)

// FromSquare returns the singleton set containing sq.
func FromSquare(sq int) Board {
	return Board(1) << uint(sq)
}

// Union returns the set union (OR) of b and other.
func (b Board) Union(other Board) Board { return b | other }

// Intersect returns the set intersection (AND) of b and other.
func (b Board) Intersect(other Board) Board { return b & other }

// Complement returns the set of squares not in b.
func (b Board) Complement() Board { return ^b }

// Without returns b with every square in other removed.
func (b Board) Without(other Board) Board { return b &^ other }

// Has reports whether sq is a member of b.
func (b Board) Has(sq int) bool { return b&FromSquare(sq) != 0 }

// Set returns b with sq added.
func (b Board) Set(sq int) Board { return b | FromSquare(sq) }

// Clear returns b with sq removed.
func (b Board) Clear(sq int) Board { return b &^ FromSquare(sq) }

// Count returns the population count (number of member squares).
func (b Board) Count() int { return bits.OnesCount64(uint64(b)) }

// IsEmpty reports whether b has no member squares.
func (b Board) IsEmpty() bool { return b == Empty }

// LSB returns the lowest-indexed member square, or -1 if b is empty.
func (b Board) LSB() int {
	if b == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(b))
}

// PopLSB returns the lowest-indexed member square and a copy of b with that
// square removed. Calling PopLSB on Empty returns (-1, Empty).
func (b Board) PopLSB() (sq int, rest Board) {
	sq = b.LSB()
	if sq < 0 {
		return -1, b
	}
	return sq, b & (b - 1)
}

// ShiftLeft returns b with every member square's index increased by n,
// discarding any bits that would overflow past square 63.
func (b Board) ShiftLeft(n uint) Board { return b << n }

// ShiftRight returns b with every member square's index decreased by n,
// discarding any bits that would underflow past square 0.
func (b Board) ShiftRight(n uint) Board { return b >> n }

// Squares returns the member squares of b in increasing order. Intended for
// tests and diagnostics; hot paths should use PopLSB directly.
func (b Board) Squares() []int {
	sqs := make([]int, 0, b.Count())
	for b != Empty {
		var sq int
		sq, b = b.PopLSB()
		sqs = append(sqs, sq)
	}
	return sqs
}
