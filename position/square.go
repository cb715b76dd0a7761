package position

// File and Rank decompose a 0..63 square index into its 0..7 file (a..h)
// and 0..7 rank (1..8).
func File(sq int) int { return sq % 8 }
func Rank(sq int) int { return sq / 8 }

// SquareAt composes a file and rank back into a square index.
func SquareAt(file, rank int) int { return rank*8 + file }
