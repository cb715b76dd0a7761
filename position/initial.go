package position

// initialPlacement lists, for each occupied square in the standard starting
// position, its color and piece type. Square indices follow the a1=0,
// h8=63 convention used throughout this package.
var initialPlacement = []struct {
	sq int
	c  Color
	pt PieceType
}{
	{0, White, Rook}, {1, White, Knight}, {2, White, Bishop}, {3, White, Queen},
	{4, White, King}, {5, White, Bishop}, {6, White, Knight}, {7, White, Rook},
	{8, White, Pawn}, {9, White, Pawn}, {10, White, Pawn}, {11, White, Pawn},
	{12, White, Pawn}, {13, White, Pawn}, {14, White, Pawn}, {15, White, Pawn},

	{48, Black, Pawn}, {49, Black, Pawn}, {50, Black, Pawn}, {51, Black, Pawn},
	{52, Black, Pawn}, {53, Black, Pawn}, {54, Black, Pawn}, {55, Black, Pawn},
	{56, Black, Rook}, {57, Black, Knight}, {58, Black, Bishop}, {59, Black, Queen},
	{60, Black, King}, {61, Black, Bishop}, {62, Black, Knight}, {63, Black, Rook},
}

// NewInitial returns the standard chess starting position: White to move,
// both sides holding both castling rights, no en-passant target.
func NewInitial() *Position {
	p := New()
	for _, placement := range initialPlacement {
		p.AddPiece(placement.c, placement.pt, placement.sq)
	}
	p.PushCastlingRights(White, CastleRights(Short|Long))
	p.PushCastlingRights(Black, CastleRights(Short|Long))
	return p
}
