package position

import "testing"

func TestInitialPositionInvariants(t *testing.T) {
	p := NewInitial()
	if !p.Validate() {
		t.Fatal("initial position fails Validate()")
	}
	if p.SideToMove() != White {
		t.Fatalf("SideToMove() = %v, want White", p.SideToMove())
	}
	if p.CastlingRights(White) != CastleRights(Short|Long) {
		t.Fatalf("white castling rights = %v", p.CastlingRights(White))
	}
	if sq, ok := p.EnPassantSquare(); ok {
		t.Fatalf("initial position should have no ep square, got %d", sq)
	}
	// Disjointness: the six type boards pairwise disjoint, union == color union.
	var union, typeUnion uint64
	for pt := Pawn; pt < numPieceTypes; pt++ {
		b := p.PieceBitboard(pt)
		if union&uint64(b) != 0 {
			t.Fatalf("type boards overlap at piece type %d", pt)
		}
		typeUnion |= uint64(b)
		union |= uint64(b)
	}
	colorUnion := uint64(p.ColorBitboard(White)) | uint64(p.ColorBitboard(Black))
	if typeUnion != colorUnion {
		t.Fatalf("type union %x != color union %x", typeUnion, colorUnion)
	}
}

func TestAddRemovePieceUpdatesHash(t *testing.T) {
	p := New()
	before := p.Hash()
	p.AddPiece(White, Pawn, 12)
	afterAdd := p.Hash()
	if afterAdd == before {
		t.Fatal("AddPiece did not change the hash")
	}
	p.RemovePiece(12)
	if p.Hash() != before {
		t.Fatalf("RemovePiece did not restore the hash: got %x want %x", p.Hash(), before)
	}
}

func TestStackDisciplineRestoresHash(t *testing.T) {
	p := NewInitial()
	h0 := p.Hash()

	p.PushEnPassant(20)
	p.PushCastlingRights(White, CastleRights(Long))
	p.SetSideToMove(Black)

	if p.Hash() == h0 {
		t.Fatal("hash should have changed after pushing state")
	}

	p.SetSideToMove(White)
	p.PopCastlingRights(White)
	p.PopEnPassant()

	if p.Hash() != h0 {
		t.Fatalf("hash after pop sequence = %x, want %x", p.Hash(), h0)
	}
}

func TestEqualityIgnoresStackTails(t *testing.T) {
	a := NewInitial()
	b := NewInitial()
	if !a.Equal(b) {
		t.Fatal("two freshly built initial positions should be equal")
	}

	// Push and pop an entry on 'a' only; the tail differs, the top does not.
	a.PushEnPassant(NoSquare)
	a.PopEnPassant()

	if !a.Equal(b) {
		t.Fatal("equality must only consider stack tops, not history length")
	}
}
