package fen

import (
	"testing"

	"github.com/phaul/chess/position"
)

func TestDecodeStartPosMatchesNewInitial(t *testing.T) {
	got, err := Decode(StartPos)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := position.NewInitial()
	if !got.Equal(want) {
		t.Fatalf("decoded start position does not equal NewInitial()")
	}
	if !got.Validate() {
		t.Fatalf("decoded start position fails Validate")
	}
}

func TestDecodeEnPassantSquare(t *testing.T) {
	pos, err := Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sq, ok := pos.EnPassantSquare()
	if !ok || sq != 43 { // d6
		t.Fatalf("EnPassantSquare() = (%d, %v), want (43, true)", sq, ok)
	}
}

func TestDecodeCastlingRightsSubset(t *testing.T) {
	pos, err := Decode("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !pos.CastlingRights(position.White).Has(position.Short) {
		t.Fatalf("expected White short castling right")
	}
	if pos.CastlingRights(position.White).Has(position.Long) {
		t.Fatalf("did not expect White long castling right")
	}
	if !pos.CastlingRights(position.Black).Has(position.Long) {
		t.Fatalf("expected Black long castling right")
	}
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}
	for _, c := range cases {
		if _, err := Decode(c); err == nil {
			t.Fatalf("Decode(%q): expected error, got none", c)
		}
	}
}
