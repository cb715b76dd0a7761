package bench

import (
	"testing"

	"github.com/phaul/chess/fen"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/movegen"
)

func benchGenerateMoves(b *testing.B, fenStr string) {
	pos, err := fen.Decode(fenStr)
	if err != nil {
		b.Fatalf("fen.Decode: %v", err)
	}
	g := movegen.New(magic.NewDB())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Moves(pos)
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, fen.StartPos)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchGenerateMoves(b, kiwipete)
}

func BenchmarkGenerateMoves_Pos6(b *testing.B) {
	pos6 := "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
	benchGenerateMoves(b, pos6)
}

func benchForcingMoves(b *testing.B, fenStr string) {
	pos, err := fen.Decode(fenStr)
	if err != nil {
		b.Fatalf("fen.Decode: %v", err)
	}
	g := movegen.New(magic.NewDB())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ForcingMoves(pos)
	}
}

func BenchmarkGenerateForcingMoves_EP(b *testing.B) {
	benchForcingMoves(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkMakeUnmake_AllMoves_Initial(b *testing.B) {
	pos, err := fen.Decode(fen.StartPos)
	if err != nil {
		b.Fatalf("fen.Decode: %v", err)
	}
	g := movegen.New(magic.NewDB())
	moves := g.Moves(pos)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			g.MakeMove(pos, m)
			g.UnmakeMove(pos, m)
		}
	}
}
