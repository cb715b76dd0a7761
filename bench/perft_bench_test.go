package bench

import (
	"testing"

	"github.com/phaul/chess/fen"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/movegen"
)

func benchPerft(b *testing.B, fenStr string, depth int) {
	pos, err := fen.Decode(fenStr)
	if err != nil {
		b.Fatalf("fen.Decode: %v", err)
	}
	g := movegen.New(magic.NewDB())

	var walk func(depth int) uint64
	walk = func(depth int) uint64 {
		if depth == 0 {
			return 1
		}
		var nodes uint64
		for _, m := range g.Moves(pos) {
			g.MakeMove(pos, m)
			nodes += walk(depth - 1)
			g.UnmakeMove(pos, m)
		}
		return nodes
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = walk(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, fen.StartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	kiwipete := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchPerft(b, kiwipete, 3)
}
