// perft is a standalone move-count benchmark for the movegen package,
// grounded on Oliverans-GooseEngine/cmd/perft/main.go's flag surface and
// divide/timing/profiling output, reworked against fen.Decode and
// movegen.Generator instead of goosemg's board.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/slices"

	"github.com/phaul/chess/fen"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/movegen"
	"github.com/phaul/chess/position"
)

func perft(g *movegen.Generator, pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range g.Moves(pos) {
		g.MakeMove(pos, m)
		nodes += perft(g, pos, depth-1)
		g.UnmakeMove(pos, m)
	}
	return nodes
}

func perftDivide(g *movegen.Generator, pos *position.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, m := range g.Moves(pos) {
		g.MakeMove(pos, m)
		out[m.String()] = perft(g, pos, depth-1)
		g.UnmakeMove(pos, m)
	}
	return out
}

func main() {
	fenStr := flag.String("fen", fen.StartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := fen.Decode(*fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fen.Decode error: %v\n", err)
		os.Exit(2)
	}
	g := movegen.New(magic.NewDB())

	if *divide {
		div := perftDivide(g, pos, *depth)
		type kv struct {
			move  string
			nodes uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		slices.SortFunc(arr, func(a, b kv) bool { return a.move < b.move })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.nodes)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft(g, pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
