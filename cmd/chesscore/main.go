// chesscore is the line-oriented REPL front-end (the EngineFrontend
// collaborator): it owns a SearchState, reads commands from stdin, and
// prints the Searcher's informational output to stdout. The loop
// structure is grounded on Oliverans-GooseEngine/cmd/uci/main.go's
// bufio.Scanner dispatch, reworked around this module's own fromFEN,
// MoveGen and Searcher instead of UCI.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/phaul/chess/eval"
	"github.com/phaul/chess/fen"
	"github.com/phaul/chess/magic"
	"github.com/phaul/chess/movegen"
	"github.com/phaul/chess/position"
	"github.com/phaul/chess/search"
)

// state is the SearchState the EngineFrontend contract names: a position
// plus the collaborators and Searcher built around it.
type state struct {
	pos      *position.Position
	gen      *movegen.Generator
	searcher *search.Searcher
}

func makeSearchState(log zerolog.Logger) *state {
	db := magic.NewDB()
	gen := movegen.New(db)
	return &state{
		pos:      position.NewInitial(),
		gen:      gen,
		searcher: search.NewSearcher(gen, eval.New(), search.NewZerologSink(log)),
	}
}

func (s *state) setPosition(pos *position.Position) {
	s.pos = pos
	s.searcher.SetPosition(pos)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	st := makeSearchState(log)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "position":
			handlePosition(st, fields[1:])
		case "go":
			handleGo(st, fields[1:])
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", fields[0])
		}
	}
}

func handlePosition(st *state, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "position requires an argument")
		return
	}

	var pos *position.Position
	var moveFields []string

	switch args[0] {
	case "startpos":
		pos, _ = fen.Decode(fen.StartPos)
		moveFields = args[1:]
	case "fen":
		rest := args[1:]
		idx := indexOf(rest, "moves")
		fenStr := rest
		if idx >= 0 {
			fenStr = rest[:idx]
			moveFields = rest[idx+1:]
		}
		decoded, err := fen.Decode(strings.Join(fenStr, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "position fen: %v\n", err)
			return
		}
		pos = decoded
	default:
		fmt.Fprintf(os.Stderr, "position: unknown subcommand %s\n", args[0])
		return
	}

	if len(moveFields) > 0 && moveFields[0] == "moves" {
		moveFields = moveFields[1:]
	}
	for _, coord := range moveFields {
		if !applyCoordinateMove(st.gen, pos, coord) {
			fmt.Fprintf(os.Stderr, "position: illegal or malformed move %s\n", coord)
			return
		}
	}

	st.setPosition(pos)
}

func applyCoordinateMove(gen *movegen.Generator, pos *position.Position, coord string) bool {
	for _, m := range gen.Moves(pos) {
		if m.String() == coord {
			gen.MakeMove(pos, m)
			return true
		}
	}
	return false
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}

func handleGo(st *state, args []string) {
	depth := 6
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "depth" {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}
	result := st.searcher.Search(depth)
	best, ok := result.First()
	if !ok {
		fmt.Printf("bestmove (none) score %d\n", result.Score)
		return
	}
	fmt.Printf("bestmove %s score %d pv %s\n", best.String(), result.Score, result.PV())
}
