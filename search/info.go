package search

import "github.com/rs/zerolog"

// InfoSink is an injected side channel: info emission routed through an
// interface so tests can capture it and callers can redirect it, instead
// of Oliverans-GooseEngine/engine/search.go's direct stdout/
// zerolog.Info() calls inside the search.
type InfoSink interface {
	// Depth reports the start of an iterative-deepening iteration.
	Depth(d int)
	// RootMove reports a root move's completion: TT hit ratio, node
	// count in kilonodes, the current principal variation, and the
	// move that was just searched.
	RootMove(ttRatio, kilonodes int, pv, curr string)
}

// ZerologSink is the default InfoSink, grounded on
// freeeve-chessgraph/internal/logx's structured zerolog wrapper: every
// line is a structured log event rather than a raw Printf.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink wraps log as an InfoSink.
func NewZerologSink(log zerolog.Logger) *ZerologSink {
	return &ZerologSink{log: log}
}

func (s *ZerologSink) Depth(d int) {
	s.log.Info().Int("depth", d).Msg("info depth")
}

func (s *ZerologSink) RootMove(ttRatio, kilonodes int, pv, curr string) {
	s.log.Info().
		Int("tpc_pct", ttRatio).
		Int("kn", kilonodes).
		Str("pv", pv).
		Str("curr", curr).
		Msg("info TPC")
}

// RecordingSink collects every call it receives, for tests that want to
// assert on info output without a logging backend.
type RecordingSink struct {
	Depths    []int
	RootMoves []RootMoveEvent
}

// RootMoveEvent is one recorded call to RootMove.
type RootMoveEvent struct {
	TTRatio, Kilonodes int
	PV, Curr           string
}

func NewRecordingSink() *RecordingSink { return &RecordingSink{} }

func (s *RecordingSink) Depth(d int) { s.Depths = append(s.Depths, d) }

func (s *RecordingSink) RootMove(ttRatio, kilonodes int, pv, curr string) {
	s.RootMoves = append(s.RootMoves, RootMoveEvent{ttRatio, kilonodes, pv, curr})
}
