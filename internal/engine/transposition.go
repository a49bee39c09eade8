package engine

// Bound classifies a stored score relative to the alpha-beta window
// that produced it.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower       // failed high (beta cutoff)
	BoundUpper       // failed low
)

type ttEntry struct {
	key   uint64
	score float64
	best  moveKey
	depth int8
	bound Bound
}

// TranspositionTable caches search results keyed by position hash. It
// replaces on every store, which keeps the table fresh across the
// shallow fixed-depth searches this engine runs. The searcher is
// single threaded behind the engine's request guard, so probes and
// stores take no locks.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
}

// NewTranspositionTable creates a transposition table with the given
// size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(32)
	n := (uint64(sizeMB) * 1024 * 1024) / entrySize
	n = roundDownToPowerOf2(n)
	if n == 0 {
		n = 1
	}
	return &TranspositionTable{
		entries: make([]ttEntry, n),
		mask:    n - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a position. The boolean is false on a miss. Only
// entries whose full hash matches are returned, so index collisions
// never leak a foreign move.
func (tt *TranspositionTable) Probe(hash uint64) (ttEntry, bool) {
	e := tt.entries[hash&tt.mask]
	if e.key == hash && e.depth > 0 {
		return e, true
	}
	return ttEntry{best: noMoveKey}, false
}

// Store saves a search result, displacing whatever lived in the slot.
func (tt *TranspositionTable) Store(hash uint64, depth int, score float64, bound Bound, best moveKey) {
	tt.entries[hash&tt.mask] = ttEntry{
		key:   hash,
		score: score,
		best:  best,
		depth: int8(depth),
		bound: bound,
	}
}

// Clear wipes the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttEntry{}
	}
}

// HashFull samples the table and reports how full it is in permille.
func (tt *TranspositionTable) HashFull() int {
	sample := 1000
	if len(tt.entries) < sample {
		sample = len(tt.entries)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if tt.entries[i].depth > 0 {
			used++
		}
	}
	return used * 1000 / sample
}

// Size returns the number of slots in the table.
func (tt *TranspositionTable) Size() int {
	return len(tt.entries)
}
