package engine

// RepetitionTable counts how many times each position has been reached
// in the current game. Positions are identified by their Zobrist hash,
// which folds in the side to move, the castle rights and the en
// passant file, so two visits only count together when the position
// truly recurs.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[uint64]int)}
}

// Record notes a visit to the position and returns the new count.
func (rt *RepetitionTable) Record(hash uint64) int {
	rt.counts[hash]++
	return rt.counts[hash]
}

// Count returns how many times the position has been recorded.
func (rt *RepetitionTable) Count(hash uint64) int {
	return rt.counts[hash]
}

// IsThreefold reports whether the position has occurred at least three
// times.
func (rt *RepetitionTable) IsThreefold(hash uint64) bool {
	return rt.counts[hash] >= 3
}

// Reset clears the table for a new game.
func (rt *RepetitionTable) Reset() {
	rt.counts = make(map[uint64]int)
}
