package engine

import (
	"testing"

	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

func TestTableStoreProbe(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x123456789abcdef0)
	key := moveKey{from: board.E2, to: board.E4, promoted: board.NoPieceKind}

	if _, ok := tt.Probe(hash); ok {
		t.Fatal("fresh table reported a hit")
	}

	tt.Store(hash, 5, 42.5, BoundLower, key)
	entry, ok := tt.Probe(hash)
	if !ok {
		t.Fatal("stored entry not found")
	}
	if entry.score != 42.5 || entry.depth != 5 || entry.bound != BoundLower || entry.best != key {
		t.Errorf("probe returned %+v", entry)
	}
}

// TestTableIndexCollision stores two positions that map to the same
// slot. The full hash comparison must keep them apart: the displaced
// entry misses instead of leaking the survivor's move.
func TestTableIndexCollision(t *testing.T) {
	tt := NewTranspositionTable(1)
	h1 := uint64(0xcafe)
	h2 := h1 ^ uint64(tt.Size()) // same slot, different key

	tt.Store(h1, 3, 10, BoundExact, moveKey{from: board.A1, to: board.A2})
	if _, ok := tt.Probe(h2); ok {
		t.Fatal("colliding hash hit a foreign entry")
	}

	tt.Store(h2, 4, -20, BoundUpper, moveKey{from: board.B1, to: board.B2})
	if _, ok := tt.Probe(h1); ok {
		t.Fatal("displaced entry still probes")
	}
	entry, ok := tt.Probe(h2)
	if !ok || entry.score != -20 {
		t.Errorf("survivor entry = %+v, ok %v", entry, ok)
	}
}

func TestTableSizeAndClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	// 1MB over 32-byte entries, already a power of two.
	if tt.Size() != 32768 {
		t.Errorf("Size = %d, want 32768", tt.Size())
	}
	if got := NewTranspositionTable(3).Size(); got != 65536 {
		t.Errorf("3MB table Size = %d, want 65536", got)
	}

	tt.Store(7, 2, 1, BoundExact, noMoveKey)
	tt.Clear()
	if _, ok := tt.Probe(7); ok {
		t.Error("entry survived Clear")
	}
	if full := tt.HashFull(); full != 0 {
		t.Errorf("HashFull after Clear = %d, want 0", full)
	}
}
