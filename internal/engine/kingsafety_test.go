package engine

import (
	"testing"
)

// TestKingShelter weighs a full shield against one with the h-pawn
// gone: the missing shield square, the semi-open h-file, and the bare
// h7 diagonal square all charge the black king.
func TestKingShelter(t *testing.T) {
	b := mustParse(t, "6k1/5pp1/8/8/8/8/5PPP/6K1 w - - 0 1")
	w := Weights{KingShield: 1}

	white := 3 * pawnShieldBonus
	black := 2*pawnShieldBonus - pawnShieldMissing - semiOpenFileNearKing - openDiagonalNearKing
	if got, want := scorePosition(b, w), white-black; got != want {
		t.Errorf("king shelter scored %.1f, want %.1f", got, want)
	}
}
