package engine

import (
	"testing"
)

func TestConnectedAndStackedRooks(t *testing.T) {
	// The white rooks doubled on the d-file see each other; the black
	// pair is split by its own king.
	b := mustParse(t, "r3k2r/8/8/3R4/8/8/8/3RK3 w - - 0 1")
	w := Weights{RookLink: 1}

	want := connectedRooksBonus + stackedRooksBonus
	if got := scorePosition(b, w); got != want {
		t.Errorf("doubled rooks scored %.1f, want %.1f", got, want)
	}
}

func TestRooksOnSeventh(t *testing.T) {
	w := Weights{RookSeventh: 1}

	one := mustParse(t, "7k/1R4pp/8/8/8/8/8/4K3 w - - 0 1")
	want := rookSeventhBonus + rookSeventhPawnsBonus
	if got := scorePosition(one, w); got != want {
		t.Errorf("rook on the seventh scored %.1f, want %.1f", got, want)
	}

	two := mustParse(t, "7k/1R2R1pp/8/8/8/8/8/4K3 w - - 0 1")
	want = 2*rookSeventhBonus + 2*rookSeventhPawnsBonus + rookSeventhPairBonus
	if got := scorePosition(two, w); got != want {
		t.Errorf("rook pair on the seventh scored %.1f, want %.1f", got, want)
	}
}

func TestProtectionAndHangingPieces(t *testing.T) {
	// The white knight stands guarded by its b-pawn; the black knight
	// hangs to the h3 pawn with nothing covering it.
	b := mustParse(t, "4k3/8/8/8/6n1/2N4P/1P6/4K3 w - - 0 1")
	w := Weights{Protection: 1}

	want := protectedPieceBonus + hangingPiecePenalty
	if got := scorePosition(b, w); got != want {
		t.Errorf("protection balance scored %.1f, want %.1f", got, want)
	}
}
