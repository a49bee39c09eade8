package board

import (
	"testing"

	"github.com/Daemonerne/capstoneChess-sub001/internal/testutil"
)

func castleKinds(moves []*Move) (kingSide, queenSide bool) {
	for _, m := range moves {
		switch m.Kind() {
		case CastleKingSide:
			kingSide = true
		case CastleQueenSide:
			queenSide = true
		}
	}
	return
}

func TestCastlingAvailable(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	ks, qs := castleKinds(b.WhitePlayer().LegalMoves())
	testutil.AssertTrue(t, ks, "white O-O")
	testutil.AssertTrue(t, qs, "white O-O-O")
	ks, qs = castleKinds(b.BlackPlayer().CandidateMoves())
	testutil.AssertTrue(t, ks, "black O-O")
	testutil.AssertTrue(t, qs, "black O-O-O")

	tr := b.CurrentPlayer().MakeMove(FindMove(b, E1, G1))
	testutil.AssertEqual(t, tr.Status(), StatusDone)
	after := tr.Board()

	king := after.Piece(G1)
	if king == nil || king.Kind() != King {
		t.Fatal("king not on g1 after O-O")
	}
	testutil.AssertTrue(t, king.IsCastled(), "king castled flag")
	rook := after.Piece(F1)
	if rook == nil || rook.Kind() != Rook {
		t.Fatal("rook not on f1 after O-O")
	}
	testutil.AssertTrue(t, after.WhitePlayer().IsCastled(), "player castled")
}

// TestCastlingGating covers the precondition set: a king in check, an
// attacked or occupied transit square, a transit square controlled by an
// enemy pawn, and spent rook rights all veto the castle.
func TestCastlingGating(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		wantKS bool
		wantQS bool
	}{
		{
			"king in check",
			"r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1",
			false, false,
		},
		{
			"kingside transit attacked by queen",
			"r3k2r/8/8/8/8/7q/8/R3K2R w KQkq - 0 1",
			false, true,
		},
		{
			"kingside transit controlled by pawn",
			"r3k2r/8/8/8/8/8/6p1/R3K2R w KQkq - 0 1",
			false, true,
		},
		{
			"kingside transit occupied",
			"r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
			false, true,
		},
		{
			"queenside transit occupied",
			"r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1",
			true, false,
		},
		{
			"queenside rook path blocked",
			"r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			true, false,
		},
		{
			"rights revoked by FEN",
			"r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			false, true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)
			ks, qs := castleKinds(b.WhitePlayer().CandidateMoves())
			testutil.AssertEqual(t, ks, tc.wantKS, "kingside")
			testutil.AssertEqual(t, qs, tc.wantQS, "queenside")
		})
	}
}

// TestCastlingRookReturn moves the h1 rook out and back. The right is
// spent permanently even though the placement is restored.
func TestCastlingRookReturn(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	cur := b
	for _, mv := range [][2]Square{{H1, H2}, {A8, A7}, {H2, H1}, {A7, A8}} {
		tr := cur.CurrentPlayer().MakeMove(FindMove(cur, mv[0], mv[1]))
		testutil.AssertEqual(t, tr.Status(), StatusDone)
		cur = tr.Board()
	}

	ks, qs := castleKinds(cur.WhitePlayer().CandidateMoves())
	testutil.AssertFalse(t, ks, "kingside after rook shuffle")
	testutil.AssertTrue(t, qs, "queenside untouched")
}

func TestMakeMoveStatuses(t *testing.T) {
	t.Run("done", func(t *testing.T) {
		b := CreateStandardBoard()
		tr := b.CurrentPlayer().MakeMove(FindMove(b, E2, E4))
		testutil.AssertEqual(t, tr.Status(), StatusDone)
		testutil.AssertTrue(t, tr.Status().IsDone(), "IsDone")
		if tr.Board() == b {
			t.Error("done transition kept the origin board")
		}
	})

	t.Run("illegal foreign move", func(t *testing.T) {
		b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		testutil.AssertNoError(t, err)
		foreign := FindMove(CreateStandardBoard(), E2, E4)

		tr := b.CurrentPlayer().MakeMove(foreign)
		testutil.AssertEqual(t, tr.Status(), StatusIllegal)
		if tr.Board() != b {
			t.Error("illegal transition left the origin board")
		}
	})

	t.Run("illegal nil move", func(t *testing.T) {
		b := CreateStandardBoard()
		tr := b.CurrentPlayer().MakeMove(nil)
		testutil.AssertEqual(t, tr.Status(), StatusIllegal)
	})

	t.Run("leaves king in check", func(t *testing.T) {
		// The e2 knight is pinned against the king by the e3 rook.
		b, err := ParseFEN("4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
		testutil.AssertNoError(t, err)

		var pinned *Move
		for _, m := range b.CurrentPlayer().CandidateMoves() {
			if m.MovedPiece().Kind() == Knight {
				pinned = m
				break
			}
		}
		if pinned == nil {
			t.Fatal("pinned knight generated no candidates")
		}
		tr := b.CurrentPlayer().MakeMove(pinned)
		testutil.AssertEqual(t, tr.Status(), StatusLeavesKingInCheck)
		if tr.Board() != b {
			t.Error("refused transition left the origin board")
		}
	})
}

// TestLegalMovesClosure checks that the legal move set is exactly the
// candidates whose transitions complete.
func TestLegalMovesClosure(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/4r3/4N3/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	pl := b.CurrentPlayer()

	done := 0
	for _, m := range pl.CandidateMoves() {
		tr := pl.MakeMove(m)
		if tr.Status() == StatusDone {
			done++
			tr.Board().Release()
		}
	}
	testutil.AssertEqual(t, len(pl.LegalMoves()), done, "legal move count")

	for _, m := range pl.LegalMoves() {
		if m.MovedPiece().Kind() == Knight {
			t.Errorf("pinned knight move %v counted as legal", m)
		}
	}
}

