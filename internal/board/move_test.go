package board

import (
	"testing"

	"github.com/Daemonerne/capstoneChess-sub001/internal/testutil"
)

// TestExecuteUndoRoundTrip drives every move variant through Execute and
// Undo and requires the undone board to be structurally equal to the
// origin: same placement, same per-piece history, same side to move,
// same en-passant state.
func TestExecuteUndoRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from Square
		to   Square
		kind MoveKind
	}{
		{"knight quiet", StartFEN, G1, F3, Quiet},
		{"pawn push", StartFEN, E2, E3, PawnPush},
		{"double pawn push", StartFEN, E2, E4, DoublePawnPush},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", E4, D5, Capture},
		{"rook capture", "4k3/8/8/8/8/8/8/R3n2K w - - 0 1", A1, E1, Capture},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", E1, G1, CastleKingSide},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", E1, C1, CastleQueenSide},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)

			m := FindMove(b, tc.from, tc.to)
			if m == nil {
				t.Fatalf("no legal move %v%v in %s", tc.from, tc.to, tc.fen)
			}
			testutil.AssertEqual(t, m.Kind(), tc.kind, "move kind")

			tr := b.CurrentPlayer().MakeMove(m)
			testutil.AssertEqual(t, tr.Status(), StatusDone, "make %v", m)

			undone := tr.Board().CurrentPlayer().UnmakeMove(m).Board()
			testutil.AssertEqual(t, undone, b, "undo of %v", m)
		})
	}
}

// TestExecuteUndoPromotion exercises the promotion fan-out, with and
// without a capture on the promotion square.
func TestExecuteUndoPromotion(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from     Square
		to       Square
		promoted PieceKind
		capture  bool
	}{
		{"quiet queen promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", A7, A8, Queen, false},
		{"quiet knight promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", A7, A8, Knight, false},
		{"capturing rook promotion", "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", A7, B8, Rook, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)

			m := FindPromotion(b, tc.from, tc.to, tc.promoted)
			if m == nil {
				t.Fatalf("no %v promotion %v%v in %s", tc.promoted, tc.from, tc.to, tc.fen)
			}
			testutil.AssertEqual(t, m.IsCapture(), tc.capture, "capture flag")

			tr := b.CurrentPlayer().MakeMove(m)
			testutil.AssertEqual(t, tr.Status(), StatusDone)

			promoted := tr.Board().Piece(tc.to)
			testutil.AssertEqual(t, promoted.Kind(), tc.promoted, "piece on promotion square")

			undone := tr.Board().CurrentPlayer().UnmakeMove(m).Board()
			testutil.AssertEqual(t, undone, b, "undo of %v", m)
		})
	}
}

// TestExecuteUndoEnPassant plays e2e4 d4xe3 and undoes the en passant
// capture, which must restore both the captured pawn off the destination
// square and the origin board's en-passant marker.
func TestExecuteUndoEnPassant(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	double := FindMove(b, E2, E4)
	after := b.CurrentPlayer().MakeMove(double)
	testutil.AssertEqual(t, after.Status(), StatusDone)
	mid := after.Board()
	if mid.EnPassantPawn() == nil {
		t.Fatal("double push did not set the en-passant pawn")
	}

	ep := FindMove(mid, D4, E3)
	if ep == nil {
		t.Fatal("en passant capture d4xe3 not found")
	}
	testutil.AssertEqual(t, ep.Kind(), EnPassantCapture)

	tr := mid.CurrentPlayer().MakeMove(ep)
	testutil.AssertEqual(t, tr.Status(), StatusDone)
	child := tr.Board()
	if child.Piece(E4) != nil {
		t.Error("captured pawn still on e4 after en passant")
	}
	if child.Piece(E3) == nil || child.Piece(E3).Kind() != Pawn {
		t.Error("capturing pawn missing from e3")
	}

	undone := child.CurrentPlayer().UnmakeMove(ep).Board()
	testutil.AssertEqual(t, undone, mid, "undo of en passant")
}

// TestMoveNotation checks the compact algebraic and UCI renderings.
func TestMoveNotation(t *testing.T) {
	tests := []struct {
		fen      string
		from, to Square
		want     string
		wantUCI  string
	}{
		{StartFEN, G1, F3, "Nf3", "g1f3"},
		{StartFEN, E2, E4, "e4", "e2e4"},
		{"4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", E4, D5, "exd5", "e4d5"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", E1, G1, "O-O", "e1g1"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", E1, C1, "O-O-O", "e1c1"},
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", A7, A8, "a8=Q", "a7a8q"},
	}

	for _, tc := range tests {
		b, err := ParseFEN(tc.fen)
		testutil.AssertNoError(t, err)
		m := FindMove(b, tc.from, tc.to)
		if m == nil {
			t.Errorf("no legal move %v%v in %s", tc.from, tc.to, tc.fen)
			continue
		}
		testutil.AssertEqual(t, m.String(), tc.want)
		testutil.AssertEqual(t, m.UCI(), tc.wantUCI)
	}
}

// TestMoveEqual distinguishes moves by structure, not identity.
func TestMoveEqual(t *testing.T) {
	a := CreateStandardBoard()
	b := CreateStandardBoard()

	ma := FindMove(a, E2, E4)
	mb := FindMove(b, E2, E4)
	if ma == mb {
		t.Fatal("distinct boards handed out the same move instance")
	}
	testutil.AssertTrue(t, ma.Equal(mb), "same move from equal boards")

	other := FindMove(b, D2, D4)
	testutil.AssertFalse(t, ma.Equal(other), "different destinations")
}
