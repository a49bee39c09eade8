package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	// Test position: Back rank mate - already checkmate
	// White: Ka1, Ra8
	// Black: Kh8, pawns on g7 and h7 blocking escape
	// Black is already in checkmate (Black to move)
	b, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Checkmate position:")
	t.Log(b)

	pl := b.CurrentPlayer()
	t.Log("InCheck:", pl.IsInCheck())

	// List all legal moves for black
	legal := pl.LegalMoves()
	t.Log("Black legal moves:", len(legal))
	for _, m := range legal {
		t.Log("  Move:", m)
	}

	t.Log("IsInCheckMate:", pl.IsInCheckMate())
	t.Log("IsInStaleMate:", pl.IsInStaleMate())

	if !pl.IsInCheckMate() {
		t.Error("Expected checkmate but got false")
	}
	if pl.IsInStaleMate() {
		t.Error("A mated player cannot also be stalemated")
	}
}

func TestNotCheckmate(t *testing.T) {
	// Test position: King CAN escape - not checkmate
	// Black king on h8, rook on g8 but king can take it
	b, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Not checkmate position (king can capture rook):")
	t.Log(b)

	pl := b.CurrentPlayer()
	t.Log("InCheck:", pl.IsInCheck())

	legal := pl.LegalMoves()
	t.Log("Black legal moves:", len(legal))
	for _, m := range legal {
		t.Log("  Move:", m)
	}

	t.Log("IsInCheckMate:", pl.IsInCheckMate())

	if pl.IsInCheckMate() {
		t.Error("Expected NOT checkmate but got true")
	}
}

// TestFoolsMate plays the fastest possible mate from the opening and
// expects the white player to be mated.
func TestFoolsMate(t *testing.T) {
	cur := CreateStandardBoard()
	for _, mv := range [][2]Square{{F2, F3}, {E7, E5}, {G2, G4}, {D8, H4}} {
		m := FindMove(cur, mv[0], mv[1])
		if m == nil {
			t.Fatalf("no move %v%v", mv[0], mv[1])
		}
		tr := cur.CurrentPlayer().MakeMove(m)
		if tr.Status() != StatusDone {
			t.Fatalf("move %v: status %v", m, tr.Status())
		}
		cur = tr.Board()
	}

	pl := cur.CurrentPlayer()
	t.Log("Position after 1.f3 e5 2.g4 Qh4#:")
	t.Log(cur)
	if !pl.IsInCheck() {
		t.Error("white should be in check")
	}
	if !pl.IsInCheckMate() {
		t.Error("white should be mated")
	}
}

// TestStalemate uses a cornered king with no legal moves and no check.
func TestStalemate(t *testing.T) {
	b, err := ParseFEN("8/8/8/8/8/1q6/2k5/K7 w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	pl := b.CurrentPlayer()
	t.Log("Stalemate position:")
	t.Log(b)
	t.Log("Legal moves:", len(pl.LegalMoves()))

	if pl.IsInCheck() {
		t.Error("stalemated king must not be in check")
	}
	if pl.IsInCheckMate() {
		t.Error("stalemate reported as checkmate")
	}
	if !pl.IsInStaleMate() {
		t.Error("Expected stalemate but got false")
	}
	if len(pl.LegalMoves()) != 0 {
		t.Error("stalemated player still has legal moves")
	}
}
