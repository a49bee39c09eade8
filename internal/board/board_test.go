package board

import (
	"testing"

	"github.com/Daemonerne/capstoneChess-sub001/internal/testutil"
)

func TestCreateStandardBoard(t *testing.T) {
	b := CreateStandardBoard()

	testutil.AssertEqual(t, len(b.WhitePieces()), 16, "white pieces")
	testutil.AssertEqual(t, len(b.BlackPieces()), 16, "black pieces")
	testutil.AssertEqual(t, b.SideToMove(), White)
	if b.EnPassantPawn() != nil {
		t.Error("fresh board has an en-passant pawn")
	}

	squares := []struct {
		sq   Square
		kind PieceKind
		a    Alliance
	}{
		{E1, King, White}, {D1, Queen, White}, {A1, Rook, White},
		{H1, Rook, White}, {B1, Knight, White}, {C1, Bishop, White},
		{E8, King, Black}, {D8, Queen, Black}, {A8, Rook, Black},
		{E2, Pawn, White}, {E7, Pawn, Black},
	}
	for _, s := range squares {
		p := b.Piece(s.sq)
		if p == nil {
			t.Errorf("no piece on %v", s.sq)
			continue
		}
		testutil.AssertEqual(t, p.Kind(), s.kind, "kind on %v", s.sq)
		testutil.AssertEqual(t, p.Alliance(), s.a, "alliance on %v", s.sq)
	}

	testutil.AssertEqual(t, len(b.WhitePlayer().LegalMoves()), 20, "white opening moves")
	testutil.AssertEqual(t, len(b.BlackPlayer().LegalMoves()), 20, "black opening moves")
	testutil.AssertFalse(t, b.CurrentPlayer().IsInCheck(), "check at start")
}

func TestBoardFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/8/1q6/2k5/K7 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("parse %s: %v", fen, err)
			continue
		}
		testutil.AssertEqual(t, b.FEN(), fen)
	}

	testutil.AssertEqual(t, CreateStandardBoard().FEN(), StartFEN, "standard board FEN")
}

// TestBoardFENEnPassant verifies the en-passant target square survives a
// parse/emit round trip and matches the square behind the pawn.
func TestBoardFENEnPassant(t *testing.T) {
	b := CreateStandardBoard()
	tr := b.CurrentPlayer().MakeMove(FindMove(b, E2, E4))
	testutil.AssertEqual(t, tr.Status(), StatusDone)

	want := "rnbqkbnr/pppppppp/8/8/4P3/8/8/RNBQKBNR b KQkq e3 0 1"
	testutil.AssertEqual(t, tr.Board().FEN(), want)

	parsed, err := ParseFEN(want)
	testutil.AssertNoError(t, err)
	if parsed.EnPassantPawn() == nil {
		t.Fatal("parsed board lost the en-passant pawn")
	}
	testutil.AssertEqual(t, parsed.EnPassantPawn().Square(), E4)
	testutil.AssertEqual(t, parsed.FEN(), want)
}

// TestHashRepetition walks the knights out and back. The resulting board
// differs structurally from the start (the knights now carry move
// history) but hashes identically, which is what a repetition counter
// keys on.
func TestHashRepetition(t *testing.T) {
	b := CreateStandardBoard()
	start := b.Hash()

	cur := b
	for _, mv := range [][2]Square{{G1, F3}, {G8, F6}, {F3, G1}, {F6, G8}} {
		m := FindMove(cur, mv[0], mv[1])
		if m == nil {
			t.Fatalf("no move %v%v", mv[0], mv[1])
		}
		tr := cur.CurrentPlayer().MakeMove(m)
		testutil.AssertEqual(t, tr.Status(), StatusDone)
		cur = tr.Board()
	}

	testutil.AssertEqual(t, cur.Hash(), start, "hash after knight shuffle")
	testutil.AssertFalse(t, cur.Equal(b), "structural equality ignores history")
}

// TestHashSensitivity checks the hash reacts to side to move, en passant
// and castle rights, not just placement.
func TestHashSensitivity(t *testing.T) {
	b := CreateStandardBoard()

	afterE4 := b.CurrentPlayer().MakeMove(FindMove(b, E2, E4)).Board()
	if afterE4.Hash() == b.Hash() {
		t.Error("hash ignored a pawn push")
	}

	// Same placement as after 1.e4 but reached without the double push,
	// so no en-passant pawn is recorded.
	noEP, err := ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/8/RNBQKBNR b KQkq - 0 1")
	testutil.AssertNoError(t, err)
	if noEP.Hash() == afterE4.Hash() {
		t.Error("hash ignored the en-passant file")
	}

	// Shuffling a rook out and back keeps the placement but burns a
	// castle right, which must show up in the hash.
	shuffle := [][2]Square{{H1, H2}, {G8, F6}, {H2, H1}, {F6, G8}}
	cur := b
	for _, mv := range shuffle {
		cur = cur.CurrentPlayer().MakeMove(FindMove(cur, mv[0], mv[1])).Board()
	}
	if cur.Hash() == b.Hash() {
		t.Error("hash ignored a spent castle right")
	}
}

func TestBuilderMissingKingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Build accepted a board without a white king")
		}
	}()
	NewBuilder().
		Place(NewPiece(King, Black, E8)).
		SetSideToMove(White).
		Build()
}

func TestBoardString(t *testing.T) {
	s := CreateStandardBoard().String()
	testutil.AssertContains(t, s, "r n b q k b n r")
	testutil.AssertContains(t, s, "R N B Q K B N R")
	testutil.AssertContains(t, s, "White to move")
}
