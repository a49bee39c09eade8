package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a board. Piece history is inferred
// from the string: pawns off their start rank count as moved, and king
// and rook movement flags follow the castling rights field. Clock fields
// are accepted and ignored, since the board does not track clocks.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	var side Alliance
	switch parts[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	rights, err := parseCastleRights(parts[2])
	if err != nil {
		return nil, err
	}

	bl := NewBuilder()
	bl.SetSideToMove(side)
	if err := parsePlacement(bl, parts[0], rights); err != nil {
		return nil, err
	}

	for a := White; a <= Black; a++ {
		if !hasKing(bl, a) {
			return nil, fmt.Errorf("invalid FEN: missing %v king", a)
		}
	}

	if parts[3] != "-" {
		target, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pawnAlliance := side.Other()
		pawnSq := Square(int(target) + pawnAlliance.Direction())
		pawn := bl.squares[pawnSq]
		if pawn == nil || pawn.kind != Pawn || pawn.alliance != pawnAlliance {
			return nil, fmt.Errorf("invalid en passant square: %s: no pawn behind it", parts[3])
		}
		bl.SetEnPassant(pawn)
	}

	return bl.Build(), nil
}

// fenRights mirrors the four letters of the castling field.
type fenRights struct {
	whiteKing, whiteQueen bool
	blackKing, blackQueen bool
}

func parseCastleRights(castling string) (fenRights, error) {
	var r fenRights
	if castling == "-" {
		return r, nil
	}
	for _, c := range castling {
		switch c {
		case 'K':
			r.whiteKing = true
		case 'Q':
			r.whiteQueen = true
		case 'k':
			r.blackKing = true
		case 'q':
			r.blackQueen = true
		default:
			return r, fmt.Errorf("invalid castling character: %c", c)
		}
	}
	return r, nil
}

// parsePlacement fills the builder from the placement field, inferring
// each piece's movement history.
func parsePlacement(bl *Builder, placement string, rights fenRights) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind, alliance, ok := kindFromChar(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			bl.Place(inferPiece(kind, alliance, NewSquare(file, rank), rights))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// inferPiece constructs a piece with movement history consistent with its
// square and the castling rights field.
func inferPiece(kind PieceKind, a Alliance, sq Square, rights fenRights) *Piece {
	home := a.HomeRank()
	switch kind {
	case Pawn:
		if sq.Rank() != a.PawnStartRank() {
			return movedPiece(Pawn, a, sq)
		}
	case Rook:
		kingRight, queenRight := rights.whiteKing, rights.whiteQueen
		if a == Black {
			kingRight, queenRight = rights.blackKing, rights.blackQueen
		}
		switch sq {
		case NewSquare(7, home):
			if !kingRight {
				return movedPiece(Rook, a, sq)
			}
		case NewSquare(0, home):
			if !queenRight {
				return movedPiece(Rook, a, sq)
			}
		default:
			return movedPiece(Rook, a, sq)
		}
	case King:
		kingRight, queenRight := rights.whiteKing, rights.whiteQueen
		if a == Black {
			kingRight, queenRight = rights.blackKing, rights.blackQueen
		}
		if sq != NewSquare(4, home) {
			return movedPiece(King, a, sq)
		}
		return NewKing(a, sq, kingRight, queenRight)
	}
	return NewPiece(kind, a, sq)
}

// movedPiece constructs a piece that has moved at least once.
func movedPiece(kind PieceKind, a Alliance, sq Square) *Piece {
	return &Piece{kind: kind, alliance: a, square: sq, hasMoved: true, moveCount: 1}
}

func hasKing(bl *Builder, a Alliance) bool {
	for sq := A1; sq <= H8; sq++ {
		p := bl.squares[sq]
		if p != nil && p.kind == King && p.alliance == a {
			return true
		}
	}
	return false
}

// kindFromChar converts a FEN piece character into kind and alliance.
func kindFromChar(c byte) (PieceKind, Alliance, bool) {
	alliance := White
	if c >= 'a' && c <= 'z' {
		alliance = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, alliance, true
	case 'N':
		return Knight, alliance, true
	case 'B':
		return Bishop, alliance, true
	case 'R':
		return Rook, alliance, true
	case 'Q':
		return Queen, alliance, true
	case 'K':
		return King, alliance, true
	}
	return NoPieceKind, alliance, false
}

// FEN returns the FEN representation of the board. The clock fields are
// emitted as "0 1" because the board tracks no clocks.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	mask := b.castleRightsMask()
	if mask == 0 {
		sb.WriteByte('-')
	} else {
		letters := []struct {
			bit    uint8
			letter byte
		}{
			{castleWhiteKingSide, 'K'},
			{castleWhiteQueenSide, 'Q'},
			{castleBlackKingSide, 'k'},
			{castleBlackQueenSide, 'q'},
		}
		for _, l := range letters {
			if mask&l.bit != 0 {
				sb.WriteByte(l.letter)
			}
		}
	}

	sb.WriteByte(' ')
	if b.enPassant == nil {
		sb.WriteByte('-')
	} else {
		behind := Square(int(b.enPassant.square) - b.enPassant.alliance.Direction())
		sb.WriteString(behind.String())
	}

	sb.WriteString(" 0 1")
	return sb.String()
}
