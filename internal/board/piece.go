package board

// PieceKind identifies the kind of a chess piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = 6
)

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece kind (lowercase).
func (k PieceKind) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if k > NoPieceKind {
		return ' '
	}
	return chars[k]
}

// PieceValue holds the material value of each kind in centipawns.
var PieceValue = [7]int{100, 320, 330, 500, 900, 20000, 0}

// Piece is a piece standing on a square. A Piece is immutable: moving,
// castling or promoting produces a fresh value via MovedCopy, CastledCopy
// or PromotedCopy, and the original is left untouched. Because of this,
// pieces are shared freely between a board and the boards derived from it.
type Piece struct {
	kind      PieceKind
	alliance  Alliance
	square    Square
	hasMoved  bool
	moveCount int

	// King-only state. Always zero for other kinds.
	castled         bool
	kingSideRights  bool
	queenSideRights bool
}

// NewPiece returns an unmoved piece of the given kind on sq.
// Kings are created with both castle rights; use NewKing to control them.
func NewPiece(kind PieceKind, a Alliance, sq Square) *Piece {
	if kind == King {
		return NewKing(a, sq, true, true)
	}
	return &Piece{kind: kind, alliance: a, square: sq}
}

// NewKing returns an unmoved, uncastled king carrying the given castle rights.
func NewKing(a Alliance, sq Square, kingSide, queenSide bool) *Piece {
	return &Piece{
		kind:            King,
		alliance:        a,
		square:          sq,
		kingSideRights:  kingSide,
		queenSideRights: queenSide,
	}
}

// Kind returns the piece kind.
func (p *Piece) Kind() PieceKind {
	return p.kind
}

// Alliance returns the side the piece belongs to.
func (p *Piece) Alliance() Alliance {
	return p.alliance
}

// Square returns the square the piece stands on.
func (p *Piece) Square() Square {
	return p.square
}

// HasMoved reports whether the piece has moved at least once.
func (p *Piece) HasMoved() bool {
	return p.hasMoved
}

// MoveCount returns how many times the piece has moved.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// IsCastled reports whether the piece is a king that has castled.
func (p *Piece) IsCastled() bool {
	return p.castled
}

// KingSideRights reports whether the piece is a king that still holds the
// kingside castle right.
func (p *Piece) KingSideRights() bool {
	return p.kingSideRights
}

// QueenSideRights reports whether the piece is a king that still holds the
// queenside castle right.
func (p *Piece) QueenSideRights() bool {
	return p.queenSideRights
}

// Value returns the material value of the piece in centipawns.
func (p *Piece) Value() int {
	return PieceValue[p.kind]
}

// MovedCopy returns the piece as it stands after moving to dest.
// A moved king forfeits both castle rights.
func (p *Piece) MovedCopy(dest Square) *Piece {
	next := *p
	next.square = dest
	next.hasMoved = true
	next.moveCount++
	if p.kind == King {
		next.kingSideRights = false
		next.queenSideRights = false
	}
	return &next
}

// CastledCopy returns the king as it stands after castling to dest.
func (p *Piece) CastledCopy(dest Square) *Piece {
	next := p.MovedCopy(dest)
	next.castled = true
	return next
}

// PromotedCopy returns the pawn promoted to the given kind on dest.
func (p *Piece) PromotedCopy(dest Square, kind PieceKind) *Piece {
	return &Piece{
		kind:      kind,
		alliance:  p.alliance,
		square:    dest,
		hasMoved:  true,
		moveCount: p.moveCount + 1,
	}
}

// Equal reports structural equality, including movement history flags.
func (p *Piece) Equal(o *Piece) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.kind == o.kind &&
		p.alliance == o.alliance &&
		p.square == o.square &&
		p.hasMoved == o.hasMoved &&
		p.moveCount == o.moveCount &&
		p.castled == o.castled &&
		p.kingSideRights == o.kingSideRights &&
		p.queenSideRights == o.queenSideRights
}

// String returns the FEN character for the piece.
// Uppercase for White, lowercase for Black.
func (p *Piece) String() string {
	if p == nil || p.kind >= NoPieceKind {
		return " "
	}
	chars := "PNBRQK"
	c := chars[p.kind]
	if p.alliance == Black {
		c += 'a' - 'A'
	}
	return string(c)
}

// LocationBonus returns the piece-square positional bonus in centipawns,
// from the piece's own alliance's perspective.
func (p *Piece) LocationBonus() int {
	return pieceSquareTables[p.kind][p.tableSquare()]
}

// EndgameLocationBonus is LocationBonus with the endgame king table
// substituted for kings, which want to centralize once queens come off.
func (p *Piece) EndgameLocationBonus() int {
	if p.kind == King {
		return kingEndgameTable[p.tableSquare()]
	}
	return p.LocationBonus()
}

// tableSquare maps the piece's square into the bonus tables, which are
// written with rank 8 on the first row.
func (p *Piece) tableSquare() Square {
	if p.alliance == White {
		return p.square.Mirror()
	}
	return p.square
}
