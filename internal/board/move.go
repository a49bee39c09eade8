package board

// MoveKind discriminates the variants of Move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	PawnPush
	DoublePawnPush
	EnPassantCapture
	CastleKingSide
	CastleQueenSide
	Promotion
)

const moveKindCount = int(Promotion) + 1

// String returns the move kind name.
func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "Quiet"
	case Capture:
		return "Capture"
	case PawnPush:
		return "PawnPush"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassantCapture:
		return "EnPassantCapture"
	case CastleKingSide:
		return "CastleKingSide"
	case CastleQueenSide:
		return "CastleQueenSide"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move describes one transition of one specific board. A Move is only
// meaningful relative to the board it was generated against; Execute and
// Undo build fresh boards and never mutate one. Moves are recycled
// through a MovePool, so a move must not be referenced after the board
// that owns it has been released.
type Move struct {
	kind     MoveKind
	piece    *Piece // the mover, as it stood before the move
	dest     Square
	captured *Piece    // set for captures, including capturing promotions
	rook     *Piece    // set for castle moves
	rookDest Square    // set for castle moves
	promoted PieceKind // set for promotions, NoPieceKind otherwise

	// The origin board's en-passant pawn, so Undo can restore it.
	prevEnPassant *Piece
}

// Kind returns the move's variant.
func (m *Move) Kind() MoveKind {
	return m.kind
}

// MovedPiece returns the piece being moved, in its pre-move state.
func (m *Move) MovedPiece() *Piece {
	return m.piece
}

// From returns the square the move starts from.
func (m *Move) From() Square {
	return m.piece.square
}

// To returns the square the move lands on.
func (m *Move) To() Square {
	return m.dest
}

// Captured returns the captured piece, or nil for non-captures. For en
// passant the captured pawn does not stand on the destination square.
func (m *Move) Captured() *Piece {
	return m.captured
}

// IsCapture reports whether the move takes a piece.
func (m *Move) IsCapture() bool {
	return m.captured != nil
}

// CastleRook returns the rook participating in a castle move, or nil.
func (m *Move) CastleRook() *Piece {
	return m.rook
}

// CastleRookTo returns the rook's destination in a castle move.
func (m *Move) CastleRookTo() Square {
	return m.rookDest
}

// Promoted returns the promotion kind, or NoPieceKind.
func (m *Move) Promoted() PieceKind {
	return m.promoted
}

// reset clears the move for reuse.
func (m *Move) reset() {
	*m = Move{promoted: NoPieceKind}
}

// Move constructors. Each acquires from the board's pool (when the board
// has one) and snapshots the board's en-passant pawn for Undo.

func newQuietMove(b *Board, p *Piece, dest Square) *Move {
	m := acquireMove(b.pool, Quiet)
	m.piece = p
	m.dest = dest
	m.prevEnPassant = b.enPassant
	return m
}

func newCaptureMove(b *Board, p *Piece, dest Square, victim *Piece) *Move {
	m := acquireMove(b.pool, Capture)
	m.piece = p
	m.dest = dest
	m.captured = victim
	m.prevEnPassant = b.enPassant
	return m
}

func newPawnPushMove(b *Board, p *Piece, dest Square) *Move {
	m := acquireMove(b.pool, PawnPush)
	m.piece = p
	m.dest = dest
	m.prevEnPassant = b.enPassant
	return m
}

func newDoublePawnPushMove(b *Board, p *Piece, dest Square) *Move {
	m := acquireMove(b.pool, DoublePawnPush)
	m.piece = p
	m.dest = dest
	m.prevEnPassant = b.enPassant
	return m
}

func newEnPassantMove(b *Board, p *Piece, dest Square, victim *Piece) *Move {
	m := acquireMove(b.pool, EnPassantCapture)
	m.piece = p
	m.dest = dest
	m.captured = victim
	m.prevEnPassant = b.enPassant
	return m
}

func newCastleMove(b *Board, kind MoveKind, king *Piece, dest Square, rook *Piece, rookDest Square) *Move {
	m := acquireMove(b.pool, kind)
	m.piece = king
	m.dest = dest
	m.rook = rook
	m.rookDest = rookDest
	m.prevEnPassant = b.enPassant
	return m
}

func newPromotionMove(b *Board, p *Piece, dest Square, victim *Piece, promoted PieceKind) *Move {
	m := acquireMove(b.pool, Promotion)
	m.piece = p
	m.dest = dest
	m.captured = victim
	m.promoted = promoted
	m.prevEnPassant = b.enPassant
	return m
}

// Execute applies the move to the board it was constructed against and
// returns the resulting board, with the turn passed to the opponent.
func (m *Move) Execute(b *Board) *Board {
	bl := b.derive()
	bl.clear(m.piece.square)
	if m.captured != nil {
		bl.clear(m.captured.square)
	}

	switch m.kind {
	case CastleKingSide, CastleQueenSide:
		bl.clear(m.rook.square)
		bl.Place(m.piece.CastledCopy(m.dest))
		bl.Place(m.rook.MovedCopy(m.rookDest))
	case Promotion:
		bl.Place(m.piece.PromotedCopy(m.dest, m.promoted))
	case DoublePawnPush:
		moved := m.piece.MovedCopy(m.dest)
		bl.Place(moved)
		bl.SetEnPassant(moved)
	default:
		bl.Place(m.piece.MovedCopy(m.dest))
	}

	bl.SetSideToMove(m.piece.alliance.Other())
	return bl.Build()
}

// Undo rebuilds the board the move was executed from, given the board it
// produced. The result is structurally equal to the origin board.
func (m *Move) Undo(child *Board) *Board {
	bl := child.derive()
	bl.clear(m.dest)
	if m.kind == CastleKingSide || m.kind == CastleQueenSide {
		bl.clear(m.rookDest)
		bl.Place(m.rook)
	}
	bl.Place(m.piece)
	if m.captured != nil {
		bl.Place(m.captured)
	}
	bl.SetEnPassant(m.prevEnPassant)
	bl.SetSideToMove(m.piece.alliance)
	return bl.Build()
}

// Equal reports whether two moves describe the same transition.
func (m *Move) Equal(o *Move) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.kind == o.kind &&
		m.dest == o.dest &&
		m.promoted == o.promoted &&
		m.piece.Equal(o.piece)
}

// String renders the move in compact algebraic style, without
// disambiguation ("e4", "exd5", "Nf3", "O-O", "e8=Q").
func (m *Move) String() string {
	switch m.kind {
	case CastleKingSide:
		return "O-O"
	case CastleQueenSide:
		return "O-O-O"
	}

	var s []byte
	if m.piece.kind == Pawn {
		if m.captured != nil {
			s = append(s, byte('a'+m.piece.square.File()), 'x')
		}
	} else {
		s = append(s, "PNBRQK"[m.piece.kind])
		if m.captured != nil {
			s = append(s, 'x')
		}
	}
	s = append(s, m.dest.String()...)
	if m.kind == Promotion {
		s = append(s, '=', "PNBRQK"[m.promoted])
	}
	return string(s)
}

// UCI renders the move in coordinate notation ("e2e4", "e7e8q").
func (m *Move) UCI() string {
	s := m.piece.square.String() + m.dest.String()
	if m.kind == Promotion {
		s += string(m.promoted.Char())
	}
	return s
}

// FindMove resolves from/to coordinates against the current player's legal
// moves. A bare coordinate pair resolves promotions to the queen; use
// FindPromotion for a specific kind. Returns nil when nothing matches.
func FindMove(b *Board, from, to Square) *Move {
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.kind == Promotion && m.promoted != Queen {
			continue
		}
		return m
	}
	return nil
}

// FindPromotion resolves a promotion to the given kind against the current
// player's legal moves. Returns nil when nothing matches.
func FindPromotion(b *Board, from, to Square, promoted PieceKind) *Move {
	for _, m := range b.CurrentPlayer().LegalMoves() {
		if m.kind == Promotion && m.From() == from && m.To() == to && m.promoted == promoted {
			return m
		}
	}
	return nil
}
