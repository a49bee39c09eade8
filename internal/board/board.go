// Package board models an immutable chess position. A Board is a
// snapshot: executing a move builds a new Board and leaves the old one
// untouched, and undoing a move builds the prior position from the move's
// own data. Pieces, moves and per-side players all hang off the snapshot
// they were computed for.
package board

import "strings"

// Board is one immutable position: piece placement, the side to move and
// the en-passant pawn, plus the derived piece collections, per-side
// players and position hash computed at construction. The pool reference
// is non-owning and may be nil, in which case moves are heap allocated.
type Board struct {
	squares    [64]*Piece
	sideToMove Alliance
	enPassant  *Piece

	whitePieces []*Piece
	blackPieces []*Piece
	whitePlayer *Player
	blackPlayer *Player
	hash        uint64

	pool     *MovePool
	released bool
}

// Builder accumulates a position and derives the full Board on Build.
type Builder struct {
	squares    [64]*Piece
	sideToMove Alliance
	enPassant  *Piece
	pool       *MovePool
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPool attaches a move pool; boards built from this builder and their
// descendants acquire moves from it.
func (bl *Builder) WithPool(mp *MovePool) *Builder {
	bl.pool = mp
	return bl
}

// Place puts a piece on its own square, replacing any occupant.
func (bl *Builder) Place(p *Piece) *Builder {
	bl.squares[p.square] = p
	return bl
}

// SetSideToMove sets whose turn the built board will be.
func (bl *Builder) SetSideToMove(a Alliance) *Builder {
	bl.sideToMove = a
	return bl
}

// SetEnPassant marks the pawn that just advanced two squares, or clears
// the marker when p is nil.
func (bl *Builder) SetEnPassant(p *Piece) *Builder {
	bl.enPassant = p
	return bl
}

// clear empties a square.
func (bl *Builder) clear(sq Square) {
	bl.squares[sq] = nil
}

// Build derives the piece collections, both players and the position hash
// and returns the finished board. Each side must have exactly one king on
// the board; a missing king is a corrupted position and panics.
func (bl *Builder) Build() *Board {
	b := &Board{
		squares:    bl.squares,
		sideToMove: bl.sideToMove,
		enPassant:  bl.enPassant,
		pool:       bl.pool,
	}

	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		if p == nil {
			continue
		}
		if p.alliance == White {
			b.whitePieces = append(b.whitePieces, p)
		} else {
			b.blackPieces = append(b.blackPieces, p)
		}
	}

	whiteMoves := pieceMoves(b, b.whitePieces)
	blackMoves := pieceMoves(b, b.blackPieces)
	b.whitePlayer = newPlayer(b, White, whiteMoves, blackMoves)
	b.blackPlayer = newPlayer(b, Black, blackMoves, whiteMoves)
	b.hash = computeHash(b)
	return b
}

// derive returns a builder seeded with this board's placement and pool.
// The en-passant marker is not carried over; it only survives a move when
// the move itself re-establishes it.
func (b *Board) derive() *Builder {
	return &Builder{squares: b.squares, pool: b.pool}
}

// CreateStandardBoard returns the standard chess starting position.
func CreateStandardBoard() *Board {
	bl := NewBuilder()

	bl.Place(NewPiece(Rook, White, A1))
	bl.Place(NewPiece(Knight, White, B1))
	bl.Place(NewPiece(Bishop, White, C1))
	bl.Place(NewPiece(Queen, White, D1))
	bl.Place(NewKing(White, E1, true, true))
	bl.Place(NewPiece(Bishop, White, F1))
	bl.Place(NewPiece(Knight, White, G1))
	bl.Place(NewPiece(Rook, White, H1))
	for sq := A2; sq <= H2; sq++ {
		bl.Place(NewPiece(Pawn, White, sq))
	}

	bl.Place(NewPiece(Rook, Black, A8))
	bl.Place(NewPiece(Knight, Black, B8))
	bl.Place(NewPiece(Bishop, Black, C8))
	bl.Place(NewPiece(Queen, Black, D8))
	bl.Place(NewKing(Black, E8, true, true))
	bl.Place(NewPiece(Bishop, Black, F8))
	bl.Place(NewPiece(Knight, Black, G8))
	bl.Place(NewPiece(Rook, Black, H8))
	for sq := A7; sq <= H7; sq++ {
		bl.Place(NewPiece(Pawn, Black, sq))
	}

	bl.SetSideToMove(White)
	return bl.Build()
}

// Piece returns the piece on sq, or nil for an empty square.
func (b *Board) Piece(sq Square) *Piece {
	return b.squares[sq]
}

// Occupancy returns a copy of the placement array. Callers may lift
// pieces out of the copy without disturbing the board.
func (b *Board) Occupancy() [64]*Piece {
	return b.squares
}

// SideToMove returns the alliance whose turn it is.
func (b *Board) SideToMove() Alliance {
	return b.sideToMove
}

// EnPassantPawn returns the pawn that just advanced two squares, or nil.
func (b *Board) EnPassantPawn() *Piece {
	return b.enPassant
}

// WhitePieces returns White's pieces in square order. Callers must not
// modify the slice.
func (b *Board) WhitePieces() []*Piece {
	return b.whitePieces
}

// BlackPieces returns Black's pieces in square order. Callers must not
// modify the slice.
func (b *Board) BlackPieces() []*Piece {
	return b.blackPieces
}

// AllPieces returns every piece on the board in square order.
func (b *Board) AllPieces() []*Piece {
	all := make([]*Piece, 0, len(b.whitePieces)+len(b.blackPieces))
	for sq := A1; sq <= H8; sq++ {
		if p := b.squares[sq]; p != nil {
			all = append(all, p)
		}
	}
	return all
}

// Pieces returns the given alliance's pieces in square order. Callers
// must not modify the slice.
func (b *Board) Pieces(a Alliance) []*Piece {
	if a == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// WhitePlayer returns White's player for this position.
func (b *Board) WhitePlayer() *Player {
	return b.whitePlayer
}

// BlackPlayer returns Black's player for this position.
func (b *Board) BlackPlayer() *Player {
	return b.blackPlayer
}

// PlayerFor returns the given alliance's player for this position.
func (b *Board) PlayerFor(a Alliance) *Player {
	if a == White {
		return b.whitePlayer
	}
	return b.blackPlayer
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	return b.PlayerFor(b.sideToMove)
}

// Hash returns the position hash, covering placement, side to move,
// castling rights and the en-passant target.
func (b *Board) Hash() uint64 {
	return b.hash
}

// WithPool rebuilds the board attached to the given pool, so every board
// derived from the result acquires its moves there.
func (b *Board) WithPool(mp *MovePool) *Board {
	bl := &Builder{
		squares:    b.squares,
		sideToMove: b.sideToMove,
		enPassant:  b.enPassant,
		pool:       mp,
	}
	return bl.Build()
}

// Release returns every move generated for this board to its pool. Call
// it only when the board and everything reachable from it are done with;
// the board's moves and players must not be used afterwards. Safe to call
// on boards without a pool, and idempotent.
func (b *Board) Release() {
	if b.pool == nil || b.released {
		return
	}
	b.released = true
	for _, m := range b.whitePlayer.moves {
		b.pool.Release(m)
	}
	for _, m := range b.blackPlayer.moves {
		b.pool.Release(m)
	}
}

// Equal reports structural equality: identical piece placement (including
// per-piece movement history), the same side to move and the same
// en-passant state. Derived caches and pool wiring are ignored.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.sideToMove != o.sideToMove || !b.enPassant.Equal(o.enPassant) {
		return false
	}
	for sq := A1; sq <= H8; sq++ {
		if !b.squares[sq].Equal(o.squares[sq]) {
			return false
		}
	}
	return true
}

// String renders the board as an 8x8 grid from White's perspective.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file <= 7; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == nil {
				sb.WriteString(" .")
			} else {
				sb.WriteByte(' ')
				sb.WriteString(p.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(b.sideToMove.String())
	sb.WriteString(" to move\n")
	return sb.String()
}
