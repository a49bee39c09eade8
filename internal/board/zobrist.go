package board

// Zobrist hash keys for position hashing.
// Uses a PRNG with a fixed seed for reproducibility.
var (
	zobristPiece      [2][6][64]uint64 // [Alliance][PieceKind][Square]
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [16]uint64       // All 16 rights combinations
	zobristSideToMove uint64           // XOR when Black to move
)

// Castle rights bits within the hash key index.
const (
	castleWhiteKingSide uint8 = 1 << iota
	castleWhiteQueenSide
	castleBlackKingSide
	castleBlackQueenSide
)

func init() {
	rng := &prng{state: 0xD1CEB0A2D5EED001}

	for a := White; a <= Black; a++ {
		for kind := Pawn; kind <= King; kind++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[a][kind][sq] = rng.next()
			}
		}
	}
	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}
	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator for reproducible Zobrist keys.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// computeHash folds placement, castling rights, the en-passant target and
// the side to move into one key. Boards that repeat the same position
// hash identically, which is what the repetition counter keys on.
func computeHash(b *Board) uint64 {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		if p := b.squares[sq]; p != nil {
			h ^= zobristPiece[p.alliance][p.kind][sq]
		}
	}
	h ^= zobristCastling[b.castleRightsMask()]
	if b.enPassant != nil {
		h ^= zobristEnPassant[b.enPassant.square.File()]
	}
	if b.sideToMove == Black {
		h ^= zobristSideToMove
	}
	return h
}

// castleRightsMask derives the four still-available castles from king and
// rook state: the king must be unmoved and hold the right, and the
// matching corner rook must be unmoved on its home square.
func (b *Board) castleRightsMask() uint8 {
	var mask uint8
	if b.sideCanCastle(White, true) {
		mask |= castleWhiteKingSide
	}
	if b.sideCanCastle(White, false) {
		mask |= castleWhiteQueenSide
	}
	if b.sideCanCastle(Black, true) {
		mask |= castleBlackKingSide
	}
	if b.sideCanCastle(Black, false) {
		mask |= castleBlackQueenSide
	}
	return mask
}

func (b *Board) sideCanCastle(a Alliance, kingSide bool) bool {
	king := b.PlayerFor(a).king
	if king.hasMoved {
		return false
	}
	rookFile := 0
	if kingSide {
		if !king.kingSideRights {
			return false
		}
		rookFile = 7
	} else if !king.queenSideRights {
		return false
	}
	rook := b.squares[NewSquare(rookFile, a.HomeRank())]
	return rook != nil && rook.kind == Rook && rook.alliance == a && !rook.hasMoved
}
