package board

// PseudoLegalMoves generates the piece's pseudo-legal moves against the
// given board: every move the piece could make by its own movement rules,
// before self-check filtering. Castles are not piece moves; the Player
// layer generates them, since their legality depends on both sides.
func (p *Piece) PseudoLegalMoves(b *Board) []*Move {
	switch p.kind {
	case Pawn:
		return p.pawnMoves(b)
	case Knight:
		return p.stepMoves(b, knightJumps[p.square])
	case Bishop:
		return p.rayMoves(b, bishopRays[p.square][:])
	case Rook:
		return p.rayMoves(b, rookRays[p.square][:])
	case Queen:
		moves := p.rayMoves(b, rookRays[p.square][:])
		return append(moves, p.rayMoves(b, bishopRays[p.square][:])...)
	case King:
		return p.stepMoves(b, kingSteps[p.square])
	}
	return nil
}

// pieceMoves generates the pseudo-legal moves of every piece in the slice.
func pieceMoves(b *Board, pieces []*Piece) []*Move {
	var moves []*Move
	for _, p := range pieces {
		moves = append(moves, p.PseudoLegalMoves(b)...)
	}
	return moves
}

// stepMoves generates moves to a fixed set of destination squares,
// used for knights and kings.
func (p *Piece) stepMoves(b *Board, steps []Square) []*Move {
	var moves []*Move
	for _, dest := range steps {
		occupant := b.squares[dest]
		switch {
		case occupant == nil:
			moves = append(moves, newQuietMove(b, p, dest))
		case occupant.alliance != p.alliance:
			moves = append(moves, newCaptureMove(b, p, dest, occupant))
		}
	}
	return moves
}

// rayMoves generates sliding moves along the given precomputed rays,
// stopping at the first occupied square on each.
func (p *Piece) rayMoves(b *Board, rays [][]Square) []*Move {
	var moves []*Move
	for _, ray := range rays {
		for _, dest := range ray {
			occupant := b.squares[dest]
			if occupant == nil {
				moves = append(moves, newQuietMove(b, p, dest))
				continue
			}
			if occupant.alliance != p.alliance {
				moves = append(moves, newCaptureMove(b, p, dest, occupant))
			}
			break
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes, diagonal captures, en
// passant captures and the four-kind promotion fan-out.
func (p *Piece) pawnMoves(b *Board) []*Move {
	var moves []*Move
	dir := p.alliance.Direction()

	if oneUp, ok := offsetSquare(p.square, 0, dir/8); ok && b.squares[oneUp] == nil {
		if p.alliance.IsPromotionSquare(oneUp) {
			moves = p.appendPromotions(b, moves, oneUp, nil)
		} else {
			moves = append(moves, newPawnPushMove(b, p, oneUp))
			if !p.hasMoved && p.square.Rank() == p.alliance.PawnStartRank() {
				twoUp := Square(int(oneUp) + dir)
				if b.squares[twoUp] == nil {
					moves = append(moves, newDoublePawnPushMove(b, p, twoUp))
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		dest, ok := offsetSquare(p.square, df, dir/8)
		if !ok {
			continue
		}
		victim := b.squares[dest]
		if victim == nil || victim.alliance == p.alliance {
			continue
		}
		if p.alliance.IsPromotionSquare(dest) {
			moves = p.appendPromotions(b, moves, dest, victim)
		} else {
			moves = append(moves, newCaptureMove(b, p, dest, victim))
		}
	}

	if ep := b.enPassant; ep != nil && ep.alliance != p.alliance &&
		ep.square.Rank() == p.square.Rank() && absInt(ep.square.File()-p.square.File()) == 1 {
		dest := Square(int(ep.square) + dir)
		if dest.IsValid() && b.squares[dest] == nil {
			moves = append(moves, newEnPassantMove(b, p, dest, ep))
		}
	}

	return moves
}

// appendPromotions fans a pawn arrival on the promotion rank out into the
// four promotion kinds.
func (p *Piece) appendPromotions(b *Board, moves []*Move, dest Square, victim *Piece) []*Move {
	for _, kind := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
		moves = append(moves, newPromotionMove(b, p, dest, victim, kind))
	}
	return moves
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
