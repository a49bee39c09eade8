package board

// AttackerOn returns the least valuable piece of alliance a that attacks
// sq in the given occupancy, or nil. The occupancy is a plain placement
// array so callers can lift pieces out of it between calls, which is how
// exchange evaluation discovers x-ray attackers behind the piece that
// just captured.
func AttackerOn(occ *[64]*Piece, sq Square, a Alliance) *Piece {
	rankOff := -a.Direction() / 8
	for _, fileOff := range [2]int{-1, 1} {
		if src, ok := offsetSquare(sq, fileOff, rankOff); ok {
			if p := occ[src]; p != nil && p.kind == Pawn && p.alliance == a {
				return p
			}
		}
	}

	for _, src := range knightJumps[sq] {
		if p := occ[src]; p != nil && p.kind == Knight && p.alliance == a {
			return p
		}
	}

	if p := firstOnRays(occ, bishopRays[sq][:], Bishop, a); p != nil {
		return p
	}
	if p := firstOnRays(occ, rookRays[sq][:], Rook, a); p != nil {
		return p
	}
	// Queens attack along both ray families.
	if p := firstOnRays(occ, bishopRays[sq][:], Queen, a); p != nil {
		return p
	}
	if p := firstOnRays(occ, rookRays[sq][:], Queen, a); p != nil {
		return p
	}

	for _, src := range kingSteps[sq] {
		if p := occ[src]; p != nil && p.kind == King && p.alliance == a {
			return p
		}
	}
	return nil
}

// firstOnRays walks each ray away from the target square and reports the
// first occupant when it is the wanted attacker kind.
func firstOnRays(occ *[64]*Piece, rays [][]Square, kind PieceKind, a Alliance) *Piece {
	for _, ray := range rays {
		for _, s := range ray {
			p := occ[s]
			if p == nil {
				continue
			}
			if p.kind == kind && p.alliance == a {
				return p
			}
			break
		}
	}
	return nil
}
