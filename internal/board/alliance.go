package board

// Alliance identifies one of the two sides in a game.
type Alliance uint8

const (
	White Alliance = iota
	Black
)

// Other returns the opposing alliance.
func (a Alliance) Other() Alliance {
	return a ^ 1
}

// Direction returns the forward pawn step for the alliance as a delta in
// the 0-63 square index: +8 for White, -8 for Black.
func (a Alliance) Direction() int {
	if a == White {
		return 8
	}
	return -8
}

// PromotionRank returns the rank index the alliance's pawns promote on.
func (a Alliance) PromotionRank() int {
	if a == White {
		return 7
	}
	return 0
}

// IsPromotionSquare reports whether sq lies on the alliance's promotion rank.
func (a Alliance) IsPromotionSquare(sq Square) bool {
	return sq.Rank() == a.PromotionRank()
}

// PawnStartRank returns the rank index the alliance's pawns start on.
func (a Alliance) PawnStartRank() int {
	if a == White {
		return 1
	}
	return 6
}

// HomeRank returns the rank index the alliance's back rank pieces start on.
func (a Alliance) HomeRank() int {
	if a == White {
		return 0
	}
	return 7
}

// String returns the alliance name.
func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}
