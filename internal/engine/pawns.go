package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// pawnStructure charges the static pawn weaknesses and credits the
// links that hold the structure together.
func (s *evalSide) pawnStructure(w Weights) float64 {
	var score float64

	for _, p := range s.pawns {
		sq := p.Square()
		f := sq.File()

		// Doubled pawns: charge every pawn stacked on the file beyond
		// the first its share of the penalty.
		if s.ownFiles[f] > 1 {
			score -= w.DoubledPawn * doubledPawnPenalty * float64(s.ownFiles[f]-1) / float64(s.ownFiles[f])
		}

		isolated := (f == 0 || s.ownFiles[f-1] == 0) && (f == 7 || s.ownFiles[f+1] == 0)
		if isolated {
			// No neighbors means nothing to chain with and nothing to
			// trail behind.
			score -= w.IsolatedPawn * isolatedPawnPenalty
			continue
		}

		if s.pawnBackward(p) {
			score -= w.BackwardPawn * backwardPawnPenalty
		}

		switch {
		case pawnControls(s.occ, sq, s.alliance):
			score += w.PawnChain * pawnChainBonus
		case s.pawnBeside(p):
			score += w.PawnChain * pawnPhalanxBonus
		}
	}

	if islands := s.pawnIslands(); islands > 1 {
		score -= w.PawnIslands * pawnIslandPenalty * float64(islands-1)
	}
	return score
}

// pawnBackward reports whether the pawn trails its file neighbors:
// every pawn that could ever step up beside it is already ahead, and an
// enemy pawn controls the stop square, so advancing just loses it.
func (s *evalSide) pawnBackward(p *board.Piece) bool {
	sq := p.Square()
	rel := sq.RelativeRank(s.alliance)
	if rel <= 1 {
		return false
	}
	for _, q := range s.pawns {
		df := q.Square().File() - sq.File()
		if df != -1 && df != 1 {
			continue
		}
		if q.Square().RelativeRank(s.alliance) <= rel {
			return false
		}
	}
	stop := board.Square(int(sq) + s.alliance.Direction())
	return pawnControls(s.occ, stop, s.alliance.Other())
}

// pawnBeside reports whether a friendly pawn stands directly beside p,
// forming a phalanx.
func (s *evalSide) pawnBeside(p *board.Piece) bool {
	sq := p.Square()
	for _, df := range [2]int{-1, 1} {
		f := sq.File() + df
		if f < 0 || f > 7 {
			continue
		}
		q := s.occ[board.NewSquare(f, sq.Rank())]
		if q != nil && q.Kind() == board.Pawn && q.Alliance() == s.alliance {
			return true
		}
	}
	return false
}

// pawnIslands counts the contiguous runs of files holding at least one
// friendly pawn.
func (s *evalSide) pawnIslands() int {
	islands := 0
	inRun := false
	for f := 0; f < 8; f++ {
		if s.ownFiles[f] > 0 {
			if !inRun {
				islands++
			}
			inRun = true
		} else {
			inRun = false
		}
	}
	return islands
}

// passedPawns scores the pawns no enemy pawn can stop: how far along
// they are, how the structure carries them, and whether the kings can
// still decide the race.
func (s *evalSide) passedPawns(w Weights) float64 {
	if w.PassedPawn == 0 && w.PassedKing == 0 {
		return 0
	}
	var score float64
	ownKing := s.player.King().Square()
	enemyKing := s.player.Opponent().King().Square()

	for _, p := range s.pawns {
		if !s.passed(p) {
			continue
		}
		sq := p.Square()
		rel := sq.RelativeRank(s.alliance)

		bonus := passedPawnBonus[rel]
		if pawnControls(s.occ, sq, s.alliance) {
			bonus += passedProtectedBonus
		}
		if s.connectedPassed(p) {
			bonus += passedConnectedBonus
		}
		clear := s.clearAhead(p)
		if clear {
			bonus += passedFreePathBonus
		}
		score += w.PassedPawn * bonus

		// The king race: a friendly king escorting the pawn, or an
		// enemy king too far from the promotion square to catch it.
		promo := board.NewSquare(sq.File(), s.alliance.PromotionRank())
		race := passedKingRace[7-min(chebyshev(ownKing, sq), 7)]
		race += passedKingRace[min(chebyshev(enemyKing, promo), 7)]
		if clear && rel >= 4 {
			lead := 7 - rel + 1
			if s.board.SideToMove() == s.alliance {
				lead--
			}
			if chebyshev(enemyKing, sq) > lead {
				race += passedRunnerBonus
			}
		}
		score += w.PassedKing * race
	}
	return score
}

// passed reports whether no enemy pawn on this or an adjacent file can
// ever block or capture the pawn on its way to promotion.
func (s *evalSide) passed(p *board.Piece) bool {
	f := p.Square().File()
	rel := p.Square().RelativeRank(s.alliance)
	for _, q := range s.enemy {
		if q.Kind() != board.Pawn {
			continue
		}
		qf := q.Square().File()
		if qf < f-1 || qf > f+1 {
			continue
		}
		// The enemy pawn's progress is measured on its own side, so
		// compare on this pawn's scale instead.
		if 7-q.Square().RelativeRank(s.alliance.Other()) > rel {
			return false
		}
	}
	return true
}

// connectedPassed reports whether another passed pawn stands on an
// adjacent file.
func (s *evalSide) connectedPassed(p *board.Piece) bool {
	f := p.Square().File()
	for _, q := range s.pawns {
		if q == p {
			continue
		}
		df := q.Square().File() - f
		if (df == -1 || df == 1) && s.passed(q) {
			return true
		}
	}
	return false
}

// clearAhead reports whether the squares in front of the pawn on its
// file are all empty.
func (s *evalSide) clearAhead(p *board.Piece) bool {
	dir := s.alliance.Direction()
	for sq := int(p.Square()) + dir; sq >= 0 && sq < 64; sq += dir {
		if s.occ[sq] != nil {
			return false
		}
	}
	return true
}

// pawnControls reports whether a pawn of alliance a attacks sq.
func pawnControls(occ *[64]*board.Piece, sq board.Square, a board.Alliance) bool {
	r := sq.Rank() - a.Direction()/8
	if r < 0 || r > 7 {
		return false
	}
	for _, df := range [2]int{-1, 1} {
		f := sq.File() + df
		if f < 0 || f > 7 {
			continue
		}
		p := occ[board.NewSquare(f, r)]
		if p != nil && p.Kind() == board.Pawn && p.Alliance() == a {
			return true
		}
	}
	return false
}
