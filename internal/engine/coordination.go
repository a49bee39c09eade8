package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// rooks scores file control and the rook pairings: the seventh rank,
// rooks defending each other, and rooks stacked on one file.
func (s *evalSide) rooks(w Weights) float64 {
	var rooks []*board.Piece
	for _, p := range s.own {
		if p.Kind() == board.Rook {
			rooks = append(rooks, p)
		}
	}
	if len(rooks) == 0 {
		return 0
	}

	var score float64
	seventh := 0
	for _, p := range rooks {
		f := p.Square().File()
		if s.ownFiles[f] == 0 {
			if s.oppFiles[f] == 0 {
				score += w.RookOpenFile * rookOpenFileBonus
			} else {
				score += w.RookOpenFile * rookSemiOpenFileBonus
			}
		}
		if p.Square().RelativeRank(s.alliance) == 6 {
			seventh++
		}
	}

	if seventh > 0 {
		score += w.RookSeventh * rookSeventhBonus * float64(seventh)
		// The seventh rank bites hardest while the enemy pawns still
		// sit on it.
		if s.enemyPawnsHome() {
			score += w.RookSeventh * rookSeventhPawnsBonus * float64(seventh)
		}
		if seventh >= 2 {
			score += w.RookSeventh * rookSeventhPairBonus
		}
	}

	if len(rooks) >= 2 && s.connectedOn(rooks[0].Square(), rooks[1].Square()) {
		score += w.RookLink * connectedRooksBonus
		if rooks[0].Square().File() == rooks[1].Square().File() {
			score += w.RookLink * stackedRooksBonus
		}
	}
	return score
}

// enemyPawnsHome reports whether any enemy pawn still stands on its
// starting rank.
func (s *evalSide) enemyPawnsHome() bool {
	home := s.alliance.Other().PawnStartRank()
	for _, p := range s.enemy {
		if p.Kind() == board.Pawn && p.Square().Rank() == home {
			return true
		}
	}
	return false
}

// connectedOn reports whether two squares share a rank or file with
// nothing standing between them.
func (s *evalSide) connectedOn(a, b board.Square) bool {
	var step int
	switch {
	case a.File() == b.File():
		step = 8
	case a.Rank() == b.Rank():
		step = 1
	default:
		return false
	}
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := int(lo) + step; sq < int(hi); sq += step {
		if s.occ[sq] != nil {
			return false
		}
	}
	return true
}

// protection rewards pieces covered by a friend and charges the ones
// left both loose and attacked. Pawns are priced in the pawn terms and
// the king never hangs.
func (s *evalSide) protection(w Weights) float64 {
	if w.Protection == 0 {
		return 0
	}
	var score float64
	for _, p := range s.own {
		if p.Kind() == board.Pawn || p.Kind() == board.King {
			continue
		}
		if board.AttackerOn(s.occ, p.Square(), s.alliance) != nil {
			score += w.Protection * protectedPieceBonus
		} else if board.AttackerOn(s.occ, p.Square(), s.alliance.Other()) != nil {
			score -= w.Protection * hangingPiecePenalty
		}
	}
	return score
}
