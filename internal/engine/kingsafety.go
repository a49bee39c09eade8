package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// kingSafety measures the shelter in front of the king and the enemy
// pressure bearing down on it.
func (s *evalSide) kingSafety(w Weights) float64 {
	var score float64
	king := s.player.King().Square()
	kf, kr := king.File(), king.Rank()
	dir := s.alliance.Direction() / 8

	if w.KingShield != 0 {
		// Pawn shield only matters while the king sits on its back two
		// ranks.
		if king.RelativeRank(s.alliance) <= 1 {
			for df := -1; df <= 1; df++ {
				f, r := kf+df, kr+dir
				if f < 0 || f > 7 || r < 0 || r > 7 {
					continue
				}
				p := s.occ[board.NewSquare(f, r)]
				if p != nil && p.Kind() == board.Pawn && p.Alliance() == s.alliance {
					score += w.KingShield * pawnShieldBonus
				} else {
					score -= w.KingShield * pawnShieldMissing
				}
			}
		}

		for df := -1; df <= 1; df++ {
			f := kf + df
			if f < 0 || f > 7 {
				continue
			}
			if s.ownFiles[f] == 0 {
				if s.oppFiles[f] == 0 {
					score -= w.KingShield * openFileNearKing
				} else {
					score -= w.KingShield * semiOpenFileNearKing
				}
			}
		}

		// A diagonal running open from the king toward the enemy camp
		// invites bishop and queen batteries no pawn can block.
		for _, df := range [2]int{-1, 1} {
			run := 0
			for f, r := kf+df, kr+dir; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+df, r+dir {
				p := s.occ[board.NewSquare(f, r)]
				if p != nil {
					if p.Kind() == board.Pawn && p.Alliance() == s.alliance {
						run = 0
					}
					break
				}
				run++
			}
			score -= w.KingShield * openDiagonalNearKing * float64(min(run, 3))
		}
	}

	if w.KingTropism != 0 {
		for _, q := range s.enemy {
			wgt := kingTropism[q.Kind()]
			if wgt == 0 {
				continue
			}
			score -= w.KingTropism * wgt * float64(7-chebyshev(q.Square(), king))
		}
	}

	return score
}

func chebyshev(a, b board.Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
