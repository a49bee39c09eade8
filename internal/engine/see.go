package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// ExchangeScore statically evaluates the capture m: the material the
// moving side stands to win on the destination square once both sides
// have thrown their cheapest attackers at it. Positive means the
// capture wins material, zero is an even trade. Non-captures score
// zero.
//
// The swap runs on a lifted copy of the occupancy, so removing each
// attacker exposes the sliding pieces behind it.
func ExchangeScore(b *board.Board, m *board.Move) int {
	if !m.IsCapture() {
		return 0
	}

	occ := b.Occupancy()
	to := m.To()
	attacker := m.MovedPiece()
	victim := m.Captured()

	// Lift the first exchange off the board. The en passant victim does
	// not sit on the destination square, so clear its own square.
	occ[victim.Square()] = nil
	occ[attacker.Square()] = nil

	var gain [33]int
	d := 0
	gain[0] = victim.Value()

	cur := attacker
	side := attacker.Alliance().Other()
	for {
		next := board.AttackerOn(&occ, to, side)
		if next == nil {
			break
		}
		d++
		gain[d] = cur.Value() - gain[d-1]

		// Neither continuing nor standing pat recovers anything, so the
		// deeper swaps cannot change the outcome.
		if max(-gain[d-1], gain[d]) < 0 {
			break
		}

		occ[next.Square()] = nil
		cur = next
		side = side.Other()
	}

	for d > 0 {
		gain[d-1] = -max(-gain[d-1], gain[d])
		d--
	}
	return gain[0]
}
