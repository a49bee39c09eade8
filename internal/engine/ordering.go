package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// Move ordering priorities.
const (
	ttMoveScore     = 10000000 // hash move gets highest priority
	goodCaptureBase = 1000000  // base score for winning captures
	killerScore1    = 900000   // first killer move
	killerScore2    = 800000   // second killer move
	badCaptureBase  = -100000  // captures that lose the exchange
)

// MVV-LVA (Most Valuable Victim - Least Valuable Attacker) scores.
// Higher score = search first.
var mvvLva = [6][6]int{
	//       P    N    B    R    Q    K  (attacker)
	/* P */ {15, 14, 14, 13, 12, 11}, // Pawn victim
	/* N */ {25, 24, 24, 23, 22, 21}, // Knight victim
	/* B */ {35, 34, 34, 33, 32, 31}, // Bishop victim
	/* R */ {45, 44, 44, 43, 42, 41}, // Rook victim
	/* Q */ {55, 54, 54, 53, 52, 51}, // Queen victim
	/* K */ {0, 0, 0, 0, 0, 0},       // King can't be captured
}

// moveKey identifies a move by structure so the ordering and the
// transposition table can remember moves across searches without
// keeping a pooled *Move alive.
type moveKey struct {
	from, to board.Square
	promoted board.PieceKind
}

var noMoveKey = moveKey{from: board.NoSquare, to: board.NoSquare, promoted: board.NoPieceKind}

func keyOf(m *board.Move) moveKey {
	return moveKey{from: m.From(), to: m.To(), promoted: m.Promoted()}
}

func (k moveKey) matches(m *board.Move) bool {
	return k.from == m.From() && k.to == m.To() && k.promoted == m.Promoted()
}

// MoveOrderer scores moves for the search: hash move first, then
// winning captures by MVV-LVA, promotions, killers and quiet history,
// with losing captures banished to the back of the line.
type MoveOrderer struct {
	killers [MaxPly][2]moveKey
	history [64][64]int
}

func NewMoveOrderer() *MoveOrderer {
	mo := &MoveOrderer{}
	for i := range mo.killers {
		mo.killers[i][0] = noMoveKey
		mo.killers[i][1] = noMoveKey
	}
	return mo
}

// Clear forgets the killers and ages the history between searches.
func (mo *MoveOrderer) Clear() {
	for i := range mo.killers {
		mo.killers[i][0] = noMoveKey
		mo.killers[i][1] = noMoveKey
	}
	for i := range mo.history {
		for j := range mo.history[i] {
			mo.history[i][j] /= 2
		}
	}
}

// Score assigns an ordering score to every move in the list.
func (mo *MoveOrderer) Score(b *board.Board, moves []*board.Move, ply int, ttMove moveKey) []int {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = mo.scoreMove(b, m, ply, ttMove)
	}
	return scores
}

func (mo *MoveOrderer) scoreMove(b *board.Board, m *board.Move, ply int, ttMove moveKey) int {
	if ttMove.matches(m) {
		return ttMoveScore
	}

	if m.IsCapture() {
		if see := ExchangeScore(b, m); see < 0 {
			return badCaptureBase + see
		}
		victim := m.Captured().Kind()
		attacker := m.MovedPiece().Kind()
		return goodCaptureBase + mvvLva[victim][attacker]*1000
	}

	if m.Kind() == board.Promotion {
		return goodCaptureBase - 1000 + int(m.Promoted())*100
	}

	if ply < MaxPly {
		if mo.killers[ply][0].matches(m) {
			return killerScore1
		}
		if mo.killers[ply][1].matches(m) {
			return killerScore2
		}
	}

	return mo.history[m.From()][m.To()]
}

// PickMove moves the best remaining move to index, sorting only as much
// of the list as the search actually consumes.
func PickMove(moves []*board.Move, scores []int, index int) {
	best := index
	for j := index + 1; j < len(moves); j++ {
		if scores[j] > scores[best] {
			best = j
		}
	}
	if best != index {
		moves[index], moves[best] = moves[best], moves[index]
		scores[index], scores[best] = scores[best], scores[index]
	}
}

// UpdateKillers records a quiet move that caused a beta cutoff.
func (mo *MoveOrderer) UpdateKillers(m *board.Move, ply int) {
	if ply >= MaxPly || m.IsCapture() {
		return
	}
	k := keyOf(m)
	if mo.killers[ply][0] == k {
		return
	}
	mo.killers[ply][1] = mo.killers[ply][0]
	mo.killers[ply][0] = k
}

// UpdateHistory adjusts the quiet history score for a move.
func (mo *MoveOrderer) UpdateHistory(m *board.Move, depth int, good bool) {
	from, to := m.From(), m.To()
	bonus := depth * depth
	if good {
		mo.history[from][to] += bonus
		// Scale everything down before the scores overflow the ordering
		// bands.
		if mo.history[from][to] > 400000 {
			for i := range mo.history {
				for j := range mo.history[i] {
					mo.history[i][j] /= 2
				}
			}
		}
	} else {
		mo.history[from][to] -= bonus
		if mo.history[from][to] < -400000 {
			mo.history[from][to] = -400000
		}
	}
}
