// Package engine implements the search and evaluation side of the
// chess AI: a family of position evaluators, static exchange
// evaluation, and a fixed-depth alpha-beta searcher behind a
// single-request facade.
package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// Evaluator scores a position from White's point of view in
// centipawns. Positive favors White. depth is the remaining search
// depth at the node under evaluation; mate scores scale with it so the
// search prefers the faster mate.
type Evaluator interface {
	Evaluate(b *board.Board, depth int) float64
}

// Search score constants.
const (
	// MateScore is the base value of a delivered checkmate. It sits far
	// above any material total a game can reach.
	MateScore      = 100000.0
	mateDepthBonus = 1000.0

	// Infinity bounds the alpha-beta window.
	Infinity = 1.0e9

	// MaxPly caps the search stack.
	MaxPly = 64
)

// terminalScore resolves checkmated and stalemated positions. The
// second return is false when the game is still live and the caller
// should score the position on its merits.
func terminalScore(b *board.Board, depth int) (float64, bool) {
	pl := b.CurrentPlayer()
	if pl.IsInCheckMate() {
		score := MateScore + mateDepthBonus*float64(depth)
		if pl.Alliance() == board.White {
			score = -score
		}
		return score, true
	}
	if pl.IsInStaleMate() {
		return 0, true
	}
	return 0, false
}

// IsMateScore reports whether a score encodes a forced mate rather
// than a material judgement.
func IsMateScore(score float64) bool {
	return score > MateScore/2 || score < -MateScore/2
}

// MateDistance converts a mate score into the remaining depth at which
// the mate was delivered. Callers should check IsMateScore first.
func MateDistance(score float64) int {
	if score < 0 {
		score = -score
	}
	return int((score - MateScore) / mateDepthBonus)
}
