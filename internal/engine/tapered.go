package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// The game phase runs from 0 (opening) to PhaseScale (bare endgame),
// measured by how much non-pawn material has left the board. Knights
// and bishops count one phase unit, rooks two, queens four.
const (
	PhaseScale      = 256
	startPhaseUnits = 24
)

// phaseUnits is indexed by PieceKind.
var phaseUnits = [6]int{0, 1, 1, 2, 4, 0}

// PhaseOf measures how far the game has progressed out of the opening.
func PhaseOf(b *board.Board) int {
	remaining := 0
	for _, p := range b.AllPieces() {
		remaining += phaseUnits[p.Kind()]
	}
	// Promoted material cannot rewind the game.
	if remaining > startPhaseUnits {
		remaining = startPhaseUnits
	}
	phase := (startPhaseUnits - remaining) * PhaseScale / startPhaseUnits

	// Positions that still behave like an opening get pulled back toward
	// one: an uncastled king or a crowded pawn center.
	if openingCharacter(b) {
		phase -= phase / 4
	}
	return phase
}

var centerSquares = [4]board.Square{board.D4, board.E4, board.D5, board.E5}

func openingCharacter(b *board.Board) bool {
	if !b.WhitePlayer().IsCastled() || !b.BlackPlayer().IsCastled() {
		return true
	}
	pawns := 0
	for _, sq := range centerSquares {
		if p := b.Piece(sq); p != nil && p.Kind() == board.Pawn {
			pawns++
		}
	}
	return pawns >= 3
}

// WeightsForPhase blends the stage presets piecewise linearly: opening
// into middlegame over the first half of the scale, middlegame into
// endgame over the second. The blend is continuous across the whole
// range, so one captured piece never jolts the evaluation.
func WeightsForPhase(phase int) Weights {
	const half = PhaseScale / 2
	switch {
	case phase <= 0:
		return OpeningWeights
	case phase >= PhaseScale:
		return EndgameWeights
	case phase <= half:
		return blendWeights(OpeningWeights, MiddlegameWeights, float64(phase)/half)
	default:
		return blendWeights(MiddlegameWeights, EndgameWeights, float64(phase-half)/half)
	}
}

func blendWeights(from, to Weights, t float64) Weights {
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return Weights{
		Material:     lerp(from.Material, to.Material),
		Location:     lerp(from.Location, to.Location),
		KingEndgame:  lerp(from.KingEndgame, to.KingEndgame),
		Mobility:     lerp(from.Mobility, to.Mobility),
		Check:        lerp(from.Check, to.Check),
		Castled:      lerp(from.Castled, to.Castled),
		BishopPair:   lerp(from.BishopPair, to.BishopPair),
		RookOpenFile: lerp(from.RookOpenFile, to.RookOpenFile),
		RookSeventh:  lerp(from.RookSeventh, to.RookSeventh),
		RookLink:     lerp(from.RookLink, to.RookLink),
		Protection:   lerp(from.Protection, to.Protection),
		DoubledPawn:  lerp(from.DoubledPawn, to.DoubledPawn),
		IsolatedPawn: lerp(from.IsolatedPawn, to.IsolatedPawn),
		BackwardPawn: lerp(from.BackwardPawn, to.BackwardPawn),
		PawnChain:    lerp(from.PawnChain, to.PawnChain),
		PawnIslands:  lerp(from.PawnIslands, to.PawnIslands),
		PassedPawn:   lerp(from.PassedPawn, to.PassedPawn),
		PassedKing:   lerp(from.PassedKing, to.PassedKing),
		KingShield:   lerp(from.KingShield, to.KingShield),
		KingTropism:  lerp(from.KingTropism, to.KingTropism),
		QueenSortie:  lerp(from.QueenSortie, to.QueenSortie),
		Tempo:        lerp(from.Tempo, to.Tempo),
	}
}

// TaperedEvaluator rebuilds the weight blend for every position it
// scores.
type TaperedEvaluator struct{}

func NewTaperedEvaluator() *TaperedEvaluator {
	return &TaperedEvaluator{}
}

func (e *TaperedEvaluator) Evaluate(b *board.Board, depth int) float64 {
	if score, over := terminalScore(b, depth); over {
		return score
	}
	return scorePosition(b, WeightsForPhase(PhaseOf(b)))
}
