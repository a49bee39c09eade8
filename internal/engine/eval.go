package engine

import (
	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// Term base values in centipawns. The middlegame is the reference
// stage; Weights scales each term up or down for the other stages.
const (
	checkBonus            = 45.0
	castledBonus          = 25.0
	tempoBonus            = 10.0
	bishopPairBonus       = 25.0
	rookOpenFileBonus     = 20.0
	rookSemiOpenFileBonus = 10.0
	rookSeventhBonus      = 30.0
	rookSeventhPawnsBonus = 15.0
	rookSeventhPairBonus  = 50.0
	connectedRooksBonus   = 10.0
	stackedRooksBonus     = 20.0
	protectedPieceBonus   = 5.0
	hangingPiecePenalty   = 40.0
	doubledPawnPenalty    = 15.0
	isolatedPawnPenalty   = 20.0
	backwardPawnPenalty   = 15.0
	pawnChainBonus        = 6.0
	pawnPhalanxBonus      = 4.0
	pawnIslandPenalty     = 10.0
	passedProtectedBonus  = 15.0
	passedConnectedBonus  = 20.0
	passedFreePathBonus   = 30.0
	passedRunnerBonus     = 200.0
	pawnShieldBonus       = 10.0
	pawnShieldMissing     = 15.0
	openFileNearKing      = 20.0
	semiOpenFileNearKing  = 10.0
	openDiagonalNearKing  = 8.0
	queenSortiePenalty    = 15.0
)

// passedPawnBonus is indexed by the pawn's relative rank.
var passedPawnBonus = [8]float64{0, 10, 20, 40, 70, 120, 200, 0}

// passedKingRace is indexed by a king distance: entry d rewards a
// friendly king standing 7-d from the pawn, or an enemy king d away
// from the promotion square.
var passedKingRace = [8]float64{0, 0, 10, 20, 30, 40, 50, 60}

// kingTropism weighs how much each attacker kind cares about distance
// to the enemy king. Indexed by PieceKind.
var kingTropism = [6]float64{0, 3, 2, 2, 5, 0}

// mobilityWeight prices one candidate move per piece kind. Pawn pushes
// and king steps say nothing about piece activity. Indexed by PieceKind.
var mobilityWeight = [6]float64{0, 4, 5, 2, 1, 0}

// Weights scales the evaluation terms for one game stage. Every term
// is linear in its weight, so two weight sets can be blended and the
// blend scores exactly between them.
type Weights struct {
	Material     float64
	Location     float64 // piece-square tables
	KingEndgame  float64 // share of the endgame king table
	Mobility     float64
	Check        float64
	Castled      float64
	BishopPair   float64
	RookOpenFile float64
	RookSeventh  float64
	RookLink     float64 // connected and stacked rook pairs
	Protection   float64 // pieces covered by a friend, or left hanging
	DoubledPawn  float64
	IsolatedPawn float64
	BackwardPawn float64
	PawnChain    float64 // pawns defended by or standing beside a friend
	PawnIslands  float64
	PassedPawn   float64
	PassedKing   float64 // king distances in the promotion race
	KingShield   float64 // pawn shield, open files and diagonals at the king
	KingTropism  float64
	QueenSortie  float64 // queen out before the minor pieces
	Tempo        float64
}

// Stage presets. The endgame trades king shelter for king activity and
// pushes passed pawns hard; the opening keeps the queen home and wants
// the king castled.
var (
	OpeningWeights = Weights{
		Material: 1, Location: 1, KingEndgame: 0,
		Mobility: 1.25, Check: 1, Castled: 1.5,
		BishopPair: 1, RookOpenFile: 0.5, RookSeventh: 0.5,
		RookLink: 0.5, Protection: 0.75,
		DoubledPawn: 1, IsolatedPawn: 1, BackwardPawn: 0.75,
		PawnChain: 1, PawnIslands: 0.75,
		PassedPawn: 0.5, PassedKing: 0,
		KingShield: 1, KingTropism: 0.5, QueenSortie: 1, Tempo: 1,
	}
	MiddlegameWeights = Weights{
		Material: 1, Location: 1, KingEndgame: 0,
		Mobility: 1, Check: 1, Castled: 1,
		BishopPair: 1.2, RookOpenFile: 1, RookSeventh: 1,
		RookLink: 1, Protection: 1,
		DoubledPawn: 1, IsolatedPawn: 1, BackwardPawn: 1,
		PawnChain: 1, PawnIslands: 1,
		PassedPawn: 1, PassedKing: 0.25,
		KingShield: 1, KingTropism: 1, QueenSortie: 0, Tempo: 1,
	}
	EndgameWeights = Weights{
		Material: 1, Location: 0.5, KingEndgame: 1,
		Mobility: 0.75, Check: 1, Castled: 0,
		BishopPair: 2, RookOpenFile: 1.25, RookSeventh: 1.3,
		RookLink: 1.5, Protection: 1.5,
		DoubledPawn: 1.3, IsolatedPawn: 1.25, BackwardPawn: 0.7,
		PawnChain: 1.25, PawnIslands: 1.25,
		PassedPawn: 2.5, PassedKing: 1,
		KingShield: 0, KingTropism: 0, QueenSortie: 0, Tempo: 0.5,
	}
)

// StandardEvaluator scores positions with a fixed weight set.
type StandardEvaluator struct {
	weights Weights
}

// NewStandardEvaluator builds an evaluator over an explicit weight set.
func NewStandardEvaluator(w Weights) *StandardEvaluator {
	return &StandardEvaluator{weights: w}
}

// NewOpeningEvaluator scores every position as an opening.
func NewOpeningEvaluator() *StandardEvaluator {
	return NewStandardEvaluator(OpeningWeights)
}

// NewMiddlegameEvaluator scores every position as a middlegame.
func NewMiddlegameEvaluator() *StandardEvaluator {
	return NewStandardEvaluator(MiddlegameWeights)
}

// NewEndgameEvaluator scores every position as an endgame.
func NewEndgameEvaluator() *StandardEvaluator {
	return NewStandardEvaluator(EndgameWeights)
}

func (e *StandardEvaluator) Evaluate(b *board.Board, depth int) float64 {
	if score, over := terminalScore(b, depth); over {
		return score
	}
	return scorePosition(b, e.weights)
}

// scorePosition is the shared term accumulator: White's score minus
// Black's, plus a tempo nudge for the side to move.
func scorePosition(b *board.Board, w Weights) float64 {
	occ := b.Occupancy()
	score := allianceScore(b, board.White, &occ, w) - allianceScore(b, board.Black, &occ, w)
	if b.SideToMove() == board.White {
		score += w.Tempo * tempoBonus
	} else {
		score -= w.Tempo * tempoBonus
	}
	return score
}

// evalSide is one alliance's view of the position. The scoring terms
// share its piece lists and pawn file counts instead of each rescanning
// the board.
type evalSide struct {
	board    *board.Board
	alliance board.Alliance
	player   *board.Player
	occ      *[64]*board.Piece
	own      []*board.Piece
	enemy    []*board.Piece
	pawns    []*board.Piece
	ownFiles [8]int
	oppFiles [8]int
}

func newEvalSide(b *board.Board, a board.Alliance, occ *[64]*board.Piece) *evalSide {
	s := &evalSide{
		board:    b,
		alliance: a,
		player:   b.PlayerFor(a),
		occ:      occ,
		own:      b.Pieces(a),
		enemy:    b.Pieces(a.Other()),
	}
	for _, p := range s.own {
		if p.Kind() == board.Pawn {
			s.pawns = append(s.pawns, p)
			s.ownFiles[p.Square().File()]++
		}
	}
	for _, p := range s.enemy {
		if p.Kind() == board.Pawn {
			s.oppFiles[p.Square().File()]++
		}
	}
	return s
}

func allianceScore(b *board.Board, a board.Alliance, occ *[64]*board.Piece, w Weights) float64 {
	s := newEvalSide(b, a, occ)

	score := s.material(w)
	score += s.mobility(w)
	score += s.pawnStructure(w)
	score += s.passedPawns(w)
	score += s.rooks(w)
	score += s.protection(w)
	score += s.kingSafety(w)

	if s.player.IsCastled() {
		score += w.Castled * castledBonus
	}
	if s.player.Opponent().IsInCheck() {
		score += w.Check * checkBonus
	}
	return score
}

// material sums piece values and square tables, along with the
// positional oddments that belong to no other term: the bishop pair
// and a queen wandering out while the minor pieces sit at home.
func (s *evalSide) material(w Weights) float64 {
	var score float64
	bishops := 0
	homeMinors := 0
	queenOut := false

	for _, p := range s.own {
		score += w.Material * float64(p.Value())
		score += w.Location * float64(p.LocationBonus())

		switch p.Kind() {
		case board.King:
			score += w.KingEndgame * float64(p.EndgameLocationBonus())
		case board.Bishop:
			bishops++
			if !p.HasMoved() {
				homeMinors++
			}
		case board.Knight:
			if !p.HasMoved() {
				homeMinors++
			}
		case board.Queen:
			if p.HasMoved() {
				queenOut = true
			}
		}
	}

	if bishops >= 2 {
		score += w.BishopPair * bishopPairBonus
	}
	if queenOut && homeMinors >= 2 {
		score -= w.QueenSortie * queenSortiePenalty
	}
	return score
}

// mobility prices the candidate moves by the piece that makes them.
func (s *evalSide) mobility(w Weights) float64 {
	if w.Mobility == 0 {
		return 0
	}
	var units float64
	for _, m := range s.player.CandidateMoves() {
		units += mobilityWeight[m.MovedPiece().Kind()]
	}
	return w.Mobility * units
}
