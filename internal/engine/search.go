package engine

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// ErrNoLegalMoves is returned when a search is requested on a position
// that is already decided.
var ErrNoLegalMoves = errors.New("engine: no legal moves in position")

// Progress reports search activity. The searcher leaves RequestID
// empty; the engine facade fills it in.
type Progress struct {
	RequestID   string
	Depth       int
	CurrentMove string
	MoveNumber  int
	TotalMoves  int
	Score       float64
	Nodes       uint64
	Elapsed     time.Duration
}

// Result is the outcome of a completed search. Score is from the
// moving side's point of view. The pool counters describe the search's
// private move pool.
type Result struct {
	RequestID  string
	Move       *board.Move
	Score      float64
	Depth      int
	Nodes      uint64
	Elapsed    time.Duration
	PoolHits   uint64
	PoolMisses uint64
}

// Searcher runs fixed-depth alpha-beta over the board's legality
// transitions: candidates are tried through MakeMove and the ones that
// leave the mover in check fall out naturally.
type Searcher struct {
	eval    Evaluator
	tt      *TranspositionTable
	orderer *MoveOrderer

	nodes    atomic.Uint64
	stopFlag atomic.Bool

	progress func(Progress)
}

// NewSearcher creates a searcher over the given evaluator and table.
func NewSearcher(eval Evaluator, tt *TranspositionTable) *Searcher {
	return &Searcher{eval: eval, tt: tt, orderer: NewMoveOrderer()}
}

// Stop asks the running search to wind down. The search keeps the best
// move it has fully examined.
func (s *Searcher) Stop() {
	s.stopFlag.Store(true)
}

// Reset prepares the searcher for a new search.
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.nodes.Store(0)
	s.orderer.Clear()
}

// Nodes returns the number of nodes visited so far.
func (s *Searcher) Nodes() uint64 {
	return s.nodes.Load()
}

// Search deepens iteratively up to the fixed depth and returns the best
// root move. The board's pool, if any, recycles every child position
// the search visits.
func (s *Searcher) Search(b *board.Board, depth int) (*Result, error) {
	start := time.Now()
	pl := b.CurrentPlayer()
	legal := pl.LegalMoves()
	if len(legal) == 0 {
		return nil, ErrNoLegalMoves
	}
	if depth < 1 {
		depth = 1
	}
	if depth > MaxPly {
		depth = MaxPly
	}

	var best *board.Move
	var bestScore float64
	completed := 0

	for d := 1; d <= depth; d++ {
		move, score := s.searchRoot(b, d, len(legal), start)
		if move == nil {
			break
		}
		best, bestScore = move, score
		completed = d
		if s.stopFlag.Load() || IsMateScore(bestScore) {
			break
		}
	}

	// Stopped before the first root move finished: any legal move beats
	// no answer at all.
	if best == nil {
		best = legal[0]
	}

	return &Result{
		Move:    best,
		Score:   bestScore,
		Depth:   completed,
		Nodes:   s.nodes.Load(),
		Elapsed: time.Since(start),
	}, nil
}

// searchRoot runs one full-window iteration and returns the best root
// move it fully examined, or nil if the search was stopped first.
func (s *Searcher) searchRoot(b *board.Board, depth, total int, start time.Time) (*board.Move, float64) {
	pl := b.CurrentPlayer()
	moves := append([]*board.Move(nil), pl.LegalMoves()...)

	ttKey := noMoveKey
	if entry, ok := s.tt.Probe(b.Hash()); ok {
		ttKey = entry.best
	}
	scores := s.orderer.Score(b, moves, 0, ttKey)

	var best *board.Move
	alpha := -Infinity
	for i := range moves {
		PickMove(moves, scores, i)
		m := moves[i]

		child := pl.MakeMove(m).Board()
		score := -s.alphaBeta(child, depth-1, -Infinity, -alpha, 1)
		child.Release()

		if s.stopFlag.Load() {
			break
		}

		if score > alpha {
			alpha = score
			best = m
		}

		s.report(Progress{
			Depth:       depth,
			CurrentMove: m.String(),
			MoveNumber:  i + 1,
			TotalMoves:  total,
			Score:       alpha,
			Nodes:       s.nodes.Load(),
			Elapsed:     time.Since(start),
		})
	}

	if best != nil {
		s.tt.Store(b.Hash(), depth, alpha, BoundExact, keyOf(best))
	}
	return best, alpha
}

func (s *Searcher) alphaBeta(b *board.Board, depth int, alpha, beta float64, ply int) float64 {
	s.nodes.Add(1)
	if s.stopFlag.Load() {
		return alpha
	}

	if depth <= 0 || ply >= MaxPly {
		return s.evaluate(b, depth)
	}

	hash := b.Hash()
	ttKey := noMoveKey
	if entry, ok := s.tt.Probe(hash); ok {
		if int(entry.depth) >= depth {
			switch entry.bound {
			case BoundExact:
				return entry.score
			case BoundLower:
				if entry.score > alpha {
					alpha = entry.score
				}
			case BoundUpper:
				if entry.score < beta {
					beta = entry.score
				}
			}
			if alpha >= beta {
				return entry.score
			}
		}
		ttKey = entry.best
	}

	pl := b.CurrentPlayer()
	moves := append([]*board.Move(nil), pl.CandidateMoves()...)
	scores := s.orderer.Score(b, moves, ply, ttKey)

	bound := BoundUpper
	bestKey := noMoveKey
	bestScore := -Infinity
	played := 0

	for i := range moves {
		PickMove(moves, scores, i)
		m := moves[i]

		tr := pl.MakeMove(m)
		if tr.Status() != board.StatusDone {
			continue
		}
		played++

		child := tr.Board()
		score := -s.alphaBeta(child, depth-1, -beta, -alpha, ply+1)
		child.Release()

		if s.stopFlag.Load() {
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestKey = keyOf(m)
		}
		if score > alpha {
			alpha = score
			bound = BoundExact
		}
		if alpha >= beta {
			s.orderer.UpdateKillers(m, ply)
			s.orderer.UpdateHistory(m, depth, true)
			bound = BoundLower
			break
		}
	}

	// No candidate survived the legality filter: mate or stalemate.
	if played == 0 {
		if pl.IsInCheck() {
			return -(MateScore + mateDepthBonus*float64(depth))
		}
		return 0
	}

	s.tt.Store(hash, depth, bestScore, bound, bestKey)
	return bestScore
}

// evaluate converts the white-positive evaluation into the moving
// side's point of view for negamax.
func (s *Searcher) evaluate(b *board.Board, depth int) float64 {
	score := s.eval.Evaluate(b, depth)
	if b.SideToMove() == board.Black {
		return -score
	}
	return score
}

func (s *Searcher) report(p Progress) {
	if s.progress != nil {
		s.progress(p)
	}
}
