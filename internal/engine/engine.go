package engine

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

// ErrThinkInProgress is returned when a think request arrives while a
// search is already running. Requests are rejected, never queued.
var ErrThinkInProgress = errors.New("engine: think already in progress")

// State is the engine request state.
type State int32

const (
	StateIdle State = iota
	StateThinking
)

func (s State) String() string {
	if s == StateThinking {
		return "thinking"
	}
	return "idle"
}

// Engine serializes search requests over a single searcher. Every
// search runs on its own move pool, reports progress without ever
// blocking, and is tagged with a request id so asynchronous callers
// can pair results with requests.
type Engine struct {
	searcher *Searcher
	tt       *TranspositionTable

	state atomic.Int32

	progress chan Progress
	results  chan Result
}

// NewEngine creates an engine around the given evaluator with a
// transposition table of the given size in MB.
func NewEngine(eval Evaluator, ttSizeMB int) *Engine {
	tt := NewTranspositionTable(ttSizeMB)
	return &Engine{
		searcher: NewSearcher(eval, tt),
		tt:       tt,
		progress: make(chan Progress, 64),
		results:  make(chan Result, 8),
	}
}

// State reports whether the engine is idle or thinking.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// IsThinking reports whether a search is running right now.
func (e *Engine) IsThinking() bool {
	return e.State() == StateThinking
}

// Progress returns the channel carrying search progress. Updates are
// dropped, not queued, when nobody is reading.
func (e *Engine) Progress() <-chan Progress {
	return e.progress
}

// Results returns the channel where asynchronous searches deliver
// their results.
func (e *Engine) Results() <-chan Result {
	return e.results
}

// BestMove searches the position synchronously at the given depth.
func (e *Engine) BestMove(b *board.Board, depth int) (*Result, error) {
	if !e.state.CompareAndSwap(int32(StateIdle), int32(StateThinking)) {
		return nil, ErrThinkInProgress
	}
	defer e.state.Store(int32(StateIdle))
	return e.search(uuid.NewString(), b, depth)
}

// Think searches asynchronously and returns the request id at once.
// The result arrives on Results tagged with the same id; a decided
// position delivers a result with no move.
func (e *Engine) Think(b *board.Board, depth int) (string, error) {
	if !e.state.CompareAndSwap(int32(StateIdle), int32(StateThinking)) {
		return "", ErrThinkInProgress
	}
	id := uuid.NewString()
	go func() {
		defer e.state.Store(int32(StateIdle))
		res, err := e.search(id, b, depth)
		if err != nil {
			res = &Result{RequestID: id}
		}
		select {
		case e.results <- *res:
		default:
		}
	}()
	return id, nil
}

// search runs one search on a private move pool and forwards tagged
// progress.
func (e *Engine) search(id string, b *board.Board, depth int) (*Result, error) {
	e.searcher.Reset()
	e.searcher.progress = func(p Progress) {
		p.RequestID = id
		select {
		case e.progress <- p:
		default: // drop rather than stall the search
		}
	}

	pool := board.NewMovePool()
	res, err := e.searcher.Search(b.WithPool(pool), depth)
	if err != nil {
		return nil, err
	}
	res.RequestID = id
	res.PoolHits = pool.Hits()
	res.PoolMisses = pool.Misses()
	return res, nil
}

// Stop asks the current search to finish with the best move found so
// far. It is safe to call when no search is running.
func (e *Engine) Stop() {
	e.searcher.Stop()
}

// SetEvaluator swaps the position evaluator between searches.
func (e *Engine) SetEvaluator(eval Evaluator) error {
	if e.IsThinking() {
		return ErrThinkInProgress
	}
	e.searcher.eval = eval
	return nil
}

// ResizeTable replaces the transposition table between searches.
func (e *Engine) ResizeTable(sizeMB int) error {
	if e.IsThinking() {
		return ErrThinkInProgress
	}
	tt := NewTranspositionTable(sizeMB)
	e.tt = tt
	e.searcher.tt = tt
	return nil
}

// Evaluate returns the static evaluation of the position from White's
// point of view.
func (e *Engine) Evaluate(b *board.Board) float64 {
	return e.searcher.eval.Evaluate(b, 0)
}

// Clear drops the transposition table, typically between games.
func (e *Engine) Clear() {
	e.tt.Clear()
}
