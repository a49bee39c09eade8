package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
)

func newTestSearcher() *Searcher {
	return NewSearcher(NewTaperedEvaluator(), NewTranspositionTable(2))
}

func TestSearchFindsMateInOne(t *testing.T) {
	b := mustParse(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	s := newTestSearcher()

	res, err := s.Search(b.WithPool(board.NewMovePool()), 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	t.Logf("best %s score %.0f depth %d nodes %d", res.Move, res.Score, res.Depth, res.Nodes)

	if res.Move.From() != board.A1 || res.Move.To() != board.A8 {
		t.Errorf("best move %s, want Ra8 mate", res.Move)
	}
	if !IsMateScore(res.Score) || res.Score < 0 {
		t.Errorf("score %.0f does not announce the mate", res.Score)
	}
	if res.Depth < 1 {
		t.Errorf("completed depth %d, want at least 1", res.Depth)
	}
}

func TestSearchTakesFreeMaterial(t *testing.T) {
	b := mustParse(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	s := newTestSearcher()

	res, err := s.Search(b.WithPool(board.NewMovePool()), 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Move.From() != board.E4 || res.Move.To() != board.D5 {
		t.Errorf("best move %s, want exd5", res.Move)
	}
	if res.Score < 500 {
		t.Errorf("score %.0f, want a winning margin after taking the queen", res.Score)
	}
}

func TestSearchNoLegalMoves(t *testing.T) {
	b := mustParse(t, "8/8/8/8/8/1q6/2k5/K7 w - - 0 1")
	s := newTestSearcher()

	if _, err := s.Search(b, 3); !errors.Is(err, ErrNoLegalMoves) {
		t.Errorf("err = %v, want ErrNoLegalMoves", err)
	}
}

// TestSearchStoppedBeforeStart covers the fallback: a search that never
// finishes a single root move still answers with a legal move.
func TestSearchStoppedBeforeStart(t *testing.T) {
	b := board.CreateStandardBoard()
	s := newTestSearcher()
	s.Stop()

	res, err := s.Search(b, 4)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Move == nil {
		t.Fatal("stopped search returned no move")
	}
	if !res.Move.Equal(b.CurrentPlayer().LegalMoves()[0]) {
		t.Errorf("fallback move %s is not the first legal move", res.Move)
	}
	if res.Depth != 0 {
		t.Errorf("completed depth %d, want 0", res.Depth)
	}
}

func TestSearchStopWindsDown(t *testing.T) {
	b := board.CreateStandardBoard().WithPool(board.NewMovePool())
	s := newTestSearcher()

	type outcome struct {
		res *Result
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := s.Search(b, MaxPly)
		ch <- outcome{res, err}
	}()

	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case out := <-ch:
		if out.err != nil {
			t.Fatalf("search: %v", out.err)
		}
		if out.res.Move == nil {
			t.Fatal("stopped search returned no move")
		}
		t.Logf("stopped at depth %d after %d nodes", out.res.Depth, out.res.Nodes)
	case <-time.After(10 * time.Second):
		t.Fatal("search did not wind down after Stop")
	}
}

func TestSearchReportsProgress(t *testing.T) {
	b := board.CreateStandardBoard().WithPool(board.NewMovePool())
	s := newTestSearcher()

	var reports []Progress
	s.progress = func(p Progress) { reports = append(reports, p) }

	if _, err := s.Search(b, 2); err != nil {
		t.Fatalf("search: %v", err)
	}
	// One report per root move per iteration.
	if len(reports) != 40 {
		t.Fatalf("got %d progress reports, want 40", len(reports))
	}
	last := reports[len(reports)-1]
	if last.Depth != 2 || last.MoveNumber != 20 || last.TotalMoves != 20 {
		t.Errorf("last report %+v, want depth 2 move 20/20", last)
	}
	for _, p := range reports {
		if p.CurrentMove == "" {
			t.Fatal("progress report without a move")
		}
	}
}

// TestSearchPrefersFasterMate runs a ladder-mate position deep enough
// to see several mating lines; the depth-scaled mate scores must steer
// the search to the immediate one.
func TestSearchPrefersFasterMate(t *testing.T) {
	// Ra8 is mate in one. Shuffling first still mates, just later.
	b := mustParse(t, "7k/1R6/8/8/8/8/8/RK6 w - - 0 1")
	s := newTestSearcher()

	res, err := s.Search(b.WithPool(board.NewMovePool()), 4)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !IsMateScore(res.Score) {
		t.Fatalf("score %.0f, want mate", res.Score)
	}
	if res.Move.From() != board.A1 || res.Move.To() != board.A8 {
		t.Errorf("best move %s, want Ra8 mate", res.Move)
	}
}
