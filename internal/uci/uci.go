// Package uci speaks the Universal Chess Interface over stdin/stdout.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Daemonerne/capstoneChess-sub001/internal/board"
	"github.com/Daemonerne/capstoneChess-sub001/internal/engine"
	"github.com/Daemonerne/capstoneChess-sub001/internal/storage"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	engine *engine.Engine
	store  *storage.Storage
	prefs  *storage.EnginePreferences

	board      *board.Board
	repetition *engine.RepetitionTable

	// Search state
	searchDone  chan struct{}
	logProgress atomic.Bool

	// CPU profiling
	profileFile *os.File
}

// New creates a new UCI protocol handler. store may be nil when no
// database is available; preferences then stay in memory only.
func New(eng *engine.Engine, store *storage.Storage, prefs *storage.EnginePreferences) *UCI {
	if prefs == nil {
		prefs = storage.DefaultPreferences()
	}
	u := &UCI{
		engine:     eng,
		store:      store,
		prefs:      prefs,
		board:      board.CreateStandardBoard(),
		repetition: engine.NewRepetitionTable(),
	}
	u.repetition.Record(u.board.Hash())
	u.logProgress.Store(prefs.LogProgress)
	return u
}

// Run starts the UCI main loop.
func (u *UCI) Run() {
	go u.forwardProgress()

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleQuit()
		case "setoption":
			u.handleSetOption(args)
		// Debug commands
		case "d":
			fmt.Println(u.board)
		case "eval":
			u.handleEval()
		case "see":
			u.handleSEE(args)
		case "perft":
			u.handlePerft(args)
		}
	}
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	fmt.Println("id name CapstoneChess")
	fmt.Println("id author CapstoneChess Team")
	fmt.Println()
	fmt.Printf("option name Hash type spin default %d min 1 max 4096\n", u.prefs.TableSizeMB)
	fmt.Printf("option name Depth type spin default %d min 1 max %d\n", u.prefs.SearchDepth, engine.MaxPly)
	fmt.Printf("option name Evaluator type combo default %s var tapered var opening var middlegame var endgame\n", u.prefs.Evaluator)
	fmt.Printf("option name LogProgress type check default %t\n", u.prefs.LogProgress)
	fmt.Println("uciok")
}

// handleNewGame resets the engine for a new game.
func (u *UCI) handleNewGame() {
	u.engine.Clear()
	u.board = board.CreateStandardBoard()
	u.repetition.Reset()
	u.repetition.Record(u.board.Hash())
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int

	if args[0] == "startpos" {
		u.board = board.CreateStandardBoard()
		moveStart = 1
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	} else if args[0] == "fen" {
		fenEnd := len(args)
		for i, arg := range args[1:] {
			if arg == "moves" {
				fenEnd = i + 1
				break
			}
		}

		fenStr := strings.Join(args[1:fenEnd], " ")
		b, err := board.ParseFEN(fenStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string Invalid FEN: %v\n", err)
			return
		}
		u.board = b

		moveStart = len(args)
		for i, arg := range args {
			if arg == "moves" {
				moveStart = i + 1
				break
			}
		}
	} else {
		return
	}

	u.repetition.Reset()
	u.repetition.Record(u.board.Hash())

	if moveStart < len(args) {
		for _, moveStr := range args[moveStart:] {
			m := u.parseMove(moveStr)
			if m == nil {
				fmt.Fprintf(os.Stderr, "info string Invalid move: %s\n", moveStr)
				return
			}
			tr := u.board.CurrentPlayer().MakeMove(m)
			if tr.Status() != board.StatusDone {
				fmt.Fprintf(os.Stderr, "info string Rejected move %s: %v\n", moveStr, tr.Status())
				return
			}
			u.board = tr.Board()
			u.repetition.Record(u.board.Hash())
		}
	}

	if u.repetition.IsThreefold(u.board.Hash()) {
		fmt.Fprintf(os.Stderr, "info string Threefold repetition on the board\n")
	}
}

// parseMove resolves a UCI coordinate move against the current legal
// moves.
func (u *UCI) parseMove(moveStr string) *board.Move {
	if len(moveStr) < 4 {
		return nil
	}

	from, err := board.ParseSquare(moveStr[0:2])
	if err != nil {
		return nil
	}
	to, err := board.ParseSquare(moveStr[2:4])
	if err != nil {
		return nil
	}

	if len(moveStr) == 5 {
		var promo board.PieceKind
		switch moveStr[4] {
		case 'q':
			promo = board.Queen
		case 'r':
			promo = board.Rook
		case 'b':
			promo = board.Bishop
		case 'n':
			promo = board.Knight
		default:
			return nil
		}
		return board.FindPromotion(u.board, from, to, promo)
	}

	return board.FindMove(u.board, from, to)
}

// handleGo starts a search. Only fixed-depth search is supported; any
// clock fields a GUI sends fall back to the configured depth.
func (u *UCI) handleGo(args []string) {
	if u.engine.IsThinking() {
		fmt.Fprintf(os.Stderr, "info string Search already running\n")
		return
	}

	depth := u.prefs.SearchDepth
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if d, err := strconv.Atoi(args[i+1]); err == nil && d > 0 {
					depth = d
				}
				i++
			}
		case "infinite":
			depth = engine.MaxPly
		}
	}

	id, err := u.engine.Think(u.board, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "info string Cannot start search: %v\n", err)
		return
	}

	u.searchDone = make(chan struct{})

	go func() {
		defer close(u.searchDone)

		for res := range u.engine.Results() {
			if res.RequestID != id {
				continue // stale result from an earlier request
			}
			u.finishSearch(&res)
			return
		}
	}()
}

// finishSearch reports the search outcome and folds it into the
// statistics.
func (u *UCI) finishSearch(res *engine.Result) {
	if res.Move == nil {
		// Mate or stalemate on the board already.
		fmt.Println("bestmove 0000")
		return
	}

	fmt.Printf("info depth %d score %s nodes %d time %d\n",
		res.Depth, formatScore(res.Score), res.Nodes, res.Elapsed.Milliseconds())
	fmt.Printf("bestmove %s\n", res.Move.UCI())

	if u.store != nil {
		rec := storage.SearchRecord{
			Depth:      res.Depth,
			Nodes:      res.Nodes,
			Duration:   res.Elapsed,
			PoolHits:   res.PoolHits,
			PoolMisses: res.PoolMisses,
			Mate:       engine.IsMateScore(res.Score),
		}
		if err := u.store.RecordSearch(rec); err != nil {
			fmt.Fprintf(os.Stderr, "info string Failed to record search: %v\n", err)
		}
	}
}

// forwardProgress turns engine progress into UCI info lines when
// progress logging is on.
func (u *UCI) forwardProgress() {
	for p := range u.engine.Progress() {
		if !u.logProgress.Load() {
			continue
		}
		fmt.Printf("info depth %d currmove %s currmovenumber %d score %s nodes %d time %d\n",
			p.Depth, p.CurrentMove, p.MoveNumber, formatScore(p.Score), p.Nodes, p.Elapsed.Milliseconds())
	}
}

// formatScore renders a side-relative score in UCI terms, converting
// mate scores into moves to mate.
func formatScore(score float64) string {
	if engine.IsMateScore(score) {
		mateIn := (engine.MateDistance(score) + 1) / 2
		if mateIn < 1 {
			mateIn = 1
		}
		if score < 0 {
			mateIn = -mateIn
		}
		return fmt.Sprintf("mate %d", mateIn)
	}
	return fmt.Sprintf("cp %d", int(score))
}

// handleStop stops the current search and waits for its best move.
func (u *UCI) handleStop() {
	if u.searchDone != nil {
		u.engine.Stop()
		<-u.searchDone
	}
}

// handleQuit exits the program.
func (u *UCI) handleQuit() {
	u.handleStop()
	if u.profileFile != nil {
		pprof.StopCPUProfile()
		u.profileFile.Close()
		fmt.Fprintf(os.Stderr, "info string CPU profile saved\n")
	}
	if u.store != nil {
		u.store.Close()
	}
	os.Exit(0)
}

// handleSetOption processes "setoption" commands.
func (u *UCI) handleSetOption(args []string) {
	// Format: setoption name <name> value <value>
	var name, value string
	readingName := false
	readingValue := false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName = true
			readingValue = false
		case "value":
			readingName = false
			readingValue = true
		default:
			if readingName {
				if name != "" {
					name += " "
				}
				name += arg
			} else if readingValue {
				if value != "" {
					value += " "
				}
				value += arg
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		sizeMB, err := strconv.Atoi(value)
		if err != nil || sizeMB < 1 {
			fmt.Fprintf(os.Stderr, "info string Invalid hash size: %s\n", value)
			return
		}
		if err := u.engine.ResizeTable(sizeMB); err != nil {
			fmt.Fprintf(os.Stderr, "info string Cannot resize hash: %v\n", err)
			return
		}
		u.prefs.TableSizeMB = sizeMB
		u.savePreferences()
	case "depth":
		depth, err := strconv.Atoi(value)
		if err != nil || depth < 1 || depth > engine.MaxPly {
			fmt.Fprintf(os.Stderr, "info string Invalid depth: %s\n", value)
			return
		}
		u.prefs.SearchDepth = depth
		u.savePreferences()
	case "evaluator":
		kind, err := storage.ParseEvaluatorKind(strings.ToLower(value))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string %v\n", err)
			return
		}
		if err := u.engine.SetEvaluator(EvaluatorFor(kind)); err != nil {
			fmt.Fprintf(os.Stderr, "info string Cannot swap evaluator: %v\n", err)
			return
		}
		u.prefs.Evaluator = kind
		u.savePreferences()
	case "logprogress":
		enabled := strings.ToLower(value) == "true"
		u.logProgress.Store(enabled)
		u.prefs.LogProgress = enabled
		u.savePreferences()
	case "cpuprofile":
		// Stop existing profile if any
		if u.profileFile != nil {
			pprof.StopCPUProfile()
			u.profileFile.Close()
			fmt.Fprintf(os.Stderr, "info string CPU profile stopped\n")
			u.profileFile = nil
		}
		// Start new profile if path provided
		if value != "" && value != "stop" {
			f, err := os.Create(value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "info string Failed to create profile: %v\n", err)
				return
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				fmt.Fprintf(os.Stderr, "info string Failed to start profile: %v\n", err)
				return
			}
			u.profileFile = f
			fmt.Fprintf(os.Stderr, "info string CPU profiling to %s\n", value)
		}
	}
}

func (u *UCI) savePreferences() {
	if u.store == nil {
		return
	}
	if err := u.store.SavePreferences(u.prefs); err != nil {
		fmt.Fprintf(os.Stderr, "info string Failed to save preferences: %v\n", err)
	}
}

// EvaluatorFor builds the evaluator a preference selects.
func EvaluatorFor(kind storage.EvaluatorKind) engine.Evaluator {
	switch kind {
	case storage.EvalOpening:
		return engine.NewOpeningEvaluator()
	case storage.EvalMiddlegame:
		return engine.NewMiddlegameEvaluator()
	case storage.EvalEndgame:
		return engine.NewEndgameEvaluator()
	default:
		return engine.NewTaperedEvaluator()
	}
}

// handleEval prints the static evaluation of the current position.
func (u *UCI) handleEval() {
	phase := engine.PhaseOf(u.board)
	score := u.engine.Evaluate(u.board)
	fmt.Printf("info string eval %.1f cp (white) phase %d/%d\n", score, phase, engine.PhaseScale)
}

// handleSEE prints the static exchange score of a capture.
func (u *UCI) handleSEE(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "info string Usage: see <move>\n")
		return
	}
	m := u.parseMove(args[0])
	if m == nil {
		fmt.Fprintf(os.Stderr, "info string No such legal move: %s\n", args[0])
		return
	}
	if !m.IsCapture() {
		fmt.Printf("info string see %s: not a capture\n", m.UCI())
		return
	}
	fmt.Printf("info string see %s: %d\n", m.UCI(), engine.ExchangeScore(u.board, m))
}

// handlePerft runs a perft count over the current position.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		depth, _ = strconv.Atoi(args[0])
	}
	if depth < 1 {
		depth = 1
	}

	start := time.Now()
	nodes := perft(u.board.WithPool(board.NewMovePool()), depth)
	elapsed := time.Since(start)

	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("NPS: %.0f\n", nps)
	}
}

func perft(b *board.Board, depth int) int64 {
	legal := b.CurrentPlayer().LegalMoves()
	if depth == 1 {
		return int64(len(legal))
	}

	var nodes int64
	for _, m := range legal {
		child := b.CurrentPlayer().MakeMove(m).Board()
		nodes += perft(child, depth-1)
		child.Release()
	}
	return nodes
}
