package board

import (
	"fmt"
	"sync"
)

// MoveStatus is the outcome of asking a player to make a move.
type MoveStatus uint8

const (
	// StatusDone means the move was legal and was applied.
	StatusDone MoveStatus = iota
	// StatusIllegal means the move is not among the player's candidates.
	StatusIllegal
	// StatusLeavesKingInCheck means the move would expose the mover's king.
	StatusLeavesKingInCheck
)

// String returns the status name.
func (s MoveStatus) String() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusIllegal:
		return "IllegalMove"
	case StatusLeavesKingInCheck:
		return "LeavesKingInCheck"
	default:
		return "Unknown"
	}
}

// IsDone reports whether the move was applied.
func (s MoveStatus) IsDone() bool {
	return s == StatusDone
}

// MoveTransition is the result of arbitrating one move: the board the
// game continues on (the origin board when the move was refused), the
// move itself and the status. Transitions are plain values and are never
// retained by the board.
type MoveTransition struct {
	board  *Board
	move   *Move
	status MoveStatus
}

// Board returns the board the game continues on.
func (t MoveTransition) Board() *Board {
	return t.board
}

// Move returns the arbitrated move.
func (t MoveTransition) Move() *Move {
	return t.move
}

// Status returns the arbitration outcome.
func (t MoveTransition) Status() MoveStatus {
	return t.status
}

// Player is one side's view of a single board: its king, its candidate
// moves (pseudo-legal piece moves plus castles) and its check state,
// computed when the board is built. The truly legal subset is derived
// lazily. Players are immutable to callers and safe to use from any
// goroutine.
type Player struct {
	board    *Board
	alliance Alliance
	king     *Piece
	inCheck  bool
	moves    []*Move

	legalOnce sync.Once
	legal     []*Move

	escapeOnce sync.Once
	escape     bool
}

// newPlayer builds the player for one alliance from both sides' piece
// moves. The opponent's moves drive check detection and castle gating.
func newPlayer(b *Board, a Alliance, own, opponent []*Move) *Player {
	pl := &Player{board: b, alliance: a}
	for _, p := range b.Pieces(a) {
		if p.kind == King {
			pl.king = p
			break
		}
	}
	if pl.king == nil {
		panic(fmt.Sprintf("board: no %v king on\n%v", a, b))
	}
	pl.inCheck = targetsSquare(opponent, pl.king.square)
	pl.moves = append(own, pl.castleMoves(opponent)...)
	return pl
}

// targetsSquare reports whether any move in the set lands on sq.
func targetsSquare(moves []*Move, sq Square) bool {
	for _, m := range moves {
		if m.dest == sq {
			return true
		}
	}
	return false
}

// Alliance returns the side this player plays.
func (pl *Player) Alliance() Alliance {
	return pl.alliance
}

// King returns the player's king.
func (pl *Player) King() *Piece {
	return pl.king
}

// Opponent returns the other player on the same board.
func (pl *Player) Opponent() *Player {
	return pl.board.PlayerFor(pl.alliance.Other())
}

// CandidateMoves returns the arbitration set: pseudo-legal piece moves
// plus castles, before self-check filtering. Callers must not modify the
// slice.
func (pl *Player) CandidateMoves() []*Move {
	return pl.moves
}

// LegalMoves returns the moves that survive self-check filtering:
// executing any of them yields StatusDone. Computed on first use and
// cached. Callers must not modify the slice.
func (pl *Player) LegalMoves() []*Move {
	pl.legalOnce.Do(func() {
		for _, m := range pl.moves {
			t := pl.MakeMove(m)
			if t.status == StatusDone {
				t.board.Release()
				pl.legal = append(pl.legal, m)
			}
		}
	})
	return pl.legal
}

// IsInCheck reports whether the player's king is attacked.
func (pl *Player) IsInCheck() bool {
	return pl.inCheck
}

// IsInCheckMate reports check with no escape move.
func (pl *Player) IsInCheckMate() bool {
	return pl.inCheck && !pl.hasEscapeMoves()
}

// IsInStaleMate reports no legal move while not in check.
func (pl *Player) IsInStaleMate() bool {
	return !pl.inCheck && !pl.hasEscapeMoves()
}

// IsCastled reports whether the player's king has castled.
func (pl *Player) IsCastled() bool {
	return pl.king.castled
}

// hasEscapeMoves reports whether at least one candidate move is legal.
func (pl *Player) hasEscapeMoves() bool {
	pl.escapeOnce.Do(func() {
		for _, m := range pl.moves {
			t := pl.MakeMove(m)
			if t.status == StatusDone {
				t.board.Release()
				pl.escape = true
				return
			}
		}
	})
	return pl.escape
}

// MakeMove arbitrates a move. A move outside the candidate set is
// refused with StatusIllegal; a move that would leave the mover's own
// king attacked is refused with StatusLeavesKingInCheck. Refusals keep
// the origin board. On StatusDone the transition carries the new board
// with the turn passed to the opponent.
func (pl *Player) MakeMove(m *Move) MoveTransition {
	if m == nil || !pl.isCandidate(m) {
		return MoveTransition{board: pl.board, move: m, status: StatusIllegal}
	}

	child := m.Execute(pl.board)
	if child.PlayerFor(pl.alliance).IsInCheck() {
		child.Release()
		return MoveTransition{board: pl.board, move: m, status: StatusLeavesKingInCheck}
	}
	return MoveTransition{board: child, move: m, status: StatusDone}
}

// UnmakeMove rebuilds the board the move was executed from. The player
// must belong to the board the move produced.
func (pl *Player) UnmakeMove(m *Move) MoveTransition {
	return MoveTransition{board: m.Undo(pl.board), move: m, status: StatusDone}
}

// isCandidate reports membership in the player's candidate set, by
// identity first and structure second.
func (pl *Player) isCandidate(m *Move) bool {
	for _, c := range pl.moves {
		if c == m || c.Equal(m) {
			return true
		}
	}
	return false
}

// castleMoves computes the player's available castles. Every condition
// short-circuits: an unmoved, uncastled king standing at home and not in
// check, the matching right still held, the corner rook unmoved, the
// squares between empty, and the king's path neither attacked by any
// opponent move nor controlled by an opponent pawn.
func (pl *Player) castleMoves(opponent []*Move) []*Move {
	if pl.king.hasMoved || pl.king.castled || pl.inCheck {
		return nil
	}
	rank := pl.alliance.HomeRank()
	if pl.king.square != NewSquare(4, rank) {
		return nil
	}

	var moves []*Move
	b := pl.board
	enemy := pl.alliance.Other()

	if pl.king.kingSideRights {
		rook := b.squares[NewSquare(7, rank)]
		f := NewSquare(5, rank)
		g := NewSquare(6, rank)
		if rook != nil && rook.kind == Rook && rook.alliance == pl.alliance && !rook.hasMoved &&
			b.squares[f] == nil && b.squares[g] == nil &&
			!targetsSquare(opponent, f) && !targetsSquare(opponent, g) &&
			!pawnControls(b, f, enemy) && !pawnControls(b, g, enemy) {
			moves = append(moves, newCastleMove(b, CastleKingSide, pl.king, g, rook, f))
		}
	}

	if pl.king.queenSideRights {
		rook := b.squares[NewSquare(0, rank)]
		bsq := NewSquare(1, rank)
		c := NewSquare(2, rank)
		d := NewSquare(3, rank)
		if rook != nil && rook.kind == Rook && rook.alliance == pl.alliance && !rook.hasMoved &&
			b.squares[bsq] == nil && b.squares[c] == nil && b.squares[d] == nil &&
			!targetsSquare(opponent, c) && !targetsSquare(opponent, d) &&
			!pawnControls(b, c, enemy) && !pawnControls(b, d, enemy) {
			moves = append(moves, newCastleMove(b, CastleQueenSide, pl.king, c, rook, d))
		}
	}

	return moves
}

// pawnControls reports whether a pawn of the given alliance could capture
// onto sq. Pawn control of an empty square never shows up as a move in
// the opponent's move list, so the castle transit scan cannot see it and
// has to ask here.
func pawnControls(b *Board, sq Square, a Alliance) bool {
	rankOff := -a.Direction() / 8
	for _, fileOff := range [2]int{-1, 1} {
		src, ok := offsetSquare(sq, fileOff, rankOff)
		if !ok {
			continue
		}
		p := b.squares[src]
		if p != nil && p.kind == Pawn && p.alliance == a {
			return true
		}
	}
	return false
}
