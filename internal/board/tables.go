package board

// Precomputed movement tables, filled once at startup. Rays and step sets
// are generated with file/rank arithmetic so edge wraparound can never
// appear in them.
var (
	// rookRays[sq][d] lists the squares from sq along one of the four
	// straight directions, nearest square first.
	rookRays [64][4][]Square

	// bishopRays[sq][d] lists the squares from sq along one of the four
	// diagonal directions, nearest square first.
	bishopRays [64][4][]Square

	// knightJumps[sq] lists the squares a knight on sq can jump to.
	knightJumps [64][]Square

	// kingSteps[sq] lists the squares adjacent to sq.
	kingSteps [64][]Square
)

var (
	straightDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets      = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets        = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		for d, dir := range straightDirections {
			rookRays[sq][d] = walkRay(sq, dir[0], dir[1])
		}
		for d, dir := range diagonalDirections {
			bishopRays[sq][d] = walkRay(sq, dir[0], dir[1])
		}
		for _, off := range knightOffsets {
			if dest, ok := offsetSquare(sq, off[0], off[1]); ok {
				knightJumps[sq] = append(knightJumps[sq], dest)
			}
		}
		for _, off := range kingOffsets {
			if dest, ok := offsetSquare(sq, off[0], off[1]); ok {
				kingSteps[sq] = append(kingSteps[sq], dest)
			}
		}
	}
}

// walkRay collects the squares from sq in the given file/rank direction
// until the board edge.
func walkRay(sq Square, fileStep, rankStep int) []Square {
	var ray []Square
	f := sq.File() + fileStep
	r := sq.Rank() + rankStep
	for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
		ray = append(ray, NewSquare(f, r))
		f += fileStep
		r += rankStep
	}
	return ray
}

// offsetSquare applies a file/rank offset to sq, reporting whether the
// result is still on the board.
func offsetSquare(sq Square, fileOff, rankOff int) (Square, bool) {
	f := sq.File() + fileOff
	r := sq.Rank() + rankOff
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// Piece-square bonus tables, written visually with rank 8 on the first
// row. White lookups mirror the square; see Piece.tableSquare.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// kingTable rewards a tucked-away king while queens are on the board.
var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// kingEndgameTable rewards an active, centralized king.
var kingEndgameTable = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pieceSquareTables = [6][64]int{
	pawnTable, knightTable, bishopTable, rookTable, queenTable, kingTable,
}
