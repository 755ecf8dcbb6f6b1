package domain

// Direction is a (deltaRow, deltaCol) step. Rows grow downward.
type Direction struct {
	DRow, DCol int
}

// Anchored line directions, in the order Evaluate checks them at each cell.
var (
	Horizontal         = Direction{0, 1}
	Vertical           = Direction{-1, 0}
	DiagonalAscending  = Direction{-1, 1}
	DiagonalDescending = Direction{1, 1}

	LineDirections = []Direction{Horizontal, Vertical, DiagonalAscending, DiagonalDescending}
)

// Evaluate scans the whole board for a run of ToWin identical tokens.
// Columns are visited left to right and each column bottom to top; at every
// occupied cell the four anchored directions are tried in LineDirections
// order and the first complete run wins. A full board with no run is a draw.
func (b *Board) Evaluate() Outcome {
	for col := 0; col < b.cols; col++ {
		for row := b.rows - 1; row >= 0; row-- {
			piece := b.Cell(row, col)
			if piece == Empty {
				continue
			}
			for _, d := range LineDirections {
				if b.runFrom(row, col, d, piece) {
					return Outcome{Kind: Win, Winner: piece}
				}
			}
		}
	}

	if b.IsFull() {
		return Outcome{Kind: Draw}
	}
	return Outcome{Kind: InProgress}
}

func (b *Board) GameOver() bool {
	return b.Evaluate().Kind != InProgress
}

// runFrom reports whether the ToWin cells starting at (row, col) along d all
// hold piece.
func (b *Board) runFrom(row, col int, d Direction, piece Token) bool {
	endRow, endCol := row+d.DRow*(ToWin-1), col+d.DCol*(ToWin-1)
	if !b.inBounds(endRow, endCol) {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if b.Cell(row+d.DRow*i, col+d.DCol*i) != piece {
			return false
		}
	}
	return true
}

// Window is ToWin cells read from a start cell along a direction.
type Window [ToWin]Token

// Windows calls fn for every in-bounds window of ToWin cells on the board,
// each exactly once.
func (b *Board) Windows(fn func(w Window)) {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			for _, d := range LineDirections {
				endRow, endCol := row+d.DRow*(ToWin-1), col+d.DCol*(ToWin-1)
				if !b.inBounds(endRow, endCol) {
					continue
				}
				var w Window
				for i := 0; i < ToWin; i++ {
					w[i] = b.Cell(row+d.DRow*i, col+d.DCol*i)
				}
				fn(w)
			}
		}
	}
}
