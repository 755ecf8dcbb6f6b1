package domain

import "fmt"

// Board is a gravity grid. Row 0 is the top row, so a column fills from
// row rows-1 upward.
type Board struct {
	rows      int
	cols      int
	cells     []Token
	heights   []int
	moveCount int
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Board{
		rows:    rows,
		cols:    cols,
		cells:   make([]Token, rows*cols),
		heights: make([]int, cols),
	}, nil
}

// NewStandardBoard returns an empty 6x7 board.
func NewStandardBoard() *Board {
	b, _ := NewBoard(Rows, Columns)
	return b
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Cols() int      { return b.cols }
func (b *Board) MoveCount() int { return b.moveCount }

// Height is the number of tokens in column.
func (b *Board) Height(column int) int { return b.heights[column] }

func (b *Board) Cell(row, column int) Token {
	return b.cells[row*b.cols+column]
}

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.cols
}

// IsValidMove reports whether column exists and still has room.
func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= b.cols {
		return false
	}
	return b.heights[column] < b.rows
}

// Move drops token into column and returns the row it landed on. The board is
// left untouched on error.
func (b *Board) Move(column int, token Token) (int, error) {
	if !token.Valid() {
		return -1, fmt.Errorf("%w: %q", ErrInvalidToken, rune(token))
	}
	if column < 0 || column >= b.cols {
		return -1, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}
	if !b.IsValidMove(column) {
		return -1, fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	row := b.rows - 1 - b.heights[column]
	b.cells[row*b.cols+column] = token
	b.heights[column]++
	b.moveCount++
	return row, nil
}

// Undo removes the top token of column.
func (b *Board) Undo(column int) error {
	if column < 0 || column >= b.cols || b.heights[column] == 0 {
		return fmt.Errorf("%w: nothing to undo in column %d", ErrInvalidColumn, column)
	}

	row := b.rows - b.heights[column]
	b.cells[row*b.cols+column] = Empty
	b.heights[column]--
	b.moveCount--
	return nil
}

// PossibleMoves returns the columns that still have room, in ascending order.
func (b *Board) PossibleMoves() []int {
	moves := make([]int, 0, b.cols)
	for col := 0; col < b.cols; col++ {
		if b.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) IsFull() bool {
	return b.moveCount == b.rows*b.cols
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	c := *b
	c.cells = append([]Token(nil), b.cells...)
	c.heights = append([]int(nil), b.heights...)
	return &c
}

// Equal reports whether both boards hold the same dimensions, cells and move
// count.
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols || b.moveCount != o.moveCount {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
