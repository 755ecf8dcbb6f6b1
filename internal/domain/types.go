package domain

// Token is the symbol a player drops into the grid. The zero value is the
// empty cell.
type Token rune

const (
	Empty   Token = 0
	PlayerX Token = 'X'
	PlayerO Token = 'O'
)

func (t Token) String() string {
	if t == Empty {
		return " "
	}
	return string(rune(t))
}

// Valid reports whether t can be placed on a board.
func (t Token) Valid() bool {
	return t != Empty && t != ' '
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

type OutcomeKind int

const (
	InProgress OutcomeKind = iota
	Draw
	Win
)

// Outcome is the result of scanning a board. Winner is only set for Win.
type Outcome struct {
	Kind   OutcomeKind
	Winner Token
}

func (o Outcome) String() string {
	switch o.Kind {
	case Draw:
		return "draw"
	case Win:
		return "win(" + o.Winner.String() + ")"
	default:
		return "in progress"
	}
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrInvalidColumn     Error = "invalid column"
	ErrInvalidToken      Error = "invalid token"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrGameFinished      Error = "game already finished"
)
