package domain

import "fmt"

// Game sequences turns between two tokens on a single board.
type Game struct {
	Board         *Board
	Tokens        [2]Token
	CurrentPlayer Token
	Status        GameStatus
	Winner        Token
}

func NewGame(rows, cols int, first, second Token) (*Game, error) {
	if !first.Valid() || !second.Valid() || first == second {
		return nil, fmt.Errorf("%w: players need two distinct tokens, got %q and %q",
			ErrInvalidToken, rune(first), rune(second))
	}
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Game{
		Board:         board,
		Tokens:        [2]Token{first, second},
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
	}, nil
}

// MakeMove drops the current player's token into column and passes the turn
// unless the move ended the game.
func (g *Game) MakeMove(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameFinished
	}

	row, err := g.Board.Move(column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	switch outcome := g.Board.Evaluate(); outcome.Kind {
	case Win:
		g.Status = StatusWon
		g.Winner = outcome.Winner
	case Draw:
		g.Status = StatusDraw
	default:
		g.CurrentPlayer = g.Opponent(g.CurrentPlayer)
	}
	return row, nil
}

// Opponent returns the other token of this game.
func (g *Game) Opponent(t Token) Token {
	if t == g.Tokens[0] {
		return g.Tokens[1]
	}
	return g.Tokens[0]
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
