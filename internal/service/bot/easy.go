package bot

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// RandomPlayer drops into any legal column with equal probability.
type RandomPlayer struct {
	rng Intner
}

func NewRandomPlayer(rng Intner) *RandomPlayer {
	if rng == nil {
		rng = frandSource{}
	}
	return &RandomPlayer{rng: rng}
}

func (p *RandomPlayer) ChooseMove(board *domain.Board, self, opponent domain.Token) (int, error) {
	validColumns := board.PossibleMoves()
	if len(validColumns) == 0 {
		return NoColumn, fmt.Errorf("%w: no legal moves", ErrInvalidState)
	}
	return validColumns[p.rng.Intn(len(validColumns))], nil
}

// EasyPlayer takes a winning column, otherwise blocks the opponent's winning
// column, otherwise plays at random.
type EasyPlayer struct {
	rng Intner
}

func NewEasyPlayer(rng Intner) *EasyPlayer {
	if rng == nil {
		rng = frandSource{}
	}
	return &EasyPlayer{rng: rng}
}

func (p *EasyPlayer) ChooseMove(board *domain.Board, self, opponent domain.Token) (int, error) {
	if err := checkTokens(self, opponent); err != nil {
		return NoColumn, err
	}
	if board.GameOver() {
		return NoColumn, fmt.Errorf("%w: game is over", ErrInvalidState)
	}
	validColumns := board.PossibleMoves()
	if len(validColumns) == 0 {
		return NoColumn, fmt.Errorf("%w: no legal moves", ErrInvalidState)
	}

	if col, ok := lo.Find(validColumns, func(col int) bool { return winsWith(board, col, self) }); ok {
		return col, nil
	}
	if col, ok := lo.Find(validColumns, func(col int) bool { return winsWith(board, col, opponent) }); ok {
		return col, nil
	}
	return validColumns[p.rng.Intn(len(validColumns))], nil
}

// winsWith reports whether dropping token into col completes a line. The board
// is restored before returning.
func winsWith(board *domain.Board, col int, token domain.Token) bool {
	if _, err := board.Move(col, token); err != nil {
		return false
	}
	outcome := board.Evaluate()
	if err := board.Undo(col); err != nil {
		panic(fmt.Sprintf("bot: undo of column %d failed: %v", col, err))
	}
	return outcome.Kind == domain.Win && outcome.Winner == token
}
