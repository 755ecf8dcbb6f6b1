package bot

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Player picks a column for self on board. Implementations must not leave
// the board modified.
type Player interface {
	ChooseMove(board *domain.Board, self, opponent domain.Token) (int, error)
}

const (
	DifficultyRandom  = "random"
	DifficultyEasy    = "easy"
	DifficultyMinimax = "minimax"
)

const ErrUnknownDifficulty domain.Error = "unknown difficulty"

var BotNames = map[string]string{
	DifficultyRandom:  "Random Bot",
	DifficultyEasy:    "Easy Bot",
	DifficultyMinimax: "AI Bot",
}

func BotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// Intner is the random source used by the non-searching players.
// *frand.RNG satisfies it.
type Intner interface {
	Intn(n int) int
}

type frandSource struct{}

func (frandSource) Intn(n int) int { return frand.Intn(n) }

// Options configures NewPlayer. Zero values fall back to defaults.
type Options struct {
	Depth    int
	Scoring  string
	Parallel bool
	Rand     Intner
}

// NewPlayer builds the player for difficulty.
func NewPlayer(difficulty string, opts Options) (Player, error) {
	rng := opts.Rand
	if rng == nil {
		rng = frandSource{}
	}

	switch difficulty {
	case DifficultyRandom:
		return NewRandomPlayer(rng), nil
	case DifficultyEasy:
		return NewEasyPlayer(rng), nil
	case DifficultyMinimax:
		eval, err := EvaluatorFor(opts.Scoring)
		if err != nil {
			return nil, err
		}
		depth := opts.Depth
		if depth == 0 {
			depth = MINIMAX_DEPTH
		}
		m := NewMinimax(depth, eval)
		m.Parallel = opts.Parallel
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}
