package bot

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Evaluator scores a board from token's point of view without mutating it.
type Evaluator func(board *domain.Board, token domain.Token) int

const (
	ScoringCompleted = "completed"
	ScoringWindowed  = "windowed"
)

const (
	CENTER_WEIGHT          = 3   // per own token in the centre column
	LINE_WEIGHT            = 100 // full window of one token
	THREE_OPEN_WEIGHT      = 5   // three own plus one gap
	TWO_OPEN_WEIGHT        = 2   // two own plus two gaps
	OPPONENT_THREE_PENALTY = 4   // opponent three plus one gap
)

const ErrUnknownScoring domain.Error = "unknown scoring policy"

// EvaluatorFor returns the heuristic named by policy. An empty policy means
// ScoringCompleted.
func EvaluatorFor(policy string) (Evaluator, error) {
	switch policy {
	case "", ScoringCompleted:
		return CompletedLines, nil
	case ScoringWindowed:
		return WindowedLines, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScoring, policy)
	}
}

// CompletedLines rewards centre-column tokens and counts only windows that are
// already four of a kind: +LINE_WEIGHT for token, -LINE_WEIGHT for anyone
// else. Partial windows are worth nothing.
func CompletedLines(board *domain.Board, token domain.Token) int {
	score := centerScore(board, token)
	board.Windows(func(w domain.Window) {
		piece, ok := uniform(w)
		if !ok {
			return
		}
		if piece == token {
			score += LINE_WEIGHT
		} else {
			score -= LINE_WEIGHT
		}
	})
	return score
}

// WindowedLines adds partial credit for open threes and twos and a penalty for
// the opponent's open threes.
func WindowedLines(board *domain.Board, token domain.Token) int {
	score := centerScore(board, token)
	board.Windows(func(w domain.Window) {
		score += evaluateWindow(w, token)
	})
	return score
}

func evaluateWindow(w domain.Window, token domain.Token) int {
	own, opp, empty := 0, 0, 0
	for _, cell := range w {
		switch cell {
		case token:
			own++
		case domain.Empty:
			empty++
		default:
			opp++
		}
	}

	score := 0
	switch {
	case own == domain.ToWin:
		score += LINE_WEIGHT
	case own == 3 && empty == 1:
		score += THREE_OPEN_WEIGHT
	case own == 2 && empty == 2:
		score += TWO_OPEN_WEIGHT
	}
	if opp == 3 && empty == 1 {
		score -= OPPONENT_THREE_PENALTY
	}
	return score
}

func centerScore(board *domain.Board, token domain.Token) int {
	center := board.Cols() / 2
	score := 0
	for row := 0; row < board.Rows(); row++ {
		if board.Cell(row, center) == token {
			score += CENTER_WEIGHT
		}
	}
	return score
}

// uniform reports the token filling every cell of w, if any.
func uniform(w domain.Window) (domain.Token, bool) {
	first := w[0]
	if first == domain.Empty {
		return domain.Empty, false
	}
	for _, cell := range w[1:] {
		if cell != first {
			return domain.Empty, false
		}
	}
	return first, true
}
