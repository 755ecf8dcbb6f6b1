package bot

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	MINIMAX_DEPTH = 4
	MINIMAX_WIN   = 1_000_000_000
	MINIMAX_DRAW  = 0

	// NoColumn is returned by Search at terminal and cutoff nodes.
	NoColumn = -1
)

const (
	ErrInvalidState domain.Error = "board has no move to search"
	ErrInvalidDepth domain.Error = "search depth must be at least 1"
)

// Minimax searches a fixed number of plies with alpha-beta pruning. Ties go
// to the leftmost column.
type Minimax struct {
	Depth    int
	Evaluate Evaluator
	// Parallel evaluates each root column in its own goroutine on a cloned
	// board. The chosen column is the same as in a sequential search.
	Parallel bool
}

func NewMinimax(depth int, eval Evaluator) *Minimax {
	if eval == nil {
		eval = CompletedLines
	}
	return &Minimax{Depth: depth, Evaluate: eval}
}

// Result describes one BestMove call.
type Result struct {
	Column  int
	Score   int
	Nodes   int64
	Cutoffs int64
	Elapsed time.Duration
}

type searchStats struct {
	nodes   int64
	cutoffs int64
}

// BestMove is the one-shot form of Minimax.BestMove with the default
// heuristic.
func BestMove(board *domain.Board, depth int, self, opponent domain.Token) (int, error) {
	res, err := NewMinimax(depth, CompletedLines).BestMove(board, self, opponent)
	if err != nil {
		return NoColumn, err
	}
	return res.Column, nil
}

// ChooseMove implements Player.
func (m *Minimax) ChooseMove(board *domain.Board, self, opponent domain.Token) (int, error) {
	res, err := m.BestMove(board, self, opponent)
	if err != nil {
		return NoColumn, err
	}
	return res.Column, nil
}

// BestMove picks the column for self. The board is mutated during the search
// and handed back exactly as it was passed in.
func (m *Minimax) BestMove(board *domain.Board, self, opponent domain.Token) (Result, error) {
	if err := checkTokens(self, opponent); err != nil {
		return Result{}, err
	}
	if m.Depth < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, m.Depth)
	}
	if outcome := board.Evaluate(); outcome.Kind != domain.InProgress {
		return Result{}, fmt.Errorf("%w: game is over (%s)", ErrInvalidState, outcome)
	}
	if len(board.PossibleMoves()) == 0 {
		return Result{}, fmt.Errorf("%w: no legal moves", ErrInvalidState)
	}

	start := time.Now()
	var (
		res Result
		st  searchStats
	)
	if m.Parallel {
		var err error
		res.Column, res.Score, err = m.parallelRoot(board, self, opponent, &st)
		if err != nil {
			return Result{}, err
		}
	} else {
		res.Column, res.Score = m.search(board, m.Depth, math.MinInt, math.MaxInt, true, self, opponent, &st)
	}
	res.Nodes = st.nodes
	res.Cutoffs = st.cutoffs
	res.Elapsed = time.Since(start)

	log.Debug().
		Str("token", self.String()).
		Int("depth", m.Depth).
		Bool("parallel", m.Parallel).
		Int("column", res.Column).
		Int("score", res.Score).
		Int64("nodes", res.Nodes).
		Int64("cutoffs", res.Cutoffs).
		Dur("elapsed", res.Elapsed).
		Msg("minimax-best-move")
	return res, nil
}

// Search runs minimax from board with the given window. maximizing means self
// is to move. It returns NoColumn at terminal and depth-exhausted nodes.
func (m *Minimax) Search(board *domain.Board, depth, alpha, beta int, maximizing bool, self, opponent domain.Token) (int, int) {
	var st searchStats
	return m.search(board, depth, alpha, beta, maximizing, self, opponent, &st)
}

func (m *Minimax) search(board *domain.Board, depth, alpha, beta int, maximizing bool, self, opponent domain.Token, st *searchStats) (int, int) {
	st.nodes++

	outcome := board.Evaluate()
	if depth <= 0 || outcome.Kind != domain.InProgress {
		return NoColumn, m.leafScore(board, outcome, depth, self)
	}

	moves := board.PossibleMoves()
	bestCol := moves[0]

	if maximizing {
		best := math.MinInt
		for _, col := range moves {
			score := m.child(board, col, self, depth-1, alpha, beta, false, self, opponent, st)
			if score > best {
				best = score
				bestCol = col
			}
			alpha = max(alpha, best)
			if alpha >= beta {
				st.cutoffs++
				break
			}
		}
		return bestCol, best
	}

	best := math.MaxInt
	for _, col := range moves {
		score := m.child(board, col, opponent, depth-1, alpha, beta, true, self, opponent, st)
		if score < best {
			best = score
			bestCol = col
		}
		beta = min(beta, best)
		if alpha >= beta {
			st.cutoffs++
			break
		}
	}
	return bestCol, best
}

// child plays token in col, searches the resulting position and takes the
// move back before returning.
func (m *Minimax) child(board *domain.Board, col int, token domain.Token, depth, alpha, beta int, maximizing bool, self, opponent domain.Token, st *searchStats) int {
	if _, err := board.Move(col, token); err != nil {
		panic(fmt.Sprintf("bot: legal column %d rejected: %v", col, err))
	}
	defer func() {
		if err := board.Undo(col); err != nil {
			panic(fmt.Sprintf("bot: undo of column %d failed: %v", col, err))
		}
	}()

	_, score := m.search(board, depth, alpha, beta, maximizing, self, opponent, st)
	return score
}

// leafScore values a terminal or depth-exhausted node. Wins found with more
// depth left are reached sooner and score further from zero.
func (m *Minimax) leafScore(board *domain.Board, outcome domain.Outcome, depth int, self domain.Token) int {
	switch outcome.Kind {
	case domain.Win:
		if outcome.Winner == self {
			return MINIMAX_WIN + depth
		}
		return -(MINIMAX_WIN + depth)
	case domain.Draw:
		return MINIMAX_DRAW
	}

	eval := m.Evaluate
	if eval == nil {
		eval = CompletedLines
	}
	return eval(board, self)
}

// parallelRoot searches every root column with a full window on its own clone,
// then picks the first strict maximum in ascending column order.
func (m *Minimax) parallelRoot(board *domain.Board, self, opponent domain.Token, st *searchStats) (int, int, error) {
	moves := board.PossibleMoves()
	scores := make([]int, len(moves))
	stats := make([]searchStats, len(moves))

	var g errgroup.Group
	for i, col := range moves {
		i, col := i, col
		work := board.Clone()
		g.Go(func() error {
			if _, err := work.Move(col, self); err != nil {
				return fmt.Errorf("root column %d: %w", col, err)
			}
			_, scores[i] = m.search(work, m.Depth-1, math.MinInt, math.MaxInt, false, self, opponent, &stats[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NoColumn, 0, err
	}

	st.nodes++
	best, bestCol := math.MinInt, moves[0]
	for i, col := range moves {
		st.nodes += stats[i].nodes
		st.cutoffs += stats[i].cutoffs
		if scores[i] > best {
			best = scores[i]
			bestCol = col
		}
	}
	return bestCol, best, nil
}

func checkTokens(self, opponent domain.Token) error {
	if !self.Valid() || !opponent.Valid() || self == opponent {
		return fmt.Errorf("%w: need two distinct tokens, got %q and %q",
			domain.ErrInvalidToken, rune(self), rune(opponent))
	}
	return nil
}
