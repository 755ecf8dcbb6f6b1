package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

func TestCompletedLines(t *testing.T) {
	b := boardFromRows(t,
		".......",
		".......",
		".......",
		".......",
		".OOO...",
		".XXXX..",
	)
	// X: centre token at the bottom, one completed window.
	assert.Equal(t, CENTER_WEIGHT+LINE_WEIGHT, CompletedLines(b, X))
	// O: centre token in row 4, X's window counts against.
	assert.Equal(t, CENTER_WEIGHT-LINE_WEIGHT, CompletedLines(b, O))
}

func TestCompletedLinesIgnoresPartialWindows(t *testing.T) {
	b := boardFromRows(t,
		".......",
		".......",
		".......",
		"X......",
		"XO.....",
		"XOO....",
	)
	assert.Equal(t, 0, CompletedLines(b, X))
	assert.Equal(t, 0, CompletedLines(b, O))
}

func TestCompletedLinesFavoursCentre(t *testing.T) {
	centre := boardFromRows(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"O..X...",
	)
	side := boardFromRows(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"O.X....",
	)
	assert.Greater(t, CompletedLines(centre, X), CompletedLines(side, X))
	assert.Greater(t, WindowedLines(centre, X), WindowedLines(side, X))
}

func TestWindowedLines(t *testing.T) {
	b := boardFromRows(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXX....",
	)
	// Columns 0-3 hold an open three and columns 1-4 an open two.
	assert.Equal(t, THREE_OPEN_WEIGHT+TWO_OPEN_WEIGHT, WindowedLines(b, X))
	assert.Equal(t, -OPPONENT_THREE_PENALTY, WindowedLines(b, O))
}

func TestEvaluateWindow(t *testing.T) {
	e := domain.Empty
	tests := []struct {
		name string
		w    domain.Window
		want int
	}{
		{"four", domain.Window{X, X, X, X}, LINE_WEIGHT},
		{"open three", domain.Window{X, e, X, X}, THREE_OPEN_WEIGHT},
		{"open two", domain.Window{e, X, e, X}, TWO_OPEN_WEIGHT},
		{"blocked three", domain.Window{X, X, X, O}, 0},
		{"opponent three", domain.Window{O, O, e, O}, -OPPONENT_THREE_PENALTY},
		{"opponent four", domain.Window{O, O, O, O}, 0},
		{"single", domain.Window{e, e, X, e}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluateWindow(tt.w, X))
		})
	}
}

func TestEvaluatorsDoNotMutate(t *testing.T) {
	b := boardFromRows(t,
		".......",
		".......",
		"...X...",
		"..XO...",
		".XOO...",
		"XOOXO..",
	)
	before := b.Clone()
	CompletedLines(b, X)
	WindowedLines(b, O)
	assert.True(t, b.Equal(before))
}

func TestEvaluatorFor(t *testing.T) {
	for _, policy := range []string{"", ScoringCompleted, ScoringWindowed} {
		eval, err := EvaluatorFor(policy)
		require.NoError(t, err)
		require.NotNil(t, eval)
	}
	_, err := EvaluatorFor("fancy")
	assert.ErrorIs(t, err, ErrUnknownScoring)
}
