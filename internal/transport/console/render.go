package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// RenderBoard draws b with 1-based column numbers above and below the grid.
func RenderBoard(w io.Writer, b *domain.Board) {
	var sb strings.Builder

	header := columnHeader(b.Cols())
	border := "+" + strings.Repeat("---+", b.Cols()) + "\n"

	sb.WriteString(header)
	sb.WriteString(border)
	for row := 0; row < b.Rows(); row++ {
		sb.WriteString("|")
		for col := 0; col < b.Cols(); col++ {
			fmt.Fprintf(&sb, " %s |", b.Cell(row, col))
		}
		sb.WriteString("\n")
		sb.WriteString(border)
	}
	sb.WriteString(header)

	io.WriteString(w, sb.String())
}

func columnHeader(cols int) string {
	var sb strings.Builder
	for col := 1; col <= cols; col++ {
		fmt.Fprintf(&sb, "  %d ", col)
	}
	sb.WriteString("\n")
	return sb.String()
}
