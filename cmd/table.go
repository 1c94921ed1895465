package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var cellStyle = lipgloss.NewStyle().PaddingRight(2)

// newTable returns the layout listing commands print: no frame, a rule
// under the header row.
func newTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle })
}

func printTable(w io.Writer, t *table.Table) {
	fmt.Fprintln(w, t.Render())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

const timeLayout = "2006-01-02 15:04"
