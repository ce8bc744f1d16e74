package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the table layout before the first resize.
func defaultColumns() []table.Column {
	return columnsForWidth(120)
}

// columnsForWidth sizes columns for the given terminal width. The question
// column absorbs whatever space the fixed columns leave over.
func columnsForWidth(width int) []table.Column {
	const fixed = 24 + 14 + 16 + 8 + 8
	question := max(width-fixed-12, 20)
	return []table.Column{
		{Title: "Test", Width: 24},
		{Title: "Document", Width: 14},
		{Title: "Question", Width: question},
		{Title: "Status", Width: 16},
		{Title: "Elapsed", Width: 8},
		{Title: "Latency", Width: 8},
	}
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatTestID(row),
			row.Document,
			formatQuestionText(row.Question),
			formatStatus(row, noColor),
			formatRowDuration(row, now),
			formatLatency(row),
		})
	}
	return rows
}
