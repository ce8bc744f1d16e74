package live

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ragcheck/internal/runner"
)

// formatTestID returns the display id for a test row.
func formatTestID(row TestRow) string {
	if row.ID != "" {
		return row.ID
	}
	return formatIndex(row.Index)
}

// formatIndex formats a test index.
func formatIndex(index int) string {
	return "T" + pad2(index+1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatQuestionText truncates question text for display.
func formatQuestionText(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return ""
	}
	const limit = 60
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

// formatStatus renders a status string for a row.
func formatStatus(row TestRow, noColor bool) string {
	return stylizeStatus(statusLabel(row.Status), row.Status, noColor)
}

// statusLabel maps status codes to display labels.
func statusLabel(status runner.TestEventType) string {
	switch status {
	case runner.TestQueued:
		return "queued"
	case runner.TestAsking:
		return "asking"
	case runner.TestJudging:
		return "judging"
	case runner.TestPassed:
		return "passed"
	case runner.TestFailed:
		return "failed"
	case runner.TestTransportError:
		return "transport error"
	default:
		return string(status)
	}
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row TestRow, now time.Time) string {
	if !row.FinishedAt.IsZero() && !row.StartedAt.IsZero() {
		return row.FinishedAt.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	if !row.StartedAt.IsZero() {
		return now.Sub(row.StartedAt).Round(100 * time.Millisecond).String()
	}
	return ""
}

// formatLatency formats the measured response time for display.
func formatLatency(row TestRow) string {
	if !isTerminalStatus(row.Status) || row.ResponseTimeMS < 0 {
		return ""
	}
	return fmtInt(int(row.ResponseTimeMS)) + "ms"
}

// stylizeStatus applies status coloring when enabled.
func stylizeStatus(text string, status runner.TestEventType, noColor bool) string {
	if noColor {
		return text
	}
	return statusStyle(status).Render(text)
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.TestEventType) lipgloss.Style {
	color := lipgloss.Color("244")
	switch status {
	case runner.TestPassed:
		color = lipgloss.Color("42")
	case runner.TestFailed:
		color = lipgloss.Color("220")
	case runner.TestTransportError:
		color = lipgloss.Color("196")
	case runner.TestAsking:
		color = lipgloss.Color("33")
	case runner.TestJudging:
		color = lipgloss.Color("201")
	case runner.TestQueued:
		color = lipgloss.Color("246")
	}
	return lipgloss.NewStyle().Foreground(color)
}
