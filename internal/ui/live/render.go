package live

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the run header line.
func renderHeader(state State, now time.Time, noColor bool) string {
	elapsed := ""
	if !state.StartedAt.IsZero() {
		elapsed = now.Sub(state.StartedAt).Round(100 * time.Millisecond).String()
	}
	line := "Run " + state.RunID
	if state.Target != "" {
		line += " | Target: " + state.Target
	}
	if elapsed != "" {
		line += " | Elapsed: " + elapsed
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the status counts line.
func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	line := "Done: " + fmtInt(counts.Done) + "/" + fmtInt(state.TotalTests) +
		" Queued: " + fmtInt(counts.Queued) +
		" Asking: " + fmtInt(counts.Asking) +
		" Judging: " + fmtInt(counts.Judging) +
		" Passed: " + fmtInt(counts.Passed) +
		" Failed: " + fmtInt(counts.Failed) +
		" Transport: " + fmtInt(counts.TransportErrors)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the last event line.
func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	return stylize("Last event: "+state.LastEvent, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
