package report

import (
	"fmt"
	"sort"
	"strings"

	"ragcheck/internal/validator"
)

// formatPercent returns a percentage string for report output.
func formatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatSummary renders a run summary as aligned text for terminal output.
func FormatSummary(summary validator.Summary) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Total tests:       %d\n", summary.TotalTests)
	fmt.Fprintf(&builder, "Passed:            %d\n", summary.Passed)
	fmt.Fprintf(&builder, "Failed:            %d\n", summary.Failed)
	fmt.Fprintf(&builder, "Warnings:          %d\n", summary.Warnings)
	fmt.Fprintf(&builder, "Success rate:      %s\n", formatPercent(summary.SuccessRate))
	fmt.Fprintf(&builder, "Avg response time: %dms\n", summary.AvgResponseTime)
	fmt.Fprintf(&builder, "Avg length:        %d chars\n", summary.AvgResponseLength)

	if len(summary.Categories) > 0 {
		builder.WriteString("Categories:\n")
		names := make([]string, 0, len(summary.Categories))
		for name := range summary.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			stats := summary.Categories[name]
			fmt.Fprintf(&builder, "  %-16s %d/%d passed\n", name+":", stats.Passed, stats.Total)
		}
	}
	return builder.String()
}
