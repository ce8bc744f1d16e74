package report

import (
	"context"
	"strings"

	"ragcheck/internal/runner"
)

// RenderReportHTML renders the report template into a string.
func RenderReportHTML(ctx context.Context, runs []runner.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(runs).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// BuildReportHTML renders an HTML report for runs, empty on render failure.
func BuildReportHTML(runs []runner.Results) string {
	html, err := RenderReportHTML(context.Background(), runs)
	if err != nil {
		return ""
	}
	return html
}
