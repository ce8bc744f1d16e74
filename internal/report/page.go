package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"ragcheck/internal/runner"
)

const pageStyle = `body { font-family: sans-serif; margin: 2rem; color: #222; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
table { border-collapse: collapse; margin-top: 0.5rem; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
th { background: #f0f0f0; }
.pass { color: #1a7f37; }
.fail { color: #cf222e; }
.muted { color: #777; }`

// ReportPage renders the full HTML report for a set of runs.
func ReportPage(runs []runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>ragcheck report</title><style>"+pageStyle+"</style></head><body>\n<h1>ragcheck report</h1>\n"); err != nil {
			return err
		}
		if len(runs) == 0 {
			if _, err := io.WriteString(w, "<p class=\"muted\">No runs recorded.</p>\n"); err != nil {
				return err
			}
		}
		for _, run := range runs {
			if err := runSection(run).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// runSection renders one run: its summary line and per-document tables.
func runSection(run runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		header := fmt.Sprintf("<h2>Run %s</h2>\n<p>Target %s &middot; %d tests &middot; %s passed</p>\n",
			templ.EscapeString(run.RunID),
			templ.EscapeString(run.Target),
			run.Summary.TotalTests,
			templ.EscapeString(formatPercent(run.Summary.SuccessRate)))
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		for _, document := range run.Documents {
			if err := documentTable(document).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// documentTable renders the per-test rows for one document.
func documentTable(document runner.DocumentResult) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h3>%s</h3>\n<table>\n<tr><th>Test</th><th>Category</th><th>Status</th><th>Time</th><th>Issues</th></tr>\n",
			templ.EscapeString(document.DocumentName)); err != nil {
			return err
		}
		for _, test := range document.Tests {
			if _, err := io.WriteString(w, testRow(test)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}

func testRow(test runner.TestResult) string {
	status := "<td class=\"pass\">pass</td>"
	if !test.Validation.Valid {
		status = "<td class=\"fail\">fail</td>"
	}
	elapsed := "<td class=\"muted\">&ndash;</td>"
	if test.ResponseTimeMS >= 0 {
		elapsed = fmt.Sprintf("<td>%dms</td>", test.ResponseTimeMS)
	}
	issues := ""
	for _, message := range test.Validation.Errors {
		issues += fmt.Sprintf("<div class=\"fail\">%s</div>", templ.EscapeString(message))
	}
	for _, message := range test.Validation.Warnings {
		issues += fmt.Sprintf("<div class=\"muted\">%s</div>", templ.EscapeString(message))
	}
	if test.TransportError != "" {
		issues += fmt.Sprintf("<div class=\"fail\">transport: %s</div>", templ.EscapeString(test.TransportError))
	}
	return fmt.Sprintf("<tr><td>%s</td><td>%s</td>%s%s<td>%s</td></tr>\n",
		templ.EscapeString(test.TestID),
		templ.EscapeString(test.Validation.Category),
		status,
		elapsed,
		issues)
}
