package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ragcheck/internal/config"
	"ragcheck/internal/report"
	"ragcheck/internal/runner"
)

var buildReportHTML = report.BuildReportHTML

func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .ragcheck/config.yml)")
		runRef := fs.String("run", "", "Run id to report on (default: all runs; \"latest\" for the newest)")
		outputPath := fs.String("output", "", "Report output path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		outputDir := resolvePath(config.RootFromConfigPath(resolved), cfg.Run.OutputDir)

		var runs []runner.Results
		reportPath := *outputPath
		if *runRef == "" {
			runs, err = report.LoadAllRuns(outputDir)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load runs: %v\n", err)
				return ExitError
			}
			if reportPath == "" {
				reportPath = filepath.Join(outputDir, "report.html")
			}
		} else {
			results, runDir, err := report.ResolveRun(outputDir, *runRef)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to resolve run: %v\n", err)
				return ExitError
			}
			runs = []runner.Results{results}
			if reportPath == "" {
				reportPath = filepath.Join(runDir, "report.html")
			}
		}
		if len(runs) == 0 {
			fmt.Fprintln(stderr, "No runs found")
			return ExitError
		}

		html := buildReportHTML(runs)
		if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
		return ExitOK
	}
}
