package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"ragcheck/internal/config"
	"ragcheck/internal/corpus"
	"ragcheck/internal/judge"
	"ragcheck/internal/report"
	"ragcheck/internal/runner"
	"ragcheck/internal/store"
	"ragcheck/internal/target"
	"ragcheck/internal/ui/live"
)

// judgeFromEnv is a test seam for constructing the judge provider.
var judgeFromEnv = judge.ProviderFromEnv

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .ragcheck/config.yml)")
		workers := fs.Int("workers", 0, "Override worker count")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live, or plain")
		if err := fs.Parse(args); err != nil {
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
		root := config.RootFromConfigPath(resolved)

		c, err := corpus.Load(resolvePath(root, cfg.Corpus.Path))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load corpus: %v\n", err)
			fmt.Fprintln(stderr, "Run \"ragcheck generate\" first.")
			return ExitError
		}

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		httpClient := &http.Client{Timeout: time.Duration(cfg.Target.TimeoutSeconds) * time.Second}
		client := target.NewClient(cfg.Target.BaseURL, httpClient)

		var answerJudge *judge.Judge
		if cfg.Judge.Enabled {
			provider, err := judgeFromEnv(cfg.Judge.Model, nil)
			if err != nil {
				fmt.Fprintf(stderr, "Judge disabled: %v\n", err)
			} else {
				answerJudge = judge.New(provider)
			}
		}

		workerCount := cfg.Run.Workers
		if *workers > 0 {
			workerCount = *workers
		}

		var controller *live.Controller
		var observer runner.RunObserver
		if decision.useLive {
			controller = live.Start(stdout, live.Options{})
			observer = controller
		}

		results, err := runner.Run(context.Background(), c, runner.RunParams{
			Target:        cfg.Target.BaseURL,
			Documents:     fs.Args(),
			Workers:       workerCount,
			JudgeCriteria: cfg.Judge.Criteria,
			Deps: runner.RunDependencies{
				Asker:    client,
				Judge:    answerJudge,
				Observer: observer,
			},
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		outputDir := resolvePath(root, cfg.Run.OutputDir)
		paths, err := runner.WriteResults(results, outputDir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
			return ExitError
		}
		html := report.BuildReportHTML([]runner.Results{results})
		if err := os.WriteFile(paths.ReportPath(), []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		if err := ingestResults(resolvePath(root, cfg.Run.Database), results); err != nil {
			fmt.Fprintf(stderr, "Failed to store results: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		fmt.Fprint(stdout, report.FormatSummary(results.Summary))
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		if results.Summary.Failed > 0 {
			return ExitError
		}
		return ExitOK
	}
}

// ingestResults records a finished run in the DuckDB database.
func ingestResults(dbPath string, results runner.Results) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return store.IngestRun(context.Background(), db, results)
}
