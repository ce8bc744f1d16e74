package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ragcheck/internal/analyze"
	"ragcheck/internal/config"
	"ragcheck/internal/corpus"
	"ragcheck/internal/extractor"
	"ragcheck/internal/testgen"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .ragcheck/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
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

		ext := extractor.New()
		documentTests := map[string]corpus.DocumentTests{}
		for _, doc := range cfg.Documents {
			path := resolvePath(root, doc.Path)
			name := extractor.DocumentName(path)
			content := ext.Extract(path)
			analysis := analyze.Document(content.RawText)
			tests := testgen.Generate(name, content, analysis)
			documentTests[name] = tests
			fmt.Fprintf(stdout, "Generated %d tests for %s (%d words)\n",
				len(tests.AllRecords()), name, content.WordCount)
		}

		built := testgen.BuildCorpus(documentTests, time.Now())
		corpusPath := resolvePath(root, cfg.Corpus.Path)
		if err := os.MkdirAll(filepath.Dir(corpusPath), 0o755); err != nil {
			fmt.Fprintf(stderr, "Failed to write corpus: %v\n", err)
			return ExitError
		}
		if err := corpus.Save(built, corpusPath); err != nil {
			fmt.Fprintf(stderr, "Failed to write corpus: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Corpus written to %s\n", corpusPath)
		return ExitOK
	}
}
