package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"ragcheck/internal/config"
	"ragcheck/internal/corpus"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		corpusPath := resolvePath(config.RootFromConfigPath(resolved), cfg.Corpus.Path)
		if _, err := os.Stat(corpusPath); os.IsNotExist(err) {
			fmt.Fprintf(stdout, "Corpus not generated yet (%s)\n", corpusPath)
			return ExitOK
		}
		c, err := corpus.Load(corpusPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		total := 0
		for _, tests := range c.DocumentTests {
			total += len(tests.AllRecords())
		}
		fmt.Fprintf(stdout, "Corpus OK (%d documents, %d tests)\n", len(c.DocumentTests), total)
		return ExitOK
	}
}
