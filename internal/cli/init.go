package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ragcheck/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", "", "Project directory (default: current directory)")
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

		root := strings.TrimSpace(*dir)
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			root = wd
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		configDir := config.ConfigDir(absRoot)
		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		configPath := config.ConfigPath(absRoot)
		if err := config.Scaffold(configPath); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", configPath)
		fmt.Fprintln(stdout, "Edit the documents section, then run \"ragcheck generate\".")
		return ExitOK
	}
}
