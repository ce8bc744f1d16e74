package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"ragcheck/internal/config"
	"ragcheck/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .ragcheck/config.yml)")
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
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

		serveCfg := reportserver.Config{
			Addr:      *addr,
			OutputDir: resolvePath(root, cfg.Run.OutputDir),
		}
		dbPath := resolvePath(root, cfg.Run.Database)
		if _, err := os.Stat(dbPath); err == nil {
			serveCfg.DBPath = dbPath
		}

		fmt.Fprintf(stdout, "Serving report at http://%s\n", serveCfg.Addr)
		if err := serveReport(context.Background(), serveCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
