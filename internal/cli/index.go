package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"prepdeck/internal/index"
	"prepdeck/internal/vcs"
)

// runIndex builds the handler for the index command.
func runIndex(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		dbPath := flags.String("db", "", "DuckDB file to index into (default: from config)")
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

		proj, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Index failed:\n%v\n", err)
			return ExitError
		}
		lib, err := proj.loadLibrary()
		if err != nil {
			fmt.Fprintf(stderr, "Index failed:\n%v\n", err)
			return ExitError
		}

		path := *dbPath
		if path == "" {
			path = proj.indexPath()
		}

		ctx := context.Background()
		db, err := index.Open(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "Index failed:\n%v\n", err)
			return ExitError
		}
		defer db.Close()

		contentRev := vcs.ContentRevision(ctx, proj.contentRoot())
		summary, err := index.IndexLibrary(ctx, db, lib, contentRev)
		if err != nil {
			fmt.Fprintf(stderr, "Index failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Indexed %d topics, %d questions at revision %s (%s)\n",
			summary.Topics, summary.Questions, summary.ContentRev, path)
		return ExitOK
	}
}
