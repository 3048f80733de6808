package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"prepdeck/internal/export"
	"prepdeck/internal/vcs"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		out := flags.String("out", "", "Output file, .json or .yml")
		var topics topicsFlag
		flags.Var(&topics, "topic", "Topic to export (repeatable, default: all)")
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
		if strings.TrimSpace(*out) == "" {
			fmt.Fprintln(stderr, "Missing --out")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		proj, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		lib, err := proj.loadLibrary()
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}

		spec, err := export.BuildSpec(lib, export.Options{
			Topics:     topics,
			Title:      proj.Config.Site.Title,
			ContentRev: vcs.ContentRevision(context.Background(), proj.contentRoot()),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}
		if err := export.WriteSpec(*out, spec); err != nil {
			fmt.Fprintf(stderr, "Export failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Exported %d questions to %s\n", len(spec.Questions), *out)
		return ExitOK
	}
}
