package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"prepdeck/internal/site"
	"prepdeck/internal/vcs"
)

// runBuild builds the handler for the build command.
func runBuild(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		outDir := flags.String("out", "", "Output directory (default: from config)")
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
			fmt.Fprintf(stderr, "Build failed:\n%v\n", err)
			return ExitError
		}
		lib, err := proj.loadLibrary()
		if err != nil {
			fmt.Fprintf(stderr, "Build failed:\n%v\n", err)
			return ExitError
		}

		output := *outDir
		if output == "" {
			output = proj.siteDir()
		}

		manifest, err := site.Build(lib, site.Config{
			OutputDir:  output,
			Title:      proj.Config.Site.Title,
			BaseURL:    proj.Config.Site.BaseURL,
			ContentRev: vcs.ContentRevision(context.Background(), proj.contentRoot()),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Build failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %d files to %s\n", len(manifest.Files), manifest.OutputDir)
		return ExitOK
	}
}
