package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"prepdeck/internal/siteserver"
)

// serveSite is a test seam for running the site server.
var serveSite = siteserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		addr := flags.String("addr", "127.0.0.1:8380", "Address to listen on")
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
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		proj, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed:\n%v\n", err)
			return ExitError
		}

		siteDir := proj.siteDir()
		if _, err := os.Stat(siteDir); err != nil {
			fmt.Fprintf(stderr, "Site not built yet, run \"prepdeck build\" first: %v\n", err)
			return ExitError
		}

		cfg := siteserver.Config{
			Addr:    *addr,
			SiteDir: siteDir,
		}
		if _, err := os.Stat(proj.indexPath()); err == nil {
			cfg.DBPath = proj.indexPath()
		}

		fmt.Fprintf(stdout, "Serving %s at http://%s\n", siteDir, cfg.Addr)
		if err := serveSite(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
