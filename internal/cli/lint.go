package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"prepdeck/internal/lint"
)

// runLint builds the handler for the lint command.
func runLint(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		disable := flags.String("disable", "", "Comma-separated rule names to skip")
		asJSON := flags.Bool("json", false, "Emit the report as JSON")
		strict := flags.Bool("strict", false, "Treat warnings as errors")
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
			fmt.Fprintf(stderr, "Lint failed:\n%v\n", err)
			return ExitError
		}
		lib, err := proj.loadLibrary()
		if err != nil {
			fmt.Fprintf(stderr, "Lint failed:\n%v\n", err)
			return ExitError
		}

		opts := lint.Options{
			Disable:   proj.Config.Lint.Disable,
			Languages: proj.Config.Lint.Languages,
		}
		if *disable != "" {
			for _, rule := range strings.Split(*disable, ",") {
				if rule = strings.TrimSpace(rule); rule != "" {
					opts.Disable = append(opts.Disable, rule)
				}
			}
		}

		report := lint.Lint(lib, opts)
		errs, warnings := report.Counts()
		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				fmt.Fprintf(stderr, "Lint failed: encode report: %v\n", err)
				return ExitError
			}
		} else {
			for _, issue := range report.Issues {
				fmt.Fprintln(stdout, issue.String())
			}
			fmt.Fprintf(stdout, "%d errors, %d warnings\n", errs, warnings)
		}

		if errs > 0 || (*strict && warnings > 0) {
			return ExitError
		}
		return ExitOK
	}
}
