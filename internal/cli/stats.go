package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"prepdeck/internal/index"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		search := flags.String("search", "", "Show questions matching this text instead of topic totals")
		topic := flags.String("topic", "", "Restrict --search to one topic")
		limit := flags.Int("limit", 0, "Maximum search results")
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
			fmt.Fprintf(stderr, "Stats failed:\n%v\n", err)
			return ExitError
		}
		if _, err := os.Stat(proj.indexPath()); err != nil {
			fmt.Fprintf(stderr, "Index not found, run \"prepdeck index\" first: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		db, err := index.Open(ctx, proj.indexPath())
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed:\n%v\n", err)
			return ExitError
		}
		defer db.Close()

		if strings.TrimSpace(*search) != "" {
			rows, err := index.Search(ctx, db, *search, *topic, *limit)
			if err != nil {
				fmt.Fprintf(stderr, "Stats failed:\n%v\n", err)
				return ExitError
			}
			writer := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tTOPIC\tQUESTION")
			for _, row := range rows {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", row.QAID, row.Topic, row.Question)
			}
			writer.Flush()
			fmt.Fprintf(stdout, "%d matches\n", len(rows))
			return ExitOK
		}

		stats, err := index.TopicStats(ctx, db)
		if err != nil {
			fmt.Fprintf(stderr, "Stats failed:\n%v\n", err)
			return ExitError
		}
		writer := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "TOPIC\tDOCUMENTS\tQUESTIONS")
		total := 0
		for _, stat := range stats {
			fmt.Fprintf(writer, "%s\t%d\t%d\n", stat.Topic, stat.Documents, stat.Questions)
			total += stat.Questions
		}
		writer.Flush()
		fmt.Fprintf(stdout, "%d questions indexed\n", total)
		return ExitOK
	}
}
