// Package cli implements the prepdeck command line interface.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  prepdeck <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"prepdeck <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .prepdeck/config.yml", []string{
		"prepdeck init [--config <path>]",
	}, runInit),
	command("validate", "Validate the config and content layout", []string{
		"prepdeck validate [--config <path>]",
	}, runValidate),
	command("lint", "Check markdown decks for content defects", []string{
		"prepdeck lint [--config <path>] [--disable <rules>] [--json] [--strict]",
	}, runLint),
	command("index", "Index content into DuckDB", []string{
		"prepdeck index [--config <path>] [--db <path>]",
	}, runIndex),
	command("build", "Generate the static study site", []string{
		"prepdeck build [--config <path>] [--out <dir>]",
	}, runBuild),
	command("serve", "Serve the study site and question API", []string{
		"prepdeck serve [--config <path>] [--addr <host:port>]",
	}, runServe),
	command("quiz", "Run a flashcard session", []string{
		"prepdeck quiz [--config <path>] [--topic <id>]... [--limit <n>] [--no-shuffle] [--seed <n>] [--ui auto|live|plain]",
	}, runQuiz),
	command("export", "Write a versioned question set file", []string{
		"prepdeck export --out <file.yml|file.json> [--config <path>] [--topic <id>]...",
	}, runExport),
	command("stats", "Show indexed topic statistics", []string{
		"prepdeck stats [--config <path>] [--search <text> [--topic <id>] [--limit <n>]]",
	}, runStats),
}
