package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prepdeck/internal/quiz"
	uiquiz "prepdeck/internal/ui/quiz"
	"prepdeck/internal/vcs"
)

// quizInput allows tests to override stdin for plain-mode prompts.
var quizInput io.Reader = os.Stdin

// runTUI is a test seam for running the Bubble Tea program.
var runTUI = func(model uiquiz.Model, stdout io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(stdout))
	_, err := program.Run()
	return err
}

// topicsFlag collects repeated --topic values.
type topicsFlag []string

func (t *topicsFlag) String() string { return strings.Join(*t, ",") }

func (t *topicsFlag) Set(value string) error {
	for _, topic := range strings.Split(value, ",") {
		if topic = strings.TrimSpace(topic); topic != "" {
			*t = append(*t, topic)
		}
	}
	return nil
}

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .prepdeck/config.yml)")
		var topics topicsFlag
		flags.Var(&topics, "topic", "Topic to draw cards from (repeatable)")
		limit := flags.Int("limit", -1, "Maximum cards per session (default: from config)")
		noShuffle := flags.Bool("no-shuffle", false, "Keep cards in document order")
		seed := flags.Int64("seed", 0, "Shuffle seed for reproducible sessions")
		uiMode := flags.String("ui", "auto", "UI mode: auto, live, or plain")
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

		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		proj, err := loadProject(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}
		lib, err := proj.loadLibrary()
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}

		opts := quiz.Options{
			Topics:  topics,
			Shuffle: proj.Config.Quiz.ShuffleEnabled() && !*noShuffle,
			Seed:    *seed,
			Limit:   proj.Config.Quiz.Limit,
		}
		if *limit >= 0 {
			opts.Limit = *limit
		}

		session, err := quiz.NewSession(lib, opts)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}

		startedAt := time.Now().UTC()
		if decision.useTUI {
			if err := runTUI(uiquiz.NewModel(session, uiquiz.Options{}), stdout); err != nil {
				fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
				return ExitError
			}
		} else if err := runPlainQuiz(session, stdout); err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}
		finishedAt := time.Now().UTC()

		runID, err := quiz.NewRunID()
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}
		contentRev := vcs.ContentRevision(context.Background(), proj.contentRoot())
		results := session.BuildResults(runID, contentRev, startedAt, finishedAt)
		path, err := quiz.SaveResults(proj.resultsDir(), results)
		if err != nil {
			fmt.Fprintf(stderr, "Quiz failed:\n%v\n", err)
			return ExitError
		}

		summary := results.Summary
		fmt.Fprintf(stdout, "Session %s: %d cards, %d correct, %d incorrect, %d skipped (pass rate %.0f%%)\n",
			runID, summary.Total, summary.Correct, summary.Incorrect, summary.Skipped, summary.PassRate*100)
		fmt.Fprintf(stdout, "Results saved to %s\n", path)
		return ExitOK
	}
}

// runPlainQuiz walks the session with line-oriented prompts.
func runPlainQuiz(session *quiz.Session, stdout io.Writer) error {
	reader := bufio.NewReader(quizInput)
	for !session.Done() {
		card, ok := session.Current()
		if !ok {
			break
		}
		pos, total := session.Position()
		fmt.Fprintf(stdout, "\n[%d/%d] (%s) %s\n", pos, total, card.QA.Topic, card.QA.Question)

		fmt.Fprint(stdout, "Press enter to reveal, s to skip, q to finish: ")
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return err
		}
		eof := err == io.EOF
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "q":
			return nil
		case "s":
			if err := session.Record(quiz.GradeSkipped); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(stdout, "\n%s\n\n", card.QA.Answer)
		grade := quiz.GradeSkipped
		if !eof {
			answer, err := promptGrade(reader, stdout)
			if err != nil {
				return err
			}
			if answer == "q" {
				return nil
			}
			grade = quiz.Grade(answer)
		}
		if err := session.Record(grade); err != nil {
			return err
		}
		if eof {
			return nil
		}
	}
	return nil
}

// promptGrade asks for a self-assessment of the revealed answer.
func promptGrade(reader *bufio.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Did you get it right? y correct, n incorrect, s skip, q finish: ")
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return "", err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return string(quiz.GradeCorrect), nil
		case "n", "no":
			return string(quiz.GradeIncorrect), nil
		case "s":
			return string(quiz.GradeSkipped), nil
		case "q":
			return "q", nil
		}
		if err == io.EOF {
			return string(quiz.GradeSkipped), nil
		}
	}
}
