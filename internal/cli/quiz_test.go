package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prepdeck/internal/quiz"
)

// TestQuizCommandPlainMode drives a full session through line prompts.
func TestQuizCommandPlainMode(t *testing.T) {
	root, configPath := writeProject(t)

	// Reveal and grade three cards: correct, incorrect, skip.
	quizInput = strings.NewReader("\ny\n\nn\n\ns\n")
	defer func() { quizInput = os.Stdin }()

	var out, err bytes.Buffer
	code := Run([]string{"quiz", "--config", configPath, "--ui", "plain", "--no-shuffle"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\nstdout: %s\nstderr: %s", ExitOK, code, out.String(), err.String())
	}
	output := out.String()
	if !strings.Contains(output, "3 cards, 1 correct, 1 incorrect, 1 skipped") {
		t.Fatalf("unexpected summary: %q", output)
	}
	if !strings.Contains(output, "Results saved to") {
		t.Fatalf("expected results path in output: %q", output)
	}

	resultsDir := filepath.Join(root, ".prepdeck", "results")
	entries, dirErr := os.ReadDir(resultsDir)
	if dirErr != nil {
		t.Fatalf("read results dir: %v", dirErr)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one results file, got %d", len(entries))
	}

	results, loadErr := quiz.LoadResults(filepath.Join(resultsDir, entries[0].Name()))
	if loadErr != nil {
		t.Fatalf("load results: %v", loadErr)
	}
	if results.Summary.Correct != 1 || results.Summary.Incorrect != 1 || results.Summary.Skipped != 1 {
		t.Fatalf("unexpected persisted summary: %+v", results.Summary)
	}
}

// TestQuizCommandTopicFilter limits the session to one deck.
func TestQuizCommandTopicFilter(t *testing.T) {
	_, configPath := writeProject(t)

	quizInput = strings.NewReader("q\n")
	defer func() { quizInput = os.Stdin }()

	var out, err bytes.Buffer
	code := Run([]string{"quiz", "--config", configPath, "--ui", "plain", "--topic", "css"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "1 cards") {
		t.Fatalf("expected single-card session, got %q", out.String())
	}
}

// TestQuizCommandUnknownTopic fails with a clear error.
func TestQuizCommandUnknownTopic(t *testing.T) {
	_, configPath := writeProject(t)

	var out, err bytes.Buffer
	code := Run([]string{"quiz", "--config", configPath, "--ui", "plain", "--topic", "golang"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "unknown topic") {
		t.Fatalf("expected unknown topic error, got %q", err.String())
	}
}

// TestQuizCommandInvalidUIMode exits with usage code.
func TestQuizCommandInvalidUIMode(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"quiz", "--ui", "fancy"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "invalid ui mode") {
		t.Fatalf("expected ui mode error, got %q", err.String())
	}
}
