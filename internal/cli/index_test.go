package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestIndexCommandThenStats indexes the fixture and reads the totals back.
func TestIndexCommandThenStats(t *testing.T) {
	root, configPath := writeProject(t)

	var out, err bytes.Buffer
	code := Run([]string{"index", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Indexed 2 topics, 3 questions") {
		t.Fatalf("unexpected index output: %q", out.String())
	}
	if _, statErr := os.Stat(filepath.Join(root, ".prepdeck", "index.duckdb")); statErr != nil {
		t.Fatalf("index file not created: %v", statErr)
	}

	out.Reset()
	err.Reset()
	code = Run([]string{"stats", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}
	output := out.String()
	if !strings.Contains(output, "javascript") || !strings.Contains(output, "3 questions indexed") {
		t.Fatalf("unexpected stats output: %q", output)
	}

	out.Reset()
	err.Reset()
	code = Run([]string{"stats", "--config", configPath, "--search", "closure"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "javascript-1") || !strings.Contains(out.String(), "1 matches") {
		t.Fatalf("unexpected search output: %q", out.String())
	}
}

// TestStatsCommandWithoutIndex points the user at the index command.
func TestStatsCommandWithoutIndex(t *testing.T) {
	_, configPath := writeProject(t)

	var out, err bytes.Buffer
	code := Run([]string{"stats", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "prepdeck index") {
		t.Fatalf("expected index hint, got %q", err.String())
	}
}
