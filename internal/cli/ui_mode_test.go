package cli

import (
	"bytes"
	"io"
	"testing"
)

func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

// TestResolveUIModeAuto follows TTY detection.
func TestResolveUIModeAuto(t *testing.T) {
	var out bytes.Buffer

	withTerminal(t, true)
	decision, err := resolveUIMode("auto", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !decision.useTUI {
		t.Fatalf("expected TUI on a terminal")
	}

	withTerminal(t, false)
	decision, err = resolveUIMode("", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useTUI {
		t.Fatalf("expected plain mode off a terminal")
	}
}

// TestResolveUIModeLiveFallsBack warns when live is forced without a TTY.
func TestResolveUIModeLiveFallsBack(t *testing.T) {
	withTerminal(t, false)
	decision, err := resolveUIMode("live", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useTUI {
		t.Fatalf("expected fallback to plain mode")
	}
	if decision.warning == "" {
		t.Fatalf("expected fallback warning")
	}
}

// TestResolveUIModeInvalid rejects unknown modes.
func TestResolveUIModeInvalid(t *testing.T) {
	if _, err := resolveUIMode("fancy", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for invalid mode")
	}
}
