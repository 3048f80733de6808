package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"prepdeck/internal/export"
)

// TestExportCommandWritesSpec exports and reloads a YAML question set.
func TestExportCommandWritesSpec(t *testing.T) {
	_, configPath := writeProject(t)
	outPath := filepath.Join(t.TempDir(), "questions.yml")

	var out, err bytes.Buffer
	code := Run([]string{"export", "--config", configPath, "--out", outPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Exported 3 questions") {
		t.Fatalf("unexpected output: %q", out.String())
	}

	spec, loadErr := export.LoadSpec(outPath)
	if loadErr != nil {
		t.Fatalf("load exported spec: %v", loadErr)
	}
	if len(spec.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(spec.Questions))
	}
}

// TestExportCommandTopicFilter exports a single topic.
func TestExportCommandTopicFilter(t *testing.T) {
	_, configPath := writeProject(t)
	outPath := filepath.Join(t.TempDir(), "js.json")

	var out, err bytes.Buffer
	code := Run([]string{"export", "--config", configPath, "--out", outPath, "--topic", "javascript"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d\n%s", ExitOK, code, err.String())
	}

	spec, loadErr := export.LoadSpec(outPath)
	if loadErr != nil {
		t.Fatalf("load exported spec: %v", loadErr)
	}
	for _, question := range spec.Questions {
		if question.Topic != "javascript" {
			t.Fatalf("unexpected topic %q in filtered export", question.Topic)
		}
	}
}

// TestExportCommandRequiresOut exits with usage code without --out.
func TestExportCommandRequiresOut(t *testing.T) {
	_, configPath := writeProject(t)

	var out, err bytes.Buffer
	code := Run([]string{"export", "--config", configPath}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "Missing --out") {
		t.Fatalf("expected missing out error, got %q", err.String())
	}
}
