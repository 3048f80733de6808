package export

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"prepdeck/internal/content"
)

func exportFixture(t *testing.T) *content.Library {
	t.Helper()
	root := t.TempDir()
	deck := "# JavaScript Questions\n\n### 1. What is a closure?\n\nScope capture.\n\n```js\nconst f = () => {};\n```\n\n### 2. What is hoisting?\n\nDeclaration lifting.\n"
	if err := os.WriteFile(filepath.Join(root, "javascript.md"), []byte(deck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	lib, err := content.Load(root, nil, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return lib
}

// TestBuildSpec assembles the exported question set from loaded content.
func TestBuildSpec(t *testing.T) {
	lib := exportFixture(t)
	spec, err := BuildSpec(lib, Options{Title: "JS set", ContentRev: "abc123"})
	if err != nil {
		t.Fatalf("build spec: %v", err)
	}
	if spec.Version != SpecVersion {
		t.Fatalf("expected version %d, got %d", SpecVersion, spec.Version)
	}
	if len(spec.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(spec.Questions))
	}
	first := spec.Questions[0]
	if first.ID != "javascript-1" || first.Prompt != "What is a closure?" {
		t.Fatalf("unexpected first question: %+v", first)
	}
	if !reflect.DeepEqual(first.CodeLang, []string{"js"}) {
		t.Fatalf("unexpected code languages: %v", first.CodeLang)
	}
	if first.Anchor != "1-what-is-a-closure" {
		t.Fatalf("unexpected anchor: %q", first.Anchor)
	}
	if first.Source != "javascript.md#1-what-is-a-closure" {
		t.Fatalf("unexpected source: %q", first.Source)
	}
}

// TestBuildSpecRejectsUnknownTopic validates the topic filter.
func TestBuildSpecRejectsUnknownTopic(t *testing.T) {
	lib := exportFixture(t)
	_, err := BuildSpec(lib, Options{Topics: []string{"golang"}})
	if err == nil || !strings.Contains(err.Error(), "golang") {
		t.Fatalf("expected unknown topic error, got %v", err)
	}
}

// TestWriteLoadRoundTrip round-trips YAML and JSON files.
func TestWriteLoadRoundTrip(t *testing.T) {
	lib := exportFixture(t)
	spec, err := BuildSpec(lib, Options{Title: "JS set"})
	if err != nil {
		t.Fatalf("build spec: %v", err)
	}

	for _, name := range []string{"set.yml", "set.json"} {
		path := filepath.Join(t.TempDir(), name)
		if err := WriteSpec(path, spec); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		loaded, err := LoadSpec(path)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !reflect.DeepEqual(loaded, spec) {
			t.Fatalf("%s round trip mismatch:\n%+v\n%+v", name, loaded, spec)
		}
	}
}

// TestLoadSpecRejectsUnknownFields keeps parsing strict in both formats.
func TestLoadSpecRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "set.yml")
	yamlBody := "version: 1\nbogus: true\nquestions:\n  - id: js-1\n    topic: javascript\n    question: Q\n    answer: A\n    source: javascript.md#q\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if _, err := LoadSpec(yamlPath); err == nil {
		t.Fatalf("expected unknown field error for yaml")
	}

	jsonPath := filepath.Join(dir, "set.json")
	jsonBody := `{"version": 1, "bogus": true, "questions": []}`
	if err := os.WriteFile(jsonPath, []byte(jsonBody), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if _, err := LoadSpec(jsonPath); err == nil {
		t.Fatalf("expected unknown field error for json")
	}
}

// TestNormalizeSpecValidation collects schema issues.
func TestNormalizeSpecValidation(t *testing.T) {
	_, err := NormalizeSpec(Spec{
		Version: SpecVersion,
		Questions: []Question{
			{ID: "js-1", Topic: "javascript", Prompt: "Q1", Answer: "A1"},
			{ID: "js-1", Topic: "javascript", Prompt: "", Answer: ""},
		},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := make([]string, 0, len(validation.Issues))
	for _, issue := range validation.Issues {
		fields = append(fields, issue.Field)
	}
	for _, want := range []string{"questions[1].id", "questions[1].question", "questions[1].answer"} {
		found := false
		for _, field := range fields {
			if field == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing issue for %s, got %v", want, fields)
		}
	}

	if _, err := NormalizeSpec(Spec{Version: 2, Questions: []Question{{ID: "a", Topic: "t", Prompt: "q", Answer: "a"}}}); err == nil {
		t.Fatalf("expected unsupported version error")
	}
}
