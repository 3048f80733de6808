package lint

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"prepdeck/internal/content"
)

func loadFixture(t *testing.T, files map[string]string) *content.Library {
	t.Helper()
	dir := t.TempDir()
	topics := make([]content.TopicSpec, 0, len(files))
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(files[name]), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		id := strings.TrimSuffix(name, ".md")
		topics = append(topics, content.TopicSpec{ID: id, Files: []string{name}})
	}
	lib, err := content.Load(dir, topics, 0)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return lib
}

func rulesOf(report Report) []string {
	out := make([]string, 0, len(report.Issues))
	for _, issue := range report.Issues {
		out = append(out, issue.Rule)
	}
	return out
}

func hasRule(report Report, rule string) bool {
	for _, issue := range report.Issues {
		if issue.Rule == rule {
			return true
		}
	}
	return false
}

// TestLintCleanDeck produces no issues for well-formed content.
func TestLintCleanDeck(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"js.md": `# JS

## Table of Contents

- [What is a closure?](#1-what-is-a-closure)

### 1. What is a closure?

A function plus its captured scope.

` + "```js\nconst add = (a, b) => a + b;\n```\n",
	})
	report := Lint(lib, Options{})
	if len(report.Issues) != 0 {
		t.Fatalf("expected clean report, got %v", rulesOf(report))
	}
	if report.HasErrors() {
		t.Fatalf("clean report claims errors")
	}
}

// TestLintMissingAnswer flags questions without an answer section.
func TestLintMissingAnswer(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"css.md": "# CSS\n\n### 1. What is the box model?\n\n### 2. What is specificity?\n\nSelector ranking.\n",
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleMissingAnswer) {
		t.Fatalf("expected missing-answer, got %v", rulesOf(report))
	}
	if !report.HasErrors() {
		t.Fatalf("missing-answer should be an error")
	}
}

// TestLintFenceRules covers untagged, unknown, and invalid fences.
func TestLintFenceRules(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"js.md": "# JS\n\n### 1. Q one?\n\ntext\n\n```\nuntagged\n```\n\n### 2. Q two?\n\ntext\n\n```cobol\nMOVE A TO B.\n```\n\n### 3. Q three?\n\ntext\n\n```js\nfunction broken( {\n```\n",
	})
	report := Lint(lib, Options{})
	for _, want := range []string{RuleUntaggedFence, RuleUnknownLanguage, RuleInvalidCode} {
		if !hasRule(report, want) {
			t.Fatalf("expected %s, got %v", want, rulesOf(report))
		}
	}
	errors, warnings := report.Counts()
	if errors != 1 || warnings != 2 {
		t.Fatalf("expected 1 error / 2 warnings, got %d / %d", errors, warnings)
	}
}

// TestLintUnclosedFence flags a fence that runs to end of file.
func TestLintUnclosedFence(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"js.md": "# JS\n\n### 1. What is hoisting?\n\nDeclarations move up.\n\n```js\nvar x = 1;\n",
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleUnclosedFence) {
		t.Fatalf("expected unclosed-fence, got %v", rulesOf(report))
	}
	for _, issue := range report.Issues {
		if issue.Rule == RuleUnclosedFence && issue.Severity != SeverityError {
			t.Fatalf("unclosed-fence should be an error, got %s", issue.Severity)
		}
	}
	if !report.HasErrors() {
		t.Fatalf("unclosed-fence should fail the report")
	}
}

// TestLintBrokenAnchor flags TOC links with no matching heading.
func TestLintBrokenAnchor(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"html.md": `# HTML

## Table of Contents

- [What is a doctype?](#1-what-is-a-doctype)
- [Ghost entry](#99-does-not-exist)

### 1. What is a doctype?

It selects standards mode.
`,
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleBrokenAnchor) {
		t.Fatalf("expected broken-anchor, got %v", rulesOf(report))
	}
}

// TestLintMissingTOCEntry warns when a numbered question is unlisted.
func TestLintMissingTOCEntry(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"html.md": `# HTML

## Table of Contents

- [What is a doctype?](#1-what-is-a-doctype)

### 1. What is a doctype?

Answer.

### 2. What is an iframe?

Answer.
`,
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleMissingTOC) {
		t.Fatalf("expected missing-toc-entry, got %v", rulesOf(report))
	}
	if report.HasErrors() {
		t.Fatalf("missing-toc-entry should be a warning, got errors: %v", report.Issues)
	}
}

// TestLintDuplicates flags repeated questions and colliding IDs.
func TestLintDuplicates(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"ts.md": "# TS\n\n### 1. What are generics?\n\nAnswer.\n\n### 1. What  are Generics?\n\nAnswer again.\n",
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleDuplicateQ) {
		t.Fatalf("expected duplicate-question, got %v", rulesOf(report))
	}
	if !hasRule(report, RuleDuplicateID) {
		t.Fatalf("expected duplicate-id, got %v", rulesOf(report))
	}
}

// TestLintEmptyDocument warns on documents with no questions.
func TestLintEmptyDocument(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"notes.md": "# Notes\n\nJust prose, no questions.\n",
	})
	report := Lint(lib, Options{})
	if !hasRule(report, RuleEmptyDocument) {
		t.Fatalf("expected empty-document, got %v", rulesOf(report))
	}
}

// TestLintDisabledRules skips findings for disabled rules.
func TestLintDisabledRules(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"notes.md": "# Notes\n\nJust prose.\n",
	})
	report := Lint(lib, Options{Disable: []string{RuleEmptyDocument}})
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %v", rulesOf(report))
	}
}

// TestLintCustomLanguages lets config narrow the allowed language set.
func TestLintCustomLanguages(t *testing.T) {
	lib := loadFixture(t, map[string]string{
		"js.md": "# JS\n\n### 1. Q?\n\ntext\n\n```ruby\nputs 1\n```\n",
	})
	if report := Lint(lib, Options{Languages: []string{"ruby"}}); hasRule(report, RuleUnknownLanguage) {
		t.Fatalf("ruby should be allowed, got %v", rulesOf(report))
	}
	if report := Lint(lib, Options{}); !hasRule(report, RuleUnknownLanguage) {
		t.Fatalf("ruby should be unknown by default")
	}
}
