// Package lint checks interview-prep markdown content for documentation
// defects: unanswered questions, broken anchors, and malformed code fences.
package lint

import (
	"fmt"
	"sort"

	"prepdeck/internal/content"
)

// Severity ranks lint findings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one lint finding.
type Issue struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Message  string   `json:"message"`
}

// String renders an issue in file:line: severity: message form.
func (i Issue) String() string {
	return fmt.Sprintf("%s:%d: %s: %s (%s)", i.File, i.Line, i.Severity, i.Message, i.Rule)
}

// Report is the outcome of linting a library.
type Report struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any error-severity issue was found.
func (r Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Counts returns the number of errors and warnings.
func (r Report) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// Options configures a lint run.
type Options struct {
	// Disable lists rule names to skip.
	Disable []string
	// Languages overrides the allowed fence language set.
	Languages []string
}

// Lint runs every enabled rule over the library.
func Lint(lib *content.Library, opts Options) Report {
	disabled := map[string]struct{}{}
	for _, rule := range opts.Disable {
		disabled[rule] = struct{}{}
	}
	allowed := allowedLanguages(opts.Languages)

	var report Report
	add := func(issue Issue) {
		if _, skip := disabled[issue.Rule]; skip {
			return
		}
		report.Issues = append(report.Issues, issue)
	}

	for _, deck := range lib.Decks {
		lintDeck(deck, allowed, add)
	}
	lintIDs(lib, add)

	sort.SliceStable(report.Issues, func(i, j int) bool {
		a, b := report.Issues[i], report.Issues[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Line < b.Line
	})
	return report
}
