package lint

import (
	"fmt"
	"strings"

	"prepdeck/internal/content"
)

// Rule names, stable for config disable lists and JSON output.
const (
	RuleMissingAnswer   = "missing-answer"
	RuleUntaggedFence   = "untagged-fence"
	RuleUnknownLanguage = "unknown-language"
	RuleInvalidCode     = "invalid-code"
	RuleUnclosedFence   = "unclosed-fence"
	RuleDuplicateQ      = "duplicate-question"
	RuleDuplicateID     = "duplicate-id"
	RuleBrokenAnchor    = "broken-anchor"
	RuleMissingTOC      = "missing-toc-entry"
	RuleEmptyDocument   = "empty-document"
)

// defaultLanguages covers the corpus's fence tags.
var defaultLanguages = []string{
	"html", "css", "scss", "less",
	"js", "javascript", "jsx",
	"ts", "typescript", "tsx",
	"json", "bash", "sh", "shell", "text",
}

func allowedLanguages(override []string) map[string]struct{} {
	langs := override
	if len(langs) == 0 {
		langs = defaultLanguages
	}
	set := make(map[string]struct{}, len(langs))
	for _, lang := range langs {
		set[strings.ToLower(strings.TrimSpace(lang))] = struct{}{}
	}
	return set
}

// lintDeck runs the per-document and per-question rules for one deck.
func lintDeck(deck content.Deck, allowed map[string]struct{}, add func(Issue)) {
	seenQuestions := map[string]content.QA{}
	for _, doc := range deck.Documents {
		if len(doc.QAs) == 0 {
			add(Issue{
				Rule:     RuleEmptyDocument,
				Severity: SeverityWarning,
				File:     doc.Path,
				Line:     1,
				Message:  "document contains no question/answer pairs",
			})
		}
		lintAnchors(doc, add)
		tocAnchors := map[string]struct{}{}
		for _, entry := range doc.TOC {
			tocAnchors[entry.Anchor] = struct{}{}
		}

		for _, qa := range doc.QAs {
			lintQA(qa, allowed, add)
			if len(doc.TOC) > 0 && qa.Number > 0 {
				if _, listed := tocAnchors[qa.Anchor]; !listed {
					add(Issue{
						Rule:     RuleMissingTOC,
						Severity: SeverityWarning,
						File:     qa.File,
						Line:     qa.Line,
						Message:  fmt.Sprintf("question %d is not listed in the table of contents", qa.Number),
					})
				}
			}
			key := content.NormalizeQuestion(qa.Question)
			if prev, dup := seenQuestions[key]; dup {
				add(Issue{
					Rule:     RuleDuplicateQ,
					Severity: SeverityError,
					File:     qa.File,
					Line:     qa.Line,
					Message:  fmt.Sprintf("question duplicates %s:%d (%q)", prev.File, prev.Line, prev.Question),
				})
			} else {
				seenQuestions[key] = qa
			}
		}
	}
}

// lintQA checks one question/answer pair.
func lintQA(qa content.QA, allowed map[string]struct{}, add func(Issue)) {
	if qa.Answer == "" {
		add(Issue{
			Rule:     RuleMissingAnswer,
			Severity: SeverityError,
			File:     qa.File,
			Line:     qa.Line,
			Message:  fmt.Sprintf("question %q has no answer section", qa.Question),
		})
	}
	for _, code := range qa.Code {
		switch {
		case code.Unclosed:
			add(Issue{
				Rule:     RuleUnclosedFence,
				Severity: SeverityError,
				File:     qa.File,
				Line:     code.Line,
				Message:  "code fence is never closed",
			})
		case code.Language == "":
			add(Issue{
				Rule:     RuleUntaggedFence,
				Severity: SeverityWarning,
				File:     qa.File,
				Line:     code.Line,
				Message:  "code fence has no language tag",
			})
		default:
			if _, ok := allowed[code.Language]; !ok {
				add(Issue{
					Rule:     RuleUnknownLanguage,
					Severity: SeverityWarning,
					File:     qa.File,
					Line:     code.Line,
					Message:  fmt.Sprintf("unknown fence language %q", code.Language),
				})
			} else if err := CheckCode(code.Language, code.Body); err != nil {
				add(Issue{
					Rule:     RuleInvalidCode,
					Severity: SeverityError,
					File:     qa.File,
					Line:     code.Line,
					Message:  fmt.Sprintf("%s snippet is malformed: %v", code.Language, err),
				})
			}
		}
	}
}

// lintAnchors validates TOC links against the document's heading slugs.
func lintAnchors(doc content.Document, add func(Issue)) {
	slugs := map[string]struct{}{}
	for _, heading := range doc.Markdown.Headings() {
		slugs[heading.Slug] = struct{}{}
	}
	for _, entry := range doc.TOC {
		if _, ok := slugs[entry.Anchor]; !ok {
			add(Issue{
				Rule:     RuleBrokenAnchor,
				Severity: SeverityError,
				File:     doc.Path,
				Line:     entry.Line,
				Message:  fmt.Sprintf("table of contents links to missing anchor #%s", entry.Anchor),
			})
		}
	}
}

// lintIDs flags QA ID collisions across the whole library.
func lintIDs(lib *content.Library, add func(Issue)) {
	seen := map[string]content.QA{}
	for _, qa := range lib.QAs() {
		if prev, dup := seen[qa.ID]; dup {
			add(Issue{
				Rule:     RuleDuplicateID,
				Severity: SeverityError,
				File:     qa.File,
				Line:     qa.Line,
				Message:  fmt.Sprintf("question id %s already used at %s:%d", qa.ID, prev.File, prev.Line),
			})
			continue
		}
		seen[qa.ID] = qa
	}
}
