package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prepdeck/internal/lint"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// knownRules matches the linter's rule names for disable-list validation.
var knownRules = map[string]struct{}{
	lint.RuleMissingAnswer:   {},
	lint.RuleUntaggedFence:   {},
	lint.RuleUnknownLanguage: {},
	lint.RuleInvalidCode:     {},
	lint.RuleUnclosedFence:   {},
	lint.RuleDuplicateQ:      {},
	lint.RuleDuplicateID:     {},
	lint.RuleBrokenAnchor:    {},
	lint.RuleMissingTOC:      {},
	lint.RuleEmptyDocument:   {},
}

// Validate checks a config for correctness. baseDir anchors relative paths.
func Validate(cfg *Config, baseDir string) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if baseDir == "" {
		baseDir = "."
	}

	validateContent(cfg, baseDir, collector.add)
	validateLint(cfg, collector.add)

	if cfg.Content.QuestionLevel < 1 || cfg.Content.QuestionLevel > 6 {
		collector.add("content.question_level", fmt.Sprintf("must be between 1 and 6, got %d", cfg.Content.QuestionLevel))
	}
	if cfg.Quiz.Limit < 0 {
		collector.add("quiz.limit", "must not be negative")
	}

	return collector.result()
}

// validateContent checks the content root and topic declarations.
func validateContent(cfg *Config, baseDir string, add func(field, message string)) {
	root := cfg.Content.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}
	if info, err := os.Stat(root); err != nil {
		add("content.root", fmt.Sprintf("directory not found: %s", cfg.Content.Root))
	} else if !info.IsDir() {
		add("content.root", fmt.Sprintf("%s is not a directory", cfg.Content.Root))
	}

	seen := map[string]struct{}{}
	for i, topic := range cfg.Content.Topics {
		prefix := fmt.Sprintf("content.topics[%d]", i)
		if topic.ID == "" {
			add(prefix+".id", "is required")
			continue
		}
		if _, dup := seen[topic.ID]; dup {
			add(prefix+".id", fmt.Sprintf("duplicate topic id %q", topic.ID))
		}
		seen[topic.ID] = struct{}{}
		for j, file := range topic.Files {
			if file == "" {
				add(fmt.Sprintf("%s.files[%d]", prefix, j), "is required")
				continue
			}
			if filepath.IsAbs(file) {
				add(fmt.Sprintf("%s.files[%d]", prefix, j), "must be relative to content.root")
			}
		}
	}
}

// validateLint checks disable-list entries against known rule names.
func validateLint(cfg *Config, add func(field, message string)) {
	for i, rule := range cfg.Lint.Disable {
		if rule == "" {
			add(fmt.Sprintf("lint.disable[%d]", i), "is required")
			continue
		}
		if _, ok := knownRules[rule]; !ok {
			add(fmt.Sprintf("lint.disable[%d]", i), fmt.Sprintf("unknown rule %q", rule))
		}
	}
}
