package config

import (
	"strings"

	"prepdeck/internal/content"
)

// Defaults applied during normalization.
const (
	DefaultSiteDir   = ".prepdeck/site"
	DefaultIndexPath = ".prepdeck/index.duckdb"
	DefaultSiteTitle = "Interview Prep"
)

// Normalize trims fields and fills defaults before validation.
func Normalize(cfg *Config) {
	cfg.Content.Root = strings.TrimSpace(cfg.Content.Root)
	if cfg.Content.Root == "" {
		cfg.Content.Root = "."
	}
	if cfg.Content.QuestionLevel == 0 {
		cfg.Content.QuestionLevel = content.DefaultQuestionLevel
	}
	for i := range cfg.Content.Topics {
		topic := &cfg.Content.Topics[i]
		topic.ID = strings.ToLower(strings.TrimSpace(topic.ID))
		topic.Title = strings.TrimSpace(topic.Title)
		topic.File = strings.TrimSpace(topic.File)
		if topic.File != "" {
			topic.Files = append([]string{topic.File}, topic.Files...)
			topic.File = ""
		}
		for j := range topic.Files {
			topic.Files[j] = strings.TrimSpace(topic.Files[j])
		}
	}

	cfg.Site.OutputDir = strings.TrimSpace(cfg.Site.OutputDir)
	if cfg.Site.OutputDir == "" {
		cfg.Site.OutputDir = DefaultSiteDir
	}
	cfg.Site.Title = strings.TrimSpace(cfg.Site.Title)
	if cfg.Site.Title == "" {
		cfg.Site.Title = DefaultSiteTitle
	}
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")

	cfg.Index.Path = strings.TrimSpace(cfg.Index.Path)
	if cfg.Index.Path == "" {
		cfg.Index.Path = DefaultIndexPath
	}

	for i := range cfg.Lint.Disable {
		cfg.Lint.Disable[i] = strings.TrimSpace(cfg.Lint.Disable[i])
	}
	for i := range cfg.Lint.Languages {
		cfg.Lint.Languages[i] = strings.ToLower(strings.TrimSpace(cfg.Lint.Languages[i]))
	}
}

// TopicSpecs converts configured topics into content loader specs.
func (c ContentConfig) TopicSpecs() []content.TopicSpec {
	out := make([]content.TopicSpec, 0, len(c.Topics))
	for _, topic := range c.Topics {
		out = append(out, content.TopicSpec{ID: topic.ID, Title: topic.Title, Files: topic.Files})
	}
	return out
}
