package config

// Config is the .prepdeck/config.yml schema.
type Config struct {
	Version int           `yaml:"version"`
	Content ContentConfig `yaml:"content"`
	Lint    LintConfig    `yaml:"lint"`
	Site    SiteConfig    `yaml:"site"`
	Index   IndexConfig   `yaml:"index"`
	Quiz    QuizConfig    `yaml:"quiz"`
}

// ContentConfig points at the markdown decks.
type ContentConfig struct {
	Root          string        `yaml:"root"`
	QuestionLevel int           `yaml:"question_level"`
	Topics        []TopicConfig `yaml:"topics"`
}

// TopicConfig declares one deck. File and Files are relative to the content
// root; both empty means "<id>.md".
type TopicConfig struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	File  string   `yaml:"file"`
	Files []string `yaml:"files"`
}

// LintConfig tunes the content linter.
type LintConfig struct {
	Disable   []string `yaml:"disable"`
	Languages []string `yaml:"languages"`
}

// SiteConfig controls static site generation.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir"`
	Title     string `yaml:"title"`
	BaseURL   string `yaml:"base_url"`
}

// IndexConfig locates the DuckDB content index.
type IndexConfig struct {
	Path string `yaml:"path"`
}

// QuizConfig sets flashcard session defaults.
type QuizConfig struct {
	Shuffle *bool `yaml:"shuffle"`
	Limit   int   `yaml:"limit"`
}

// ShuffleEnabled returns the shuffle setting, defaulting to true.
func (q QuizConfig) ShuffleEnabled() bool {
	if q.Shuffle == nil {
		return true
	}
	return *q.Shuffle
}
