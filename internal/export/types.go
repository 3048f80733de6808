// Package export writes and reads versioned question set files.
package export

// SpecVersion is the only schema version this tool writes and accepts.
const SpecVersion = 1

// Spec is the question set schema exchanged as JSON or YAML.
type Spec struct {
	Version    int        `json:"version" yaml:"version"`
	Title      string     `json:"title,omitempty" yaml:"title,omitempty"`
	ContentRev string     `json:"content_rev,omitempty" yaml:"content_rev,omitempty"`
	Questions  []Question `json:"questions" yaml:"questions"`
}

// Question is one exported question/answer pair.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Topic    string   `json:"topic" yaml:"topic"`
	Number   int      `json:"number,omitempty" yaml:"number,omitempty"`
	Prompt   string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Anchor   string   `json:"anchor,omitempty" yaml:"anchor,omitempty"`
	CodeLang []string `json:"code_languages,omitempty" yaml:"code_languages,omitempty"`
	Source   string   `json:"source" yaml:"source"`
}
