package site

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"prepdeck/internal/content"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/style.css
var styleCSS []byte

// DefaultTitle is used when the config leaves the site title empty.
const DefaultTitle = "Interview Prep"

// Config captures the settings for one site build.
type Config struct {
	OutputDir  string
	Title      string
	BaseURL    string
	ContentRev string
}

// Manifest lists the files a build wrote, relative to the output dir.
type Manifest struct {
	OutputDir string
	Files     []string
}

// TopicSummary is one topic card on the index page.
type TopicSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Page          string `json:"page"`
	QuestionCount int    `json:"question_count"`
}

// Payload is the machine-readable site dump shared by the server and quiz.
type Payload struct {
	Title       string         `json:"title"`
	ContentRev  string         `json:"content_rev,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	Topics      []TopicSummary `json:"topics"`
	Questions   []content.QA   `json:"questions"`
}

type indexData struct {
	Title         string
	ContentRev    string
	Topics        []TopicSummary
	QuestionCount int
}

type topicData struct {
	SiteTitle string
	Topic     TopicSummary
	QAs       []topicQA
}

type topicQA struct {
	content.QA
	AnswerHTML template.HTML
}

// Build renders the static study site into cfg.OutputDir and returns the
// manifest of written files.
func Build(lib *content.Library, cfg Config) (Manifest, error) {
	if lib == nil {
		return Manifest{}, errors.New("site: library is nil")
	}
	if cfg.OutputDir == "" {
		return Manifest{}, errors.New("site: output dir is required")
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("site: create output dir: %w", err)
	}

	tmpl, err := template.New("site").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return Manifest{}, fmt.Errorf("site: parse templates: %w", err)
	}

	manifest := Manifest{OutputDir: cfg.OutputDir}
	write := func(name string, data []byte) error {
		if err := writeFileAtomic(cfg.OutputDir, name, data); err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, name)
		return nil
	}

	topics := summarize(lib)
	payload := Payload{
		Title:       cfg.Title,
		ContentRev:  cfg.ContentRev,
		GeneratedAt: time.Now().UTC(),
		Topics:      topics,
		Questions:   lib.QAs(),
	}

	index := indexData{Title: cfg.Title, ContentRev: cfg.ContentRev, Topics: topics}
	for _, topic := range topics {
		index.QuestionCount += topic.QuestionCount
	}
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, "index.html.tmpl", index); err != nil {
		return Manifest{}, fmt.Errorf("site: render index: %w", err)
	}
	if err := write("index.html", []byte(buf.String())); err != nil {
		return Manifest{}, err
	}

	for i, deck := range lib.Decks {
		data := topicData{SiteTitle: cfg.Title, Topic: topics[i]}
		for _, qa := range deck.QAs() {
			data.QAs = append(data.QAs, topicQA{QA: qa, AnswerHTML: renderMarkdown(qa.Answer)})
		}
		buf.Reset()
		if err := tmpl.ExecuteTemplate(&buf, "topic.html.tmpl", data); err != nil {
			return Manifest{}, fmt.Errorf("site: render topic %s: %w", deck.Topic, err)
		}
		if err := write(topics[i].Page, []byte(buf.String())); err != nil {
			return Manifest{}, err
		}
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Manifest{}, fmt.Errorf("site: encode questions: %w", err)
	}
	if err := write("questions.json", append(encoded, '\n')); err != nil {
		return Manifest{}, err
	}
	if err := write("style.css", styleCSS); err != nil {
		return Manifest{}, err
	}

	sort.Strings(manifest.Files)
	return manifest, nil
}

// LoadPayload reads a questions.json written by Build.
func LoadPayload(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("site: read payload: %w", err)
	}
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Payload{}, fmt.Errorf("site: parse payload: %w", err)
	}
	return payload, nil
}

// summarize builds the per-topic index cards in deck order.
func summarize(lib *content.Library) []TopicSummary {
	out := make([]TopicSummary, 0, len(lib.Decks))
	for _, deck := range lib.Decks {
		title := deck.Title
		if title == "" {
			title = deck.Topic
		}
		out = append(out, TopicSummary{
			ID:            deck.Topic,
			Title:         title,
			Page:          deck.Topic + ".html",
			QuestionCount: len(deck.QAs()),
		})
	}
	return out
}

// writeFileAtomic writes through a temp file and rename so a serving
// process never sees a half-written page.
func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("site: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("site: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("site: close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("site: rename %s: %w", name, err)
	}
	return nil
}
