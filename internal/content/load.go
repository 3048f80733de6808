package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"prepdeck/internal/markdown"
)

// TopicSpec describes one topic to load. Files are relative to the content
// root; an empty list defaults to "<id>.md".
type TopicSpec struct {
	ID    string
	Title string
	Files []string
}

// DefaultQuestionLevel is the heading level that starts a Q&A pair.
const DefaultQuestionLevel = 3

// Load reads the configured topics from the content root. With no topics
// configured it discovers every top-level *.md file, one topic per file.
func Load(root string, topics []TopicSpec, questionLevel int) (*Library, error) {
	if root == "" {
		return nil, fmt.Errorf("content: root is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: root %q is not a directory", root)
	}
	if questionLevel <= 0 {
		questionLevel = DefaultQuestionLevel
	}
	if len(topics) == 0 {
		topics, err = discoverTopics(root)
		if err != nil {
			return nil, err
		}
	}

	lib := &Library{Root: root}
	for _, topic := range topics {
		deck, err := loadDeck(root, topic, questionLevel)
		if err != nil {
			return nil, err
		}
		lib.Decks = append(lib.Decks, deck)
	}
	return lib, nil
}

// loadDeck parses one topic's markdown files.
func loadDeck(root string, topic TopicSpec, questionLevel int) (Deck, error) {
	files := topic.Files
	if len(files) == 0 {
		files = []string{topic.ID + ".md"}
	}
	deck := Deck{Topic: topic.ID, Title: topic.Title}
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		data, err := os.ReadFile(path)
		if err != nil {
			return Deck{}, fmt.Errorf("content: read topic %s: %w", topic.ID, err)
		}
		parsed := markdown.Parse(file, data)
		deck.Documents = append(deck.Documents, Extract(file, topic.ID, parsed, questionLevel))
	}
	if deck.Title == "" && len(deck.Documents) > 0 {
		deck.Title = deck.Documents[0].Title
	}
	return deck, nil
}

// discoverTopics lists top-level markdown files as topics, README excluded.
func discoverTopics(root string) ([]TopicSpec, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("content: read root: %w", err)
	}
	var topics []TopicSpec
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".md") {
			continue
		}
		if strings.EqualFold(name, "README.md") || strings.EqualFold(name, "CONTRIBUTING.md") {
			continue
		}
		id := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		topics = append(topics, TopicSpec{ID: id, Files: []string{name}})
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("content: no markdown files found in %s", root)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}
