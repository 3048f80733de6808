package content

import "prepdeck/internal/markdown"

// CodeBlock is a fenced code example attached to an answer.
type CodeBlock struct {
	Language string `json:"language"`
	Body     string `json:"body"`
	Line     int    `json:"line"`
	Unclosed bool   `json:"-"`
}

// QA is a single question/answer pair, the corpus's content unit.
type QA struct {
	// ID is stable across runs: "<topic>-<number>" for numbered questions,
	// otherwise the topic plus a slug prefix.
	ID       string      `json:"id"`
	Topic    string      `json:"topic"`
	Number   int         `json:"number,omitempty"`
	Question string      `json:"question"`
	Anchor   string      `json:"anchor"`
	Answer   string      `json:"answer"`
	Code     []CodeBlock `json:"code,omitempty"`
	File     string      `json:"file"`
	Line     int         `json:"line"`
}

// TOCEntry is one row of a document's table of contents.
type TOCEntry struct {
	Text   string
	Anchor string
	Line   int
}

// Document is one parsed markdown file with its extracted Q&A pairs.
type Document struct {
	Path     string
	Title    string
	Markdown markdown.Document
	TOC      []TOCEntry
	QAs      []QA
}

// Deck groups the documents of one topic (html, css, javascript, ...).
type Deck struct {
	Topic     string
	Title     string
	Documents []Document
}

// QAs returns the deck's question/answer pairs in document order.
func (d Deck) QAs() []QA {
	out := make([]QA, 0)
	for _, doc := range d.Documents {
		out = append(out, doc.QAs...)
	}
	return out
}

// Library is the full loaded content set.
type Library struct {
	Root  string
	Decks []Deck
}

// QAs returns every question/answer pair across all decks.
func (l *Library) QAs() []QA {
	out := make([]QA, 0)
	for _, deck := range l.Decks {
		out = append(out, deck.QAs()...)
	}
	return out
}

// Deck returns the deck for a topic id, if present.
func (l *Library) Deck(topic string) (Deck, bool) {
	for _, deck := range l.Decks {
		if deck.Topic == topic {
			return deck, true
		}
	}
	return Deck{}, false
}

// Topics returns deck topic ids in load order.
func (l *Library) Topics() []string {
	out := make([]string, 0, len(l.Decks))
	for _, deck := range l.Decks {
		out = append(out, deck.Topic)
	}
	return out
}
