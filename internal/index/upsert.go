package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"prepdeck/internal/content"
)

// docPayload is the fingerprinted document identity.
type docPayload struct {
	Topic     string   `json:"topic"`
	Path      string   `json:"path"`
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
}

// questionPayload is the fingerprinted question content.
type questionPayload struct {
	QAID      string   `json:"qa_id"`
	Topic     string   `json:"topic"`
	Number    int      `json:"number"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Anchor    string   `json:"anchor"`
	CodeLangs []string `json:"code_langs"`
}

// Summary reports what one indexing run touched.
type Summary struct {
	RevID      string
	ContentRev string
	Topics     int
	Questions  int
}

// IndexLibrary upserts a loaded content library. Upserts are content
// addressed: re-indexing unchanged content inserts no new rows beyond the
// revision record.
func IndexLibrary(ctx context.Context, db *sql.DB, lib *content.Library, contentRev string) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("index: context is nil")
	}
	if db == nil {
		return Summary{}, errors.New("index: db is nil")
	}
	if lib == nil {
		return Summary{}, errors.New("index: library is nil")
	}
	if contentRev == "" {
		return Summary{}, errors.New("index: content revision is required")
	}

	summary := Summary{ContentRev: contentRev, Topics: len(lib.Decks)}
	for _, deck := range lib.Decks {
		for _, doc := range deck.Documents {
			docKey, err := upsertDocument(ctx, db, deck, doc)
			if err != nil {
				return Summary{}, err
			}
			for _, qa := range doc.QAs {
				if err := upsertQuestion(ctx, db, docKey, qa); err != nil {
					return Summary{}, err
				}
				summary.Questions++
			}
		}
	}

	summary.RevID = uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO revisions (rev_id, content_rev, topics, questions, indexed_at)
		 VALUES (?, ?, ?, ?, now())`,
		summary.RevID,
		contentRev,
		summary.Topics,
		summary.Questions,
	); err != nil {
		return Summary{}, fmt.Errorf("insert revision: %w", err)
	}
	return summary, nil
}

// upsertDocument inserts a document row keyed by its content fingerprint.
func upsertDocument(ctx context.Context, db *sql.DB, deck content.Deck, doc content.Document) (string, error) {
	questionIDs := make([]string, 0, len(doc.QAs))
	for _, qa := range doc.QAs {
		questionIDs = append(questionIDs, qa.ID)
	}
	key, err := FingerprintJSON(docPayload{
		Topic:     deck.Topic,
		Path:      doc.Path,
		Title:     doc.Title,
		Questions: questionIDs,
	})
	if err != nil {
		return "", fmt.Errorf("fingerprint document %s: %w", doc.Path, err)
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO documents (doc_id, doc_key, topic, title, path, question_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, now())
		 ON CONFLICT (doc_key) DO NOTHING`,
		uuid.NewString(),
		key,
		deck.Topic,
		doc.Title,
		doc.Path,
		len(doc.QAs),
	); err != nil {
		return "", fmt.Errorf("upsert document %s: %w", doc.Path, err)
	}
	return key, nil
}

// upsertQuestion inserts a question row keyed by its content fingerprint.
func upsertQuestion(ctx context.Context, db *sql.DB, docKey string, qa content.QA) error {
	langs := codeLanguages(qa)
	key, err := FingerprintJSON(questionPayload{
		QAID:      qa.ID,
		Topic:     qa.Topic,
		Number:    qa.Number,
		Question:  qa.Question,
		Answer:    qa.Answer,
		Anchor:    qa.Anchor,
		CodeLangs: langs,
	})
	if err != nil {
		return fmt.Errorf("fingerprint question %s: %w", qa.ID, err)
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO questions (
		   question_id, question_key, doc_key, qa_id, topic, number,
		   question, answer, anchor, code_langs, source_line, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now())
		 ON CONFLICT (question_key) DO NOTHING`,
		uuid.NewString(),
		key,
		docKey,
		qa.ID,
		qa.Topic,
		qa.Number,
		qa.Question,
		qa.Answer,
		qa.Anchor,
		strings.Join(langs, ","),
		qa.Line,
	); err != nil {
		return fmt.Errorf("upsert question %s: %w", qa.ID, err)
	}
	return nil
}

// codeLanguages lists a question's fence languages in source order.
func codeLanguages(qa content.QA) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(qa.Code))
	for _, code := range qa.Code {
		lang := code.Language
		if lang == "" {
			lang = "plain"
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	return out
}
