// Package quiz runs self-graded flashcard sessions over loaded content.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"prepdeck/internal/content"
)

// Grade is the self-assessment for one card.
type Grade string

const (
	GradeCorrect   Grade = "correct"
	GradeIncorrect Grade = "incorrect"
	GradeSkipped   Grade = "skipped"
)

// Options selects and orders the cards for a session.
type Options struct {
	// Topics filters decks; empty means all.
	Topics []string
	// Limit caps the number of cards; zero means no cap.
	Limit int
	// Shuffle randomizes card order using Seed.
	Shuffle bool
	// Seed fixes the shuffle order; zero derives a seed from the card set.
	Seed int64
}

// Card is one flashcard drawn from the library.
type Card struct {
	QA    content.QA
	Grade Grade
}

// Session tracks progress through a card set.
type Session struct {
	Cards []Card
	next  int
}

// NewSession selects cards from the library per the options.
func NewSession(lib *content.Library, opts Options) (*Session, error) {
	if lib == nil {
		return nil, errors.New("quiz: library is nil")
	}
	qas, err := selectQAs(lib, opts.Topics)
	if err != nil {
		return nil, err
	}
	if len(qas) == 0 {
		return nil, errors.New("quiz: no questions available")
	}

	if opts.Shuffle {
		seed := opts.Seed
		if seed == 0 {
			seed = int64(len(qas))
			for _, qa := range qas {
				for _, r := range qa.ID {
					seed = seed*31 + int64(r)
				}
			}
		}
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(qas), func(i, j int) { qas[i], qas[j] = qas[j], qas[i] })
	}
	if opts.Limit > 0 && len(qas) > opts.Limit {
		qas = qas[:opts.Limit]
	}

	session := &Session{Cards: make([]Card, len(qas))}
	for i, qa := range qas {
		session.Cards[i] = Card{QA: qa, Grade: GradeSkipped}
	}
	return session, nil
}

// selectQAs collects QAs for the requested topics, validating topic ids.
func selectQAs(lib *content.Library, topics []string) ([]content.QA, error) {
	if len(topics) == 0 {
		return lib.QAs(), nil
	}
	var out []content.QA
	for _, topic := range topics {
		topic = strings.ToLower(strings.TrimSpace(topic))
		deck, ok := lib.Deck(topic)
		if !ok {
			return nil, fmt.Errorf("quiz: unknown topic %q (have: %s)", topic, strings.Join(lib.Topics(), ", "))
		}
		out = append(out, deck.QAs()...)
	}
	return out, nil
}

// Current returns the card awaiting a grade, if any remain.
func (s *Session) Current() (Card, bool) {
	if s.next >= len(s.Cards) {
		return Card{}, false
	}
	return s.Cards[s.next], true
}

// Position returns the 1-based index of the current card and the total.
func (s *Session) Position() (int, int) {
	pos := s.next + 1
	if pos > len(s.Cards) {
		pos = len(s.Cards)
	}
	return pos, len(s.Cards)
}

// Record grades the current card and advances.
func (s *Session) Record(grade Grade) error {
	if s.next >= len(s.Cards) {
		return errors.New("quiz: session is finished")
	}
	switch grade {
	case GradeCorrect, GradeIncorrect, GradeSkipped:
	default:
		return fmt.Errorf("quiz: invalid grade %q", grade)
	}
	s.Cards[s.next].Grade = grade
	s.next++
	return nil
}

// Done reports whether every card has been graded.
func (s *Session) Done() bool {
	return s.next >= len(s.Cards)
}

// Normalize folds an answer attempt for loose self-checking.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
