package quiz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"prepdeck/internal/content"
	quizengine "prepdeck/internal/quiz"
)

func testSession() *quizengine.Session {
	return &quizengine.Session{Cards: []quizengine.Card{
		{
			QA:    content.QA{ID: "css-1", Topic: "css", Number: 1, Question: "What is specificity?", Answer: "Selector ranking."},
			Grade: quizengine.GradeSkipped,
		},
		{
			QA:    content.QA{ID: "js-1", Topic: "javascript", Number: 1, Question: "What is a closure?", Answer: "Scope capture."},
			Grade: quizengine.GradeSkipped,
		},
	}}
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return model
}

// TestFlashcardFlow walks reveal and grade keys through a full session.
func TestFlashcardFlow(t *testing.T) {
	m := NewModel(testSession(), Options{NoColor: true})

	view := m.View()
	if !strings.Contains(view, "What is specificity?") {
		t.Fatalf("question not shown:\n%s", view)
	}
	if strings.Contains(view, "Selector ranking.") {
		t.Fatalf("answer leaked before reveal:\n%s", view)
	}

	m = press(t, m, "enter")
	if view := m.View(); !strings.Contains(view, "Selector ranking.") {
		t.Fatalf("answer not revealed:\n%s", view)
	}

	m = press(t, m, "y")
	if view := m.View(); !strings.Contains(view, "What is a closure?") {
		t.Fatalf("did not advance to next card:\n%s", view)
	}

	m = press(t, m, "enter")
	m = press(t, m, "n")

	summary := m.Session().Summarize()
	if summary.Correct != 1 || summary.Incorrect != 1 {
		t.Fatalf("unexpected summary after grading: %+v", summary)
	}
	if view := m.View(); !strings.Contains(view, "Session done") {
		t.Fatalf("summary screen not shown:\n%s", view)
	}
}

// TestSkipFromQuestion grades the card without revealing it.
func TestSkipFromQuestion(t *testing.T) {
	m := NewModel(testSession(), Options{NoColor: true})
	m = press(t, m, "s")
	if view := m.View(); !strings.Contains(view, "What is a closure?") {
		t.Fatalf("skip did not advance:\n%s", view)
	}
	if got := m.Session().Cards[0].Grade; got != quizengine.GradeSkipped {
		t.Fatalf("unexpected grade %q", got)
	}
}

// TestQuitJumpsToSummary lets the user bail out mid-session.
func TestQuitJumpsToSummary(t *testing.T) {
	m := NewModel(testSession(), Options{NoColor: true})
	m = press(t, m, "q")
	view := m.View()
	if !strings.Contains(view, "Session done") {
		t.Fatalf("expected summary screen:\n%s", view)
	}
	if !strings.Contains(view, "2 skipped") {
		t.Fatalf("expected both cards counted as skipped:\n%s", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command from summary")
	}
	if _, ok := next.(Model); !ok {
		t.Fatalf("update returned %T", next)
	}
}

// TestSummaryTableRows converts per-topic tallies into rows.
func TestSummaryTableRows(t *testing.T) {
	session := testSession()
	_ = session.Record(quizengine.GradeCorrect)
	_ = session.Record(quizengine.GradeIncorrect)

	rows := summaryRows(session.Summarize())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "css" || rows[0][1] != "1" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "javascript" || rows[1][2] != "1" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}
