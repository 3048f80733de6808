// Package quiz renders the interactive flashcard session using Bubble Tea.
package quiz

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quizengine "prepdeck/internal/quiz"
)

// phase tracks where the user is in the flashcard flow.
type phase int

const (
	phaseQuestion phase = iota
	phaseAnswer
	phaseSummary
)

// Model drives one flashcard session.
type Model struct {
	session *quizengine.Session
	table   table.Model
	phase   phase
	noColor bool
	width   int
}

// Options configures the flashcard UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a flashcard UI model over a session.
func NewModel(session *quizengine.Session, opts Options) Model {
	t := table.New(
		table.WithColumns(summaryColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		session: session,
		table:   t,
		phase:   phaseQuestion,
		noColor: opts.NoColor,
		width:   80,
	}
}

// Session exposes the graded session after the program exits.
func (m Model) Session() *quizengine.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetWidth(typed.Width)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey advances the flashcard flow.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.finish()
	}

	switch m.phase {
	case phaseQuestion:
		switch key {
		case "enter", " ":
			m.phase = phaseAnswer
		case "s":
			return m.record(quizengine.GradeSkipped)
		case "q":
			return m.finish()
		}
	case phaseAnswer:
		switch key {
		case "y", "c":
			return m.record(quizengine.GradeCorrect)
		case "n", "i":
			return m.record(quizengine.GradeIncorrect)
		case "s":
			return m.record(quizengine.GradeSkipped)
		case "q":
			return m.finish()
		}
	case phaseSummary:
		switch key {
		case "q", "enter", " ", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// record grades the current card and moves to the next one.
func (m Model) record(grade quizengine.Grade) (tea.Model, tea.Cmd) {
	_ = m.session.Record(grade)
	if m.session.Done() {
		return m.finish()
	}
	m.phase = phaseQuestion
	return m, nil
}

// finish switches to the summary screen.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.phase = phaseSummary
	m.table.SetRows(summaryRows(m.session.Summarize()))
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	switch m.phase {
	case phaseSummary:
		return m.viewSummary()
	case phaseAnswer:
		return m.viewCard(true)
	default:
		return m.viewCard(false)
	}
}

// viewCard renders the current question, optionally with its answer.
func (m Model) viewCard(revealed bool) string {
	card, ok := m.session.Current()
	if !ok {
		return ""
	}
	pos, total := m.session.Position()

	header := renderHeader(card.QA.Topic, pos, total, m.noColor)
	question := renderQuestion(card.QA, m.width, m.noColor)
	sections := []string{header, "", question}
	if revealed {
		sections = append(sections, "", renderAnswer(card.QA, m.width, m.noColor))
	}
	sections = append(sections, "", renderHelp(revealed, m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewSummary renders the per-topic tally table and totals.
func (m Model) viewSummary() string {
	summary := m.session.Summarize()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderSummaryHeader(summary, m.noColor),
		"",
		m.table.View(),
		"",
		renderSummaryHelp(m.noColor),
	)
}
