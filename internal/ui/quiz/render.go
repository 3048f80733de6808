package quiz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/content"
	quizengine "prepdeck/internal/quiz"
)

// renderHeader renders the progress line above a card.
func renderHeader(topic string, pos, total int, noColor bool) string {
	line := fmt.Sprintf("Card %d/%d | Topic: %s", pos, total, topic)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderQuestion renders the card front.
func renderQuestion(qa content.QA, width int, noColor bool) string {
	text := qa.Question
	if qa.Number > 0 {
		text = fmt.Sprintf("%d. %s", qa.Number, qa.Question)
	}
	style := lipgloss.NewStyle().Bold(true).Width(contentWidth(width))
	if noColor {
		return style.Render(text)
	}
	return style.Foreground(lipgloss.Color("252")).Render(text)
}

// renderAnswer renders the card back, code blocks included.
func renderAnswer(qa content.QA, width int, noColor bool) string {
	style := lipgloss.NewStyle().Width(contentWidth(width))
	body := qa.Answer
	if body == "" {
		body = "(no answer recorded)"
	}
	if noColor {
		return style.Render(body)
	}
	return style.Foreground(lipgloss.Color("250")).Render(body)
}

// renderHelp renders the key hints below a card.
func renderHelp(revealed bool, noColor bool) string {
	var line string
	if revealed {
		line = "y correct | n incorrect | s skip | q finish"
	} else {
		line = "enter reveal | s skip | q finish"
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderSummaryHeader renders the totals line of the summary screen.
func renderSummaryHeader(summary quizengine.Summary, noColor bool) string {
	line := fmt.Sprintf("Session done: %d cards | %d correct | %d incorrect | %d skipped | pass rate %.0f%%",
		summary.Total, summary.Correct, summary.Incorrect, summary.Skipped, summary.PassRate*100)
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummaryHelp renders the exit hint.
func renderSummaryHelp(noColor bool) string {
	return stylize("q quit", noColor, lipgloss.Color("242"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// contentWidth clamps the card body width.
func contentWidth(width int) int {
	if width <= 0 {
		return 80
	}
	if width > 100 {
		return 100
	}
	return width
}
