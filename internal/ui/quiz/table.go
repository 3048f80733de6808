package quiz

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	quizengine "prepdeck/internal/quiz"
)

// summaryColumns defines the per-topic summary table layout.
func summaryColumns() []table.Column {
	return []table.Column{
		{Title: "Topic", Width: 16},
		{Title: "Correct", Width: 9},
		{Title: "Incorrect", Width: 9},
		{Title: "Skipped", Width: 9},
	}
}

// summaryRows converts per-topic tallies into table rows.
func summaryRows(summary quizengine.Summary) []table.Row {
	rows := make([]table.Row, 0, len(summary.Topics))
	for _, tally := range summary.Topics {
		rows = append(rows, table.Row{
			tally.Topic,
			strconv.Itoa(tally.Correct),
			strconv.Itoa(tally.Incorrect),
			strconv.Itoa(tally.Skipped),
		})
	}
	return rows
}

// tableStyles returns table styles for the summary screen.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}
