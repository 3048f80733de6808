package quiz

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const runIDSuffixBytes = 6

// NewRunID returns a sortable session identifier.
func NewRunID() (string, error) {
	return NewRunIDWithRand(time.Now().UTC(), rand.Reader)
}

// NewRunIDWithRand builds a run ID from a clock and entropy source.
func NewRunIDWithRand(now time.Time, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("random reader is nil")
	}
	buf := make([]byte, runIDSuffixBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return now.UTC().Format("20060102T150405Z") + "-" + hex.EncodeToString(buf), nil
}

// TopicTally counts grades for one topic.
type TopicTally struct {
	Topic     string `json:"topic"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Skipped   int    `json:"skipped"`
}

// Results is the persisted outcome of one session.
type Results struct {
	RunID      string       `json:"run_id"`
	ContentRev string       `json:"content_rev"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Cards      []CardResult `json:"cards"`
	Summary    Summary      `json:"summary"`
}

// CardResult records one graded card.
type CardResult struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Grade    Grade  `json:"grade"`
}

// Summary aggregates a session's grades.
type Summary struct {
	Total     int          `json:"total"`
	Correct   int          `json:"correct"`
	Incorrect int          `json:"incorrect"`
	Skipped   int          `json:"skipped"`
	PassRate  float64      `json:"pass_rate"`
	Topics    []TopicTally `json:"topics"`
}

// Summarize tallies the session's grades per topic.
func (s *Session) Summarize() Summary {
	summary := Summary{Total: len(s.Cards)}
	byTopic := map[string]*TopicTally{}
	for _, card := range s.Cards {
		tally, ok := byTopic[card.QA.Topic]
		if !ok {
			tally = &TopicTally{Topic: card.QA.Topic}
			byTopic[card.QA.Topic] = tally
		}
		switch card.Grade {
		case GradeCorrect:
			summary.Correct++
			tally.Correct++
		case GradeIncorrect:
			summary.Incorrect++
			tally.Incorrect++
		default:
			summary.Skipped++
			tally.Skipped++
		}
	}
	answered := summary.Correct + summary.Incorrect
	if answered > 0 {
		summary.PassRate = float64(summary.Correct) / float64(answered)
	}
	for _, tally := range byTopic {
		summary.Topics = append(summary.Topics, *tally)
	}
	sort.Slice(summary.Topics, func(i, j int) bool { return summary.Topics[i].Topic < summary.Topics[j].Topic })
	return summary
}

// BuildResults assembles the persistable record for a finished session.
func (s *Session) BuildResults(runID, contentRev string, startedAt, finishedAt time.Time) Results {
	results := Results{
		RunID:      runID,
		ContentRev: contentRev,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Summary:    s.Summarize(),
	}
	for _, card := range s.Cards {
		results.Cards = append(results.Cards, CardResult{
			ID:       card.QA.ID,
			Topic:    card.QA.Topic,
			Question: card.QA.Question,
			Grade:    card.Grade,
		})
	}
	return results
}

// SaveResults writes session results as JSON under the results directory.
func SaveResults(dir string, results Results) (string, error) {
	if results.RunID == "" {
		return "", fmt.Errorf("quiz: run id is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("quiz: create results dir: %w", err)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("quiz: encode results: %w", err)
	}
	path := filepath.Join(dir, results.RunID+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("quiz: write results: %w", err)
	}
	return path, nil
}

// LoadResults reads a persisted session results file.
func LoadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, fmt.Errorf("quiz: read results: %w", err)
	}
	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("quiz: parse results: %w", err)
	}
	return results, nil
}
