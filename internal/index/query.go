package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// QuestionRow is one indexed question as returned by queries.
type QuestionRow struct {
	QAID       string
	Topic      string
	Number     int
	Question   string
	Answer     string
	Anchor     string
	CodeLangs  []string
	SourceLine int
}

// TopicStat summarizes one topic's indexed content.
type TopicStat struct {
	Topic     string
	Questions int
	Documents int
}

// Search finds questions whose text or answer contains the query,
// case-insensitively, newest revision of each question only.
func Search(ctx context.Context, db *sql.DB, query, topic string, limit int) ([]QuestionRow, error) {
	if db == nil {
		return nil, errors.New("index: db is nil")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("index: search query is empty")
	}
	if limit <= 0 {
		limit = 20
	}

	sqlQuery := `SELECT qa_id, topic, number, question, answer, anchor, code_langs, source_line
		FROM v_latest_questions
		WHERE (question ILIKE ? OR answer ILIKE ?)`
	pattern := "%" + query + "%"
	args := []interface{}{pattern, pattern}
	if topic != "" {
		sqlQuery += " AND topic = ?"
		args = append(args, topic)
	}
	sqlQuery += " ORDER BY topic, number, qa_id LIMIT ?"
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestionRows(rows)
}

// Questions returns the newest revision of every indexed question,
// optionally filtered by topic.
func Questions(ctx context.Context, db *sql.DB, topic string) ([]QuestionRow, error) {
	if db == nil {
		return nil, errors.New("index: db is nil")
	}
	sqlQuery := `SELECT qa_id, topic, number, question, answer, anchor, code_langs, source_line
		FROM v_latest_questions`
	var args []interface{}
	if topic != "" {
		sqlQuery += " WHERE topic = ?"
		args = append(args, topic)
	}
	sqlQuery += " ORDER BY topic, number, qa_id"

	rows, err := db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestionRows(rows)
}

// TopicStats returns per-topic question and document counts.
func TopicStats(ctx context.Context, db *sql.DB) ([]TopicStat, error) {
	if db == nil {
		return nil, errors.New("index: db is nil")
	}
	rows, err := db.QueryContext(ctx,
		`SELECT topic, CAST(question_count AS INTEGER), CAST(document_count AS INTEGER)
		 FROM v_topic_stats ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	defer rows.Close()

	var stats []TopicStat
	for rows.Next() {
		var stat TopicStat
		if err := rows.Scan(&stat.Topic, &stat.Questions, &stat.Documents); err != nil {
			return nil, fmt.Errorf("scan topic stat: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func scanQuestionRows(rows *sql.Rows) ([]QuestionRow, error) {
	var out []QuestionRow
	for rows.Next() {
		var row QuestionRow
		var langs string
		if err := rows.Scan(&row.QAID, &row.Topic, &row.Number, &row.Question,
			&row.Answer, &row.Anchor, &langs, &row.SourceLine); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if langs != "" {
			row.CodeLangs = strings.Split(langs, ",")
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
