package index_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prepdeck/internal/content"
	"prepdeck/internal/index"
	"prepdeck/internal/index/indextesting"
	"prepdeck/internal/testutil"
)

const unitTimeout = 5 * time.Second

func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, unitTimeout)
	db := indextesting.Open(t, ":memory:")
	indextesting.ApplySchema(t, db)
	return db, ctx
}

func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var value int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}

func testLibrary(t *testing.T) *content.Library {
	t.Helper()
	dir := t.TempDir()
	deck := `# JavaScript

### 1. What is a closure?

A function bundled with its lexical scope.

` + "```js\nconst inc = () => count++;\n```" + `

### 2. What is hoisting?

Declarations move to the top of their scope.
`
	if err := os.WriteFile(filepath.Join(dir, "javascript.md"), []byte(deck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	lib, err := content.Load(dir, []content.TopicSpec{{ID: "javascript", Title: "JavaScript"}}, 0)
	if err != nil {
		t.Fatalf("load library: %v", err)
	}
	return lib
}

// TestSchemaObjectsExist verifies tables and views are created.
func TestSchemaObjectsExist(t *testing.T) {
	db, ctx := openTestDB(t)
	for _, table := range []string{"revisions", "documents", "questions"} {
		count := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?", table)
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	for _, view := range []string{"v_latest_questions", "v_topic_stats"} {
		count := queryInt(t, ctx, db, "SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ? AND table_type = 'VIEW'", view)
		if count != 1 {
			t.Fatalf("expected view %s to exist", view)
		}
	}
}

// TestCanonicalJSONStable verifies canonical JSON ignores map key order.
func TestCanonicalJSONStable(t *testing.T) {
	left, err := index.CanonicalJSON(map[string]interface{}{"b": 1, "a": map[string]interface{}{"y": 2, "x": 3}})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	right, err := index.CanonicalJSON(map[string]interface{}{"a": map[string]interface{}{"x": 3, "y": 2}, "b": 1})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	if string(left) != string(right) {
		t.Fatalf("canonical json mismatch: %s vs %s", left, right)
	}
}

// TestIndexLibraryIdempotent re-indexes unchanged content without new rows.
func TestIndexLibraryIdempotent(t *testing.T) {
	db, ctx := openTestDB(t)
	lib := testLibrary(t)

	first, err := index.IndexLibrary(ctx, db, lib, "abc123")
	if err != nil {
		t.Fatalf("index library: %v", err)
	}
	if first.Questions != 2 || first.Topics != 1 {
		t.Fatalf("unexpected summary: %+v", first)
	}

	if _, err := index.IndexLibrary(ctx, db, lib, "abc123"); err != nil {
		t.Fatalf("re-index library: %v", err)
	}

	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM questions"); got != 2 {
		t.Fatalf("expected 2 question rows after re-index, got %d", got)
	}
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM documents"); got != 1 {
		t.Fatalf("expected 1 document row after re-index, got %d", got)
	}
	// Every run records a revision.
	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM revisions"); got != 2 {
		t.Fatalf("expected 2 revision rows, got %d", got)
	}
}

// TestLatestQuestionWinsAfterEdit keeps one row per qa_id in query views.
func TestLatestQuestionWinsAfterEdit(t *testing.T) {
	db, ctx := openTestDB(t)
	lib := testLibrary(t)
	if _, err := index.IndexLibrary(ctx, db, lib, "rev1"); err != nil {
		t.Fatalf("index library: %v", err)
	}

	// Simulate an edited answer and re-index.
	lib.Decks[0].Documents[0].QAs[0].Answer = "A closure captures its defining scope."
	if _, err := index.IndexLibrary(ctx, db, lib, "rev2"); err != nil {
		t.Fatalf("re-index library: %v", err)
	}

	if got := queryInt(t, ctx, db, "SELECT COUNT(*) FROM questions WHERE qa_id = 'javascript-1'"); got != 2 {
		t.Fatalf("expected 2 stored revisions of javascript-1, got %d", got)
	}
	rows, err := index.Questions(ctx, db, "javascript")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 latest questions, got %d", len(rows))
	}
	if rows[0].QAID != "javascript-1" || rows[0].Answer != "A closure captures its defining scope." {
		t.Fatalf("latest answer not served: %+v", rows[0])
	}
	if len(rows[0].CodeLangs) != 1 || rows[0].CodeLangs[0] != "js" {
		t.Fatalf("unexpected code langs: %v", rows[0].CodeLangs)
	}
}

// TestSearch filters by text and topic.
func TestSearch(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := index.IndexLibrary(ctx, db, testLibrary(t), "rev1"); err != nil {
		t.Fatalf("index library: %v", err)
	}

	hits, err := index.Search(ctx, db, "HOISTING", "", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0].QAID != "javascript-2" {
		t.Fatalf("unexpected hits: %+v", hits)
	}

	hits, err = index.Search(ctx, db, "scope", "javascript", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits for scope, got %d", len(hits))
	}

	if _, err := index.Search(ctx, db, "   ", "", 10); err == nil {
		t.Fatalf("expected error for empty query")
	}
}

// TestTopicStats aggregates per-topic counts.
func TestTopicStats(t *testing.T) {
	db, ctx := openTestDB(t)
	if _, err := index.IndexLibrary(ctx, db, testLibrary(t), "rev1"); err != nil {
		t.Fatalf("index library: %v", err)
	}
	stats, err := index.TopicStats(ctx, db)
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(stats))
	}
	if stats[0].Topic != "javascript" || stats[0].Questions != 2 || stats[0].Documents != 1 {
		t.Fatalf("unexpected stats: %+v", stats[0])
	}
}
