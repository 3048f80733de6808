package siteserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"prepdeck/internal/content"
	"prepdeck/internal/site"
)

// NewHandler builds the HTTP handler for the site pages, the question API,
// and the DuckDB index download.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.SiteDir == "" {
		return nil, errors.New("siteserver: site dir is required")
	}
	info, err := os.Stat(cfg.SiteDir)
	if err != nil {
		return nil, fmt.Errorf("siteserver: stat site dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("siteserver: %s is not a directory", cfg.SiteDir)
	}
	payload, err := site.LoadPayload(filepath.Join(cfg.SiteDir, "questions.json"))
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(cfg.SiteDir)))
	mux.Handle("/api/topics", getOnly(serveTopics(payload)))
	mux.Handle("/api/questions", getOnly(serveQuestions(payload)))
	mux.Handle("/healthz", getOnly(serveHealth(payload)))
	if cfg.DBPath != "" {
		mux.Handle("/data/index.duckdb", getOnly(serveDatabase(cfg.DBPath)))
	}
	return mux, nil
}

// serveTopics lists the site's topics with question counts.
func serveTopics(payload site.Payload) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, payload.Topics)
	}
}

// serveQuestions returns the question set, optionally filtered by ?topic=.
func serveQuestions(payload site.Payload) http.HandlerFunc {
	known := map[string]bool{}
	for _, topic := range payload.Topics {
		known[topic.ID] = true
	}
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			writeJSON(w, payload.Questions)
			return
		}
		if !known[topic] {
			http.Error(w, fmt.Sprintf("unknown topic %q", topic), http.StatusNotFound)
			return
		}
		questions := make([]content.QA, 0)
		for _, qa := range payload.Questions {
			if qa.Topic == topic {
				questions = append(questions, qa)
			}
		}
		writeJSON(w, questions)
	}
}

// serveHealth reports liveness plus the revision the site was built from.
func serveHealth(payload site.Payload) http.HandlerFunc {
	status := struct {
		Status     string `json:"status"`
		ContentRev string `json:"content_rev,omitempty"`
	}{Status: "ok", ContentRev: payload.ContentRev}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status)
	}
}

// serveDatabase serves the DuckDB index file from disk.
func serveDatabase(dbPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		http.ServeFile(w, r, dbPath)
	}
}

// getOnly rejects every method except GET.
func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
