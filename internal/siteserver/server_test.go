package siteserver

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prepdeck/internal/site"
	"prepdeck/internal/testutil"
)

// TestServeValidatesConfig rejects missing addr and site dir up front.
func TestServeValidatesConfig(t *testing.T) {
	ctx := context.Background()
	if err := Serve(ctx, Config{}); err == nil {
		t.Fatalf("expected addr error")
	}
	if err := Serve(ctx, Config{Addr: "127.0.0.1:0"}); err == nil {
		t.Fatalf("expected site dir error")
	}
}

// TestServerEndToEnd drives the handler through a real listener.
func TestServerEndToEnd(t *testing.T) {
	handler := newTestHandler(t, Config{SiteDir: writeSiteFixture(t)})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	var topics []site.TopicSummary
	testutil.GetJSON(t, srv.URL+"/api/topics", &topics)
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}

	page := testutil.Get(t, srv.URL+"/javascript.html")
	if !strings.Contains(string(page), "1-what-is-a-closure") {
		t.Fatalf("topic page missing question anchor:\n%s", page)
	}
}

// TestServeStopsOnContextCancel exercises graceful shutdown.
func TestServeStopsOnContextCancel(t *testing.T) {
	siteDir := writeSiteFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{Addr: "127.0.0.1:0", SiteDir: siteDir})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after cancel")
	}
}
