package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

// GetJSON fetches a URL and decodes the JSON response body into out.
func GetJSON(t testing.TB, url string, out interface{}) {
	t.Helper()
	body := Get(t, url)
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode %s: %v\n%s", url, err, body)
	}
}

// Get fetches a URL and returns the response body, failing on non-2xx.
func Get(t testing.TB, url string) []byte {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.Fatalf("GET %s: status %d\n%s", url, resp.StatusCode, body)
	}
	return body
}
