package site

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"prepdeck/internal/content"
)

const jsDeck = `# JavaScript Questions

### 1. What is a closure?

A function bundled with its lexical scope.

` + "```js\nfunction outer() {\n  let n = 0;\n  return () => n++;\n}\n```" + `

### 2. What does <script defer> do?

Defers execution until the document is parsed.
`

const cssDeck = `# CSS Questions

### 1. What is specificity?

How the cascade ranks competing selectors.
`

func buildFixture(t *testing.T) (*content.Library, string) {
	t.Helper()
	root := t.TempDir()
	for name, body := range map[string]string{"javascript.md": jsDeck, "css.md": cssDeck} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	lib, err := content.Load(root, nil, 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return lib, filepath.Join(t.TempDir(), "site")
}

// TestBuildWritesManifest renders the full site and checks every artifact.
func TestBuildWritesManifest(t *testing.T) {
	lib, out := buildFixture(t)
	manifest, err := Build(lib, Config{OutputDir: out, Title: "Prep", ContentRev: "abc123"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []string{"css.html", "index.html", "javascript.html", "questions.json", "style.css"}
	if !reflect.DeepEqual(manifest.Files, want) {
		t.Fatalf("manifest files = %v, want %v", manifest.Files, want)
	}
	for _, name := range manifest.Files {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	for _, want := range []string{"<title>Prep</title>", `href="javascript.html"`, "3 questions across 2 topics", "abc123"} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}

// TestBuildTopicPage checks anchors, escaped markup, and code classes.
func TestBuildTopicPage(t *testing.T) {
	lib, out := buildFixture(t)
	if _, err := Build(lib, Config{OutputDir: out}); err != nil {
		t.Fatalf("build: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "javascript.html"))
	if err != nil {
		t.Fatalf("read topic page: %v", err)
	}
	body := string(page)
	for _, want := range []string{
		`id="1-what-is-a-closure"`,
		`href="#1-what-is-a-closure"`,
		`<code class="lang-js">`,
		"let n = 0;",
		"&lt;script defer&gt;",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("topic page missing %q", want)
		}
	}
	if strings.Contains(body, "<script defer>") {
		t.Errorf("question heading markup not escaped")
	}
}

// TestPayloadRoundTrip reloads questions.json the way the server does.
func TestPayloadRoundTrip(t *testing.T) {
	lib, out := buildFixture(t)
	if _, err := Build(lib, Config{OutputDir: out, Title: "Prep"}); err != nil {
		t.Fatalf("build: %v", err)
	}

	payload, err := LoadPayload(filepath.Join(out, "questions.json"))
	if err != nil {
		t.Fatalf("load payload: %v", err)
	}
	if payload.Title != "Prep" {
		t.Fatalf("unexpected title %q", payload.Title)
	}
	if len(payload.Topics) != 2 || len(payload.Questions) != 3 {
		t.Fatalf("unexpected payload shape: %d topics, %d questions", len(payload.Topics), len(payload.Questions))
	}
	if payload.Questions[0].Topic != "css" {
		t.Fatalf("expected css questions first, got %q", payload.Questions[0].Topic)
	}
}

// TestBuildRequiresOutputDir validates config.
func TestBuildRequiresOutputDir(t *testing.T) {
	lib, _ := buildFixture(t)
	if _, err := Build(lib, Config{}); err == nil {
		t.Fatalf("expected output dir error")
	}
	if _, err := Build(nil, Config{OutputDir: t.TempDir()}); err == nil {
		t.Fatalf("expected nil library error")
	}
}
