package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `version: 1
content:
  root: content
  topics:
    - id: javascript
      title: JavaScript
      file: javascript.md
    - id: css
      title: CSS
      file: css.md
`

const testJSDeck = `# JavaScript Questions

### 1. What is a closure?

A function bundled with its lexical scope.

` + "```js\nconst outer = () => () => 1;\n```" + `

### 2. What is hoisting?

Declarations move to the top of their scope.
`

const testCSSDeck = `# CSS Questions

### 1. What is specificity?

How the cascade ranks competing selectors.
`

// writeProject lays out a prepdeck project in a temp dir and returns its
// root and config path.
func writeProject(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	configPath := filepath.Join(root, ".prepdeck", "config.yml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatalf("create content dir: %v", err)
	}
	for name, body := range map[string]string{"javascript.md": testJSDeck, "css.md": testCSSDeck} {
		if err := os.WriteFile(filepath.Join(contentDir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write deck: %v", err)
		}
	}
	return root, configPath
}
