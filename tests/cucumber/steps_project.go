//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
)

const sampleConfig = `version: 1
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

const sampleJSDeck = `# JavaScript Questions

### 1. What is a closure?

A function bundled with its lexical scope.

` + "```js\nconst outer = () => () => 1;\n```" + `

### 2. What is hoisting?

Declarations move to the top of their scope.
`

const sampleCSSDeck = `# CSS Questions

### 1. What is specificity?

How the cascade ranks competing selectors.
`

// aProjectWithSampleDecks lays out a fresh project for the scenario.
func (s *featureState) aProjectWithSampleDecks() error {
	dir, err := os.MkdirTemp("", "prepdeck-feature-*")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	s.projectDir = dir
	s.configPath = filepath.Join(dir, ".prepdeck", "config.yml")

	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.configPath, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	contentDir := filepath.Join(dir, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return fmt.Errorf("create content dir: %w", err)
	}
	decks := map[string]string{"javascript.md": sampleJSDeck, "css.md": sampleCSSDeck}
	for name, body := range decks {
		if err := os.WriteFile(filepath.Join(contentDir, name), []byte(body), 0o644); err != nil {
			return fmt.Errorf("write deck %s: %w", name, err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter project dir: %w", err)
	}
	return nil
}

// cssDeckHasUnansweredQuestion breaks the css deck for lint scenarios.
func (s *featureState) cssDeckHasUnansweredQuestion() error {
	broken := "# CSS Questions\n\n### 1. What is specificity?\n\n### 2. What is the cascade?\n\nStyle resolution order.\n"
	path := filepath.Join(s.projectDir, "content", "css.md")
	if err := os.WriteFile(path, []byte(broken), 0o644); err != nil {
		return fmt.Errorf("write broken deck: %w", err)
	}
	return nil
}

// theSiteHasBeenBuilt runs the build command as scenario setup.
func (s *featureState) theSiteHasBeenBuilt() error {
	if err := s.iRunCommand("prepdeck build"); err != nil {
		return err
	}
	if s.exitCode != 0 {
		return fmt.Errorf("build failed with exit %d: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

// theProjectFileExists checks a path relative to the project root.
func (s *featureState) theProjectFileExists(relPath string) error {
	path := filepath.Join(s.projectDir, filepath.FromSlash(relPath))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("expected %s to exist: %w", relPath, err)
	}
	return nil
}
