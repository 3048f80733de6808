package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1

content:
  root: "."
  question_level: 3
  topics:
    - id: html
      title: "HTML"
      file: "html.md"
    - id: css
      title: "CSS"
      file: "css.md"
    - id: javascript
      title: "JavaScript"
      file: "javascript.md"
    - id: typescript
      title: "TypeScript"
      file: "typescript.md"

lint:
  disable: []

site:
  output_dir: ".prepdeck/site"
  title: "Interview Prep"

index:
  path: ".prepdeck/index.duckdb"

quiz:
  shuffle: true
  limit: 20
`

// Scaffold writes a starter config file, refusing to overwrite.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
