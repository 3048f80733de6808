package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"prepdeck/internal/config"
	"prepdeck/internal/content"
)

// project bundles the loaded config with the paths derived from it.
type project struct {
	Config     config.Config
	ConfigPath string
	Root       string
}

// resolveConfigPath normalizes a --config value or searches upward from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadProject loads and validates the config named by --config.
func loadProject(configPath string) (project, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return project{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return project{}, err
	}
	return project{
		Config:     cfg,
		ConfigPath: resolved,
		Root:       config.ProjectRootFromConfigPath(resolved),
	}, nil
}

// contentRoot resolves the configured content root against the project root.
func (p project) contentRoot() string {
	return p.resolve(p.Config.Content.Root)
}

// indexPath resolves the configured DuckDB path against the project root.
func (p project) indexPath() string {
	return p.resolve(p.Config.Index.Path)
}

// siteDir resolves the configured site output dir against the project root.
func (p project) siteDir() string {
	return p.resolve(p.Config.Site.OutputDir)
}

// resultsDir resolves the quiz results dir against the project root.
func (p project) resultsDir() string {
	return p.resolve(config.DefaultResultsDir)
}

func (p project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}

// loadLibrary reads the project's markdown decks.
func (p project) loadLibrary() (*content.Library, error) {
	return content.Load(p.contentRoot(), p.Config.Content.TopicSpecs(), p.Config.Content.QuestionLevel)
}
