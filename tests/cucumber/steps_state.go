//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for CLI feature tests.
type featureState struct {
	projectDir string
	configPath string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires the feature steps to a fresh state per scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a prepdeck project with sample decks$`, state.aProjectWithSampleDecks)
	ctx.Step(`^the css deck has a question without an answer$`, state.cssDeckHasUnansweredQuestion)
	ctx.Step(`^the site has been built$`, state.theSiteHasBeenBuilt)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the project file "([^"]+)" exists$`, state.theProjectFileExists)
}

// reset clears buffers before each scenario.
func (s *featureState) reset() {
	s.projectDir = ""
	s.configPath = ""
	s.previousWD = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

// cleanup restores the working directory and removes the project.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		os.Chdir(s.previousWD)
	}
	if s.projectDir != "" {
		os.RemoveAll(s.projectDir)
	}
}
