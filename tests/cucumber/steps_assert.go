//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"
)

// theExitCodeIsZero asserts the last command succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit 0, got %d\nstdout: %s\nstderr: %s",
			s.exitCode, s.stdout.String(), s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts the last command failed.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit\nstdout: %s", s.stdout.String())
	}
	return nil
}

// theOutputContains asserts on the last command's stdout.
func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("stdout does not contain %q:\n%s", text, s.stdout.String())
	}
	return nil
}

// theErrorOutputContains asserts on the last command's stderr.
func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("stderr does not contain %q:\n%s", text, s.stderr.String())
	}
	return nil
}
