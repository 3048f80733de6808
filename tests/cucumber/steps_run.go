//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"prepdeck/internal/cli"
)

// iRunCommand executes a CLI command against the scenario's project.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "prepdeck" {
		args = args[1:]
	}
	if s.configPath != "" && !hasConfigFlag(args) && len(args) > 0 && !isHelpInvocation(args) {
		args = append(args, "--config", s.configPath)
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// hasConfigFlag reports whether the args already carry --config.
func hasConfigFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--config" || strings.HasPrefix(arg, "--config=") {
			return true
		}
	}
	return false
}

// isHelpInvocation reports whether the command is a bare help request.
func isHelpInvocation(args []string) bool {
	switch args[0] {
	case "help", "-h", "--help":
		return true
	}
	for _, arg := range args[1:] {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}
