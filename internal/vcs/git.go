package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// gitRunner executes git commands for repository metadata.
type gitRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execGitRunner invokes git via the system binary.
type execGitRunner struct{}

// Run executes a git command and returns trimmed stdout.
func (execGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no stderr"
		}
		return "", fmt.Errorf("git %s: %w (%s)", strings.Join(args, " "), err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Client coordinates git operations and allows dependency injection.
type Client struct {
	runner gitRunner
}

// NewClient constructs a git client with an optional runner override.
func NewClient(runner gitRunner) Client {
	if runner == nil {
		runner = execGitRunner{}
	}
	return Client{runner: runner}
}

var defaultClient = NewClient(nil)

// DiscoverRepoRoot resolves the git root for a starting directory.
func DiscoverRepoRoot(ctx context.Context, startDir string) (string, error) {
	return defaultClient.DiscoverRepoRoot(ctx, startDir)
}

// DiscoverRepoRoot resolves the git root for a starting directory.
func (c Client) DiscoverRepoRoot(ctx context.Context, startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	root, err := c.runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("discover git root: %w", err)
	}
	return root, nil
}

// ResolveRef resolves a ref to a full commit hash.
func ResolveRef(ctx context.Context, repoRoot, ref string) (string, error) {
	return defaultClient.ResolveRef(ctx, repoRoot, ref)
}

// ResolveRef resolves a ref to a full commit hash.
func (c Client) ResolveRef(ctx context.Context, repoRoot, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", fmt.Errorf("ref is empty")
	}
	commit, err := c.runner.Run(ctx, repoRoot, "rev-parse", "--verify", ref)
	if err != nil {
		return "", fmt.Errorf("resolve ref %q: %w", ref, err)
	}
	return commit, nil
}

// WorktreeRevision is the content revision used outside git worktrees or
// when the worktree has uncommitted changes.
const WorktreeRevision = "worktree"

// ContentRevision stamps content with its git HEAD commit. A content root
// outside any git repository, or one with local modifications, resolves to
// WorktreeRevision.
func ContentRevision(ctx context.Context, root string) string {
	return defaultClient.ContentRevision(ctx, root)
}

// ContentRevision stamps content with its git HEAD commit.
func (c Client) ContentRevision(ctx context.Context, root string) string {
	commit, err := c.ResolveRef(ctx, root, "HEAD")
	if err != nil {
		return WorktreeRevision
	}
	status, err := c.runner.Run(ctx, root, "status", "--porcelain")
	if err != nil || strings.TrimSpace(status) != "" {
		return WorktreeRevision
	}
	return commit
}
