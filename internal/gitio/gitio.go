// Package gitio wraps the handful of git invocations the gate needs. All
// reads go through a Runner so tests can substitute canned output.
package gitio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		// Partial stdout still comes back; npm audit exits non-zero when
		// it finds vulnerabilities and its JSON is on stdout regardless.
		return string(out), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Client reads staged state from the repository in the working directory.
type Client struct {
	run Runner
}

func NewClient() *Client {
	return &Client{run: execRunner{}}
}

// Runner exposes the underlying command runner for callers that need to
// invoke tools other than git, like npm.
func (c *Client) Runner() Runner {
	return c.run
}

// NewClientWith builds a client over a custom runner.
func NewClientWith(r Runner) *Client {
	return &Client{run: r}
}

// StagedFiles lists the paths staged for commit, limited to added, copied
// and modified entries. Deleted files have no content to scan.
func (c *Client) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := c.run.Run(ctx, "git", "diff", "--cached", "--name-only", "--diff-filter=ACM")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// StagedDiff returns the full staged diff.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	return c.run.Run(ctx, "git", "diff", "--cached")
}

// CurrentBranch returns the checked-out branch name, empty on a detached
// HEAD.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.run.Run(ctx, "git", "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
