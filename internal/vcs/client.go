package vcs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ordinator-tools/ordinator/internal/shell"
	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/ordinator-tools/ordinator/pkg/logging"
)

// Revision identifies a masterlist repository's state at a point in time.
type Revision struct {
	ID   string // full commit hash
	Date string // ISO 8601 commit date
}

// Client is the VCS boundary named in spec.md §6. UpdateMasterlist (the
// database-facade operation) depends on this interface rather than on git
// directly, so an alternate transport (an HTTP mirror, a vendored
// snapshot) can stand in during tests.
type Client interface {
	// Update clones repoURL into dir on branch if dir does not contain a
	// checkout yet, otherwise fetches and fast-forwards it. It returns the
	// resulting revision.
	Update(ctx context.Context, dir, repoURL, branch string) (Revision, error)

	// GetRevision returns the current HEAD revision of the checkout at dir.
	GetRevision(ctx context.Context, dir string) (Revision, error)

	// IsLatest reports whether dir's HEAD matches repoURL's branch tip
	// without modifying the checkout.
	IsLatest(ctx context.Context, dir, repoURL, branch string) (bool, error)
}

// GitClient is the default Client, implemented by invoking the git binary
// found on PATH via internal/shell.Executor in its plain capture mode —
// the masterlist lifecycle only ever needs a command's exit status and
// captured output, never the passthrough/interactive/background modes
// that executor also supports. Every argument is validated by a
// shell.CommandSanitizer before it reaches the subprocess, since branch
// names and repository URLs passed to Update/IsLatest originate from
// the tool config file and are not otherwise trusted input.
type GitClient struct {
	binary    string
	timeout   time.Duration
	logger    *logging.Logger
	executor  *shell.Executor
	sanitizer shell.CommandSanitizer
}

// NewGitClient returns a GitClient. If binary is empty, "git" is resolved
// from PATH at call time.
func NewGitClient(binary string, timeout time.Duration) *GitClient {
	if binary == "" {
		binary = "git"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GitClient{
		binary:    binary,
		timeout:   timeout,
		logger:    logging.Default(),
		executor:  shell.NewExecutor(shell.Options{DefaultTimeout: timeout}),
		sanitizer: shell.NewSanitizer(shell.DefaultConfig()),
	}
}

func (c *GitClient) run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := c.sanitizer.Validate(c.binary, args); err != nil {
		return "", ordinatorerrors.NewInvalidArgument(
			fmt.Sprintf("git %s rejected by command sanitizer: %v", strings.Join(args, " "), err),
			ordinatorerrors.WithCause(err),
		)
	}

	c.logger.Debug("vcs: running git", logging.String("dir", dir), logging.String("args", strings.Join(args, " ")))

	result, err := c.executor.ExecuteWithContext(ctx, &shell.Command{
		Name:          c.binary,
		Args:          args,
		WorkingDir:    dir,
		Timeout:       c.timeout,
		CaptureOutput: true,
	})
	if err != nil {
		return "", ordinatorerrors.NewGitState(
			fmt.Sprintf("git %s failed to start: %v", strings.Join(args, " "), err),
			ordinatorerrors.WithCause(err),
		)
	}
	if result.Error != nil {
		return "", ordinatorerrors.NewGitState(
			fmt.Sprintf("git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(string(result.Stderr))),
			ordinatorerrors.WithCause(result.Error),
		)
	}
	return strings.TrimSpace(string(result.Stdout)), nil
}

func (c *GitClient) Update(ctx context.Context, dir, repoURL, branch string) (Revision, error) {
	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
			return Revision{}, ordinatorerrors.NewFileAccess(dir, "creating masterlist parent directory", ordinatorerrors.WithCause(err))
		}
		if _, err := c.run(ctx, filepath.Dir(dir), "clone", "--branch", branch, "--single-branch", repoURL, filepath.Base(dir)); err != nil {
			return Revision{}, err
		}
		return c.GetRevision(ctx, dir)
	}

	if _, err := c.run(ctx, dir, "fetch", "origin", branch); err != nil {
		return Revision{}, err
	}
	if _, err := c.run(ctx, dir, "checkout", branch); err != nil {
		return Revision{}, err
	}
	if _, err := c.run(ctx, dir, "reset", "--hard", "origin/"+branch); err != nil {
		return Revision{}, err
	}
	return c.GetRevision(ctx, dir)
}

func (c *GitClient) GetRevision(ctx context.Context, dir string) (Revision, error) {
	id, err := c.run(ctx, dir, "rev-parse", "HEAD")
	if err != nil {
		return Revision{}, err
	}
	date, err := c.run(ctx, dir, "show", "-s", "--format=%cI", "HEAD")
	if err != nil {
		return Revision{}, err
	}
	return Revision{ID: id, Date: date}, nil
}

func (c *GitClient) IsLatest(ctx context.Context, dir, repoURL, branch string) (bool, error) {
	local, err := c.GetRevision(ctx, dir)
	if err != nil {
		return false, err
	}
	remote, err := c.run(ctx, dir, "ls-remote", repoURL, "refs/heads/"+branch)
	if err != nil {
		return false, err
	}
	fields := strings.Fields(remote)
	if len(fields) == 0 {
		return false, ordinatorerrors.NewGitState("empty ls-remote response for " + branch)
	}
	return fields[0] == local.ID, nil
}
