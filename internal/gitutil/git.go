// Package gitutil reads repository metadata for analyzed directories.
package gitutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// RepoInfo holds the repository metadata merged into a project record.
type RepoInfo struct {
	IsRepo   bool
	NCommits int
}

// IsRepo reports whether dir is a git repository, defined as carrying a
// .git directory at its root. Worktrees and submodules use a .git file
// and are deliberately not treated as repositories here, matching how the
// analyzed student projects are laid out.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// CommitCount returns the number of commits reachable from ref. ref is
// usually "HEAD"; "--all" counts every branch.
func CommitCount(dir, ref string) (int, error) {
	if ref == "" {
		ref = "HEAD"
	}
	out, err := runGit(dir, "rev-list", "--count", ref)
	if err != nil {
		return 0, fmt.Errorf("count commits: %w", err)
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("unexpected rev-list output %q: %w", out, err)
	}
	return n, nil
}

// Read gathers the repository metadata for dir. A directory that is not a
// repository is a normal outcome: it yields the zero RepoInfo, not an
// error. A repository whose history cannot be read (corrupt metadata,
// missing git binary) still reports IsRepo=true with zero commits.
func Read(dir, ref string) RepoInfo {
	if !IsRepo(dir) {
		return RepoInfo{}
	}
	n, err := CommitCount(dir, ref)
	if err != nil {
		return RepoInfo{IsRepo: true}
	}
	return RepoInfo{IsRepo: true, NCommits: n}
}

// runGit executes a git command in the given directory and returns trimmed
// stdout.
func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}
