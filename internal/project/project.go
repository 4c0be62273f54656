// Package project ties the pipeline together: classify the input, clone an
// existing repository if one was given, scaffold the starter layout, and run
// the remaining setup commands.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sa6mwa/mkpy/internal/giturl"
	"github.com/sa6mwa/mkpy/internal/plan"
	"github.com/sa6mwa/mkpy/internal/run"
	"github.com/sa6mwa/mkpy/internal/scaffold"
)

// Options controls optional scaffolding behavior.
type Options struct {
	// Tests adds a tests/ package with an empty __init__.py.
	Tests bool
}

// Create scaffolds a project from name, which is either a plain project name
// or a git repository URL. For a URL the repository is cloned first and its
// name becomes the project name. Returns the project name used.
func Create(name string, opts Options) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("project name required")
	}
	repo, cloned := giturl.RepoName(name)
	if cloned {
		// The clone is confirmed and run on its own: the rest of the plan
		// depends on which config files the cloned repository already has, so
		// it cannot be built until the clone has happened. An interactive run
		// over a URL therefore confirms twice.
		if err := run.Sequence([]run.Command{plan.Clone(name)}); err != nil {
			return "", err
		}
		name = repo
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	dir := filepath.Join(cwd, name)
	if err := scaffold.Project(dir, name, opts.Tests); err != nil {
		return "", err
	}
	cmds := plan.Commands(dir, plan.MissingConfigFiles(dir), cloned)
	if err := run.Sequence(cmds); err != nil {
		return "", err
	}
	return name, nil
}
