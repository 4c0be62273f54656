// Package scaffold creates the starter layout of a Python project: the
// project directory, requirements files, a readme, and optionally a tests
// package. Every operation is create-if-absent; rerunning on an already
// scaffolded directory never touches existing content.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	requirementsFile    = "requirements.txt"
	requirementsDevFile = "requirements-dev.txt"
	readmeFile          = "README.md"
	testsDir            = "tests"
	testsMarkerFile     = "__init__.py"
)

// Project ensures dir exists and populates it with the starter files for a
// project called name. With tests set, a tests/ package with an empty
// __init__.py is created as well.
func Project(dir, name string, tests bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project directory %s: %w", dir, err)
	}
	if err := touch(filepath.Join(dir, requirementsFile)); err != nil {
		return err
	}
	if err := createFile(dir, requirementsDevFile, "pre-commit"); err != nil {
		return err
	}
	if err := createFile(dir, readmeFile, "# "+name+"\n"); err != nil {
		return err
	}
	if tests {
		td := filepath.Join(dir, testsDir)
		if err := os.MkdirAll(td, 0o755); err != nil {
			return fmt.Errorf("create tests directory %s: %w", td, err)
		}
		if err := touch(filepath.Join(td, testsMarkerFile)); err != nil {
			return err
		}
	}
	return nil
}

// createFile writes content to dir/filename unless the file already exists.
func createFile(dir, filename, content string) error {
	p := filepath.Join(dir, filename)
	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", p, err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

// touch guarantees an empty file exists at p, preserving any existing file.
func touch(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("touch %s: %w", p, err)
	}
	return f.Close()
}
