// Package plan builds the ordered list of external commands that finish
// setting up a scaffolded project: template config downloads, repository
// init, initial commit, and an optional push. Building the plan has no side
// effects; only internal/run executes anything.
package plan

import (
	"os"
	"path/filepath"

	"github.com/sa6mwa/mkpy/internal/run"
)

// templateBaseURL is the raw-content prefix the config files are fetched
// from. Each filename in ConfigFiles is appended verbatim.
const templateBaseURL = "https://gist.githubusercontent.com/vyhuholl/" +
	"2c406f2b2509a15467a78d73f9aabead/" +
	"raw/d974cb4bc790ae3107f62bdd0a7449763a1fd63b/"

// ConfigFiles is the canonical, ordered set of config files a project gets.
var ConfigFiles = []string{
	".flake8",
	".gitignore",
	".pre-commit-config.yaml",
	"pyproject.toml",
}

// Clone returns the command cloning url into the current directory.
func Clone(url string) run.Command {
	return run.Command{"git", "clone", url}
}

// MissingConfigFiles returns the subset of ConfigFiles not present in dir,
// preserving the canonical order.
func MissingConfigFiles(dir string) []string {
	var missing []string
	for _, f := range ConfigFiles {
		if _, err := os.Stat(filepath.Join(dir, f)); os.IsNotExist(err) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Commands builds the post-scaffold command list for the project in dir.
// Order is fixed: fetches for missing config files first, then repository
// init (only when the project was not cloned), then stage and commit, then a
// push when the project came from an existing remote.
func Commands(dir string, missing []string, cloned bool) []run.Command {
	var cmds []run.Command
	for _, f := range missing {
		cmds = append(cmds, run.Command{"wget", "-P", dir, templateBaseURL + f})
	}
	if !cloned {
		cmds = append(cmds, run.Command{"git", "-C", dir, "init", "-b", "master"})
	}
	cmds = append(cmds,
		run.Command{"git", "-C", dir, "add", "."},
		run.Command{"git", "-C", dir, "commit", "-m", "Initial commit"},
	)
	if cloned {
		cmds = append(cmds, run.Command{"git", "-C", dir, "push"})
	}
	return cmds
}
