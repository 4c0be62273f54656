package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sa6mwa/mkpy/internal/run"
)

// withStubExec records executed commands and forces non-interactive behavior.
func withStubExec(t *testing.T, f func(argv []string) error, test func()) {
	t.Helper()
	restore := run.SetExecutorForTest(f)
	defer restore()
	run.SetYes(true)
	defer run.SetYes(false)
	test()
}

func record(dst *[][]string) func(argv []string) error {
	return func(argv []string) error {
		*dst = append(*dst, append([]string(nil), argv...))
		return nil
	}
}

func TestCreate_PlainName(t *testing.T) {
	chdirTemp(t)
	var got [][]string
	withStubExec(t, record(&got), func() {
		name, err := Create("myproj", Options{})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if name != "myproj" {
			t.Fatalf("name = %q, want myproj", name)
		}
	})

	assertFile(t, filepath.Join("myproj", "README.md"), "# myproj\n")
	assertFile(t, filepath.Join("myproj", "requirements-dev.txt"), "pre-commit")
	assertFile(t, filepath.Join("myproj", "requirements.txt"), "")
	if _, err := os.Stat(filepath.Join("myproj", "tests")); !os.IsNotExist(err) {
		t.Fatal("tests dir must not exist without the tests flag")
	}

	joined := joinAll(got)
	// 4 fetches, init, add, commit; no clone, no push.
	if len(got) != 7 {
		t.Fatalf("executed %d commands, want 7: %v", len(got), joined)
	}
	if !strings.Contains(joined[4], "init -b master") {
		t.Fatalf("command 5 should be init, got %q", joined[4])
	}
	for _, c := range joined {
		if strings.Contains(c, "push") || strings.Contains(c, "clone") {
			t.Fatalf("unexpected command for plain name: %q", c)
		}
	}
}

func TestCreate_WithTests(t *testing.T) {
	chdirTemp(t)
	var got [][]string
	withStubExec(t, record(&got), func() {
		if _, err := Create("myproj", Options{Tests: true}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	})
	assertFile(t, filepath.Join("myproj", "tests", "__init__.py"), "")
}

func TestCreate_RepositoryURL(t *testing.T) {
	chdirTemp(t)
	var got [][]string
	withStubExec(t, record(&got), func() {
		name, err := Create("git@github.com:user/repo.git", Options{})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		if name != "repo" {
			t.Fatalf("name = %q, want repo", name)
		}
	})

	// Clone runs first, against the full URL; later steps use the repo name.
	joined := joinAll(got)
	if joined[0] != "git clone git@github.com:user/repo.git" {
		t.Fatalf("first command = %q, want clone", joined[0])
	}
	last := joined[len(joined)-1]
	if !strings.HasSuffix(last, "push") {
		t.Fatalf("last command = %q, want push", last)
	}
	for _, c := range joined {
		if strings.Contains(c, "init") {
			t.Fatalf("cloned repository must not be reinitialized: %q", c)
		}
	}
	assertFile(t, filepath.Join("repo", "README.md"), "# repo\n")
}

func TestCreate_ExistingConfigFileSkipsFetch(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll("myproj", 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(filepath.Join("myproj", ".gitignore"), []byte("*.pyc\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	var got [][]string
	withStubExec(t, record(&got), func() {
		if _, err := Create("myproj", Options{}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	})
	fetches := 0
	for _, c := range joinAll(got) {
		if strings.Contains(c, ".gitignore") {
			t.Fatalf("existing .gitignore must not be fetched: %q", c)
		}
		if strings.HasPrefix(c, "wget") {
			fetches++
		}
	}
	if fetches != 3 {
		t.Fatalf("expected 3 fetch commands, got %d", fetches)
	}
	assertFile(t, filepath.Join("myproj", ".gitignore"), "*.pyc\n")
}

func TestCreate_CommitFailureStopsBeforePush(t *testing.T) {
	chdirTemp(t)
	var got [][]string
	fail := errors.New("exit status 1")
	withStubExec(t, func(argv []string) error {
		got = append(got, append([]string(nil), argv...))
		for _, a := range argv {
			if a == "commit" {
				return fail
			}
		}
		return nil
	}, func() {
		_, err := Create("git@github.com:user/repo.git", Options{})
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, fail) {
			t.Fatalf("error does not wrap cause: %v", err)
		}
		if !strings.Contains(err.Error(), "commit") {
			t.Fatalf("diagnostic does not name the commit command: %v", err)
		}
	})
	for _, c := range joinAll(got) {
		if strings.HasSuffix(c, "push") {
			t.Fatalf("push must not run after commit failure: %q", c)
		}
	}
}

func TestCreate_EmptyName(t *testing.T) {
	if _, err := Create("  ", Options{}); err == nil {
		t.Fatal("expected error for empty name")
	}
}

// chdirTemp changes into a fresh temp dir and restores the previous
// working directory on cleanup (equivalent of t.Chdir, Go 1.24+).
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}

func joinAll(cmds [][]string) []string {
	out := make([]string, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, strings.Join(c, " "))
	}
	return out
}

func assertFile(t *testing.T, path, want string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(b) != want {
		t.Fatalf("%s content = %q, want %q", path, b, want)
	}
}
