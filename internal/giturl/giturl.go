package giturl

import "regexp"

// repoPattern recognizes SSH-style and HTTPS git remote URLs ending in
// <name>.git on a .com or .org host. Anchored at the start only, so trailing
// garbage after ".git" does not disqualify a match. Other protocols and
// top-level domains are intentionally not recognized; such inputs are treated
// as plain project names. \w in Go's regexp is ASCII-only, so URLs whose path
// or repository name contains non-ASCII word characters also classify as
// plain names.
var repoPattern = regexp.MustCompile(`^(git@|https://)[\w@-]*\.(com|org)[/:][\w/-]+/([\w-]+)\.git`)

// RepoName reports whether s is a git repository URL and, if so, returns the
// repository name: the final path segment without the .git suffix.
func RepoName(s string) (string, bool) {
	m := repoPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[3], true
}
