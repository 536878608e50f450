package search

import "strings"

// Matcher tests full entry paths for containment of the search target.
type Matcher struct {
	target     string
	ignoreCase bool
}

// NewMatcher builds a Matcher. With ignoreCase set both the target and every
// candidate path are lower-cased before comparison; no locale-aware folding
// is applied.
func NewMatcher(target string, ignoreCase bool) Matcher {
	if ignoreCase {
		target = strings.ToLower(target)
	}
	return Matcher{target: target, ignoreCase: ignoreCase}
}

// Match reports whether path contains the target. The whole path is tested,
// not just the base name, so a target matching a parent segment matches every
// descendant.
func (m Matcher) Match(path string) bool {
	if m.ignoreCase {
		path = strings.ToLower(path)
	}
	return strings.Contains(path, m.target)
}

// Target returns the target as it is compared, i.e. already folded when the
// matcher ignores case.
func (m Matcher) Target() string {
	return m.target
}

// IgnoreCase reports whether the matcher folds case.
func (m Matcher) IgnoreCase() bool {
	return m.ignoreCase
}
