package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule is a single textual transformation applied to file content. Rules
// are pure text-in/text-out; they know nothing about where the content
// came from.
type Rule interface {
	// Name identifies the rule in logs and the `fixuri rules` listing.
	Name() string

	// Apply transforms content and reports how many times the rule fired.
	Apply(content string) (string, int)

	// Describe returns a one-line human-readable summary of the rule.
	Describe() string
}

// FileFilteredRule is implemented by rules that only apply to a subset of
// files. Rules without this interface apply everywhere.
type FileFilteredRule interface {
	Rule

	// AppliesTo reports whether the rule should run against path.
	AppliesTo(path string) bool
}

// ImportInsertRule inserts one import line after another. The rule fires
// only when IfContains is present and Unless is absent, which makes a
// second run a no-op.
type ImportInsertRule struct {
	RuleName string

	// IfContains must appear in the content for the rule to fire.
	IfContains string

	// Unless suppresses the rule when already present.
	Unless string

	// Anchor is the exact text the insertion attaches to. Every
	// occurrence gets the insertion.
	Anchor string

	// Insert is placed on a new line after each Anchor occurrence.
	Insert string
}

func (r ImportInsertRule) Name() string { return r.RuleName }

func (r ImportInsertRule) Apply(content string) (string, int) {
	if !strings.Contains(content, r.IfContains) || strings.Contains(content, r.Unless) {
		return content, 0
	}
	count := strings.Count(content, r.Anchor)
	if count == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.Anchor, r.Anchor+"\n"+r.Insert), count
}

func (r ImportInsertRule) Describe() string {
	return fmt.Sprintf("insert %q after %q", r.Insert, r.Anchor)
}

// RegexRule rewrites every match of Pattern with Replacement. Replacement
// may reference capture groups as ${n}.
type RegexRule struct {
	RuleName    string
	Pattern     *regexp.Regexp
	Replacement string
}

func (r RegexRule) Name() string { return r.RuleName }

func (r RegexRule) Apply(content string) (string, int) {
	count := len(r.Pattern.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}
	return r.Pattern.ReplaceAllString(content, r.Replacement), count
}

func (r RegexRule) Describe() string {
	return fmt.Sprintf("replace %s with %q", r.Pattern.String(), r.Replacement)
}

// LiteralRule replaces every occurrence of Old with New. When
// FileFilterGlob is set, the rule only applies to matching paths.
type LiteralRule struct {
	RuleName string
	Old      string
	New      string

	// FileFilterGlob restricts the rule to matching paths. Empty means
	// all files.
	FileFilterGlob string
}

func (r LiteralRule) Name() string { return r.RuleName }

func (r LiteralRule) Apply(content string) (string, int) {
	count := strings.Count(content, r.Old)
	if count == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.Old, r.New), count
}

func (r LiteralRule) Describe() string {
	return fmt.Sprintf("replace %q with %q", r.Old, r.New)
}

func (r LiteralRule) AppliesTo(path string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	matched, err := doublestar.Match(r.FileFilterGlob, path)
	if err != nil {
		// Invalid patterns are rejected by ValidateRules before any
		// content is touched.
		return false
	}
	return matched
}
