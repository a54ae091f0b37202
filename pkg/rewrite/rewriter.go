package rewrite

import (
	"bytes"
	"context"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// RewriteResult contains the outcome of running the rule list over one
// file's content.
type RewriteResult struct {
	// WasModified is true when the final content differs byte-for-byte
	// from the original.
	WasModified bool

	// OriginalContent is the content before any rule ran.
	OriginalContent []byte

	// ModifiedContent is the content after all rules ran.
	ModifiedContent []byte

	// RuleHits maps rule name to the number of times it fired.
	RuleHits map[string]int
}

// Hits returns the total number of rule applications.
func (r *RewriteResult) Hits() int {
	total := 0
	for _, n := range r.RuleHits {
		total += n
	}
	return total
}

// Rewriter applies an ordered rule list to file content.
type Rewriter struct {
	rules []Rule
}

// New creates a Rewriter over the given rules. The slice order is the
// application order.
func New(rules []Rule) *Rewriter {
	return &Rewriter{rules: rules}
}

// Rules returns the rule list in application order.
func (rw *Rewriter) Rules() []Rule {
	return rw.rules
}

// RewriteFile reads all of content and applies the rule list in order.
// path is used only for per-rule file filters and logging; nothing is
// written to disk.
func (rw *Rewriter) RewriteFile(ctx context.Context, path string, content io.Reader) (*RewriteResult, error) {
	logger := zerolog.Ctx(ctx)

	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &RewriteResult{
		OriginalContent: original,
		RuleHits:        map[string]int{},
	}

	current := string(original)
	for _, rule := range rw.rules {
		if filtered, ok := rule.(FileFilteredRule); ok && !filtered.AppliesTo(path) {
			continue
		}

		next, hits := rule.Apply(current)
		if hits > 0 {
			logger.Debug().
				Str("file", path).
				Str("rule", rule.Name()).
				Int("hits", hits).
				Msg("rule applied")
			result.RuleHits[rule.Name()] += hits
		}
		current = next
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = !bytes.Equal(result.OriginalContent, result.ModifiedContent)
	return result, nil
}

// ValidateRules checks that all rules are well formed before any content
// is touched.
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		switch r := rule.(type) {
		case LiteralRule:
			if r.Old == "" {
				return errors.Errorf("rule %d: old text is required", i)
			}
			if r.FileFilterGlob != "" && !doublestar.ValidatePattern(r.FileFilterGlob) {
				return errors.Errorf("rule %d: invalid file filter glob %q", i, r.FileFilterGlob)
			}
		case RegexRule:
			if r.Pattern == nil {
				return errors.Errorf("rule %d: pattern is required", i)
			}
		case ImportInsertRule:
			if r.Anchor == "" {
				return errors.Errorf("rule %d: anchor is required", i)
			}
		}
		if rule.Name() == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
	}
	return nil
}
