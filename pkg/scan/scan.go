// Package scan expands glob patterns into the list of files to rewrite.
package scan

import (
	"context"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Expand resolves glob patterns into the ordered list of regular files
// they match. Patterns support `**` recursion and are expanded relative
// to the working directory. Matches within a pattern keep the order the
// glob yields them; patterns are expanded in the order given. Symlinks
// resolve to their targets, so a link to a regular file is included;
// directories, other non-regular entries, and broken links are skipped.
func Expand(ctx context.Context, patterns []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Errorf("expanding pattern %q: %w", pattern, err)
		}

		logger.Debug().
			Str("pattern", pattern).
			Int("matches", len(matches)).
			Msg("expanded glob pattern")

		for _, match := range matches {
			info, err := os.Stat(match)
			if errors.Is(err, fs.ErrNotExist) {
				// A dangling symlink matched the pattern.
				continue
			}
			if err != nil {
				return nil, errors.Errorf("inspecting %s: %w", match, err)
			}
			if !info.Mode().IsRegular() {
				continue
			}
			files = append(files, match)
		}
	}

	return files, nil
}
