package rewrite

import "regexp"

// Literals for the vscode-uri -> path migration. The presence checks
// deliberately omit the trailing semicolon while the anchor keeps it, so
// an import written without a semicolon still counts as present.
const (
	uriImport     = "import { URI } from 'vscode-uri'"
	uriImportLine = "import { URI } from 'vscode-uri';"

	pathImport     = "import * as path from 'path'"
	pathImportLine = "import * as path from 'path';"
)

var (
	// Matches the first argument of a two-argument path.join call when
	// it is a URI.parse or URI.file construction. The [^)]+ class stops
	// at the first closing paren, so arguments that themselves contain
	// parentheses are left alone.
	joinCallPattern = regexp.MustCompile(`path\.join\((URI\.(?:parse|file)\([^)]+\)),`)

	// Matches a whole URI.joinPath call, same single-level paren
	// limitation as above.
	joinPathPattern = regexp.MustCompile(`URI\.joinPath\([^)]+\)`)
)

// MigrationRules returns the ordered vscode-uri migration rule set. Order
// matters: the import insertion must see the content before the join
// rewrites touch it.
//
// The third rule discards the original joinPath arguments on purpose;
// the FIXME marker is a signal that the call site needs a manual port.
func MigrationRules() []Rule {
	return []Rule{
		ImportInsertRule{
			RuleName:   "insert-path-import",
			IfContains: uriImport,
			Unless:     pathImport,
			Anchor:     uriImportLine,
			Insert:     pathImportLine,
		},
		RegexRule{
			RuleName:    "join-uri-fspath",
			Pattern:     joinCallPattern,
			Replacement: `path.join(${1}.fsPath,`,
		},
		RegexRule{
			RuleName:    "neutralize-joinpath",
			Pattern:     joinPathPattern,
			Replacement: `URI.file("FIXME")`,
		},
	}
}
