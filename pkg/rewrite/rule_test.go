package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportInsertRule_Apply(t *testing.T) {
	rule := MigrationRules()[0].(ImportInsertRule)

	tests := []struct {
		name     string
		content  string
		want     string
		wantHits int
	}{
		{
			name:     "no_uri_import",
			content:  "const x = 1;\n",
			want:     "const x = 1;\n",
			wantHits: 0,
		},
		{
			name:     "inserts_after_uri_import",
			content:  "import { URI } from 'vscode-uri';\nconst x = 1;\n",
			want:     "import { URI } from 'vscode-uri';\nimport * as path from 'path';\nconst x = 1;\n",
			wantHits: 1,
		},
		{
			name:     "path_import_already_present",
			content:  "import { URI } from 'vscode-uri';\nimport * as path from 'path';\n",
			want:     "import { URI } from 'vscode-uri';\nimport * as path from 'path';\n",
			wantHits: 0,
		},
		{
			name:     "path_import_present_elsewhere",
			content:  "import * as path from 'path';\nimport { URI } from 'vscode-uri';\n",
			want:     "import * as path from 'path';\nimport { URI } from 'vscode-uri';\n",
			wantHits: 0,
		},
		{
			// The presence check is semicolon-less, so an unterminated
			// import still suppresses anchoring elsewhere, while the
			// anchor itself requires the semicolon.
			name:     "uri_import_without_semicolon",
			content:  "import { URI } from 'vscode-uri'\nconst x = 1;\n",
			want:     "import { URI } from 'vscode-uri'\nconst x = 1;\n",
			wantHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hits := rule.Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestRegexRule_JoinCall(t *testing.T) {
	rule := MigrationRules()[1].(RegexRule)

	tests := []struct {
		name     string
		content  string
		want     string
		wantHits int
	}{
		{
			name:     "parse_call",
			content:  "path.join(URI.parse(x), y)",
			want:     "path.join(URI.parse(x).fsPath, y)",
			wantHits: 1,
		},
		{
			name:     "file_call",
			content:  "foo(path.join(URI.file(p), q));",
			want:     "foo(path.join(URI.file(p).fsPath, q));",
			wantHits: 1,
		},
		{
			// Nested parentheses inside the first argument stop the
			// character class, so the call is left alone.
			name:     "nested_parens_not_matched",
			content:  "path.join(URI.parse(getUri(x)), y)",
			want:     "path.join(URI.parse(getUri(x)), y)",
			wantHits: 0,
		},
		{
			name:     "single_argument_join_not_matched",
			content:  "path.join(URI.parse(x))",
			want:     "path.join(URI.parse(x))",
			wantHits: 0,
		},
		{
			name:     "multiple_occurrences",
			content:  "path.join(URI.parse(a), b); path.join(URI.file(c), d)",
			want:     "path.join(URI.parse(a).fsPath, b); path.join(URI.file(c).fsPath, d)",
			wantHits: 2,
		},
		{
			// After a first pass the capture group no longer matches,
			// which makes the rule stable across repeated runs.
			name:     "already_rewritten",
			content:  "path.join(URI.parse(x).fsPath, y)",
			want:     "path.join(URI.parse(x).fsPath, y)",
			wantHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hits := rule.Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestRegexRule_JoinPath(t *testing.T) {
	rule := MigrationRules()[2].(RegexRule)

	tests := []struct {
		name     string
		content  string
		want     string
		wantHits int
	}{
		{
			name:     "joinpath_replaced_wholesale",
			content:  "const p = URI.joinPath(a, b);",
			want:     `const p = URI.file("FIXME");`,
			wantHits: 1,
		},
		{
			name:     "joinpath_inside_join",
			content:  "path.join(URI.joinPath(a, b), c)",
			want:     `path.join(URI.file("FIXME"), c)`,
			wantHits: 1,
		},
		{
			name:     "idempotent_on_placeholder",
			content:  `const p = URI.file("FIXME");`,
			want:     `const p = URI.file("FIXME");`,
			wantHits: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hits := rule.Apply(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantHits, hits)
		})
	}
}

func TestLiteralRule(t *testing.T) {
	rule := LiteralRule{RuleName: "swap", Old: "foo", New: "bar"}

	got, hits := rule.Apply("foo foo baz")
	assert.Equal(t, "bar bar baz", got)
	assert.Equal(t, 2, hits)

	got, hits = rule.Apply("baz")
	assert.Equal(t, "baz", got)
	assert.Equal(t, 0, hits)
}

func TestLiteralRule_AppliesTo(t *testing.T) {
	unfiltered := LiteralRule{RuleName: "swap", Old: "a", New: "b"}
	assert.True(t, unfiltered.AppliesTo("any/file.ts"))

	filtered := LiteralRule{RuleName: "swap", Old: "a", New: "b", FileFilterGlob: "server/**/*.ts"}
	assert.True(t, filtered.AppliesTo("server/src/main.ts"))
	assert.False(t, filtered.AppliesTo("client/src/main.ts"))
}
