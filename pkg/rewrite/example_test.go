package rewrite_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/fixuri/pkg/rewrite"
)

func ExampleRewriter_RewriteFile() {
	// Create a rewriter over the built-in migration rules
	rw := rewrite.New(rewrite.MigrationRules())

	// Some TypeScript that still joins on URI values
	content := strings.NewReader("import { URI } from 'vscode-uri';\n" +
		"foo(path.join(URI.file(p), q));\n")

	// Apply the rules
	result, err := rw.RewriteFile(context.Background(), "server/src/main.ts", content)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %v\n", result.WasModified)
	fmt.Print(string(result.ModifiedContent))

	// Output:
	// Modified: true
	// import { URI } from 'vscode-uri';
	// import * as path from 'path';
	// foo(path.join(URI.file(p).fsPath, q));
}

func ExampleValidateRules() {
	rules := []rewrite.Rule{
		rewrite.LiteralRule{
			RuleName: "swap",
			New:      "bar", // Missing Old
		},
	}

	err := rewrite.ValidateRules(rules)
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 0: old text is required
}
