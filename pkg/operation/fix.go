// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/fixuri/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Fix implements Operator.Fix. Files are processed strictly one at a
// time in glob order; the first I/O failure aborts the whole batch and
// leaves later files untouched. Files already written stay written.
func (o *operator) Fix(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	files, err := scan.Expand(ctx, o.config.Patterns)
	if err != nil {
		return errors.Errorf("expanding patterns: %w", err)
	}

	logger.Debug().Int("files", len(files)).Msg("scanning files")

	for _, file := range files {
		if err := o.fixFile(ctx, file); err != nil {
			return errors.Errorf("fixing %s: %w", file, err)
		}
	}

	o.logger.Done()
	return nil
}

// 📄 fixFile runs one file through the rewriter. The file is written back
// if and only if the rewritten content differs byte-for-byte from the
// original; unchanged files are never opened for writing.
func (o *operator) fixFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	result, err := o.rewriter.RewriteFile(ctx, path, bytes.NewReader(content))
	if err != nil {
		return errors.Errorf("rewriting content: %w", err)
	}

	if !result.WasModified {
		return nil
	}

	if err := os.WriteFile(path, result.ModifiedContent, 0o644); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	o.logger.LogFileFixed(ctx, path, result.RuleHits)
	return nil
}
