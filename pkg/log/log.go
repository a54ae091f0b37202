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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Logger handles the user-facing report stream plus mirrored
// structured logging. The report lines (`Fixed <path>`, `Done!`) are the
// tool's output contract and are written to the console writer verbatim,
// with no color or decoration; diagnostics get the color treatment.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	fixed   []string
}

// 🏭 New creates a new logger. Report lines go to console; structured
// events go to stderr so they never interleave with the report stream.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileFixed reports a modified file. ruleHits maps rule name to
// the number of times it fired on this file.
func (l *Logger) LogFileFixed(ctx context.Context, path string, ruleHits map[string]int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fixed = append(l.fixed, path)

	fmt.Fprintf(l.console, "Fixed %s\n", path)

	event := l.zlog.Info().Str("file", path)
	total := 0
	for rule, hits := range ruleHits {
		event = event.Int(rule, hits)
		total += hits
	}
	event.Int("replacements", total).Msg("file fixed")
}

// 📝 Done reports batch completion.
func (l *Logger) Done() {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, "Done!")
	l.zlog.Info().Int("files_fixed", len(l.fixed)).Msg("batch complete")
}

// 📋 FixedFiles returns the paths reported so far, in report order.
func (l *Logger) FixedFiles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.fixed))
	copy(out, l.fixed)
	return out
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
