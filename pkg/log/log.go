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
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/xcopy/pkg/status"
)

// 🎯 Logger writes the console side channel of a copy run.
// Progress and successes go to out, skips and failures go to errOut.
// Every line is mirrored to the zerolog logger found on the context.
type Logger struct {
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex
}

// 🏭 New creates a new logger
func New(out, errOut io.Writer) *Logger {
	return &Logger{
		out:    out,
		errOut: errOut,
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

// 📝 Header prints the source and destination of the run
func (l *Logger) Header(ctx context.Context, source, dest string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "Source: '%s'\n", source)
	fmt.Fprintf(l.out, "Destination: '%s'\n", dest)

	zerolog.Ctx(ctx).Debug().Str("source", source).Str("destination", dest).Msg("copy requested")
}

// 📝 DirectoryCreated prints the notice for a destination directory about to be created
func (l *Logger) DirectoryCreated(ctx context.Context, dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	color.New(color.FgCyan).Fprintln(l.out, status.FormatDirCreated(dir))

	zerolog.Ctx(ctx).Trace().Str("dir", dir).Msg("creating directory")
}

// 📝 Outcome prints one file or directory outcome
func (l *Logger) Outcome(ctx context.Context, o status.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := status.FormatOutcome(o)
	switch o.Kind {
	case status.Created:
		color.New(color.FgGreen).Fprintln(l.out, line)
	case status.Skipped:
		color.New(color.FgYellow).Fprintln(l.errOut, line)
	case status.Failed:
		color.New(color.FgRed).Fprintln(l.errOut, line)
		zerolog.Ctx(ctx).Debug().Err(o.Err).Str("path", o.Path()).Bool("dir", o.IsDir).Msg("copy failed")
	default:
		fmt.Fprintln(l.out, line)
	}
}

// 📊 Summary prints the end-of-run totals
func (l *Logger) Summary(ctx context.Context, c status.Counts) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := status.FormatCounts(c)
	if c.Failed > 0 {
		pterm.Warning.WithWriter(l.out).Println(msg)
	} else {
		pterm.Success.WithWriter(l.out).Println(msg)
	}

	zerolog.Ctx(ctx).Info().
		Int("created", c.Created).
		Int("skipped", c.Skipped).
		Int("failed", c.Failed).
		Int("dirs_created", c.DirsCreated).
		Int("excluded", c.Excluded).
		Msg("copy finished")
}

// 📝 Error prints a fatal error
func (l *Logger) Error(ctx context.Context, msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pterm.Error.WithWriter(l.errOut).Println(fmt.Sprintf("%s: %v", msg, err))
	zerolog.Ctx(ctx).Error().Err(err).Msg(msg)
}

// 📝 Println prints a plain line to out
func (l *Logger) Println(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, msg)
}

// DisableColor turns off color for both color and pterm output.
func DisableColor() {
	color.NoColor = true
	pterm.DisableColor()
}
