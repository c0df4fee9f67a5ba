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
	"context"
	"strings"

	"github.com/walteh/xcopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDirectoryNotFound is returned by Run when the source root is missing,
	// is not a directory, or cannot be listed.
	ErrDirectoryNotFound = errors.Base("directory not found")

	// ErrInvalidRelation means a directory reached by the walk is not under the source root.
	ErrInvalidRelation = errors.Base("not a subdirectory of the source root")
)

// 📢 Reporter receives progress as it happens
type Reporter interface {
	// DirectoryCreated is called before a missing destination directory is created
	DirectoryCreated(ctx context.Context, dir string)
	// Outcome is called once per file, and once per directory that failed
	Outcome(ctx context.Context, o status.Outcome)
}

type nopReporter struct{}

func (nopReporter) DirectoryCreated(context.Context, string) {}
func (nopReporter) Outcome(context.Context, status.Outcome) {}

// 🔧 Options contains optional settings for a TreeCopier
type Options struct {
	// Reporter receives progress lines; nil discards them
	Reporter Reporter
	// Jobs is the number of directories processed at once; values below 2 mean sequential
	Jobs int
	// Exclude holds doublestar patterns matched against paths relative to the source root
	Exclude []string
}

// 🌳 TreeCopier mirrors a source directory tree under a destination directory
// without overwriting existing files. A TreeCopier runs one copy at a time.
type TreeCopier struct {
	source   string
	dest     string
	reporter Reporter
	runner   *Runner
	exclude  []string
}

// 🏭 New creates a TreeCopier. Paths are trimmed but not checked until Run.
func New(source, dest string, opts Options) *TreeCopier {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &TreeCopier{
		source:   strings.TrimSpace(source),
		dest:     strings.TrimSpace(dest),
		reporter: reporter,
		runner:   NewRunner(opts.Jobs),
		exclude:  opts.Exclude,
	}
}

// Source returns the trimmed source path given to New.
func (c *TreeCopier) Source() string {
	return c.source
}

// Dest returns the trimmed destination path given to New.
func (c *TreeCopier) Dest() string {
	return c.dest
}
