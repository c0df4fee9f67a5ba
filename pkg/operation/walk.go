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
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/xcopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📁 DirectoryNode is a directory discovered under the source root
type DirectoryNode struct {
	Path   string // Absolute path
	Rel    string // Path relative to the source root, set once the destination exists
	Target string // Mirrored destination directory, set once it exists
}

// 🔍 Walk lists root and every directory below it, pre-order depth-first:
// a directory comes right before its whole subtree, siblings in listing order.
// Only a failure on root itself is returned; unreadable subdirectories are
// recorded in report and their subtrees left out.
func (c *TreeCopier) Walk(ctx context.Context, root string, report *status.Report) ([]DirectoryNode, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %v", ErrDirectoryNotFound, root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Errorf("%w: listing %s: %v", ErrDirectoryNotFound, root, err)
	}

	nodes := []DirectoryNode{{Path: root}}
	nodes = c.walkChildren(ctx, root, "", entries, nodes, report)
	return nodes, nil
}

func (c *TreeCopier) walkChildren(ctx context.Context, dir, rel string, entries []os.DirEntry, nodes []DirectoryNode, report *status.Report) []DirectoryNode {
	logger := zerolog.Ctx(ctx)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		childPath := filepath.Join(dir, entry.Name())
		childRel := filepath.Join(rel, entry.Name())
		if c.excluded(ctx, childRel) {
			report.TrackExcluded()
			continue
		}

		childEntries, err := os.ReadDir(childPath)
		if err != nil {
			logger.Debug().Err(err).Str("dir", childPath).Msg("listing subdirectory")
			c.record(ctx, report, status.NewDirFailed(childPath, "", errors.Errorf("listing directory: %w", err)))
			continue
		}

		logger.Debug().Str("dir", childPath).Msg("found subdirectory")
		nodes = append(nodes, DirectoryNode{Path: childPath})
		nodes = c.walkChildren(ctx, childPath, childRel, childEntries, nodes, report)
	}

	return nodes
}

// 🚫 excluded checks rel against the exclude patterns. Patterns without a
// slash also match the base name at any depth.
func (c *TreeCopier) excluded(ctx context.Context, rel string) bool {
	if len(c.exclude) == 0 || rel == "" {
		return false
	}

	slashed := filepath.ToSlash(rel)
	base := path.Base(slashed)
	for _, pattern := range c.exclude {
		matched, err := doublestar.Match(pattern, slashed)
		if err == nil && !matched && !strings.Contains(pattern, "/") {
			matched, err = doublestar.Match(pattern, base)
		}
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", slashed).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("path", slashed).Str("pattern", pattern).Msg("excluded by pattern")
			return true
		}
	}

	return false
}
