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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/xcopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run copies the source tree into the destination.
//
// The returned error is non-nil only when the source root cannot be
// enumerated or ctx is cancelled; every per-file and per-directory problem is
// recorded in the report instead. The report is returned even with an error.
func (c *TreeCopier) Run(ctx context.Context) (*status.Report, error) {
	logger := zerolog.Ctx(ctx)
	report := status.NewReport()

	if c.source == "" {
		return report, errors.Errorf("%w: empty source path", ErrDirectoryNotFound)
	}
	if c.dest == "" {
		return report, errors.Errorf("empty destination path")
	}

	src, err := filepath.Abs(c.source)
	if err != nil {
		return report, errors.Errorf("resolving source path: %w", err)
	}
	dst, err := filepath.Abs(c.dest)
	if err != nil {
		return report, errors.Errorf("resolving destination path: %w", err)
	}

	logger.Debug().Str("source", src).Str("destination", dst).Msg("starting tree copy")

	nodes, err := c.Walk(ctx, src, report)
	if err != nil {
		return report, err
	}

	logger.Debug().Int("directories", len(nodes)).Msg("enumerated source tree")

	if c.runner.Jobs() > 1 {
		// every destination directory exists before the workers start copying files
		prepared, err := c.prepareDirs(ctx, src, dst, nodes, report)
		if err != nil {
			return report, err
		}
		err = c.runner.Run(ctx, prepared, func(ctx context.Context, node DirectoryNode) {
			c.copyFiles(ctx, node, report)
		})
		if err != nil {
			return report, err
		}
	} else {
		err = c.runner.Run(ctx, nodes, func(ctx context.Context, node DirectoryNode) {
			if prepared, ok := c.prepareDir(ctx, src, dst, node, report); ok {
				c.copyFiles(ctx, prepared, report)
			}
		})
		if err != nil {
			return report, err
		}
	}

	counts := report.Counts()
	logger.Debug().
		Int("created", counts.Created).
		Int("skipped", counts.Skipped).
		Int("failed", counts.Failed).
		Int("dirs_created", counts.DirsCreated).
		Msg("tree copy complete")

	return report, nil
}

// 📂 prepareDirs mirrors every directory in pre-order and returns the ones ready for copying
func (c *TreeCopier) prepareDirs(ctx context.Context, src, dst string, nodes []DirectoryNode, report *status.Report) ([]DirectoryNode, error) {
	prepared := make([]DirectoryNode, 0, len(nodes))
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("copy cancelled: %w", err)
		}
		if p, ok := c.prepareDir(ctx, src, dst, node, report); ok {
			prepared = append(prepared, p)
		}
	}
	return prepared, nil
}

// 📂 prepareDir creates the destination directory of node, announcing it when missing.
// It returns node with Rel and Target filled in, or false after recording a failure.
func (c *TreeCopier) prepareDir(ctx context.Context, src, dst string, node DirectoryNode, report *status.Report) (DirectoryNode, bool) {
	rel, err := RelativePath(src, node.Path)
	if err != nil {
		c.record(ctx, report, status.NewDirFailed(node.Path, "", err))
		return node, false
	}

	target := filepath.Join(dst, rel)
	if _, err := os.Stat(target); errors.Is(err, fs.ErrNotExist) {
		c.reporter.DirectoryCreated(ctx, target)
		report.TrackDirCreated()
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		c.record(ctx, report, status.NewDirFailed(node.Path, target, errors.Errorf("creating directory: %w", err)))
		return node, false
	}

	node.Rel = rel
	node.Target = target
	return node, true
}

// 📄 copyFiles copies the files directly inside a prepared directory
func (c *TreeCopier) copyFiles(ctx context.Context, node DirectoryNode, report *status.Report) {
	entries, err := os.ReadDir(node.Path)
	if err != nil {
		c.record(ctx, report, status.NewDirFailed(node.Path, node.Target, errors.Errorf("listing directory: %w", err)))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if c.excluded(ctx, filepath.Join(node.Rel, entry.Name())) {
			report.TrackExcluded()
			continue
		}

		c.record(ctx, report, copyFileExclusive(
			filepath.Join(node.Path, entry.Name()),
			filepath.Join(node.Target, entry.Name()),
		))
	}
}

func (c *TreeCopier) record(ctx context.Context, report *status.Report, o status.Outcome) {
	report.Track(o)
	c.reporter.Outcome(ctx, o)

	zerolog.Ctx(ctx).Debug().
		Str("outcome", o.Kind.String()).
		Str("source", o.Source).
		Str("destination", o.Destination).
		Bool("dir", o.IsDir).
		AnErr("reason", o.Err).
		Msg("copy outcome")
}
