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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner schedules per-directory work
type Runner struct {
	jobs int
}

// 🏗️ NewRunner creates a runner; jobs below 2 run everything in order on the caller's goroutine
func NewRunner(jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs}
}

// Jobs returns the number of directories processed at once.
func (r *Runner) Jobs() int {
	return r.jobs
}

// 🏃 Run calls fn for every node. It stops scheduling new nodes once ctx is done.
func (r *Runner) Run(ctx context.Context, nodes []DirectoryNode, fn func(context.Context, DirectoryNode)) error {
	if r.jobs == 1 {
		return r.runSync(ctx, nodes, fn)
	}
	return r.runAsync(ctx, nodes, fn)
}

// 🔄 runSync runs nodes in order
func (r *Runner) runSync(ctx context.Context, nodes []DirectoryNode, fn func(context.Context, DirectoryNode)) error {
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("copy cancelled: %w", err)
		}
		fn(ctx, node)
	}
	return nil
}

// ⚡ runAsync runs up to r.jobs nodes at once
func (r *Runner) runAsync(ctx context.Context, nodes []DirectoryNode, fn func(context.Context, DirectoryNode)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, node := range nodes {
		if gctx.Err() != nil {
			break
		}
		node := node
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			fn(gctx, node)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Errorf("running copy workers: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return errors.Errorf("copy cancelled: %w", err)
	}
	return nil
}
