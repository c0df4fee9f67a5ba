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
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeNodes(n int) []DirectoryNode {
	nodes := make([]DirectoryNode, n)
	for i := range nodes {
		nodes[i] = DirectoryNode{Path: fmt.Sprintf("/src/%03d", i)}
	}
	return nodes
}

func TestNewRunnerJobs(t *testing.T) {
	assert.Equal(t, 1, NewRunner(0).Jobs())
	assert.Equal(t, 1, NewRunner(-3).Jobs())
	assert.Equal(t, 1, NewRunner(1).Jobs())
	assert.Equal(t, 8, NewRunner(8).Jobs())
}

func TestRunnerSyncKeepsOrder(t *testing.T) {
	nodes := makeNodes(20)

	var got []string
	err := NewRunner(1).Run(context.Background(), nodes, func(_ context.Context, n DirectoryNode) {
		got = append(got, n.Path)
	})
	require.NoError(t, err)

	want := make([]string, len(nodes))
	for i, n := range nodes {
		want[i] = n.Path
	}
	assert.Equal(t, want, got)
}

func TestRunnerAsyncVisitsEveryNode(t *testing.T) {
	nodes := makeNodes(100)

	var (
		mu      sync.Mutex
		got     []string
		running atomic.Int32
		peak    atomic.Int32
	)
	err := NewRunner(4).Run(context.Background(), nodes, func(_ context.Context, n DirectoryNode) {
		cur := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		mu.Lock()
		got = append(got, n.Path)
		mu.Unlock()
	})
	require.NoError(t, err)

	sort.Strings(got)
	assert.Len(t, got, len(nodes))
	assert.Equal(t, nodes[0].Path, got[0])
	assert.Equal(t, nodes[len(nodes)-1].Path, got[len(got)-1])
	assert.LessOrEqual(t, peak.Load(), int32(4), "no more than jobs nodes should run at once")
}

func TestRunnerStopsWhenCancelled(t *testing.T) {
	for _, jobs := range []int{1, 3} {
		t.Run(fmt.Sprintf("jobs_%d", jobs), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var calls atomic.Int32
			err := NewRunner(jobs).Run(ctx, makeNodes(50), func(_ context.Context, n DirectoryNode) {
				if calls.Add(1) == 1 {
					cancel()
				}
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
			assert.Less(t, calls.Load(), int32(50), "cancellation should stop scheduling")
		})
	}
}
