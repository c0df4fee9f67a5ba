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

package status

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestOutcomeConstructors(t *testing.T) {
	skipped := NewSkipped("/src/a.txt", "/dst/a.txt")
	assert.Equal(t, Skipped, skipped.Kind)
	assert.True(t, errors.Is(skipped.Err, ErrAlreadyExists), "skipped outcome should carry ErrAlreadyExists")

	cause := errors.New("disk full")
	failed := NewFailed("/src/a.txt", "/dst/a.txt", cause)
	assert.Equal(t, Failed, failed.Kind)
	assert.False(t, failed.IsDir)
	assert.Same(t, cause, failed.Err)

	dir := NewDirFailed("/src/a", "", cause)
	assert.True(t, dir.IsDir)
	assert.Equal(t, "/src/a", dir.Path(), "path should fall back to source when destination is unknown")
}

func TestReport(t *testing.T) {
	report := NewReport()
	report.Track(NewCreated("/src/a.txt", "/dst/a.txt"))
	report.Track(NewSkipped("/src/b.txt", "/dst/b.txt"))
	report.Track(NewFailed("/src/c.txt", "/dst/c.txt", errors.New("boom")))
	report.Track(NewCreated("/src/d.txt", "/dst/d.txt"))
	report.TrackDirCreated()
	report.TrackExcluded()

	assert.Equal(t, Counts{Created: 2, Skipped: 1, Failed: 1, DirsCreated: 1, Excluded: 1}, report.Counts())
	assert.True(t, report.HasFailures())

	outcomes := report.Outcomes()
	require.Len(t, outcomes, 4)
	assert.Equal(t, "/dst/a.txt", outcomes[0].Destination, "outcomes should keep tracking order")
	assert.Equal(t, "/dst/d.txt", outcomes[3].Destination, "outcomes should keep tracking order")

	got, ok := report.Lookup("/dst/b.txt")
	require.True(t, ok)
	assert.Equal(t, Skipped, got.Kind)

	_, ok = report.Lookup("/dst/missing.txt")
	assert.False(t, ok)
}

func TestReportConcurrentTrack(t *testing.T) {
	report := NewReport()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report.Track(NewCreated(fmt.Sprintf("/src/%d", i), fmt.Sprintf("/dst/%d", i)))
			report.TrackDirCreated()
		}(i)
	}
	wg.Wait()

	counts := report.Counts()
	assert.Equal(t, 50, counts.Created)
	assert.Equal(t, 50, counts.DirsCreated)
	assert.Len(t, report.Outcomes(), 50)
	assert.False(t, report.HasFailures())
}

func TestFormatOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "created",
			outcome: NewCreated("/src/a/file1.txt", "/dst/a/file1.txt"),
			want:    "/dst/a/file1.txt",
		},
		{
			name:    "skipped",
			outcome: NewSkipped("/src/a/file1.txt", "/dst/a/file1.txt"),
			want:    "Already exists: '/dst/a/file1.txt'",
		},
		{
			name:    "failed_file",
			outcome: NewFailed("/src/a/file1.txt", "/dst/a/file1.txt", errors.New("permission denied")),
			want:    "Failed: '/dst/a/file1.txt': permission denied",
		},
		{
			name:    "failed_dir_without_destination",
			outcome: NewDirFailed("/src/locked", "", errors.New("permission denied")),
			want:    "Failed: '/src/locked': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOutcome(tt.outcome))
		})
	}
}

func TestFormatCounts(t *testing.T) {
	assert.Equal(t, "2 created, 1 skipped, 0 failed, 3 directories created",
		FormatCounts(Counts{Created: 2, Skipped: 1, DirsCreated: 3}))
	assert.Equal(t, "0 created, 0 skipped, 0 failed, 0 directories created, 4 excluded",
		FormatCounts(Counts{Excluded: 4}))
	assert.Equal(t, "Creating /dst/a/b", FormatDirCreated("/dst/a/b"))
}
