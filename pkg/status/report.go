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
	"sync"
)

// 📈 Report aggregates the outcomes of one copy run.
// It is safe for concurrent use.
type Report struct {
	mu sync.RWMutex

	outcomes    []Outcome
	created     int
	skipped     int
	failed      int
	dirsCreated int
	excluded    int
}

// 🏭 NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// Track records an outcome.
func (r *Report) Track(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outcomes = append(r.outcomes, o)
	switch o.Kind {
	case Created:
		r.created++
	case Skipped:
		r.skipped++
	case Failed:
		r.failed++
	}
}

// TrackDirCreated counts a destination directory that did not exist before the run.
func (r *Report) TrackDirCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirsCreated++
}

// TrackExcluded counts a file or directory left out by an exclude pattern.
func (r *Report) TrackExcluded() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.excluded++
}

// Outcomes returns a copy of every tracked outcome in the order they were tracked.
func (r *Report) Outcomes() []Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Outcome, len(r.outcomes))
	copy(out, r.outcomes)
	return out
}

// Lookup returns the outcome tracked for a destination path.
func (r *Report) Lookup(dst string) (Outcome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.outcomes {
		if o.Destination == dst {
			return o, true
		}
	}
	return Outcome{}, false
}

// 📊 Counts is a point-in-time summary of a Report
type Counts struct {
	Created     int
	Skipped     int
	Failed      int
	DirsCreated int
	Excluded    int
}

// Counts returns the current totals.
func (r *Report) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Counts{
		Created:     r.created,
		Skipped:     r.skipped,
		Failed:      r.failed,
		DirsCreated: r.dirsCreated,
		Excluded:    r.excluded,
	}
}

// HasFailures reports whether any file or directory failed.
func (r *Report) HasFailures() bool {
	return r.Counts().Failed > 0
}
