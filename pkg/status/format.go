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
)

// 🎯 FormatOutcome formats an outcome as the single console line scripts expect.
//
//	Created  -> /dst/a/file1.txt
//	Skipped  -> Already exists: '/dst/a/file1.txt'
//	Failed   -> Failed: '/dst/a/file1.txt': permission denied
func FormatOutcome(o Outcome) string {
	switch o.Kind {
	case Created:
		return o.Destination
	case Skipped:
		return fmt.Sprintf("Already exists: '%s'", o.Destination)
	case Failed:
		return fmt.Sprintf("Failed: '%s': %v", o.Path(), o.Err)
	default:
		return o.Path()
	}
}

// 🎯 FormatDirCreated formats the notice printed before a destination directory is created
func FormatDirCreated(dir string) string {
	return "Creating " + dir
}

// 🎯 FormatCounts formats the end-of-run summary
func FormatCounts(c Counts) string {
	msg := fmt.Sprintf("%d created, %d skipped, %d failed, %d directories created",
		c.Created, c.Skipped, c.Failed, c.DirsCreated)
	if c.Excluded > 0 {
		msg += fmt.Sprintf(", %d excluded", c.Excluded)
	}
	return msg
}
