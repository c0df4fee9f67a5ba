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
	"gitlab.com/tozd/go/errors"
)

// ErrAlreadyExists is the reason attached to every Skipped outcome.
var ErrAlreadyExists = errors.Base("already exists")

// 📊 Kind is the result of handling a single file or directory
type Kind int

const (
	Unknown Kind = iota
	Created      // Copied to a destination path that did not exist
	Skipped      // Destination already existed and was left untouched
	Failed       // Any other error; the run continues
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome is the per-item result produced while copying a tree
type Outcome struct {
	Kind        Kind   // What happened
	Source      string // Absolute source path
	Destination string // Absolute destination path
	IsDir       bool   // Whether the outcome is about a directory rather than a file
	Err         error  // Reason for Skipped and Failed outcomes
}

// 🏭 NewCreated returns a Created outcome for a file
func NewCreated(src, dst string) Outcome {
	return Outcome{Kind: Created, Source: src, Destination: dst}
}

// 🏭 NewSkipped returns a Skipped outcome for a file whose destination exists
func NewSkipped(src, dst string) Outcome {
	return Outcome{Kind: Skipped, Source: src, Destination: dst, Err: ErrAlreadyExists}
}

// 🏭 NewFailed returns a Failed outcome for a file
func NewFailed(src, dst string, err error) Outcome {
	return Outcome{Kind: Failed, Source: src, Destination: dst, Err: err}
}

// 🏭 NewDirFailed returns a Failed outcome for a directory
func NewDirFailed(src, dst string, err error) Outcome {
	return Outcome{Kind: Failed, Source: src, Destination: dst, IsDir: true, Err: err}
}

// Path returns the path most useful to a user reading the outcome.
func (o Outcome) Path() string {
	if o.Destination != "" {
		return o.Destination
	}
	return o.Source
}
