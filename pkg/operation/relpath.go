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
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// caseInsensitivePaths matches the default file systems of these platforms.
var caseInsensitivePaths = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// 📐 RelativePath returns dir relative to root.
// It is empty when dir is root and fails with ErrInvalidRelation when dir is not below root.
func RelativePath(root, dir string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Errorf("resolving root %q: %w", root, err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Errorf("resolving directory %q: %w", dir, err)
	}

	if samePath(absRoot, absDir) {
		return "", nil
	}

	prefix := absRoot
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	if len(absDir) <= len(prefix) || !samePath(absDir[:len(prefix)], prefix) {
		return "", errors.Errorf("%w: %s is not below %s", ErrInvalidRelation, absDir, absRoot)
	}

	return absDir[len(prefix):], nil
}

func samePath(a, b string) bool {
	if caseInsensitivePaths {
		return strings.EqualFold(a, b)
	}
	return a == b
}
