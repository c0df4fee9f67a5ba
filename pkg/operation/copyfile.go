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
	"io"
	"io/fs"
	"os"

	"github.com/walteh/xcopy/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📄 copyFileExclusive copies src to dst unless dst already exists.
// The destination is opened with O_EXCL, so a file that appears between the
// existence check and the create is still never overwritten.
func copyFileExclusive(src, dst string) status.Outcome {
	if _, err := os.Lstat(dst); err == nil {
		return status.NewSkipped(src, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return status.NewFailed(src, dst, errors.Errorf("checking destination: %w", err))
	}

	in, err := os.Open(src)
	if err != nil {
		return status.NewFailed(src, dst, errors.Errorf("opening source file: %w", err))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return status.NewFailed(src, dst, errors.Errorf("reading source file info: %w", err))
	}
	if info.IsDir() {
		return status.NewFailed(src, dst, errors.Errorf("source is a directory"))
	}
	perm := info.Mode().Perm()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if errors.Is(err, fs.ErrExist) {
		return status.NewSkipped(src, dst)
	}
	if err != nil {
		return status.NewFailed(src, dst, errors.Errorf("creating destination file: %w", err))
	}

	// dst was created by this call, so removing it on failure loses nothing
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return status.NewFailed(src, dst, errors.Errorf("copying file content: %w", err))
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return status.NewFailed(src, dst, errors.Errorf("closing destination file: %w", err))
	}

	// OpenFile applies the umask
	if err := os.Chmod(dst, perm); err != nil {
		os.Remove(dst)
		return status.NewFailed(src, dst, errors.Errorf("setting file mode: %w", err))
	}

	return status.NewCreated(src, dst)
}
