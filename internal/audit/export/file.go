// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/avfs/avfs"
)

// partialSuffix marks a file export that has not finished yet.
const partialSuffix = ".partial"

// FileDestination writes to Path through a sibling partial file that is
// renamed into place only when the run succeeds, so a reader never sees a
// truncated export under the final name.
type FileDestination struct {
	Path string

	fs   avfs.VFS
	file avfs.File
	buf  *bufio.Writer
}

// NewFileDestination returns a FileDestination for path on fs.
func NewFileDestination(
	fs avfs.VFS,
	path string,
) *FileDestination {
	return &FileDestination{
		Path: path,
		fs:   fs,
	}
}

// Open creates the directory and the partial file.
func (d *FileDestination) Open(
	_ context.Context,
) (io.Writer, error) {
	if err := d.fs.MkdirAll(filepath.Dir(d.Path), 0o750); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	f, err := d.fs.Create(d.partialPath())
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", d.partialPath(), err)
	}

	d.file = f
	d.buf = bufio.NewWriter(f)

	return d.buf, nil
}

// Finish renames the partial file to Path, or removes it when runErr is set.
func (d *FileDestination) Finish(
	runErr error,
) error {
	if d.file == nil {
		return errors.New("file destination was never opened")
	}

	if runErr != nil {
		return errors.Join(d.file.Close(), d.fs.Remove(d.partialPath()))
	}

	if err := d.buf.Flush(); err != nil {
		return errors.Join(
			fmt.Errorf("flush %s: %w", d.partialPath(), err),
			d.file.Close(),
			d.fs.Remove(d.partialPath()),
		)
	}

	if err := d.file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", d.partialPath(), err)
	}

	return d.fs.Rename(d.partialPath(), d.Path)
}

func (d *FileDestination) partialPath() string {
	return d.Path + partialSuffix
}

// StreamDestination writes to a caller-owned writer such as stdout or an
// HTTP response. Output already written cannot be taken back on failure.
type StreamDestination struct {
	w io.Writer
}

// NewStreamDestination returns a StreamDestination over w.
func NewStreamDestination(
	w io.Writer,
) *StreamDestination {
	return &StreamDestination{w: w}
}

// Open returns the wrapped writer.
func (d *StreamDestination) Open(
	_ context.Context,
) (io.Writer, error) {
	return d.w, nil
}

// Finish leaves the writer open.
func (d *StreamDestination) Finish(
	_ error,
) error {
	return nil
}
