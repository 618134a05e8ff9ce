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

package export_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/avfs/avfs"
	"github.com/avfs/avfs/vfs/memfs"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/audit/export"
)

type FileDestinationPublicTestSuite struct {
	suite.Suite

	ctx context.Context
	fs  avfs.VFS
}

func (s *FileDestinationPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fs = memfs.New()
}

func (s *FileDestinationPublicTestSuite) exists(
	path string,
) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

func (s *FileDestinationPublicTestSuite) TestFinish() {
	const path = "/var/lib/caregate/export/audit.jsonl"

	tests := []struct {
		name         string
		runErr       error
		validateFunc func(err error)
	}{
		{
			name: "successful run is renamed into place",
			validateFunc: func(err error) {
				s.Require().NoError(err)
				data, readErr := s.fs.ReadFile(path)
				s.Require().NoError(readErr)
				s.Equal("{\"audit_id\":\"e1\"}\n", string(data))
				s.False(s.exists(path + ".partial"))
			},
		},
		{
			name:   "failed run leaves nothing behind",
			runErr: errors.New("connection lost"),
			validateFunc: func(err error) {
				s.NoError(err)
				s.False(s.exists(path))
				s.False(s.exists(path + ".partial"))
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			dst := export.NewFileDestination(s.fs, path)

			w, err := dst.Open(s.ctx)
			s.Require().NoError(err)
			_, err = w.Write([]byte("{\"audit_id\":\"e1\"}\n"))
			s.Require().NoError(err)

			s.True(s.exists(path + ".partial"))
			s.False(s.exists(path))

			tt.validateFunc(dst.Finish(tt.runErr))
		})
	}
}

func (s *FileDestinationPublicTestSuite) TestOpenErrors() {
	s.Require().NoError(s.fs.WriteFile("/export", []byte("not a dir"), 0o600))

	_, err := export.NewFileDestination(s.fs, "/export/audit.jsonl").Open(s.ctx)
	s.ErrorContains(err, "create export dir")

	err = export.NewFileDestination(s.fs, "/never/opened.jsonl").Finish(nil)
	s.ErrorContains(err, "never opened")
}

func (s *FileDestinationPublicTestSuite) TestRunToFile() {
	const path = "/export/audit.jsonl"
	p := &pager{entries: newestFirst(4)}

	result, err := export.Run(
		s.ctx,
		slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		p.fetch,
		export.NewFileDestination(s.fs, path),
		export.Options{BatchSize: 3},
	)

	s.Require().NoError(err)
	s.Equal(4, result.Exported)

	data, err := s.fs.ReadFile(path)
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	s.Len(lines, 4)
	s.Contains(lines[0], `"audit_id":"e4"`)
}

func (s *FileDestinationPublicTestSuite) TestStreamDestination() {
	var buf bytes.Buffer
	dst := export.NewStreamDestination(&buf)

	w, err := dst.Open(s.ctx)
	s.Require().NoError(err)
	s.Same(&buf, w)
	s.NoError(dst.Finish(errors.New("ignored")))
}

func TestFileDestinationPublicTestSuite(t *testing.T) {
	suite.Run(t, new(FileDestinationPublicTestSuite))
}
