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
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/audit/export"
)

type ExportPublicTestSuite struct {
	suite.Suite

	ctx  context.Context
	logs *bytes.Buffer
}

func (s *ExportPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logs = &bytes.Buffer{}
}

func (s *ExportPublicTestSuite) logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(s.logs, nil))
}

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// entryAt builds an entry minute minutes after base.
func entryAt(
	id string,
	minute int,
	phi bool,
) audit.Entry {
	return audit.Entry{
		ID:        id,
		Timestamp: base.Add(time.Duration(minute) * time.Minute),
		Actor:     audit.Actor{UserID: "coordinator@example.com", Role: audit.RoleAdmin},
		Request:   audit.Request{Method: "GET", Path: "/api/admin/inquiries"},
		Action:    audit.ActionRead,
		Sensitivity: audit.Sensitivity{
			TouchesSensitiveResource: phi,
			SensitiveFieldNames:      []string{},
		},
		Outcome: audit.Outcome{StatusCode: 200, Success: true},
	}
}

// newestFirst returns n entries e<n>..e1 at descending minutes.
func newestFirst(
	n int,
) []audit.Entry {
	entries := make([]audit.Entry, 0, n)
	for i := n; i > 0; i-- {
		entries = append(entries, entryAt(fmt.Sprintf("e%d", i), i*10, i%2 == 0))
	}

	return entries
}

// pager serves a slice the way audit.Store.List does and records offsets.
type pager struct {
	entries []audit.Entry
	offsets []int
	// after runs once each page has been served.
	after func(p *pager)
}

func (p *pager) fetch(
	_ context.Context,
	limit int,
	offset int,
) ([]audit.Entry, int, error) {
	p.offsets = append(p.offsets, offset)

	var page []audit.Entry
	if offset < len(p.entries) {
		page = append(page, p.entries[offset:min(offset+limit, len(p.entries))]...)
	}
	total := len(p.entries)

	if p.after != nil {
		p.after(p)
	}

	return page, total, nil
}

// recorder is a Destination backed by a buffer.
type recorder struct {
	bytes.Buffer

	openErr   error
	finishErr error
	writer    io.Writer

	finished bool
	runErr   error
}

func (r *recorder) Open(
	_ context.Context,
) (io.Writer, error) {
	if r.openErr != nil {
		return nil, r.openErr
	}
	if r.writer != nil {
		return r.writer, nil
	}

	return &r.Buffer, nil
}

func (r *recorder) Finish(
	runErr error,
) error {
	r.finished = true
	r.runErr = runErr

	return r.finishErr
}

func (r *recorder) ids() []string {
	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(r.String()), "\n") {
		if line == "" {
			continue
		}
		start := strings.Index(line, `"audit_id":"`) + len(`"audit_id":"`)
		ids = append(ids, line[start:start+strings.Index(line[start:], `"`)])
	}

	return ids
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (s *ExportPublicTestSuite) TestRun() {
	tests := []struct {
		name         string
		entries      []audit.Entry
		dst          *recorder
		opts         export.Options
		validateFunc func(p *pager, dst *recorder, result export.Result, err error)
	}{
		{
			name:    "empty store",
			entries: nil,
			dst:     &recorder{},
			validateFunc: func(p *pager, dst *recorder, result export.Result, err error) {
				s.NoError(err)
				s.Equal(export.Result{}, result)
				s.Empty(dst.String())
				s.True(dst.finished)
				s.NoError(dst.runErr)
				s.Equal([]int{0}, p.offsets)
			},
		},
		{
			name:    "pages through every entry in order",
			entries: newestFirst(5),
			dst:     &recorder{},
			opts:    export.Options{BatchSize: 2},
			validateFunc: func(p *pager, dst *recorder, result export.Result, err error) {
				s.NoError(err)
				s.Equal(export.Result{Total: 5, Scanned: 5, Exported: 5}, result)
				s.Equal([]string{"e5", "e4", "e3", "e2", "e1"}, dst.ids())
				s.Equal([]int{0, 2, 4}, p.offsets)
			},
		},
		{
			name:    "stops at the first entry older than since",
			entries: newestFirst(5),
			dst:     &recorder{},
			opts:    export.Options{BatchSize: 2, Since: base.Add(25 * time.Minute)},
			validateFunc: func(p *pager, dst *recorder, result export.Result, err error) {
				s.NoError(err)
				s.Equal([]string{"e5", "e4", "e3"}, dst.ids())
				s.Equal(4, result.Scanned)
				s.Equal(3, result.Exported)
				s.Equal([]int{0, 2}, p.offsets)
			},
		},
		{
			name:    "filter skips rejected entries",
			entries: newestFirst(5),
			dst:     &recorder{},
			opts:    export.Options{Filter: export.PHIOnly},
			validateFunc: func(_ *pager, dst *recorder, result export.Result, err error) {
				s.NoError(err)
				s.Equal([]string{"e4", "e2"}, dst.ids())
				s.Equal(3, result.Skipped)
				s.Equal(2, result.Exported)
			},
		},
		{
			name:    "open failure",
			entries: newestFirst(1),
			dst:     &recorder{openErr: errors.New("permission denied")},
			validateFunc: func(p *pager, dst *recorder, _ export.Result, err error) {
				s.ErrorContains(err, "open audit export destination: permission denied")
				s.Empty(p.offsets)
				s.False(dst.finished)
			},
		},
		{
			name:    "write failure discards the run",
			entries: newestFirst(2),
			dst:     &recorder{writer: failingWriter{}},
			validateFunc: func(_ *pager, dst *recorder, result export.Result, err error) {
				s.ErrorContains(err, "write audit entry e2: disk full")
				s.Equal(0, result.Exported)
				s.True(dst.finished)
				s.Equal(err, dst.runErr)
			},
		},
		{
			name:    "finish failure after a clean run",
			entries: newestFirst(1),
			dst:     &recorder{finishErr: errors.New("rename failed")},
			validateFunc: func(_ *pager, _ *recorder, result export.Result, err error) {
				s.ErrorContains(err, "finish audit export: rename failed")
				s.Equal(1, result.Exported)
			},
		},
		{
			name:    "finish failure after a failed run keeps the run error",
			entries: newestFirst(1),
			dst: &recorder{
				writer:    failingWriter{},
				finishErr: errors.New("remove failed"),
			},
			validateFunc: func(_ *pager, _ *recorder, _ export.Result, err error) {
				s.ErrorContains(err, "write audit entry e1")
				s.Contains(s.logs.String(), "failed to discard partial audit export")
				s.Contains(s.logs.String(), "remove failed")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			p := &pager{entries: tt.entries}

			result, err := export.Run(s.ctx, s.logger(), p.fetch, tt.dst, tt.opts)

			tt.validateFunc(p, tt.dst, result, err)
		})
	}
}

func (s *ExportPublicTestSuite) TestRunSkipsShiftedDuplicates() {
	p := &pager{entries: newestFirst(3)}
	p.after = func(p *pager) {
		// A write lands after the first page, pushing e2 onto page two.
		p.entries = append([]audit.Entry{entryAt("e9", 90, true)}, p.entries...)
		p.after = nil
	}
	dst := &recorder{}

	result, err := export.Run(s.ctx, s.logger(), p.fetch, dst, export.Options{BatchSize: 2})

	s.Require().NoError(err)
	s.Equal([]string{"e3", "e2", "e1"}, dst.ids())
	s.Equal(1, result.Duplicates)
	s.Equal(3, result.Exported)
	s.Equal(3, result.Total)
}

func (s *ExportPublicTestSuite) TestRunListError() {
	calls := 0
	fetch := func(_ context.Context, _ int, offset int) ([]audit.Entry, int, error) {
		calls++
		if offset > 0 {
			return nil, 0, errors.New("connection lost")
		}
		return newestFirst(2), 4, nil
	}
	dst := &recorder{}

	result, err := export.Run(s.ctx, s.logger(), fetch, dst, export.Options{BatchSize: 2})

	s.ErrorContains(err, "list audit entries from 2: connection lost")
	s.Equal(2, result.Exported)
	s.Equal(4, result.Total)
	s.Equal(2, calls)
	s.Error(dst.runErr)
}

func (s *ExportPublicTestSuite) TestRunInterrupted() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	dst := &recorder{}
	_, err := export.Run(
		ctx,
		s.logger(),
		func(_ context.Context, _ int, _ int) ([]audit.Entry, int, error) {
			s.Fail("fetch must not run once the context is done")
			return nil, 0, nil
		},
		dst,
		export.Options{},
	)

	s.ErrorContains(err, "audit export interrupted after 0 entries")
	s.ErrorIs(err, context.Canceled)
	s.True(dst.finished)
}

func (s *ExportPublicTestSuite) TestRunDefaultBatchSize() {
	var limits []int
	fetch := func(_ context.Context, limit int, _ int) ([]audit.Entry, int, error) {
		limits = append(limits, limit)
		return nil, 0, nil
	}

	_, err := export.Run(s.ctx, s.logger(), fetch, &recorder{}, export.Options{BatchSize: -1})

	s.NoError(err)
	s.Equal([]int{export.DefaultBatchSize}, limits)
}

func (s *ExportPublicTestSuite) TestRunProgress() {
	var seen []export.Result
	p := &pager{entries: newestFirst(3)}

	_, err := export.Run(s.ctx, s.logger(), p.fetch, &recorder{}, export.Options{
		BatchSize:  2,
		Filter:     export.PHIOnly,
		OnProgress: func(r export.Result) { seen = append(seen, r) },
	})

	s.Require().NoError(err)
	s.Equal([]export.Result{
		{Total: 3, Scanned: 2, Exported: 1, Skipped: 1},
		{Total: 3, Scanned: 3, Exported: 1, Skipped: 2},
	}, seen)
}

func TestExportPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ExportPublicTestSuite))
}
