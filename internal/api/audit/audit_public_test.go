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

package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	auditapi "github.com/retr0h/caregate/internal/api/audit"
	"github.com/retr0h/caregate/internal/api/audit/gen"
	"github.com/retr0h/caregate/internal/api/common"
	auditstore "github.com/retr0h/caregate/internal/audit"
)

type AuditPublicTestSuite struct {
	suite.Suite

	ctx     context.Context
	store   *fakeStore
	handler *auditapi.Audit
}

func (s *AuditPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = &fakeStore{}
	s.handler = auditapi.New(slog.New(slog.NewTextHandler(os.Stdout, nil)), s.store)
}

func newEntry(
	n int,
) auditstore.Entry {
	return auditstore.Entry{
		ID:        fmt.Sprintf("0190b3c4-0000-7000-8000-%012d", n),
		Timestamp: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC).Add(-time.Duration(n) * time.Minute),
		Actor:     auditstore.Actor{UserID: "admin", Role: auditstore.RoleAdmin},
		Request:   auditstore.Request{Method: http.MethodGet, Path: "/api/admin/inquiries"},
		Action:    auditstore.ActionRead,
		Sensitivity: auditstore.Sensitivity{
			TouchesSensitiveResource: n%2 == 0,
		},
		Outcome: auditstore.Outcome{StatusCode: http.StatusOK, Success: true},
	}
}

func (s *AuditPublicTestSuite) TestGetAuditLogs() {
	one, zero := 1, 0

	tests := []struct {
		name         string
		params       gen.GetAuditLogsParams
		setup        func()
		validateFunc func(resp gen.GetAuditLogsResponseObject)
	}{
		{
			name:   "uses the default page",
			params: gen.GetAuditLogsParams{},
			setup: func() {
				s.store.listEntries = []auditstore.Entry{newEntry(1), newEntry(2)}
				s.store.listTotal = 2
			},
			validateFunc: func(resp gen.GetAuditLogsResponseObject) {
				r, ok := resp.(gen.GetAuditLogs200JSONResponse)
				s.Require().True(ok)
				s.Equal(2, r.TotalItems)
				s.Len(r.Items, 2)
				s.Equal([][2]int{{common.DefaultPageLimit, 0}}, s.store.calls)
			},
		},
		{
			name:   "passes limit and offset",
			params: gen.GetAuditLogsParams{Limit: &one, Offset: &one},
			setup: func() {
				s.store.listEntries = []auditstore.Entry{newEntry(1), newEntry(2)}
				s.store.listTotal = 2
			},
			validateFunc: func(resp gen.GetAuditLogsResponseObject) {
				r, ok := resp.(gen.GetAuditLogs200JSONResponse)
				s.Require().True(ok)
				s.Require().Len(r.Items, 1)
				s.Equal(newEntry(2).ID, r.Items[0].AuditId)
				s.Equal([][2]int{{1, 1}}, s.store.calls)
			},
		},
		{
			name:   "rejects a zero limit",
			params: gen.GetAuditLogsParams{Limit: &zero},
			setup:  func() {},
			validateFunc: func(resp gen.GetAuditLogsResponseObject) {
				r, ok := resp.(gen.GetAuditLogs400JSONResponse)
				s.Require().True(ok)
				s.Contains(*r.Error, "Limit")
				s.Empty(s.store.calls)
			},
		},
		{
			name:   "store failure",
			params: gen.GetAuditLogsParams{},
			setup:  func() { s.store.listErr = errors.New("kv unavailable") },
			validateFunc: func(resp gen.GetAuditLogsResponseObject) {
				r, ok := resp.(gen.GetAuditLogs500JSONResponse)
				s.Require().True(ok)
				s.Equal("failed to list audit entries", *r.Error)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			resp, err := s.handler.GetAuditLogs(s.ctx, gen.GetAuditLogsRequestObject{Params: tt.params})

			s.NoError(err)
			tt.validateFunc(resp)
		})
	}
}

func (s *AuditPublicTestSuite) TestGetAuditLogByID() {
	entry := newEntry(7)
	entry.SessionID = "sess-7"
	entry.Metadata = map[string]string{"operation": "reply"}

	tests := []struct {
		name         string
		getEntry     *auditstore.Entry
		getErr       error
		validateFunc func(resp gen.GetAuditLogByIDResponseObject)
	}{
		{
			name:     "found",
			getEntry: &entry,
			validateFunc: func(resp gen.GetAuditLogByIDResponseObject) {
				r, ok := resp.(gen.GetAuditLogByID200JSONResponse)
				s.Require().True(ok)
				s.Equal(entry.ID, r.Entry.AuditId)
				s.Equal("sess-7", *r.Entry.SessionId)
				s.Equal("admin", *r.Entry.Actor.UserId)
				s.Nil(r.Entry.Request.ResourceId)
				s.Equal([]string{}, r.Entry.Sensitivity.SensitiveFieldNames)
				s.Equal(map[string]string{"operation": "reply"}, *r.Entry.Metadata)
			},
		},
		{
			name:   "not found",
			getErr: fmt.Errorf("get audit entry x: %w", auditstore.ErrNotFound),
			validateFunc: func(resp gen.GetAuditLogByIDResponseObject) {
				r, ok := resp.(gen.GetAuditLogByID404JSONResponse)
				s.Require().True(ok)
				s.Equal("audit entry not found", *r.Error)
			},
		},
		{
			name:   "store failure",
			getErr: errors.New("boom"),
			validateFunc: func(resp gen.GetAuditLogByIDResponseObject) {
				_, ok := resp.(gen.GetAuditLogByID500JSONResponse)
				s.True(ok)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.store.getEntry = tt.getEntry
			s.store.getErr = tt.getErr

			resp, err := s.handler.GetAuditLogByID(
				s.ctx,
				gen.GetAuditLogByIDRequestObject{Id: entry.ID},
			)

			s.NoError(err)
			tt.validateFunc(resp)
		})
	}
}

func (s *AuditPublicTestSuite) readExport(
	resp gen.GetAuditExportResponseObject,
) []string {
	r, ok := resp.(gen.GetAuditExport200ApplicationxNdjsonResponse)
	s.Require().True(ok)
	s.Equal(`attachment; filename="audit.jsonl"`, r.Headers.ContentDisposition)

	data, err := io.ReadAll(r.Body)
	s.Require().NoError(err)

	body := strings.TrimSpace(string(data))
	if body == "" {
		return nil
	}

	return strings.Split(body, "\n")
}

func (s *AuditPublicTestSuite) TestGetAuditExport() {
	entries := make([]auditstore.Entry, 0, 150)
	for i := range 150 {
		entries = append(entries, newEntry(i))
	}

	phiOnly := true
	since := entries[9].Timestamp

	tests := []struct {
		name      string
		params    gen.GetAuditExportParams
		listErr   error
		wantLines int
		wantCalls int
	}{
		{name: "every entry across pages", wantLines: 150, wantCalls: 2},
		{name: "phi only", params: gen.GetAuditExportParams{PhiOnly: &phiOnly}, wantLines: 75, wantCalls: 2},
		{name: "since stops early", params: gen.GetAuditExportParams{Since: &since}, wantLines: 10, wantCalls: 1},
		{name: "store failure truncates", listErr: errors.New("kv unavailable"), wantLines: 0, wantCalls: 1},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.store.listEntries = entries
			s.store.listTotal = len(entries)
			s.store.listErr = tt.listErr

			resp, err := s.handler.GetAuditExport(
				s.ctx,
				gen.GetAuditExportRequestObject{Params: tt.params},
			)
			s.Require().NoError(err)

			lines := s.readExport(resp)
			s.Len(lines, tt.wantLines)
			s.Len(s.store.calls, tt.wantCalls)

			if tt.wantLines > 0 {
				var first auditstore.Entry
				s.Require().NoError(json.Unmarshal([]byte(lines[0]), &first))
				s.Equal(entries[0].ID, first.ID)
			}
		})
	}
}

func (s *AuditPublicTestSuite) TestRoutesBindQuery() {
	entries := []auditstore.Entry{newEntry(1), newEntry(2), newEntry(3)}
	s.store.listEntries = entries
	s.store.listTotal = len(entries)

	e := echo.New()
	gen.RegisterHandlers(e, gen.NewStrictHandler(s.handler, nil))

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "export since",
			path:     "/api/admin/audit/export?since=" + entries[1].Timestamp.Format(time.RFC3339),
			wantCode: http.StatusOK,
			wantBody: entries[1].ID,
		},
		{
			name:     "malformed since",
			path:     "/api/admin/audit/export?since=yesterday",
			wantCode: http.StatusBadRequest,
			wantBody: "Invalid format for parameter since",
		},
		{
			name:     "entry by id",
			path:     "/api/admin/audit/" + entries[0].ID,
			wantCode: http.StatusOK,
			wantBody: `"audit_id"`,
		},
	}

	s.store.getEntry = &entries[0]

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			s.Equal(tt.wantCode, rec.Code)
			s.Contains(rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuditPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuditPublicTestSuite))
}
