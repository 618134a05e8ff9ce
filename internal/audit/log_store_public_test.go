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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/audit"
)

type LogStorePublicTestSuite struct {
	suite.Suite

	ctx  context.Context
	logs *bytes.Buffer
}

func (s *LogStorePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logs = &bytes.Buffer{}
}

func (s *LogStorePublicTestSuite) newStore(
	capacity int,
) *audit.LogStore {
	return audit.NewLogStore(slog.New(slog.NewJSONHandler(s.logs, nil)), capacity)
}

func (s *LogStorePublicTestSuite) write(
	store *audit.LogStore,
	n int,
) {
	for i := 1; i <= n; i++ {
		err := store.Write(s.ctx, audit.Entry{
			ID:     fmt.Sprintf("e%d", i),
			Action: audit.ActionCreate,
			Request: audit.Request{
				Method: "POST",
				Path:   "/api/inquiries",
			},
			Outcome: audit.Outcome{StatusCode: 201, Success: true},
		})
		s.Require().NoError(err)
	}
}

func (s *LogStorePublicTestSuite) TestWriteLogsEntry() {
	store := s.newStore(10)
	s.write(store, 1)

	var line map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &line))
	s.Equal("audit", line["msg"])
	s.Equal("e1", line["audit_id"])
	s.Equal("CREATE", line["action"])
	s.Contains(line, "entry")
}

func (s *LogStorePublicTestSuite) TestWriteLogsEveryField() {
	store := s.newStore(10)
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	err := store.Write(s.ctx, audit.Entry{
		ID:        "e1",
		Timestamp: ts,
		Actor:     audit.Actor{UserID: "coordinator-1", Role: audit.RoleAdmin},
		SessionID: "sess-9",
		Request: audit.Request{
			Method:       "GET",
			Path:         "/api/clients/c-7",
			ResourceType: "clients",
			ResourceID:   "c-7",
		},
		Network: audit.Network{IPAddress: "203.0.113.9", UserAgent: "curl/8"},
		Action:  audit.ActionRead,
		Sensitivity: audit.Sensitivity{
			TouchesSensitiveResource: true,
			SensitiveFieldNames:      []string{"diagnosis"},
		},
		Outcome:   audit.Outcome{StatusCode: 500, Success: false, ErrorMessage: "boom"},
		LatencyMs: 42,
		Metadata:  map[string]string{"page": "2"},
	})
	s.Require().NoError(err)

	var line struct {
		Entry audit.Entry `json:"entry"`
	}
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &line))

	got := line.Entry
	s.Equal("e1", got.ID)
	s.True(ts.Equal(got.Timestamp))
	s.Equal("coordinator-1", got.Actor.UserID)
	s.Equal(audit.RoleAdmin, got.Actor.Role)
	s.Equal("sess-9", got.SessionID)
	s.Equal("GET", got.Request.Method)
	s.Equal("/api/clients/c-7", got.Request.Path)
	s.Equal("clients", got.Request.ResourceType)
	s.Equal("c-7", got.Request.ResourceID)
	s.Equal("203.0.113.9", got.Network.IPAddress)
	s.Equal("curl/8", got.Network.UserAgent)
	s.Equal(audit.ActionRead, got.Action)
	s.True(got.Sensitivity.TouchesSensitiveResource)
	s.Equal([]string{"diagnosis"}, got.Sensitivity.SensitiveFieldNames)
	s.Equal(500, got.Outcome.StatusCode)
	s.False(got.Outcome.Success)
	s.Equal("boom", got.Outcome.ErrorMessage)
	s.Equal(int64(42), got.LatencyMs)
	s.Equal(map[string]string{"page": "2"}, got.Metadata)
}

func (s *LogStorePublicTestSuite) TestList() {
	tests := []struct {
		name      string
		capacity  int
		written   int
		limit     int
		offset    int
		wantIDs   []string
		wantTotal int
	}{
		{
			name:      "newest first",
			capacity:  10,
			written:   3,
			limit:     10,
			wantIDs:   []string{"e3", "e2", "e1"},
			wantTotal: 3,
		},
		{
			name:      "paginates",
			capacity:  10,
			written:   5,
			limit:     2,
			offset:    1,
			wantIDs:   []string{"e4", "e3"},
			wantTotal: 5,
		},
		{
			name:      "ring drops oldest",
			capacity:  3,
			written:   5,
			limit:     10,
			wantIDs:   []string{"e5", "e4", "e3"},
			wantTotal: 3,
		},
		{
			name:      "offset past end",
			capacity:  3,
			written:   2,
			limit:     10,
			offset:    5,
			wantIDs:   []string{},
			wantTotal: 2,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			store := s.newStore(tt.capacity)
			s.write(store, tt.written)

			entries, total, err := store.List(s.ctx, tt.limit, tt.offset)
			s.NoError(err)
			s.Equal(tt.wantTotal, total)

			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.ID)
			}
			s.Equal(tt.wantIDs, ids)
		})
	}
}

func (s *LogStorePublicTestSuite) TestGet() {
	store := s.newStore(2)
	s.write(store, 3)

	e, err := store.Get(s.ctx, "e3")
	s.NoError(err)
	s.Equal("e3", e.ID)

	_, err = store.Get(s.ctx, "e1")
	s.True(errors.Is(err, audit.ErrNotFound), "evicted entries are gone")
}

func (s *LogStorePublicTestSuite) TestListAll() {
	store := s.newStore(5)
	s.write(store, 4)

	entries, err := store.ListAll(s.ctx)
	s.NoError(err)
	s.Len(entries, 4)
	s.Equal("e4", entries[0].ID)
}

func TestLogStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(LogStorePublicTestSuite))
}
