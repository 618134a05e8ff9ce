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
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/audit"
)

type RecorderPublicTestSuite struct {
	suite.Suite

	now      time.Time
	store    *memStore
	logs     *bytes.Buffer
	recorder *audit.Recorder
	emitted  []bool
}

func (s *RecorderPublicTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	s.store = &memStore{}
	s.logs = &bytes.Buffer{}
	s.emitted = nil
	s.recorder = s.newRecorder()
}

func (s *RecorderPublicTestSuite) newRecorder() *audit.Recorder {
	id := 0

	return audit.NewRecorder(
		slog.New(slog.NewTextHandler(s.logs, nil)),
		s.store,
		audit.WithClock(func() time.Time { return s.now }),
		audit.WithIDGenerator(func() string {
			id++
			return fmt.Sprintf("entry-%d", id)
		}),
		audit.WithEmitHook(func(_ audit.Entry, persisted bool) {
			s.emitted = append(s.emitted, persisted)
		}),
	)
}

func (s *RecorderPublicTestSuite) TestBeginAndFinalize() {
	p := s.recorder.Begin(audit.RequestInfo{
		Method:        "POST",
		Path:          "/api/admin/inquiries/42/reply",
		Query:         url.Values{"token": {"secret"}, "draft": {"1"}},
		IPAddress:     "203.0.113.7",
		UserAgent:     "Mozilla/5.0",
		UserID:        "coordinator@example.com",
		SessionID:     "sess-1",
		Authenticated: true,
		Body: map[string]any{
			"patient": map[string]any{"dateOfBirth": "1950-01-01", "notes": "x"},
		},
	})

	s.now = s.now.Add(250 * time.Millisecond)
	s.True(p.Finalize(201, ""))
	s.recorder.Wait()

	entries := s.store.Entries()
	s.Require().Len(entries, 1)

	e := entries[0]
	s.Equal("entry-1", e.ID)
	s.Equal(s.now, e.Timestamp)
	s.Equal(audit.Actor{UserID: "coordinator@example.com", Role: audit.RoleAdmin}, e.Actor)
	s.Equal("sess-1", e.SessionID)
	s.Equal(audit.Request{
		Method:       "POST",
		Path:         "/api/admin/inquiries/42/reply",
		ResourceType: "inquiries",
		ResourceID:   "42",
	}, e.Request)
	s.Equal(audit.Network{IPAddress: "203.0.113.7", UserAgent: "Mozilla/5.0"}, e.Network)
	s.Equal(audit.ActionCreate, e.Action)
	s.True(e.Sensitivity.TouchesSensitiveResource)
	s.Equal([]string{"patient.dateOfBirth"}, e.Sensitivity.SensitiveFieldNames)
	s.Equal(audit.Outcome{StatusCode: 201, Success: true}, e.Outcome)
	s.Equal(int64(250), e.LatencyMs)
	s.Equal(map[string]string{"token": audit.RedactedValue, "draft": "1"}, e.Metadata)
}

func (s *RecorderPublicTestSuite) TestActorIsPublicWhenAnonymous() {
	p := s.recorder.Begin(audit.RequestInfo{Method: "POST", Path: "/api/contact"})
	p.Finalize(200, "")
	s.recorder.Wait()

	entries := s.store.Entries()
	s.Require().Len(entries, 1)
	s.Equal(audit.RolePublic, entries[0].Actor.Role)
	s.Empty(entries[0].Actor.UserID)
	s.Equal([]string{}, entries[0].Sensitivity.SensitiveFieldNames)
}

func (s *RecorderPublicTestSuite) TestFinalizeEmitsOnce() {
	p := s.recorder.Begin(audit.RequestInfo{Method: "DELETE", Path: "/api/admin/jobs/1"})

	var wg sync.WaitGroup
	results := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(status int) {
			defer wg.Done()
			results <- p.Finalize(status, "")
		}(200 + i)
	}
	wg.Wait()
	close(results)

	wins := 0
	for r := range results {
		if r {
			wins++
		}
	}

	s.recorder.Wait()
	s.Equal(1, wins)
	s.True(p.Finalized())
	s.Len(s.store.Entries(), 1)
	s.Len(s.emitted, 1)
}

func (s *RecorderPublicTestSuite) TestPersistenceFilter() {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		wantPersist bool
	}{
		{name: "non phi read success", method: "GET", path: "/api/jobs", status: 200, wantPersist: false},
		{name: "phi read success", method: "GET", path: "/api/admin/inquiries", status: 200, wantPersist: true},
		{name: "non phi read failure", method: "GET", path: "/api/jobs/9", status: 404, wantPersist: true},
		{name: "non phi create", method: "POST", path: "/api/admin/articles", status: 201, wantPersist: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			p := s.recorder.Begin(audit.RequestInfo{Method: tt.method, Path: tt.path})
			p.Finalize(tt.status, "")
			s.recorder.Wait()

			s.Equal([]bool{tt.wantPersist}, s.emitted)
			if tt.wantPersist {
				s.Len(s.store.Entries(), 1)
			} else {
				s.Empty(s.store.Entries())
			}
		})
	}
}

func (s *RecorderPublicTestSuite) TestFailureOutcome() {
	p := s.recorder.Begin(audit.RequestInfo{Method: "GET", Path: "/api/jobs"})
	p.Finalize(500, "boom")
	s.recorder.Wait()

	entries := s.store.Entries()
	s.Require().Len(entries, 1)
	s.Equal(audit.Outcome{StatusCode: 500, Success: false, ErrorMessage: "boom"}, entries[0].Outcome)
}

func (s *RecorderPublicTestSuite) TestLogPHIAccess() {
	s.recorder.LogPHIAccess(audit.PHIAccess{
		UserID:       "coordinator@example.com",
		Action:       audit.ActionRead,
		ResourceType: "inquiries",
		ResourceID:   "42",
		Fields:       []string{"email", "phone"},
		IPAddress:    "203.0.113.7",
	})
	s.recorder.Wait()

	entries := s.store.Entries()
	s.Require().Len(entries, 1)

	e := entries[0]
	s.Equal(audit.ActionRead, e.Action)
	s.Equal(audit.RoleAdmin, e.Actor.Role)
	s.True(e.Sensitivity.TouchesSensitiveResource)
	s.Equal([]string{"email", "phone"}, e.Sensitivity.SensitiveFieldNames)
	s.Equal("42", e.Request.ResourceID)
	s.Equal([]bool{true}, s.emitted)
}

func (s *RecorderPublicTestSuite) TestStoreErrorIsLogged() {
	s.store.writeErr = fmt.Errorf("disk full")

	p := s.recorder.Begin(audit.RequestInfo{Method: "POST", Path: "/api/inquiries"})
	s.True(p.Finalize(201, ""))
	s.recorder.Wait()

	s.Contains(s.logs.String(), "failed to write audit entry")
	s.Contains(s.logs.String(), "disk full")
}

func (s *RecorderPublicTestSuite) TestWritesAreBounded() {
	store := &slowStore{delay: 20 * time.Millisecond}
	recorder := audit.NewRecorder(
		slog.New(slog.NewTextHandler(s.logs, nil)),
		store,
		audit.WithMaxInFlight(2),
	)

	for i := 0; i < 6; i++ {
		p := recorder.Begin(audit.RequestInfo{Method: "POST", Path: "/api/inquiries"})
		p.Finalize(201, "")
	}
	recorder.Wait()

	s.Len(store.Entries(), 6)
	s.LessOrEqual(store.Peak(), 2)
}

func (s *RecorderPublicTestSuite) TestWriteTimeout() {
	store := &slowStore{delay: time.Minute}
	recorder := audit.NewRecorder(
		slog.New(slog.NewTextHandler(s.logs, nil)),
		store,
		audit.WithWriteTimeout(10*time.Millisecond),
	)

	p := recorder.Begin(audit.RequestInfo{Method: "POST", Path: "/api/inquiries"})
	p.Finalize(201, "")

	done := make(chan struct{})
	go func() {
		recorder.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.Fail("write was not cut off by the timeout")
	}

	s.Empty(store.Entries())
	s.Contains(s.logs.String(), "context deadline exceeded")
}

func TestRecorderPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderPublicTestSuite))
}
