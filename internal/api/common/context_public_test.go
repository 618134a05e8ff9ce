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
package common_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/api/common"
)

type ContextPublicTestSuite struct {
	suite.Suite

	e *echo.Echo
}

func (s *ContextPublicTestSuite) SetupTest() {
	s.e = echo.New()
}

func (s *ContextPublicTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	rec := httptest.NewRecorder()

	return s.e.NewContext(req, rec), rec
}

func (s *ContextPublicTestSuite) TestSession() {
	c, _ := s.newContext()

	s.Equal(common.Anonymous, common.GetSession(c))

	common.SetSession(c, common.Session{
		ID:              "sess-1",
		UserID:          "admin@example.com",
		IsAuthenticated: true,
		Roles:           []string{"admin"},
	})

	got := common.GetSession(c)
	s.True(got.IsAuthenticated)
	s.Equal("admin@example.com", got.UserID)
}

func (s *ContextPublicTestSuite) TestBodyAndClientIP() {
	c, _ := s.newContext()

	s.Nil(common.GetBody(c))
	s.Empty(common.GetClientIP(c))
	s.Nil(common.GetPendingAudit(c))

	common.SetBody(c, map[string]any{"name": "Ada"})
	common.SetClientIP(c, "8.8.8.8")

	s.Equal(map[string]any{"name": "Ada"}, common.GetBody(c))
	s.Equal("8.8.8.8", common.GetClientIP(c))
}

func (s *ContextPublicTestSuite) TestReject() {
	c, rec := s.newContext()

	s.Require().NoError(common.Reject(c, http.StatusUnsupportedMediaType, "Unsupported content type"))

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(map[string]any{"error": "Unsupported content type"}, body)
}

func (s *ContextPublicTestSuite) TestCaller() {
	s.Equal(common.Caller{Session: common.Anonymous}, common.CallerFrom(context.Background()))

	want := common.Caller{
		Session:   common.Session{ID: "sess-1", UserID: "admin@example.com", IsAuthenticated: true},
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8",
	}
	ctx := common.WithCaller(context.Background(), want)

	s.Equal(want, common.CallerFrom(ctx))
}

func TestContextPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ContextPublicTestSuite))
}
