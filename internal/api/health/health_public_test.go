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
package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/api/health"
)

type HealthPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (s *HealthPublicTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func (s *HealthPublicTestSuite) serve(
	checker health.Checker,
	path string,
) *httptest.ResponseRecorder {
	h := health.New(s.logger, checker, time.Now(), "0.1.0")

	e := echo.New()
	e.GET("/health", h.GetHealth)
	e.GET("/health/ready", h.GetHealthReady)
	e.GET("/health/status", h.GetHealthStatus)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func (s *HealthPublicTestSuite) TestGetHealth() {
	rec := s.serve(&health.DependencyChecker{}, "/health")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HealthPublicTestSuite) TestGetHealthReady() {
	tests := []struct {
		name     string
		checks   map[string]func(context.Context) error
		wantCode int
		wantBody string
	}{
		{
			name:     "when no dependencies are configured",
			wantCode: http.StatusOK,
			wantBody: `{"status":"ready"}`,
		},
		{
			name: "when a dependency fails",
			checks: map[string]func(context.Context) error{
				"redis": func(context.Context) error { return errors.New("connection refused") },
				"nats":  func(context.Context) error { return nil },
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"not_ready","error":"redis: connection refused"}`,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.serve(&health.DependencyChecker{Checks: tt.checks}, "/health/ready")

			s.Equal(tt.wantCode, rec.Code)
			s.JSONEq(tt.wantBody, rec.Body.String())
		})
	}
}

func (s *HealthPublicTestSuite) TestGetHealthStatus() {
	checker := &health.DependencyChecker{
		Checks: map[string]func(context.Context) error{
			"redis": func(context.Context) error { return errors.New("timeout") },
			"nats":  func(context.Context) error { return nil },
		},
	}

	rec := s.serve(checker, "/health/status")
	s.Equal(http.StatusOK, rec.Code)

	var got health.StatusResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("degraded", got.Status)
	s.Equal("0.1.0", got.Version)
	s.Equal("ok", got.Components["nats"].Status)
	s.Equal("error", got.Components["redis"].Status)
	s.Require().NotNil(got.Components["redis"].Error)
	s.Equal("timeout", *got.Components["redis"].Error)
}

func TestHealthPublicTestSuite(t *testing.T) {
	suite.Run(t, new(HealthPublicTestSuite))
}
