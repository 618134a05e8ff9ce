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

package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/retr0h/caregate/internal/telemetry"
)

type LogHandlerPublicTestSuite struct {
	suite.Suite

	buf    *bytes.Buffer
	logger *slog.Logger
}

func (s *LogHandlerPublicTestSuite) SetupTest() {
	otel.SetTracerProvider(sdktrace.NewTracerProvider())

	s.buf = &bytes.Buffer{}
	inner := slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	s.logger = slog.New(telemetry.NewLogHandler(inner))
}

func (s *LogHandlerPublicTestSuite) line() map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(s.buf.Bytes(), &out))

	return out
}

func (s *LogHandlerPublicTestSuite) TestTraceCorrelation() {
	ctx, span := otel.Tracer("caregate-test").Start(context.Background(), "login")
	defer span.End()

	s.logger.InfoContext(ctx, "login attempt")

	out := s.line()
	s.Equal(trace.SpanContextFromContext(ctx).TraceID().String(), out["trace_id"])
	s.NotEmpty(out["span_id"])
}

func (s *LogHandlerPublicTestSuite) TestNoSpan() {
	s.logger.Info("startup")

	out := s.line()
	s.NotContains(out, "trace_id")
	s.NotContains(out, "span_id")
}

func (s *LogHandlerPublicTestSuite) TestRedaction() {
	tests := []struct {
		name string
		log  func()
		path []string
		want any
	}{
		{
			name: "record attribute",
			log: func() {
				s.logger.Info("login", slog.String("password", "hunter22"))
			},
			path: []string{"password"},
			want: telemetry.Redacted,
		},
		{
			name: "case insensitive fragment",
			log: func() {
				s.logger.Info("request", slog.String("Authorization", "Bearer abc"))
			},
			path: []string{"Authorization"},
			want: telemetry.Redacted,
		},
		{
			name: "nested group",
			log: func() {
				s.logger.Info("intake", slog.Group("patient",
					slog.String("date_of_birth", "1950-01-01"),
					slog.String("city", "Austin"),
				))
			},
			path: []string{"patient", "date_of_birth"},
			want: telemetry.Redacted,
		},
		{
			name: "non sensitive keys pass",
			log: func() {
				s.logger.Info("intake", slog.Group("patient", slog.String("city", "Austin")))
			},
			path: []string{"patient", "city"},
			want: "Austin",
		},
		{
			name: "logger attributes",
			log: func() {
				s.logger.With(slog.String("session_token", "abc")).Info("session")
			},
			path: []string{"session_token"},
			want: telemetry.Redacted,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.buf.Reset()
			tt.log()

			var got any = s.line()
			for _, key := range tt.path {
				m, ok := got.(map[string]any)
				s.Require().True(ok, "missing %s", key)
				got = m[key]
			}

			s.Equal(tt.want, got)
		})
	}
}

func (s *LogHandlerPublicTestSuite) TestWithGroup() {
	s.logger.WithGroup("geo").Info("lookup", slog.String("country", "US"))

	geo, ok := s.line()["geo"].(map[string]any)
	s.Require().True(ok)
	s.Equal("US", geo["country"])
}

func (s *LogHandlerPublicTestSuite) TestEnabled() {
	h := telemetry.NewLogHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	s.False(h.Enabled(context.Background(), slog.LevelInfo))
	s.True(h.Enabled(context.Background(), slog.LevelError))
}

func TestLogHandlerPublicTestSuite(t *testing.T) {
	suite.Run(t, new(LogHandlerPublicTestSuite))
}
