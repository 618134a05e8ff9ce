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
package api

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/authtoken"
	"github.com/retr0h/caregate/internal/config"
	"github.com/retr0h/caregate/internal/geoip"
	"github.com/retr0h/caregate/internal/ratelimit"
	"github.com/retr0h/caregate/internal/telemetry"
)

// TokenValidator parses and validates session tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// GeoClassifier decides whether a client address may use the API.
type GeoClassifier interface {
	Classify(ctx context.Context, ip string) geoip.Result
}

// Server implementation of the Server's API operations.
type Server struct {
	// Echo is the HTTP router carrying the pipeline.
	Echo *echo.Echo

	logger      *slog.Logger
	appConfig   config.Config
	tokens      TokenValidator
	rateStore   ratelimit.Store
	classifier  GeoClassifier
	recorder    *audit.Recorder
	instruments *telemetry.Instruments
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithTokenValidator overrides the session token validator.
func WithTokenValidator(
	v TokenValidator,
) Option {
	return func(s *Server) {
		s.tokens = v
	}
}

// WithRateStore sets the store shared by all rate limiters. Without one the
// server uses an in-memory fixed window.
func WithRateStore(
	store ratelimit.Store,
) Option {
	return func(s *Server) {
		s.rateStore = store
	}
}

// WithGeoClassifier enables the geo stage.
func WithGeoClassifier(
	c GeoClassifier,
) Option {
	return func(s *Server) {
		s.classifier = c
	}
}

// WithRecorder enables the audit stage.
func WithRecorder(
	r *audit.Recorder,
) Option {
	return func(s *Server) {
		s.recorder = r
	}
}

// WithInstruments records pipeline metrics.
func WithInstruments(
	i *telemetry.Instruments,
) Option {
	return func(s *Server) {
		s.instruments = i
	}
}
