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
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	units "github.com/labstack/gommon/bytes"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/config"
	"github.com/retr0h/caregate/internal/geoip"
	"github.com/retr0h/caregate/internal/ratelimit"
	"github.com/retr0h/caregate/internal/security"
	"github.com/retr0h/caregate/internal/telemetry"
)

const (
	// DefaultBodyLimit applies when security.body_limit is empty or invalid.
	DefaultBodyLimit = 1 << 20

	apiPrefix    = "/api"
	healthPrefix = "/health"
)

// registerPipeline installs the stages in their fixed order. Echo runs
// these after routing, so path parameters are known to every stage.
//
//	request id, recover, cors, client ip, session
//	https -> headers -> content -> sqli -> xss -> audit -> geo -> api limiter
//	route limiters -> handler
//
// Errors from any stage end in errorHandler.
func (s *Server) registerPipeline() {
	e := s.Echo
	cfg := s.appConfig
	production := cfg.IsProduction()

	corsConfig := middleware.CORSConfig{}
	if origins := cfg.Server.CORS.AllowOrigins; len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	}

	e.Use(otelecho.Middleware(
		telemetry.ServiceName,
		otelecho.WithSkipper(func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, healthPrefix)
		}),
	))
	e.Use(slogecho.New(s.logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: recoverLogError,
	}))
	e.Use(middleware.CORSWithConfig(corsConfig))
	e.Use(clientIPMiddleware(cfg.Security.TrustedProxyHeader))
	e.Use(sessionMiddleware(s.logger, s.tokens, cfg.Security.SigningKey))

	e.Use(httpsMiddleware(production))
	e.Use(headersMiddleware())
	e.Use(contentMiddleware(s.logger, s.bodyLimit(), s.instruments))
	e.Use(patternMiddleware(
		s.logger,
		security.SQLInjection,
		cfg.Security.PatternAllowList,
		true,
		s.instruments,
	))
	e.Use(patternMiddleware(
		s.logger,
		security.XSS,
		cfg.Security.PatternAllowList,
		false,
		s.instruments,
	))

	if s.recorder != nil {
		e.Use(auditMiddleware(s.recorder, s.unauditedPaths()))
	}

	if s.classifier != nil {
		e.Use(geoMiddleware(s.logger, s.classifier, cfg.Server.StaticPrefix, s.instruments))
	}

	e.Use(onlyAPI(s.limiter("api", cfg.RateLimit.API, false, false)))
}

// unauditedPaths are the health and scrape endpoints, which produce no audit
// entries.
func (s *Server) unauditedPaths() []string {
	metricsPath := s.appConfig.Telemetry.Metrics.Path
	if metricsPath == "" {
		metricsPath = telemetry.DefaultMetricsPath
	}

	return []string{healthPrefix, metricsPath}
}

// limiter builds a named throttle from config. A zero max disables it.
func (s *Server) limiter(
	name string,
	limit config.Limit,
	skip bool,
	skipSuccessful bool,
) echo.MiddlewareFunc {
	return throttle(s.logger, s.rateStore, limiterConfig{
		rule: ratelimit.Rule{
			Name:   name,
			Max:    limit.Max,
			Window: limit.Window,
		},
		skip:           skip || limit.Max <= 0,
		skipSuccessful: skipSuccessful,
	}, s.instruments)
}

func (s *Server) bodyLimit() int64 {
	if s.appConfig.Security.BodyLimit == "" {
		return DefaultBodyLimit
	}

	limit, err := units.Parse(s.appConfig.Security.BodyLimit)
	if err != nil || limit <= 0 {
		s.logger.Warn(
			"invalid body limit, using default",
			slog.String("body_limit", s.appConfig.Security.BodyLimit),
		)
		return DefaultBodyLimit
	}

	return limit
}

// onlyAPI applies mw to API paths and passes everything else through.
func onlyAPI(
	mw echo.MiddlewareFunc,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := mw(next)
		return func(c echo.Context) error {
			if !isAPIPath(c.Request().URL.Path) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

func isAPIPath(
	path string,
) bool {
	return path == apiPrefix || strings.HasPrefix(path, apiPrefix+"/")
}

// ipExtractor resolves the address used for rate limiting and audit: the
// first value of the trusted proxy header when set, else the socket address.
func ipExtractor(
	header string,
) echo.IPExtractor {
	return func(req *http.Request) string {
		if header != "" {
			if ip := geoip.FirstHeaderValue(req.Header.Get(header)); geoip.IsValid(ip) {
				return ip
			}
		}

		return geoip.RemoteHost(req.RemoteAddr)
	}
}

// clientIPMiddleware stores the public address used for geo classification.
func clientIPMiddleware(
	header string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var proxied string
			if header != "" {
				proxied = req.Header.Get(header)
			}
			common.SetClientIP(c, geoip.ResolveClientIP(proxied, req.RemoteAddr))

			return next(c)
		}
	}
}
