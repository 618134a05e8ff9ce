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

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/telemetry"
)

// geoMiddleware classifies the client address and rejects requests from
// outside the target country. The static asset prefix is not classified.
func geoMiddleware(
	logger *slog.Logger,
	classifier GeoClassifier,
	staticPrefix string,
	instruments *telemetry.Instruments,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if staticPrefix != "" && strings.HasPrefix(req.URL.Path, staticPrefix) {
				return next(c)
			}

			ip := common.GetClientIP(c)
			res := classifier.Classify(req.Context(), ip)
			instruments.RecordGeoLookup(req.Context(), res.Reason, res.Allowed)

			if res.Allowed {
				return next(c)
			}

			logger.Warn(
				"request blocked by geo policy",
				slog.String("ip", ip),
				slog.String("country", res.Country),
				slog.String("path", req.URL.Path),
				slog.String("reason", res.Reason),
			)
			instruments.RecordRejection(req.Context(), "geo", res.Reason)

			return common.Reject(c, http.StatusForbidden, "Access denied")
		}
	}
}
