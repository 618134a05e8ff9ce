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
	"github.com/retr0h/caregate/internal/security"
	"github.com/retr0h/caregate/internal/telemetry"
)

// invalidRequestMessage is the generic body of pattern rejections.
const invalidRequestMessage = "Invalid request"

// patternMiddleware rejects requests whose query, body or path parameters
// match the given matcher. Paths under one of allowList are not scanned;
// the handlers behind them sanitize their own input. When logKeys is set
// the offending query and body keys are logged.
func patternMiddleware(
	logger *slog.Logger,
	matcher *security.Matcher,
	allowList []string,
	logKeys bool,
	instruments *telemetry.Instruments,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if hasAnyPrefix(req.URL.Path, allowList) {
				return next(c)
			}

			query := map[string][]string(c.QueryParams())
			body := common.GetBody(c)
			params := pathParams(c)

			if !matcher.IsSuspicious(query) &&
				!matcher.IsSuspicious(body) &&
				!matcher.IsSuspicious(params) {
				return next(c)
			}

			attrs := []any{
				slog.String("path", req.URL.Path),
				slog.String("method", req.Method),
				slog.String("ip", c.RealIP()),
				slog.String("check", matcher.Name()),
			}
			if logKeys {
				attrs = append(attrs,
					slog.Any("query_keys", matcher.SuspiciousKeys(query)),
					slog.Any("body_keys", matcher.SuspiciousKeys(body)),
					slog.Any("param_keys", matcher.SuspiciousKeys(params)),
				)
			}
			logger.Warn("suspicious request blocked", attrs...)

			instruments.RecordRejection(req.Context(), matcher.Name(), "pattern")

			return common.Reject(c, http.StatusBadRequest, invalidRequestMessage)
		}
	}
}

func pathParams(
	c echo.Context,
) map[string]string {
	names := c.ParamNames()
	if len(names) == 0 {
		return nil
	}

	values := c.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}

	return params
}

func hasAnyPrefix(
	path string,
	prefixes []string,
) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
