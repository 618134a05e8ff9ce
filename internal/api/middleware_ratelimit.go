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
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/ratelimit"
	"github.com/retr0h/caregate/internal/telemetry"
)

// tooManyRequestsMessage is the body of 429 rejections.
const tooManyRequestsMessage = "Too many requests, please try again later"

// limiterConfig describes one named limiter.
type limiterConfig struct {
	rule ratelimit.Rule
	// skip bypasses the limiter entirely.
	skip bool
	// skipSuccessful reverses the hit once the response is known to have
	// succeeded, so only failures count.
	skipSuccessful bool
}

// throttle returns a fixed-window limiter keyed by client address. Store
// failures are logged and the request is admitted.
func throttle(
	logger *slog.Logger,
	store ratelimit.Store,
	cfg limiterConfig,
	instruments *telemetry.Instruments,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if cfg.skip {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := ratelimit.Key(cfg.rule, c.RealIP())

			decision, err := store.Hit(ctx, key, cfg.rule)
			if err != nil {
				logger.Warn(
					"rate limit store unavailable",
					slog.String("limiter", cfg.rule.Name),
					slog.String("error", err.Error()),
				)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.Itoa(cfg.rule.Max))
			h.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				retryAfter := decision.RetryAfterSeconds()
				h.Set("Retry-After", strconv.Itoa(retryAfter))

				logger.Warn(
					"rate limit exceeded",
					slog.String("limiter", cfg.rule.Name),
					slog.String("ip", c.RealIP()),
					slog.String("path", c.Request().URL.Path),
				)
				instruments.RecordRejection(ctx, "ratelimit", cfg.rule.Name)

				return c.JSON(http.StatusTooManyRequests, common.ErrorResponse{
					Error:      tooManyRequestsMessage,
					RetryAfter: &retryAfter,
				})
			}

			err = next(c)

			if cfg.skipSuccessful && err == nil && responseStatus(c.Response()) < http.StatusBadRequest {
				if undoErr := store.Undo(ctx, key, cfg.rule, decision); undoErr != nil {
					logger.Warn(
						"failed to undo rate limit hit",
						slog.String("limiter", cfg.rule.Name),
						slog.String("error", undoErr.Error()),
					)
				}
			}

			return err
		}
	}
}
