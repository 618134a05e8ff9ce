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

// Package health serves the unauthenticated health endpoints.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	checker Checker,
	startTime time.Time,
	version string,
) *Health {
	return &Health{
		Checker:   checker,
		StartTime: startTime,
		Version:   version,
		logger:    logger,
	}
}

// GetHealth is the liveness check.
func (h *Health) GetHealth(
	c echo.Context,
) error {
	return c.JSON(http.StatusOK, Response{Status: "ok"})
}

// GetHealthReady is the readiness check.
func (h *Health) GetHealthReady(
	c echo.Context,
) error {
	if err := h.Checker.CheckHealth(c.Request().Context()); err != nil {
		h.logger.Warn(
			"readiness check failed",
			slog.String("error", err.Error()),
		)

		errMsg := err.Error()
		return c.JSON(http.StatusServiceUnavailable, Response{
			Status: "not_ready",
			Error:  &errMsg,
		})
	}

	return c.JSON(http.StatusOK, Response{Status: "ready"})
}

// GetHealthStatus reports each dependency, the version and the uptime.
func (h *Health) GetHealthStatus(
	c echo.Context,
) error {
	components := map[string]ComponentHealth{}
	overall := "ok"

	if cc, ok := h.Checker.(ComponentChecker); ok {
		for name, err := range cc.CheckComponents(c.Request().Context()) {
			if err != nil {
				errMsg := err.Error()
				components[name] = ComponentHealth{Status: "error", Error: &errMsg}
				overall = "degraded"
				continue
			}
			components[name] = ComponentHealth{Status: "ok"}
		}
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:     overall,
		Version:    h.Version,
		Uptime:     time.Since(h.StartTime).Round(time.Second).String(),
		Components: components,
	})
}
