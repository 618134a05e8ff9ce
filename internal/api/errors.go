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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
)

// panicError carries the stack of a recovered panic to the error handler.
type panicError struct {
	err   error
	stack []byte
}

func (e *panicError) Error() string {
	return e.err.Error()
}

func (e *panicError) Unwrap() error {
	return e.err
}

// recoverLogError keeps the panic stack with the error for errorHandler.
func recoverLogError(
	_ echo.Context,
	err error,
	stack []byte,
) error {
	return &panicError{err: err, stack: stack}
}

// errorHandler is the terminal stage. It logs everything it knows and
// returns the message and stack lines only outside production.
func errorHandler(
	logger *slog.Logger,
	production bool,
) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			if he.Internal != nil && code >= http.StatusInternalServerError {
				msg = he.Internal.Error()
			}
		}

		var stack []string
		var pe *panicError
		if errors.As(err, &pe) {
			stack = stackLines(pe.stack)
		}

		req := c.Request()
		level := slog.LevelWarn
		if code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(
			req.Context(),
			level,
			"request failed",
			slog.String("path", req.URL.Path),
			slog.String("method", req.Method),
			slog.Int("status", code),
			slog.String("error", msg),
			slog.Any("stack", stack),
			slog.String("ip", c.RealIP()),
		)

		resp := common.ErrorResponse{Error: msg, Stack: stack}
		if production {
			resp = common.ErrorResponse{Error: genericMessage(code)}
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			logger.Error(
				"failed to write error response",
				slog.String("error", err.Error()),
			)
		}
	}
}

func genericMessage(
	code int,
) string {
	if code >= http.StatusInternalServerError {
		return "Internal server error"
	}

	if text := http.StatusText(code); text != "" {
		return text
	}

	return "Request failed"
}

func stackLines(
	stack []byte,
) []string {
	var lines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
