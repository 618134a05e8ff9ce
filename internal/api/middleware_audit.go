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
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/audit"
)

// auditMiddleware registers a pending audit entry before the later stages
// run and finalizes it when the response completes. Completion is observed
// both on the first body write and after the chain returns, so handlers
// that write nothing, return an error or panic are covered. The entry's
// own guard keeps emission to one.
//
// Paths under an excluded prefix produce no entry.
func auditMiddleware(
	recorder *audit.Recorder,
	excluded []string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			path := req.URL.Path

			for _, prefix := range excluded {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			session := common.GetSession(c)
			pending := recorder.Begin(audit.RequestInfo{
				Method:        req.Method,
				Path:          path,
				Query:         c.QueryParams(),
				IPAddress:     c.RealIP(),
				UserAgent:     req.UserAgent(),
				UserID:        session.UserID,
				SessionID:     session.ID,
				Authenticated: session.IsAuthenticated,
				Body:          common.GetBody(c),
			})
			common.SetPendingAudit(c, pending)

			var errMsg string
			res := c.Response()
			res.After(func() {
				pending.Finalize(res.Status, errMsg)
			})

			defer func() {
				if r := recover(); r != nil {
					pending.Finalize(http.StatusInternalServerError, fmt.Sprint(r))
					panic(r)
				}
			}()

			err = next(c)
			if err != nil {
				// Render now so the outcome reflects what the client receives.
				errMsg = errorMessage(err)
				c.Error(err)
				pending.Finalize(responseStatus(res), errMsg)
				return err
			}

			pending.Finalize(responseStatus(res), "")

			return nil
		}
	}
}

// responseStatus is the status sent, or 200 for handlers that wrote
// nothing and will get an implicit empty reply.
func responseStatus(
	res *echo.Response,
) int {
	if !res.Committed || res.Status == 0 {
		return http.StatusOK
	}

	return res.Status
}

func errorMessage(
	err error,
) string {
	if he, ok := err.(*echo.HTTPError); ok {
		return fmt.Sprint(he.Message)
	}

	return err.Error()
}
