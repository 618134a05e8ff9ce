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
package common

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/audit"
)

// Context keys set by the pipeline.
const (
	ContextKeySession  = "caregate.session"
	ContextKeyBody     = "caregate.body"
	ContextKeyClientIP = "caregate.client_ip"
	ContextKeyAudit    = "caregate.audit"
)

// SetSession stores the caller's session.
func SetSession(
	c echo.Context,
	s Session,
) {
	c.Set(ContextKeySession, s)
}

// GetSession returns the caller's session, anonymous when none was stored.
func GetSession(
	c echo.Context,
) Session {
	if s, ok := c.Get(ContextKeySession).(Session); ok {
		return s
	}

	return Anonymous
}

// SetBody caches the decoded request body.
func SetBody(
	c echo.Context,
	body any,
) {
	c.Set(ContextKeyBody, body)
}

// GetBody returns the decoded request body, or nil.
func GetBody(
	c echo.Context,
) any {
	return c.Get(ContextKeyBody)
}

// SetClientIP stores the address used for geo classification.
func SetClientIP(
	c echo.Context,
	ip string,
) {
	c.Set(ContextKeyClientIP, ip)
}

// GetClientIP returns the address used for geo classification. Empty means
// no public address could be resolved.
func GetClientIP(
	c echo.Context,
) string {
	ip, _ := c.Get(ContextKeyClientIP).(string)
	return ip
}

// SetPendingAudit stores the request's pending audit entry.
func SetPendingAudit(
	c echo.Context,
	p *audit.Pending,
) {
	c.Set(ContextKeyAudit, p)
}

// GetPendingAudit returns the request's pending audit entry, or nil when
// the request is not audited.
func GetPendingAudit(
	c echo.Context,
) *audit.Pending {
	p, _ := c.Get(ContextKeyAudit).(*audit.Pending)
	return p
}

type callerKey struct{}

// WithCaller returns ctx carrying caller.
func WithCaller(
	ctx context.Context,
	caller Caller,
) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFrom returns the caller stored by WithCaller, or an anonymous one.
func CallerFrom(
	ctx context.Context,
) Caller {
	if caller, ok := ctx.Value(callerKey{}).(Caller); ok {
		return caller
	}

	return Caller{Session: Anonymous}
}
