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
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	strictecho "github.com/oapi-codegen/runtime/strictmiddleware/echo"

	"github.com/retr0h/caregate/internal/api/auth"
	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/authtoken"
)

// sessionMiddleware resolves the caller's session from a bearer token or
// the session cookie. Missing or invalid tokens yield an anonymous session;
// rejecting them is left to requireAdmin.
func sessionMiddleware(
	logger *slog.Logger,
	tokens TokenValidator,
	signingKey string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := sessionToken(c)
			if tokenString == "" {
				common.SetSession(c, common.Anonymous)
				return next(c)
			}

			claims, err := tokens.Validate(tokenString, signingKey)
			if err != nil {
				logger.Debug(
					"ignoring invalid session token",
					slog.String("error", err.Error()),
				)
				common.SetSession(c, common.Anonymous)
				return next(c)
			}

			common.SetSession(c, common.Session{
				ID:              claims.ID,
				UserID:          claims.Subject,
				IsAuthenticated: true,
				Roles:           claims.Roles,
				Permissions:     claims.Permissions,
			})

			return next(c)
		}
	}
}

func sessionToken(
	c echo.Context,
) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
		return cookie.Value
	}

	return ""
}

// requireAdmin allows authenticated sessions holding any of the required
// permissions. Anonymous callers get 401, others without the permission 403.
func requireAdmin(
	required ...string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if code, msg := authorize(common.GetSession(c), required); code != 0 {
				return common.Reject(c, code, msg)
			}

			return next(c)
		}
	}
}

// scopeMiddleware applies the requireAdmin rules to a generated operation,
// reading the permissions its wrapper stored under contextKey. Operations
// without scopes are public.
func scopeMiddleware(
	handler strictecho.StrictEchoHandlerFunc,
	contextKey string,
) strictecho.StrictEchoHandlerFunc {
	return func(c echo.Context, request interface{}) (interface{}, error) {
		required, ok := c.Get(contextKey).([]string)
		if !ok {
			return handler(c, request)
		}

		if code, msg := authorize(common.GetSession(c), required); code != 0 {
			return nil, common.Reject(c, code, msg)
		}

		return handler(c, request)
	}
}

// formLimiter rate limits the public form operations and passes every other
// operation through untouched.
func formLimiter(
	handler strictecho.StrictEchoHandlerFunc,
	operationID string,
	limiter echo.MiddlewareFunc,
) strictecho.StrictEchoHandlerFunc {
	switch operationID {
	case "PostInquiry", "PostApplication", "PostContact":
		return strictEcho(handler, limiter)
	default:
		return handler
	}
}

// authorize returns the rejection status and message for session, or zero
// when it may proceed.
func authorize(
	session common.Session,
	required []string,
) (int, string) {
	if !session.IsAuthenticated {
		return http.StatusUnauthorized, "Authentication required"
	}

	if len(required) == 0 {
		return 0, ""
	}

	resolved := authtoken.ResolvePermissions(session.Roles, session.Permissions, nil)
	for _, perm := range required {
		if authtoken.HasPermission(resolved, perm) {
			return 0, ""
		}
	}

	return http.StatusForbidden, fmt.Sprintf("Insufficient permissions. Required: %v", required)
}

// callerMiddleware hands the session and client details to strict handlers,
// which only see a context.Context.
func callerMiddleware(
	handler strictecho.StrictEchoHandlerFunc,
	_ string,
) strictecho.StrictEchoHandlerFunc {
	return func(c echo.Context, request interface{}) (interface{}, error) {
		req := c.Request()
		c.SetRequest(req.WithContext(common.WithCaller(req.Context(), common.Caller{
			Session:   common.GetSession(c),
			IPAddress: c.RealIP(),
			UserAgent: req.UserAgent(),
		})))

		return handler(c, request)
	}
}

// strictEcho runs an echo middleware around a strict operation. The
// operation's response is written after the middleware returns, so mw must
// not inspect it.
func strictEcho(
	handler strictecho.StrictEchoHandlerFunc,
	mw echo.MiddlewareFunc,
) strictecho.StrictEchoHandlerFunc {
	return func(c echo.Context, request interface{}) (interface{}, error) {
		var response interface{}
		err := mw(func(c echo.Context) error {
			var err error
			response, err = handler(c, request)
			return err
		})(c)

		return response, err
	}
}
