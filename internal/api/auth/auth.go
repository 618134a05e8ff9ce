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

// Package auth serves the back-office session endpoints.
package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/authtoken"
	"github.com/retr0h/caregate/internal/validation"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	tokens TokenIssuer,
	opts Options,
) *Auth {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = authtoken.DefaultTTL
	}

	return &Auth{
		logger: logger,
		tokens: tokens,
		opts:   opts,
		now:    time.Now,
	}
}

// PostLogin checks the credentials and issues a session token.
func (a *Auth) PostLogin(
	c echo.Context,
) error {
	var req LoginRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return common.Reject(c, http.StatusBadRequest, "Malformed request body")
	}
	if errMsg, ok := validation.Struct(req); !ok {
		return common.Reject(c, http.StatusBadRequest, errMsg)
	}

	if !a.valid(req) {
		a.logger.Warn(
			"failed login",
			slog.String("username", req.Username),
			slog.String("ip", c.RealIP()),
		)
		return common.Reject(c, http.StatusUnauthorized, "Invalid username or password")
	}

	token, err := a.tokens.Generate(
		a.opts.SigningKey,
		a.opts.Admin.Roles,
		req.Username,
		a.opts.SessionTTL,
	)
	if err != nil {
		a.logger.Error(
			"failed to issue session token",
			slog.String("error", err.Error()),
		)
		return common.Reject(c, http.StatusInternalServerError, "Unable to sign in")
	}

	expiresAt := a.now().Add(a.opts.SessionTTL).UTC()
	c.SetCookie(a.cookie(token, expiresAt))

	return c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Roles:     a.opts.Admin.Roles,
	})
}

// PostLogout clears the session cookie. Tokens are stateless and expire on
// their own.
func (a *Auth) PostLogout(
	c echo.Context,
) error {
	cookie := a.cookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, MessageResponse{Message: "Signed out"})
}

// PostPasswordReset acknowledges a reset request. The response is the same
// whether or not the address is known.
func (a *Auth) PostPasswordReset(
	c echo.Context,
) error {
	var req PasswordResetRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return common.Reject(c, http.StatusBadRequest, "Malformed request body")
	}
	if errMsg, ok := validation.Struct(req); !ok {
		return common.Reject(c, http.StatusBadRequest, errMsg)
	}

	a.logger.Info(
		"password reset requested",
		slog.String("ip", c.RealIP()),
	)

	return c.JSON(http.StatusAccepted, MessageResponse{
		Message: "If the address is registered, reset instructions will follow.",
	})
}

func (a *Auth) valid(
	req LoginRequest,
) bool {
	if a.opts.Admin.Username == "" || a.opts.Admin.Password == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.opts.Admin.Username))
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.opts.Admin.Password))

	return userOK&passOK == 1
}

func (a *Auth) cookie(
	value string,
	expires time.Time,
) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.opts.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
