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
	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/auth"
	"github.com/retr0h/caregate/internal/authtoken"
)

// GetAuthHandler returns the login, logout and password reset routes.
// Successful logins do not count against the auth limiter.
func (s *Server) GetAuthHandler() []func(e *echo.Echo) {
	cfg := s.appConfig
	authHandler := auth.New(s.logger, authtoken.New(s.logger), auth.Options{
		SigningKey:   cfg.Security.SigningKey,
		SessionTTL:   cfg.Security.SessionTTL,
		SecureCookie: cfg.IsProduction(),
		Admin: auth.Credentials{
			Username: cfg.Security.Admin.Username,
			Password: cfg.Security.Admin.Password,
			Roles:    cfg.Security.Admin.Roles,
		},
	})

	authLimiter := s.limiter("auth", cfg.RateLimit.Auth, false, true)
	resetLimiter := s.limiter("password_reset", cfg.RateLimit.PasswordReset, false, false)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.POST("/api/auth/login", authHandler.PostLogin, authLimiter)
			e.POST("/api/auth/logout", authHandler.PostLogout)
			e.POST("/api/auth/password-reset", authHandler.PostPasswordReset, resetLimiter)
		},
	}
}
