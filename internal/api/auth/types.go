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
package auth

import (
	"log/slog"
	"time"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Generate(
		signingKey string,
		roles []string,
		subject string,
		ttl time.Duration,
	) (string, error)
}

// Credentials is the configured back-office login.
type Credentials struct {
	Username string
	Password string
	Roles    []string
}

// Options configures the Auth handler.
type Options struct {
	SigningKey string
	SessionTTL time.Duration
	// SecureCookie marks the session cookie Secure, for production.
	SecureCookie bool
	Admin        Credentials
}

// Auth serves login, logout and password reset.
type Auth struct {
	logger *slog.Logger
	tokens TokenIssuer
	opts   Options
	now    func() time.Time
}

// LoginRequest is the body of a login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=200"`
	Password string `json:"password" validate:"required,max=200"`
}

// LoginResponse carries the session token for API clients. Browsers use
// the cookie set alongside it.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Roles     []string  `json:"roles"`
}

// PasswordResetRequest is the body of a password reset.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
