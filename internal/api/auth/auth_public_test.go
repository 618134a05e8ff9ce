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
package auth_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/api/auth"
	"github.com/retr0h/caregate/internal/authtoken"
)

type failingIssuer struct{}

func (failingIssuer) Generate(
	_ string,
	_ []string,
	_ string,
	_ time.Duration,
) (string, error) {
	return "", errors.New("signing failed")
}

type AuthPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
	opts   auth.Options
}

func (s *AuthPublicTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	s.opts = auth.Options{
		SigningKey:   "test-signing-key",
		SessionTTL:   time.Hour,
		SecureCookie: true,
		Admin: auth.Credentials{
			Username: "admin",
			Password: "s3cret",
			Roles:    []string{"admin"},
		},
	}
}

func (s *AuthPublicTestSuite) serve(
	issuer auth.TokenIssuer,
	path string,
	body string,
) *httptest.ResponseRecorder {
	h := auth.New(s.logger, issuer, s.opts)

	e := echo.New()
	e.POST("/api/auth/login", h.PostLogin)
	e.POST("/api/auth/logout", h.PostLogout)
	e.POST("/api/auth/password-reset", h.PostPasswordReset)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func (s *AuthPublicTestSuite) TestPostLogin() {
	tests := []struct {
		name     string
		issuer   auth.TokenIssuer
		body     string
		wantCode int
	}{
		{
			name:     "valid credentials",
			issuer:   authtoken.New(s.logger),
			body:     `{"username":"admin","password":"s3cret"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			issuer:   authtoken.New(s.logger),
			body:     `{"username":"admin","password":"nope"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing fields",
			issuer:   authtoken.New(s.logger),
			body:     `{"username":"admin"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "signing failure",
			issuer:   failingIssuer{},
			body:     `{"username":"admin","password":"s3cret"}`,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.serve(tt.issuer, "/api/auth/login", tt.body)
			s.Equal(tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				s.Empty(rec.Header().Get("Set-Cookie"))
				return
			}

			var got auth.LoginResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))

			claims, err := authtoken.New(s.logger).Validate(got.Token, s.opts.SigningKey)
			s.Require().NoError(err)
			s.Equal("admin", claims.Subject)
			s.Equal([]string{"admin"}, claims.Roles)

			cookie := rec.Header().Get("Set-Cookie")
			s.Contains(cookie, auth.SessionCookie+"="+got.Token)
			s.Contains(cookie, "HttpOnly")
			s.Contains(cookie, "Secure")
		})
	}
}

func (s *AuthPublicTestSuite) TestLoginRejectedWhenNoAdminConfigured() {
	s.opts.Admin = auth.Credentials{}

	rec := s.serve(authtoken.New(s.logger), "/api/auth/login", `{"username":"x","password":"y"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthPublicTestSuite) TestPostLogout() {
	rec := s.serve(authtoken.New(s.logger), "/api/auth/logout", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func (s *AuthPublicTestSuite) TestPostPasswordReset() {
	rec := s.serve(authtoken.New(s.logger), "/api/auth/password-reset", `{"email":"a@example.com"}`)
	s.Equal(http.StatusAccepted, rec.Code)

	rec = s.serve(authtoken.New(s.logger), "/api/auth/password-reset", `{"email":"not-an-email"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func TestAuthPublicTestSuite(t *testing.T) {
	suite.Run(t, new(AuthPublicTestSuite))
}
