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

// Package authtoken issues and validates the back-office session JWTs.
package authtoken

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v4"
)

// Issuer is set on every token this package generates.
const Issuer = "caregate"

// RoleHierarchy lists the built-in roles from most to least privileged.
var RoleHierarchy = []string{
	"admin",
	"coordinator",
	"editor",
}

// CustomClaims are the session claims carried in a token. The JWT ID doubles
// as the session id recorded in audit entries.
type CustomClaims struct {
	Roles       []string `json:"roles"                 validate:"required,min=1,dive,oneof=admin coordinator editor"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Token generates and validates session tokens.
type Token struct {
	logger *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
) *Token {
	return &Token{
		logger: logger,
	}
}

// GenerateAllowedRoles returns the role names a token may carry.
func GenerateAllowedRoles(
	hierarchy []string,
) []string {
	roles := make([]string, len(hierarchy))
	copy(roles, hierarchy)

	return roles
}
