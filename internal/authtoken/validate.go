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
package authtoken

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/retr0h/caregate/internal/validation"
)

// Validate verifies the signature, expiry and issuer of a session token
// and returns its claims. Tokens must name a subject, a session id and at
// least one known role; the session id is what audit entries record.
func (t *Token) Validate(
	tokenString string,
	signingKey string,
) (*CustomClaims, error) {
	claims := &CustomClaims{}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}

		return []byte(signingKey), nil
	}

	if _, err := jwt.ParseWithClaims(tokenString, claims, keyFunc); err != nil {
		return nil, err
	}

	switch {
	case claims.Issuer != Issuer:
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	case claims.ExpiresAt == nil:
		return nil, fmt.Errorf("session token has no expiry")
	}

	if err := validation.Instance().Struct(claims); err != nil {
		return nil, err
	}

	switch {
	case claims.Subject == "":
		return nil, fmt.Errorf("session token has no subject")
	case claims.ID == "":
		return nil, fmt.Errorf("session token has no session id")
	}

	return claims, nil
}
