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

// Package common holds the request-scoped values shared by the pipeline
// stages and the route handlers.
package common

// ErrorResponse is the JSON body of every rejection and error.
type ErrorResponse struct {
	// Error is a human readable message.
	Error string `json:"error"`
	// RetryAfter is set on 429 responses, in seconds.
	RetryAfter *int `json:"retryAfter,omitempty"`
	// Stack carries panic stack lines outside production.
	Stack []string `json:"stack,omitempty"`
}

// Session is the caller's identity, resolved once per request before the
// audit stage and never modified afterwards.
type Session struct {
	// ID is the session token id, empty for anonymous callers.
	ID              string
	UserID          string
	IsAuthenticated bool
	Roles           []string
	Permissions     []string
}

// Anonymous is the session of an unauthenticated caller.
var Anonymous = Session{}

// Caller is what strict handlers know about the request beyond their
// generated request object.
type Caller struct {
	Session   Session
	IPAddress string
	UserAgent string
}
