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

// Package ratelimit implements the per-client request throttles used by the
// API. Counters live behind the Store interface so the in-process fixed
// window can be swapped for Redis when several instances share a limit.
package ratelimit

import (
	"context"
	"math"
	"time"
)

// UnknownClient is the key used when no client address can be resolved.
const UnknownClient = "unknown"

// Rule is a named limit: at most Max requests per Window for each key.
type Rule struct {
	// Name namespaces the counters so distinct limiters never share state.
	Name string
	// Max is the number of requests admitted per window.
	Max int
	// Window is the length of one counting window.
	Window time.Duration
}

// Decision is the outcome of counting one request.
type Decision struct {
	// Allowed is false when the request must be rejected.
	Allowed bool
	// Count is the number of requests counted in the current window.
	Count int
	// Remaining is how many more requests the window admits.
	Remaining int
	// ResetAt is when the current window ends.
	ResetAt time.Time
	// RetryAfter is how long a rejected client should wait.
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}

	return int(math.Ceil(d.RetryAfter.Seconds()))
}

// Store counts requests per key.
type Store interface {
	// Hit counts one request for key under rule and decides whether it is
	// admitted. The check and the increment happen as one atomic step.
	Hit(ctx context.Context, key string, rule Rule) (Decision, error)
	// Undo reverses a previously admitted Hit, used by limiters that do not
	// count successful requests. hit is the Decision that Hit returned; a
	// window that has since rolled over is left untouched.
	Undo(ctx context.Context, key string, rule Rule, hit Decision) error
}

// Key builds the namespaced storage key for a client under rule.
func Key(
	rule Rule,
	client string,
) string {
	if client == "" {
		client = UnknownClient
	}

	return rule.Name + ":" + client
}

func remaining(
	rule Rule,
	count int,
) int {
	if r := rule.Max - count; r > 0 {
		return r
	}

	return 0
}
