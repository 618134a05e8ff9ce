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
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ensure TokenBucketStore implements Store at compile time.
var _ Store = (*TokenBucketStore)(nil)

// TokenBucketStore admits bursts of up to Max requests and refills at
// Max/Window. It trades the fixed window's boundary bursts for a smoother
// limit.
type TokenBucketStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// bucket pairs a limiter with tokens handed back by Undo. rate.Limiter
// cannot return a reservation once its time to act has passed, so refunds
// are spent before the limiter is asked.
type bucket struct {
	limiter *rate.Limiter
	refunds int
}

// NewTokenBucketStore creates an empty TokenBucketStore.
func NewTokenBucketStore(
	now func() time.Time,
) *TokenBucketStore {
	if now == nil {
		now = time.Now
	}

	return &TokenBucketStore{
		buckets: make(map[string]*bucket),
		now:     now,
	}
}

// bucket returns the key's bucket. Callers hold the lock.
func (s *TokenBucketStore) bucket(
	key string,
	rule Rule,
) *bucket {
	b, ok := s.buckets[key]
	if !ok {
		every := rule.Window
		if rule.Max > 0 {
			every = rule.Window / time.Duration(rule.Max)
		}
		b = &bucket{limiter: rate.NewLimiter(rate.Every(every), rule.Max)}
		s.buckets[key] = b
	}

	return b
}

// tokens is what the bucket holds at now, refunds included.
func (b *bucket) tokens(
	now time.Time,
) int {
	left := int(b.limiter.TokensAt(now))
	if left < 0 {
		left = 0
	}

	return left + b.refunds
}

// Hit takes one token from the key's bucket.
func (s *TokenBucketStore) Hit(
	_ context.Context,
	key string,
	rule Rule,
) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.bucket(key, rule)
	now := s.now()

	if b.refunds > 0 {
		b.refunds--
		left := b.tokens(now)

		return Decision{
			Allowed:   true,
			Count:     rule.Max - left,
			Remaining: left,
			ResetAt:   now.Add(rule.Window),
		}, nil
	}

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false, RetryAfter: rule.Window, ResetAt: now.Add(rule.Window)}, nil
	}

	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)

		return Decision{
			Allowed:    false,
			Count:      rule.Max,
			ResetAt:    now.Add(delay),
			RetryAfter: delay,
		}, nil
	}

	left := b.tokens(now)

	return Decision{
		Allowed:   true,
		Count:     rule.Max - left,
		Remaining: left,
		ResetAt:   now.Add(rule.Window),
	}, nil
}

// Undo hands one token back to the key's bucket. The bucket never holds
// more than Max tokens, so a refund after a refill is dropped.
func (s *TokenBucketStore) Undo(
	_ context.Context,
	key string,
	rule Rule,
	_ Decision,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		return nil
	}

	if b.tokens(s.now()) < rule.Max {
		b.refunds++
	}

	return nil
}
