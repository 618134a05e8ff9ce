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
)

// ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)

type record struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a fixed-window counter held in process memory. Records are
// replaced, never merged, once their window has passed, and are only
// dropped when the process restarts.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock overrides the time source.
func WithClock(
	now func() time.Time,
) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(
	opts ...MemoryOption,
) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]*record),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Hit counts a request. The whole read-check-write runs under one lock.
func (s *MemoryStore) Hit(
	_ context.Context,
	key string,
	rule Rule,
) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r, ok := s.records[key]
	if !ok || now.After(r.resetAt) {
		r = &record{count: 1, resetAt: now.Add(rule.Window)}
		s.records[key] = r

		return Decision{
			Allowed:   true,
			Count:     r.count,
			Remaining: remaining(rule, r.count),
			ResetAt:   r.resetAt,
		}, nil
	}

	if r.count >= rule.Max {
		return Decision{
			Allowed:    false,
			Count:      r.count,
			ResetAt:    r.resetAt,
			RetryAfter: r.resetAt.Sub(now),
		}, nil
	}

	r.count++

	return Decision{
		Allowed:   true,
		Count:     r.count,
		Remaining: remaining(rule, r.count),
		ResetAt:   r.resetAt,
	}, nil
}

// Undo decrements the record for key when it is still the window hit was
// counted in.
func (s *MemoryStore) Undo(
	_ context.Context,
	key string,
	_ Rule,
	hit Decision,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[key]
	if !ok || !r.resetAt.Equal(hit.ResetAt) || s.now().After(r.resetAt) || r.count == 0 {
		return nil
	}
	r.count--

	return nil
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
