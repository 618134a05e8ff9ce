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
package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/ratelimit"
)

type TokenBucketStorePublicTestSuite struct {
	suite.Suite

	ctx   context.Context
	clock *fakeClock
	store *ratelimit.TokenBucketStore
	rule  ratelimit.Rule
}

func (s *TokenBucketStorePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s.store = ratelimit.NewTokenBucketStore(s.clock.Now)
	s.rule = ratelimit.Rule{Name: "api", Max: 5, Window: time.Minute}
}

func (s *TokenBucketStorePublicTestSuite) TestBurstThenReject() {
	for i := 0; i < 5; i++ {
		d, err := s.store.Hit(s.ctx, "ip", s.rule)
		s.Require().NoError(err)
		s.True(d.Allowed)
	}

	d, err := s.store.Hit(s.ctx, "ip", s.rule)
	s.Require().NoError(err)
	s.False(d.Allowed)
	s.Equal(12, d.RetryAfterSeconds())
}

func (s *TokenBucketStorePublicTestSuite) TestRefill() {
	for i := 0; i < 6; i++ {
		_, err := s.store.Hit(s.ctx, "ip", s.rule)
		s.Require().NoError(err)
	}

	s.clock.Advance(12 * time.Second)

	d, err := s.store.Hit(s.ctx, "ip", s.rule)
	s.Require().NoError(err)
	s.True(d.Allowed)
}

func (s *TokenBucketStorePublicTestSuite) TestUndoRefundsToken() {
	rule := ratelimit.Rule{Name: "auth", Max: 2, Window: time.Minute}

	for i := 0; i < 5; i++ {
		d, err := s.store.Hit(s.ctx, "ip", rule)
		s.Require().NoError(err)
		s.True(d.Allowed, "hit %d", i)
		s.NoError(s.store.Undo(s.ctx, "ip", rule, d))

		s.clock.Advance(time.Second)
	}
}

func (s *TokenBucketStorePublicTestSuite) TestUndoNeverExceedsBurst() {
	d, err := s.store.Hit(s.ctx, "ip", s.rule)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	s.NoError(s.store.Undo(s.ctx, "ip", s.rule, d))

	for i := 0; i < 5; i++ {
		d, err = s.store.Hit(s.ctx, "ip", s.rule)
		s.Require().NoError(err)
		s.True(d.Allowed)
	}

	d, err = s.store.Hit(s.ctx, "ip", s.rule)
	s.Require().NoError(err)
	s.False(d.Allowed)
}

func (s *TokenBucketStorePublicTestSuite) TestUndoUnknownKey() {
	s.NoError(s.store.Undo(s.ctx, "missing", s.rule, ratelimit.Decision{}))
}

func TestTokenBucketStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(TokenBucketStorePublicTestSuite))
}
