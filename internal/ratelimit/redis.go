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
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ensure RedisStore implements Store at compile time.
var _ Store = (*RedisStore)(nil)

// hitScript implements the fixed window on the server so the check and the
// increment cannot interleave across instances. It returns
// {allowed, count, pttl}.
var hitScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current then
  redis.call('SET', KEYS[1], 1, 'PX', ARGV[2])
  return {1, 1, tonumber(ARGV[2])}
end
local ttl = redis.call('PTTL', KEYS[1])
if tonumber(current) >= tonumber(ARGV[1]) then
  return {0, tonumber(current), ttl}
end
local count = redis.call('INCR', KEYS[1])
return {1, count, ttl}
`)

// undoScript decrements the counter unless its key was recreated after the
// hit, which shows as a PTTL longer than the hit's remaining window plus
// ARGV[2] of slack.
var undoScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current or tonumber(current) <= 0 then
  return 0
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl > tonumber(ARGV[1]) + tonumber(ARGV[2]) then
  return 0
end
return redis.call('DECR', KEYS[1])
`)

// undoSlack absorbs the delay between Hit reading PTTL and computing ResetAt.
const undoSlack = time.Second

// RedisStore keeps fixed-window counters in Redis. Keys expire with their
// window, which replaces the record on the next hit.
type RedisStore struct {
	client redis.Scripter
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a RedisStore. prefix is prepended to every key.
func NewRedisStore(
	client redis.Scripter,
	prefix string,
) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Hit counts a request in Redis.
func (s *RedisStore) Hit(
	ctx context.Context,
	key string,
	rule Rule,
) (Decision, error) {
	res, err := hitScript.Run(
		ctx,
		s.client,
		[]string{s.prefix + key},
		rule.Max,
		rule.Window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("run rate limit script: %w", err)
	}

	if len(res) != 3 {
		return Decision{}, fmt.Errorf("unexpected rate limit script result: %v", res)
	}

	ttl := time.Duration(res[2]) * time.Millisecond
	if ttl < 0 {
		ttl = 0
	}

	count := int(res[1])
	d := Decision{
		Allowed: res[0] == 1,
		Count:   count,
		ResetAt: s.now().Add(ttl),
	}

	if d.Allowed {
		d.Remaining = remaining(rule, count)
	} else {
		d.RetryAfter = ttl
	}

	return d, nil
}

// Undo decrements the counter for key if it is still the window hit was
// counted in.
func (s *RedisStore) Undo(
	ctx context.Context,
	key string,
	_ Rule,
	hit Decision,
) error {
	left := hit.ResetAt.Sub(s.now())
	if left <= 0 {
		return nil
	}

	err := undoScript.Run(
		ctx,
		s.client,
		[]string{s.prefix + key},
		left.Milliseconds(),
		undoSlack.Milliseconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("run rate limit undo script: %w", err)
	}

	return nil
}
