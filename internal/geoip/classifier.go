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
package geoip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Classifier maps client addresses to allow/deny decisions.
type Classifier struct {
	logger *slog.Logger
	lookup Lookup
	cache  *Cache
	opts   Options
}

// NewClassifier creates a Classifier. An empty TargetCountry defaults to
// "US" and an empty OnLookupFailure to FailOpen.
func NewClassifier(
	logger *slog.Logger,
	lookup Lookup,
	cache *Cache,
	opts Options,
) *Classifier {
	if opts.TargetCountry == "" {
		opts.TargetCountry = "US"
	}
	if opts.OnLookupFailure == "" {
		opts.OnLookupFailure = FailOpen
	}

	return &Classifier{
		logger: logger,
		lookup: lookup,
		cache:  cache,
		opts:   opts,
	}
}

// Classify decides whether ip may proceed. Private addresses and an empty
// ip are always allowed without a lookup. Lookup failures are resolved by
// the configured FailurePolicy and are never cached.
func (c *Classifier) Classify(
	ctx context.Context,
	ip string,
) Result {
	if ip == "" {
		return Result{Allowed: true, Reason: ReasonUnresolved}
	}

	if IsPrivate(ip) {
		return Result{Allowed: true, Reason: ReasonPrivate}
	}

	if removed := c.cache.MaybeSweep(); removed > 0 {
		c.logger.Debug(
			"swept geoip cache",
			slog.Int("removed", removed),
			slog.Int("remaining", c.cache.Len()),
		)
	}

	if e, ok := c.cache.Get(ip); ok {
		return Result{Country: e.Country, Allowed: e.Allowed, Reason: ReasonCached}
	}

	res, err := c.lookup.Lookup(ctx, ip)
	if err == nil {
		err = validate(res)
	}
	if err != nil {
		allowed := c.opts.OnLookupFailure != FailClosed
		c.logger.Warn(
			"geoip lookup failed",
			slog.String("ip", ip),
			slog.String("error", err.Error()),
			slog.String("policy", string(c.opts.OnLookupFailure)),
			slog.Bool("allowed", allowed),
		)

		return Result{Allowed: allowed, Reason: ReasonFailure}
	}

	allowed := strings.EqualFold(res.CountryCode, c.opts.TargetCountry)
	c.cache.Set(ip, res.Country, allowed)

	return Result{Country: res.Country, Allowed: allowed, Reason: ReasonLookup}
}

func validate(
	res *LookupResult,
) error {
	if res == nil {
		return fmt.Errorf("empty lookup response")
	}

	if res.Status != StatusSuccess {
		return fmt.Errorf("lookup status %q: %s", res.Status, res.Message)
	}

	if res.CountryCode == "" {
		return fmt.Errorf("lookup response missing country code")
	}

	return nil
}
