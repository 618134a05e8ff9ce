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
	"sort"
	"sync"
	"time"
)

// Cache holds recent decisions keyed by IP. Entries older than the TTL are
// ignored by Get and dropped by the next sweep; the sweep also trims the
// oldest entries once the cache grows past its size cap. Sweeps run
// opportunistically from the request path, at most once per interval.
type Cache struct {
	mu            sync.Mutex
	entries       map[string]CacheEntry
	ttl           time.Duration
	maxEntries    int
	sweepInterval time.Duration
	lastSweep     time.Time
	now           func() time.Time
}

// NewCache creates a Cache. A nil now uses time.Now.
func NewCache(
	ttl time.Duration,
	maxEntries int,
	sweepInterval time.Duration,
	now func() time.Time,
) *Cache {
	if now == nil {
		now = time.Now
	}

	return &Cache{
		entries:       make(map[string]CacheEntry),
		ttl:           ttl,
		maxEntries:    maxEntries,
		sweepInterval: sweepInterval,
		lastSweep:     now(),
		now:           now,
	}
}

// Get returns the entry for ip if it is younger than the TTL.
func (c *Cache) Get(
	ip string,
) (CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ip]
	if !ok || c.now().Sub(e.Timestamp) >= c.ttl {
		return CacheEntry{}, false
	}

	return e, true
}

// Set stores a decision for ip, stamped with the current time.
func (c *Cache) Set(
	ip string,
	country string,
	allowed bool,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ip] = CacheEntry{
		Country:   country,
		Allowed:   allowed,
		Timestamp: c.now(),
	}
}

// MaybeSweep runs Sweep if at least one interval has passed since the last
// sweep. It returns the number of entries removed.
func (c *Cache) MaybeSweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Sub(c.lastSweep) < c.sweepInterval {
		return 0
	}

	return c.sweepLocked(now)
}

// Sweep removes stale entries, then the oldest entries until the cache is
// within its size cap. It returns the number of entries removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sweepLocked(c.now())
}

func (c *Cache) sweepLocked(
	now time.Time,
) int {
	c.lastSweep = now
	removed := 0

	for ip, e := range c.entries {
		if now.Sub(e.Timestamp) >= c.ttl {
			delete(c.entries, ip)
			removed++
		}
	}

	if c.maxEntries <= 0 || len(c.entries) <= c.maxEntries {
		return removed
	}

	type aged struct {
		ip string
		ts time.Time
	}

	byAge := make([]aged, 0, len(c.entries))
	for ip, e := range c.entries {
		byAge = append(byAge, aged{ip: ip, ts: e.Timestamp})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].ts.Before(byAge[j].ts)
	})

	excess := len(c.entries) - c.maxEntries
	for _, a := range byAge[:excess] {
		delete(c.entries, a.ip)
		removed++
	}

	return removed
}

// Len returns the number of entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
