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
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ensure LogStore implements Store at compile time.
var _ Store = (*LogStore)(nil)

// ErrNotFound is returned when an entry id is unknown to a store.
var ErrNotFound = errors.New("audit entry not found")

// LogStore writes each entry to a dedicated logger and keeps the most recent
// entries in a bounded ring for the admin read endpoints.
type LogStore struct {
	logger *slog.Logger

	mu      sync.RWMutex
	ring    []Entry
	next    int
	size    int
	byIndex map[string]int
}

// NewLogStore creates a LogStore retaining up to capacity entries.
func NewLogStore(
	logger *slog.Logger,
	capacity int,
) *LogStore {
	if capacity < 1 {
		capacity = 1
	}

	return &LogStore{
		logger:  logger,
		ring:    make([]Entry, capacity),
		byIndex: make(map[string]int, capacity),
	}
}

// Write logs the entry and retains it in the ring. The line carries the
// whole entry under "entry" so it is a complete record on its own; the log
// time is when the write ran, not when the response completed.
func (s *LogStore) Write(
	ctx context.Context,
	entry Entry,
) error {
	s.logger.LogAttrs(
		ctx,
		slog.LevelInfo,
		"audit",
		slog.String("audit_id", entry.ID),
		slog.String("action", string(entry.Action)),
		slog.Bool("phi", entry.Sensitivity.TouchesSensitiveResource),
		slog.Any("entry", entry),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.size == len(s.ring) {
		delete(s.byIndex, s.ring[s.next].ID)
	} else {
		s.size++
	}

	s.ring[s.next] = entry
	s.byIndex[entry.ID] = s.next
	s.next = (s.next + 1) % len(s.ring)

	return nil
}

// Get retrieves a retained entry by ID.
func (s *LogStore) Get(
	_ context.Context,
	id string,
) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byIndex[id]
	if !ok {
		return nil, fmt.Errorf("get audit entry %s: %w", id, ErrNotFound)
	}

	entry := s.ring[idx]

	return &entry, nil
}

// List returns retained entries newest first.
func (s *LogStore) List(
	_ context.Context,
	limit int,
	offset int,
) ([]Entry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := s.size
	if offset >= total || limit <= 0 {
		return []Entry{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	entries := make([]Entry, 0, end-offset)
	for i := offset; i < end; i++ {
		entries = append(entries, s.at(i))
	}

	return entries, total, nil
}

// ListAll returns every retained entry newest first.
func (s *LogStore) ListAll(
	ctx context.Context,
) ([]Entry, error) {
	s.mu.RLock()
	total := s.size
	s.mu.RUnlock()

	entries, _, err := s.List(ctx, total, 0)

	return entries, err
}

// at returns the i-th newest entry. Callers hold the lock.
func (s *LogStore) at(
	i int,
) Entry {
	n := len(s.ring)
	return s.ring[(s.next-1-i+n*2)%n]
}
