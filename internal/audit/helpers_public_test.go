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
package audit_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/retr0h/caregate/internal/audit"
)

// memStore records writes for assertions.
type memStore struct {
	mu       sync.Mutex
	entries  []audit.Entry
	writeErr error
}

func (m *memStore) Write(
	_ context.Context,
	entry audit.Entry,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = append(m.entries, entry)

	return nil
}

func (m *memStore) Get(
	_ context.Context,
	id string,
) (*audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e, nil
		}
	}

	return nil, fmt.Errorf("get %s: %w", id, audit.ErrNotFound)
}

func (m *memStore) List(
	_ context.Context,
	_ int,
	_ int,
) ([]audit.Entry, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]audit.Entry(nil), m.entries...), len(m.entries), nil
}

func (m *memStore) ListAll(
	ctx context.Context,
) ([]audit.Entry, error) {
	entries, _, err := m.List(ctx, 0, 0)

	return entries, err
}

func (m *memStore) Entries() []audit.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]audit.Entry(nil), m.entries...)
}

// slowStore holds every write for delay, or until the write context ends,
// and tracks the peak number of concurrent writes.
type slowStore struct {
	memStore

	delay   time.Duration
	mu      sync.Mutex
	running int
	peak    int
}

func (m *slowStore) Write(
	ctx context.Context,
	entry audit.Entry,
) error {
	m.mu.Lock()
	m.running++
	if m.running > m.peak {
		m.peak = m.running
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.running--
		m.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
	}

	return m.memStore.Write(ctx, entry)
}

func (m *slowStore) Peak() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.peak
}
