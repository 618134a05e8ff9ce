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
package records

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ensure Memory implements Repository at compile time.
var _ Repository[struct{}] = (*Memory[struct{}])(nil)

// Memory keeps records in process memory in insertion order.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[string]Record[T]
	order []string
	now   func() time.Time
}

// NewMemory creates an empty Memory repository.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{
		items: make(map[string]Record[T]),
		now:   time.Now,
	}
}

// Create stores data under a new id.
func (m *Memory[T]) Create(
	_ context.Context,
	data T,
) (Record[T], error) {
	now := m.now().UTC()
	rec := Record[T]{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
		Data:      data,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[rec.ID] = rec
	m.order = append(m.order, rec.ID)

	return rec, nil
}

// Get retrieves a record by id.
func (m *Memory[T]) Get(
	_ context.Context,
	id string,
) (Record[T], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.items[id]
	if !ok {
		return Record[T]{}, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}

	return rec, nil
}

// List returns records newest first.
func (m *Memory[T]) List(
	_ context.Context,
	limit int,
	offset int,
) ([]Record[T], int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.order)
	if offset >= total || limit <= 0 {
		return []Record[T]{}, total, nil
	}

	end := min(offset+limit, total)
	out := make([]Record[T], 0, end-offset)
	for i := offset; i < end; i++ {
		out = append(out, m.items[m.order[total-1-i]])
	}

	return out, total, nil
}

// Update replaces the data of an existing record.
func (m *Memory[T]) Update(
	_ context.Context,
	id string,
	data T,
) (Record[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.items[id]
	if !ok {
		return Record[T]{}, fmt.Errorf("update record %s: %w", id, ErrNotFound)
	}

	rec.Data = data
	rec.UpdatedAt = m.now().UTC()
	m.items[id] = rec

	return rec, nil
}

// Delete removes a record.
func (m *Memory[T]) Delete(
	_ context.Context,
	id string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("delete record %s: %w", id, ErrNotFound)
	}

	delete(m.items, id)
	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id })

	return nil
}
