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
)

// ensure MultiStore implements Store at compile time.
var _ Store = (*MultiStore)(nil)

// MultiStore writes to every store and reads from the first.
type MultiStore struct {
	stores []Store
}

// NewMultiStore creates a MultiStore. The first store serves reads.
func NewMultiStore(
	primary Store,
	others ...Store,
) *MultiStore {
	return &MultiStore{
		stores: append([]Store{primary}, others...),
	}
}

// Write writes the entry to every store, joining any errors.
func (m *MultiStore) Write(
	ctx context.Context,
	entry Entry,
) error {
	var errs []error
	for i, s := range m.stores {
		if err := s.Write(ctx, entry); err != nil {
			errs = append(errs, fmt.Errorf("store %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Get reads from the primary store.
func (m *MultiStore) Get(
	ctx context.Context,
	id string,
) (*Entry, error) {
	return m.stores[0].Get(ctx, id)
}

// List reads from the primary store.
func (m *MultiStore) List(
	ctx context.Context,
	limit int,
	offset int,
) ([]Entry, int, error) {
	return m.stores[0].List(ctx, limit, offset)
}

// ListAll reads from the primary store.
func (m *MultiStore) ListAll(
	ctx context.Context,
) ([]Entry, error) {
	return m.stores[0].ListAll(ctx)
}
