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

// Package records is the storage collaborator behind the intake and
// content routes: a small typed record store.
package records

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an id is unknown.
var ErrNotFound = errors.New("record not found")

// Record is a stored value with its bookkeeping fields.
type Record[T any] struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// Repository stores records of one type.
type Repository[T any] interface {
	// Create stores data under a new id.
	Create(ctx context.Context, data T) (Record[T], error)
	// Get retrieves a record by id.
	Get(ctx context.Context, id string) (Record[T], error)
	// List returns records newest first, with the total count.
	List(ctx context.Context, limit int, offset int) ([]Record[T], int, error)
	// Update replaces the data of an existing record.
	Update(ctx context.Context, id string, data T) (Record[T], error)
	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}
