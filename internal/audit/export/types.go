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

package export

import (
	"context"
	"io"
	"time"

	"github.com/retr0h/caregate/internal/audit"
)

// Fetcher returns one page of audit entries, newest first, and the total count.
type Fetcher func(ctx context.Context, limit int, offset int) ([]audit.Entry, int, error)

// Destination is where a run writes its JSON lines.
type Destination interface {
	// Open returns the writer for this run.
	Open(ctx context.Context) (io.Writer, error)
	// Finish completes the run. A non-nil runErr means the run failed and
	// any partial output should be discarded where possible.
	Finish(runErr error) error
}

// Filter reports whether an entry belongs in the export.
type Filter func(entry audit.Entry) bool

// ProgressFunc is called after each page with the running counts.
type ProgressFunc func(result Result)

// Options narrow and observe a run. The zero value exports everything.
type Options struct {
	// BatchSize is the page size; non-positive means DefaultBatchSize.
	BatchSize int
	// Since stops the run at the first entry older than this time.
	Since time.Time
	// Filter drops entries it rejects; nil keeps all.
	Filter Filter
	// OnProgress is called after each page.
	OnProgress ProgressFunc
}

// Result counts what a run saw.
type Result struct {
	// Total is the store size reported by the first page.
	Total int
	// Scanned is every entry read, duplicates included.
	Scanned int
	// Exported is every entry written.
	Exported int
	// Skipped entries were rejected by Filter.
	Skipped int
	// Duplicates were seen on an earlier page after new writes shifted
	// the offsets.
	Duplicates int
}

// StoreFetcher adapts an audit.Store's List to a Fetcher.
func StoreFetcher(
	store audit.Store,
) Fetcher {
	return store.List
}

// PHIOnly keeps entries that touched protected information.
func PHIOnly(
	entry audit.Entry,
) bool {
	return entry.Sensitivity.TouchesSensitiveResource
}
