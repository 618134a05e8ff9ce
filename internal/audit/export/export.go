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

// Package export copies audit entries out of a Store as JSON lines, either
// on demand or on a cron schedule.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// DefaultBatchSize is the page size when Options.BatchSize is unset.
const DefaultBatchSize = 100

// Run pages through fetch, newest first, and encodes each kept entry to
// dst. Entries arriving mid-run push older ones onto later pages, so IDs
// already written are skipped rather than written twice.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	fetch Fetcher,
	dst Destination,
	opts Options,
) (Result, error) {
	var result Result

	w, err := dst.Open(ctx)
	if err != nil {
		return result, fmt.Errorf("open audit export destination: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	runErr := copyEntries(ctx, fetch, enc, opts, &result)
	if finishErr := dst.Finish(runErr); finishErr != nil {
		if runErr != nil {
			logger.Warn(
				"failed to discard partial audit export",
				slog.String("error", finishErr.Error()),
			)
			return result, runErr
		}
		return result, fmt.Errorf("finish audit export: %w", finishErr)
	}

	return result, runErr
}

func copyEntries(
	ctx context.Context,
	fetch Fetcher,
	enc *json.Encoder,
	opts Options,
	result *Result,
) error {
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	seen := make(map[string]struct{})
	first := true

	for offset := 0; ; offset += batch {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("audit export interrupted after %d entries: %w", result.Exported, err)
		}

		page, total, err := fetch(ctx, batch, offset)
		if err != nil {
			return fmt.Errorf("list audit entries from %d: %w", offset, err)
		}
		if first {
			result.Total = total
			first = false
		}

		for _, entry := range page {
			result.Scanned++

			if !opts.Since.IsZero() && entry.Timestamp.Before(opts.Since) {
				report(opts, *result)
				return nil
			}

			if _, dup := seen[entry.ID]; dup {
				result.Duplicates++
				continue
			}
			seen[entry.ID] = struct{}{}

			if opts.Filter != nil && !opts.Filter(entry) {
				result.Skipped++
				continue
			}

			if err := enc.Encode(entry); err != nil {
				return fmt.Errorf("write audit entry %s: %w", entry.ID, err)
			}
			result.Exported++
		}

		report(opts, *result)

		if len(page) < batch {
			return nil
		}
	}
}

func report(
	opts Options,
	result Result,
) {
	if opts.OnProgress != nil {
		opts.OnProgress(result)
	}
}
