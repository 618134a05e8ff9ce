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
	"io"
	"log/slog"

	"github.com/retr0h/caregate/internal/api/audit/gen"
	"github.com/retr0h/caregate/internal/audit/export"
)

// GetAuditExport streams entries as JSON lines. The export runs while the
// response is copied, so a failure after the first line can only be logged
// and the client sees a truncated stream.
func (a *Audit) GetAuditExport(
	ctx context.Context,
	request gen.GetAuditExportRequestObject,
) (gen.GetAuditExportResponseObject, error) {
	opts := export.Options{}
	if request.Params.Since != nil {
		opts.Since = *request.Params.Since
	}
	if request.Params.PhiOnly != nil && *request.Params.PhiOnly {
		opts.Filter = export.PHIOnly
	}

	pr, pw := io.Pipe()

	go func() {
		defer func() { _ = pw.Close() }()

		result, err := export.Run(
			ctx,
			a.logger,
			export.StoreFetcher(a.Store),
			export.NewStreamDestination(pw),
			opts,
		)
		if err != nil {
			a.logger.Error(
				"audit export failed",
				slog.String("error", err.Error()),
				slog.Int("exported", result.Exported),
			)
			return
		}

		a.logger.Info(
			"audit export streamed",
			slog.Int("exported", result.Exported),
			slog.Int("skipped", result.Skipped),
			slog.Int("total", result.Total),
		)
	}()

	return gen.GetAuditExport200ApplicationxNdjsonResponse{
		Body: pr,
		Headers: gen.GetAuditExport200ResponseHeaders{
			ContentDisposition: `attachment; filename="audit.jsonl"`,
		},
	}, nil
}
