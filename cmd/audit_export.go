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
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/avfs/avfs/vfs/osfs"
	"github.com/spf13/cobra"

	"github.com/retr0h/caregate/internal/audit/export"
)

// auditExportCmd represents the auditExport command.
var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit entries as JSON lines",
	Long: `Export persisted audit entries, newest first, one JSON object per
line. Writes to --output, or stdout when unset. A file export is written
beside the target and renamed into place only once it completes.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		output, _ := cmd.Flags().GetString("output")
		batchSize, _ := cmd.Flags().GetInt("batch-size")
		since, _ := cmd.Flags().GetString("since")
		phiOnly, _ := cmd.Flags().GetBool("phi-only")

		opts := export.Options{BatchSize: batchSize}
		if since != "" {
			t, err := time.Parse(time.RFC3339, since)
			if err != nil {
				logFatal("invalid --since, expected RFC 3339", err)
			}
			opts.Since = t
		}
		if phiOnly {
			opts.Filter = export.PHIOnly
		}

		store, closeFn := openAuditReader(logger)
		defer closeFn()

		var dst export.Destination = export.NewStreamDestination(os.Stdout)
		if output != "" {
			dst = export.NewFileDestination(osfs.NewWithNoIdm(), output)
			opts.OnProgress = func(r export.Result) {
				fmt.Fprintf(os.Stderr, "\rExported %d of %d scanned", r.Exported, r.Scanned)
			}
		}

		result, err := export.Run(
			ctx,
			logger,
			export.StoreFetcher(store),
			dst,
			opts,
		)
		if err != nil {
			logFatal("export failed", err)
		}

		if output != "" {
			fmt.Fprintln(os.Stderr)
			logger.Info(
				"audit export complete",
				slog.String("file", output),
				slog.Int("exported", result.Exported),
				slog.Int("skipped", result.Skipped),
				slog.Int("total", result.Total),
			)
		}
	},
}

func init() {
	auditCmd.AddCommand(auditExportCmd)

	auditExportCmd.Flags().StringP("output", "o", "", "File to write (defaults to stdout)")
	auditExportCmd.Flags().Int("batch-size", export.DefaultBatchSize, "Entries fetched per page")
	auditExportCmd.Flags().String("since", "", "Only export entries at or after this RFC 3339 time")
	auditExportCmd.Flags().Bool("phi-only", false, "Only export entries that touched protected information")
}
