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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retr0h/caregate/internal/cli"
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit entries",
	Run: func(cmd *cobra.Command, _ []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		store, closeFn := openAuditReader(logger)
		defer closeFn()

		entries, total, err := store.List(cmd.Context(), limit, offset)
		if err != nil {
			logFatal("failed to list audit entries", err)
		}

		if jsonOutput {
			out, _ := json.Marshal(map[string]any{
				"items":       entries,
				"total_items": total,
			})
			fmt.Println(string(out))
			return
		}

		cli.PrintCompactTable(os.Stdout, []cli.Section{cli.AuditSection(entries, total)})
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)

	auditListCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
	auditListCmd.Flags().Int("offset", 0, "Number of entries to skip")
}
