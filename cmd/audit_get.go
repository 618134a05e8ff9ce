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

// auditGetCmd represents the auditGet command.
var auditGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one audit entry",
	Run: func(cmd *cobra.Command, _ []string) {
		id, _ := cmd.Flags().GetString("id")

		store, closeFn := openAuditReader(logger)
		defer closeFn()

		entry, err := store.Get(cmd.Context(), id)
		if err != nil {
			logFatal("failed to get audit entry", err, "id", id)
		}

		if jsonOutput {
			out, _ := json.Marshal(entry)
			fmt.Println(string(out))
			return
		}

		cli.PrintAuditEntry(os.Stdout, *entry)
	},
}

func init() {
	auditCmd.AddCommand(auditGetCmd)

	auditGetCmd.Flags().String("id", "", "Audit entry ID")

	_ = auditGetCmd.MarkFlagRequired("id")
}
