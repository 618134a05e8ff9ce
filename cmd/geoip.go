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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/caregate/internal/cli"
	"github.com/retr0h/caregate/internal/geoip"
)

// geoipCmd represents the geoip command.
var geoipCmd = &cobra.Command{
	Use:   "geoip",
	Short: "Inspect geo-IP decisions",
}

// geoipLookupCmd represents the geoipLookup command.
var geoipLookupCmd = &cobra.Command{
	Use:   "lookup [ip]",
	Short: "Classify an address the way the API would",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ip := args[0]
		if !geoip.IsValid(ip) {
			logFatal("invalid ip address", nil, "ip", ip)
		}

		res := newGeoClassifier(logger, appConfig.Geo).Classify(cmd.Context(), ip)

		if jsonOutput {
			out, _ := json.Marshal(map[string]any{
				"ip":      ip,
				"country": res.Country,
				"allowed": res.Allowed,
				"reason":  res.Reason,
			})
			fmt.Println(string(out))
			return
		}

		cli.PrintKV(os.Stdout, "IP", ip, "Country", res.Country)
		cli.PrintKV(os.Stdout, "Allowed", strconv.FormatBool(res.Allowed), "Reason", res.Reason)
	},
}

func init() {
	rootCmd.AddCommand(geoipCmd)
	geoipCmd.AddCommand(geoipLookupCmd)
}
