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
	"context"

	"github.com/spf13/cobra"

	"github.com/retr0h/caregate/internal/cli"
	"github.com/retr0h/caregate/internal/telemetry"
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long: `Start the API server with its request pipeline, audit recorder and,
when scheduled, the audit export job. Shuts down gracefully on SIGINT/SIGTERM.
`,
	PreRun: validateConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			appConfig.Environment,
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			logFatal("failed to initialize tracer", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			logFatal("failed to initialize meter", err)
		}

		sm, bundle := setupAPIServer(ctx, logger, metricsHandler, metricsPath)

		components := append([]cli.Lifecycle{sm}, bundle.components...)
		cli.StartAll(components...)

		// Cleanups run in reverse, so the recorder drains before the stores
		// close and telemetry shuts down last.
		cleanups := []func(){
			func() { flush(shutdownMeter) },
			func() { flush(shutdownTracer) },
		}
		cleanups = append(cleanups, bundle.cleanups...)

		cli.RunServer(ctx, components, cleanups...)
	},
}

func flush(
	shutdown func(context.Context) error,
) {
	ctx, cancel := context.WithTimeout(context.Background(), cli.ShutdownTimeout)
	defer cancel()

	if err := shutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown failed", "error", err.Error())
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
}
