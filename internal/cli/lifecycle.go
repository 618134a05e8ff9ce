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
package cli

import (
	"context"
	"time"
)

// ShutdownTimeout bounds the graceful stop of all components.
const ShutdownTimeout = 10 * time.Second

// Lifecycle represents a long-running server or background scheduler.
type Lifecycle interface {
	// Start starts the component without blocking.
	Start()
	// Stop gracefully shuts down the component.
	Stop(ctx context.Context)
}

// StartAll starts components in order.
func StartAll(
	components ...Lifecycle,
) {
	for _, c := range components {
		c.Start()
	}
}

// RunServer blocks until ctx is cancelled, then stops the components in
// reverse start order under ShutdownTimeout and runs the cleanup functions,
// last registered first.
func RunServer(
	ctx context.Context,
	components []Lifecycle,
	cleanupFns ...func(),
) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		ShutdownTimeout,
	)
	defer cancel()

	for i := len(components) - 1; i >= 0; i-- {
		components[i].Stop(shutdownCtx)
	}

	for i := len(cleanupFns) - 1; i >= 0; i-- {
		cleanupFns[i]()
	}
}
