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
package health

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ensure DependencyChecker implements ComponentChecker at compile time.
var _ ComponentChecker = (*DependencyChecker)(nil)

// DependencyChecker runs a named check per dependency, such as the Redis
// rate store or the NATS audit bucket.
type DependencyChecker struct {
	Checks map[string]func(ctx context.Context) error
}

// CheckHealth runs every check and joins the failures.
func (c *DependencyChecker) CheckHealth(
	ctx context.Context,
) error {
	results := c.CheckComponents(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := results[name]; err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// CheckComponents runs every check and returns its result by name.
func (c *DependencyChecker) CheckComponents(
	ctx context.Context,
) map[string]error {
	results := make(map[string]error, len(c.Checks))
	for name, check := range c.Checks {
		if check == nil {
			results[name] = nil
			continue
		}
		results[name] = check(ctx)
	}

	return results
}
