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

// Package security provides the request inspection predicates used by the
// API pipeline: a depth-capped walker over decoded JSON values and the
// SQL-injection and XSS pattern matchers built on top of it.
package security

import (
	"errors"
	"fmt"
	"sort"
)

// MaxDepth is the deepest level Walk descends before giving up.
const MaxDepth = 32

// SkipChildren is returned by a VisitFunc to skip descending into the
// current map or slice. It is not returned as an error by Walk.
var SkipChildren = errors.New("skip children")

// ErrDepthExceeded is returned when a value nests deeper than MaxDepth.
var ErrDepthExceeded = errors.New("value exceeds maximum nesting depth")

// VisitFunc is called for every node reached by Walk. The root node is
// visited with key "". Returning SkipChildren prunes the subtree; any
// other non-nil error stops the walk and is returned by Walk.
type VisitFunc func(path string, key string, value any) error

// Walk traverses a JSON-like value (maps, slices and scalars as produced by
// encoding/json, url.Values, or echo path params) depth first. Map keys are
// visited in sorted order so results are deterministic. Nested map keys are
// joined with "." and slice elements are addressed as "path[i]".
func Walk(
	value any,
	path string,
	visit VisitFunc,
) error {
	return walk(value, path, "", 0, visit)
}

func walk(
	value any,
	path string,
	key string,
	depth int,
	visit VisitFunc,
) error {
	if depth > MaxDepth {
		return ErrDepthExceeded
	}

	if err := visit(path, key, value); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	switch v := value.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if err := walk(v[k], joinPath(path, k), k, depth+1, visit); err != nil {
				return err
			}
		}
	case map[string]string:
		for _, k := range sortedKeys(v) {
			if err := walk(v[k], joinPath(path, k), k, depth+1, visit); err != nil {
				return err
			}
		}
	case map[string][]string:
		for _, k := range sortedKeys(v) {
			if err := walk(v[k], joinPath(path, k), k, depth+1, visit); err != nil {
				return err
			}
		}
	case []any:
		for i, item := range v {
			if err := walk(item, indexPath(path, i), key, depth+1, visit); err != nil {
				return err
			}
		}
	case []string:
		for i, item := range v {
			if err := walk(item, indexPath(path, i), key, depth+1, visit); err != nil {
				return err
			}
		}
	}

	return nil
}

func sortedKeys[V any](
	m map[string]V,
) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func joinPath(
	path string,
	key string,
) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func indexPath(
	path string,
	i int,
) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

// IsContainer reports whether value is a map or slice that Walk descends into.
func IsContainer(
	value any,
) bool {
	switch value.(type) {
	case map[string]any, map[string]string, map[string][]string, []any, []string:
		return true
	}

	return false
}

// IsSequence reports whether value is a slice that Walk descends into.
func IsSequence(
	value any,
) bool {
	switch value.(type) {
	case []any, []string:
		return true
	}

	return false
}
