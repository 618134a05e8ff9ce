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
package security

import (
	"errors"
	"regexp"
)

var errMatched = errors.New("pattern matched")

// Matcher tests strings against an ordered set of regular expressions.
type Matcher struct {
	name     string
	patterns []*regexp.Regexp
}

// NewMatcher compiles the given expressions into a Matcher. It panics on an
// invalid expression, like regexp.MustCompile.
func NewMatcher(
	name string,
	exprs ...string,
) *Matcher {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}

	return &Matcher{
		name:     name,
		patterns: patterns,
	}
}

// Name returns the matcher's label, used in logs and metrics.
func (m *Matcher) Name() string {
	return m.name
}

// MatchString reports whether s matches any pattern, checking in order and
// stopping at the first hit.
func (m *Matcher) MatchString(
	s string,
) bool {
	for _, p := range m.patterns {
		if p.MatchString(s) {
			return true
		}
	}

	return false
}

// IsSuspicious walks value and reports whether any string leaf matches.
// Values nested deeper than MaxDepth are treated as suspicious.
func (m *Matcher) IsSuspicious(
	value any,
) bool {
	err := Walk(value, "", func(_ string, _ string, v any) error {
		if s, ok := v.(string); ok && m.MatchString(s) {
			return errMatched
		}
		return nil
	})

	return err != nil
}

// SuspiciousKeys returns the sorted top-level keys of values whose value is
// suspicious. Non-map input yields nil.
func (m *Matcher) SuspiciousKeys(
	values any,
) []string {
	var keys []string
	switch v := values.(type) {
	case map[string]any:
		for _, k := range sortedKeys(v) {
			if m.IsSuspicious(v[k]) {
				keys = append(keys, k)
			}
		}
	case map[string]string:
		for _, k := range sortedKeys(v) {
			if m.MatchString(v[k]) {
				keys = append(keys, k)
			}
		}
	case map[string][]string:
		for _, k := range sortedKeys(v) {
			if m.IsSuspicious(v[k]) {
				keys = append(keys, k)
			}
		}
	}

	return keys
}

// SQLInjection flags SQL keyword combinations, comment sequences,
// xp_cmdshell and exec( calls.
var SQLInjection = NewMatcher(
	"sql_injection",
	`(?i)\bunion\s+(all\s+)?select\b`,
	`(?i)\bselect\s+(\*|[\w.]+(\s*,\s*[\w.]+)*)\s+from\s+\w+`,
	`(?i)\b(insert\s+into|update\s+\w+\s+set|delete\s+from|drop\s+(table|database)|create\s+(table|database)|alter\s+table|truncate\s+table)\b`,
	`(?i)\b(or|and)\s+['"]?\w+['"]?\s*=\s*['"]?\w+['"]?\s*(--|#|;|$)`,
	`(?i);\s*(drop|shutdown|truncate)\b`,
	`(?i)['"]\s*;\s*(delete|insert|update)\b`,
	`(;|'|")\s*--`,
	`--\s*$`,
	`/\*.*?\*/`,
	`(?i)\bxp_cmdshell\b`,
	`(?i)\bexec(ute)?\s*\(`,
)

// XSS flags script tags, javascript: URLs, inline event handlers and
// iframe/embed/object tags.
var XSS = NewMatcher(
	"xss",
	`(?i)<\s*/?\s*script\b`,
	`(?i)javascript\s*:`,
	`(?i)<[^>]*\bon[a-z]+\s*=`,
	`(?i)<\s*(iframe|embed|object)\b`,
)
