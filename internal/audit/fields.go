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
	"strings"

	"github.com/retr0h/caregate/internal/security"
)

// SensitiveFields walks a decoded request body and returns the dotted paths
// of keys whose normalised name contains one of fields. Arrays are not
// descended. Any failure while walking yields no fields.
func SensitiveFields(
	body any,
	fields []string,
) (names []string) {
	defer func() {
		if r := recover(); r != nil {
			names = nil
		}
	}()

	if body == nil {
		return nil
	}

	err := security.Walk(body, "", func(path string, key string, value any) error {
		if key != "" && matchesField(key, fields) {
			names = append(names, path)
		}

		if security.IsSequence(value) {
			return security.SkipChildren
		}

		return nil
	})
	if err != nil {
		return nil
	}

	return names
}

func matchesField(
	key string,
	fields []string,
) bool {
	normalised := normaliseKey(key)
	for _, f := range fields {
		if strings.Contains(normalised, f) {
			return true
		}
	}

	return false
}

func normaliseKey(
	key string,
) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(key))
}
