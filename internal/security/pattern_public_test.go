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
package security_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/security"
)

type PatternPublicTestSuite struct {
	suite.Suite
}

func (s *PatternPublicTestSuite) TestSQLInjectionMatchString() {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "drop table with trailing comment",
			input: "1; DROP TABLE users;--",
			want:  true,
		},
		{
			name:  "union select",
			input: "1 UNION ALL SELECT password FROM admins",
			want:  true,
		},
		{
			name:  "select column list from table",
			input: "select name, dob from patients",
			want:  true,
		},
		{
			name:  "tautology with comment",
			input: "admin' OR 1=1 --",
			want:  true,
		},
		{
			name:  "block comment",
			input: "name/* bypass */",
			want:  true,
		},
		{
			name:  "xp_cmdshell",
			input: "EXEC master..xp_cmdshell 'dir'",
			want:  true,
		},
		{
			name:  "exec call",
			input: "exec(sp_who)",
			want:  true,
		},
		{
			name:  "plain sentence mentioning select",
			input: "I would like to select a caregiver from your agency",
			want:  false,
		},
		{
			name:  "phone number",
			input: "555-123-4567",
			want:  false,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, security.SQLInjection.MatchString(tt.input))
		})
	}
}

func (s *PatternPublicTestSuite) TestXSSMatchString() {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "script tag",
			input: "<script>alert(1)</script>",
			want:  true,
		},
		{
			name:  "script tag with whitespace and case",
			input: "< ScRiPt src=//evil>",
			want:  true,
		},
		{
			name:  "javascript scheme",
			input: "JavaScript:alert(document.cookie)",
			want:  true,
		},
		{
			name:  "inline event handler",
			input: `<img src=x onerror="alert(1)">`,
			want:  true,
		},
		{
			name:  "iframe",
			input: `<iframe src="https://evil.example">`,
			want:  true,
		},
		{
			name:  "embed",
			input: "<embed src=x>",
			want:  true,
		},
		{
			name:  "object",
			input: "<object data=x>",
			want:  true,
		},
		{
			name:  "plain text with equals outside a tag",
			input: "one = two",
			want:  false,
		},
		{
			name:  "harmless markup",
			input: "<b>bold</b>",
			want:  false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, security.XSS.MatchString(tt.input))
		})
	}
}

func (s *PatternPublicTestSuite) TestIsSuspicious() {
	tests := []struct {
		name    string
		matcher *security.Matcher
		value   any
		want    bool
	}{
		{
			name:    "nested map value",
			matcher: security.SQLInjection,
			value: map[string]any{
				"contact": map[string]any{
					"message": "1; DROP TABLE users;--",
				},
			},
			want: true,
		},
		{
			name:    "value inside a slice",
			matcher: security.XSS,
			value: map[string]any{
				"tags": []any{"ok", "<script>x</script>"},
			},
			want: true,
		},
		{
			name:    "query style values",
			matcher: security.XSS,
			value: map[string][]string{
				"q": {"javascript:alert(1)"},
			},
			want: true,
		},
		{
			name:    "path params",
			matcher: security.SQLInjection,
			value:   map[string]string{"id": "1 union select 1"},
			want:    true,
		},
		{
			name:    "clean body",
			matcher: security.SQLInjection,
			value: map[string]any{
				"name":  "Jane",
				"age":   float64(82),
				"notes": "Needs help with meals",
			},
			want: false,
		},
		{
			name:    "nil value",
			matcher: security.XSS,
			value:   nil,
			want:    false,
		},
		{
			name:    "nesting beyond the depth cap",
			matcher: security.XSS,
			value:   nest(security.MaxDepth + 2),
			want:    true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, tt.matcher.IsSuspicious(tt.value))
		})
	}
}

func (s *PatternPublicTestSuite) TestSuspiciousKeys() {
	body := map[string]any{
		"name":    "Jane",
		"message": "1; DROP TABLE users;--",
		"extra": map[string]any{
			"q": "' OR 1=1 --",
		},
	}

	s.Equal([]string{"extra", "message"}, security.SQLInjection.SuspiciousKeys(body))
	s.Nil(security.SQLInjection.SuspiciousKeys("not a map"))
	s.Equal("sql_injection", security.SQLInjection.Name())
}

func nest(
	depth int,
) any {
	var v any = "leaf"
	for i := 0; i < depth; i++ {
		v = map[string]any{"n": v}
	}

	return v
}

func TestPatternPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PatternPublicTestSuite))
}
