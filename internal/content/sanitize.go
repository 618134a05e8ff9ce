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
package content

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from user supplied HTML.
type Sanitizer struct {
	rich  *bluemonday.Policy
	plain *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer. Rich fields keep the formatting allowed
// by bluemonday's UGC policy; plain fields lose all markup.
func NewSanitizer() *Sanitizer {
	rich := bluemonday.UGCPolicy()
	rich.RequireNoFollowOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		rich:  rich,
		plain: bluemonday.StrictPolicy(),
	}
}

// HTML sanitizes a rich text field.
func (s *Sanitizer) HTML(
	in string,
) string {
	return strings.TrimSpace(s.rich.Sanitize(in))
}

// Text removes all markup from a plain field.
func (s *Sanitizer) Text(
	in string,
) string {
	return strings.TrimSpace(s.plain.Sanitize(in))
}

// Article returns a copy of a with every field sanitized.
func (s *Sanitizer) Article(
	a Article,
) Article {
	tags := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		if t = s.Text(t); t != "" {
			tags = append(tags, t)
		}
	}

	return Article{
		Title:     s.Text(a.Title),
		Slug:      s.Text(a.Slug),
		Summary:   s.Text(a.Summary),
		Body:      s.HTML(a.Body),
		Tags:      tags,
		Published: a.Published,
	}
}

// Job returns a copy of j with every field sanitized.
func (s *Sanitizer) Job(
	j Job,
) Job {
	return Job{
		Title:          s.Text(j.Title),
		Location:       s.Text(j.Location),
		EmploymentType: s.Text(j.EmploymentType),
		Description:    s.HTML(j.Description),
		Open:           j.Open,
	}
}
