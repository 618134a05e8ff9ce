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

// Package content holds the articles and job postings edited from the back
// office. Their routes skip the SQLi and XSS scans, so every HTML field is
// passed through a Sanitizer before it is stored.
package content

// Article is a blog or resource page.
type Article struct {
	Title     string   `json:"title"               validate:"required,max=200"`
	Slug      string   `json:"slug"                validate:"required,max=200"`
	Summary   string   `json:"summary,omitempty"   validate:"max=500"`
	Body      string   `json:"body"                validate:"required"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
}

// Job is a caregiver position advertised on the careers page.
type Job struct {
	Title          string `json:"title"                     validate:"required,max=200"`
	Location       string `json:"location"                  validate:"required,max=200"`
	EmploymentType string `json:"employment_type,omitempty" validate:"omitempty,oneof=full_time part_time per_diem"`
	Description    string `json:"description"               validate:"required"`
	Open           bool   `json:"open"`
}
