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
package content_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/content"
)

type SanitizePublicTestSuite struct {
	suite.Suite

	sanitizer *content.Sanitizer
}

func (s *SanitizePublicTestSuite) SetupTest() {
	s.sanitizer = content.NewSanitizer()
}

func (s *SanitizePublicTestSuite) TestHTML() {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps formatting",
			input: "<p>Hello <strong>world</strong></p>",
			want:  "<p>Hello <strong>world</strong></p>",
		},
		{
			name:  "drops script tags",
			input: `<p>Hi</p><script>alert(1)</script>`,
			want:  "<p>Hi</p>",
		},
		{
			name:  "drops inline handlers",
			input: `<img src="/a.png" onerror="alert(1)">`,
			want:  `<img src="/a.png">`,
		},
		{
			name:  "drops javascript links",
			input: `<a href="javascript:alert(1)">x</a>`,
			want:  "x",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, s.sanitizer.HTML(tt.input))
		})
	}
}

func (s *SanitizePublicTestSuite) TestArticle() {
	got := s.sanitizer.Article(content.Article{
		Title:     "<b>Caring</b> for parents",
		Slug:      "caring",
		Body:      `<p>Tips</p><iframe src="https://evil.example"></iframe>`,
		Tags:      []string{"<i>family</i>", "<script></script>"},
		Published: true,
	})

	s.Equal("Caring for parents", got.Title)
	s.Equal("<p>Tips</p>", got.Body)
	s.Equal([]string{"family"}, got.Tags)
	s.True(got.Published)
}

func (s *SanitizePublicTestSuite) TestJob() {
	got := s.sanitizer.Job(content.Job{
		Title:       "Home Health Aide",
		Location:    "Austin <script>x</script>",
		Description: `<ul><li onclick="x()">Days</li></ul>`,
		Open:        true,
	})

	s.Equal("Austin", got.Location)
	s.Equal("<ul><li>Days</li></ul>", got.Description)
}

func TestSanitizePublicTestSuite(t *testing.T) {
	suite.Run(t, new(SanitizePublicTestSuite))
}
