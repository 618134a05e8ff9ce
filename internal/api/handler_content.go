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
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/content"
	"github.com/retr0h/caregate/internal/authtoken"
	domain "github.com/retr0h/caregate/internal/content"
	"github.com/retr0h/caregate/internal/records"
)

// GetContentHandler returns the admin routes for articles and job postings.
func (s *Server) GetContentHandler(
	articles records.Repository[domain.Article],
	jobs records.Repository[domain.Job],
) []func(e *echo.Echo) {
	contentHandler := content.New(s.logger, articles, jobs, domain.NewSanitizer())
	canWrite := requireAdmin(authtoken.PermContentWrite)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			admin := e.Group("/api/admin")
			admin.POST("/articles", contentHandler.PostArticle, canWrite)
			admin.PUT("/articles/:id", contentHandler.PutArticle, canWrite)
			admin.POST("/jobs", contentHandler.PostJob, canWrite)
			admin.PUT("/jobs/:id", contentHandler.PutJob, canWrite)
		},
	}
}
