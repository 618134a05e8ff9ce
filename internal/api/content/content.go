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

// Package content serves the admin article and job endpoints. These routes
// are exempt from the request pattern scans, so every body is sanitized
// before it is validated and stored.
package content

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
	domain "github.com/retr0h/caregate/internal/content"
	"github.com/retr0h/caregate/internal/records"
	"github.com/retr0h/caregate/internal/validation"
)

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	articles records.Repository[domain.Article],
	jobs records.Repository[domain.Job],
	sanitizer *domain.Sanitizer,
) *Content {
	return &Content{
		logger:    logger,
		articles:  articles,
		jobs:      jobs,
		sanitizer: sanitizer,
	}
}

// PostArticle creates an article.
func (h *Content) PostArticle(
	c echo.Context,
) error {
	return create(c, h, h.articles, h.sanitizer.Article, "article")
}

// PutArticle replaces an article.
func (h *Content) PutArticle(
	c echo.Context,
) error {
	return update(c, h, h.articles, h.sanitizer.Article, "article")
}

// PostJob creates a job posting.
func (h *Content) PostJob(
	c echo.Context,
) error {
	return create(c, h, h.jobs, h.sanitizer.Job, "job")
}

// PutJob replaces a job posting.
func (h *Content) PutJob(
	c echo.Context,
) error {
	return update(c, h, h.jobs, h.sanitizer.Job, "job")
}

func bindClean[T any](
	c echo.Context,
	clean func(T) T,
) (T, bool, error) {
	var in T
	if err := (&echo.DefaultBinder{}).BindBody(c, &in); err != nil {
		return in, false, common.Reject(c, http.StatusBadRequest, "Malformed request body")
	}

	in = clean(in)
	if errMsg, ok := validation.Struct(in); !ok {
		return in, false, common.Reject(c, http.StatusBadRequest, errMsg)
	}

	return in, true, nil
}

func create[T any](
	c echo.Context,
	h *Content,
	repo records.Repository[T],
	clean func(T) T,
	kind string,
) error {
	in, ok, err := bindClean(c, clean)
	if !ok {
		return err
	}

	rec, err := repo.Create(c.Request().Context(), in)
	if err != nil {
		return h.failed(c, "failed to create "+kind, err)
	}

	return c.JSON(http.StatusCreated, rec)
}

func update[T any](
	c echo.Context,
	h *Content,
	repo records.Repository[T],
	clean func(T) T,
	kind string,
) error {
	in, ok, err := bindClean(c, clean)
	if !ok {
		return err
	}

	rec, err := repo.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return common.Reject(c, http.StatusNotFound, kind+" not found")
		}
		return h.failed(c, "failed to update "+kind, err)
	}

	return c.JSON(http.StatusOK, rec)
}

func (h *Content) failed(
	c echo.Context,
	msg string,
	err error,
) error {
	h.logger.Error(
		msg,
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
	)

	return common.Reject(c, http.StatusInternalServerError, msg)
}
