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
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/caregate/internal/api/common"
	"github.com/retr0h/caregate/internal/telemetry"
)

// allowedContentTypes are the media types accepted for request bodies.
var allowedContentTypes = []string{
	echo.MIMEApplicationJSON,
	echo.MIMEMultipartForm,
	echo.MIMEApplicationForm,
}

// contentMiddleware enforces the content type and size of request bodies,
// decodes JSON and form bodies, and caches the result for later stages.
// The raw body is restored so handlers can still bind it.
func contentMiddleware(
	logger *slog.Logger,
	limit int64,
	instruments *telemetry.Instruments,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !hasBody(req) {
				return next(c)
			}

			reject := func(code int, reason string, msg string) error {
				instruments.RecordRejection(req.Context(), "content", reason)
				logger.Debug(
					"rejected request body",
					slog.String("path", req.URL.Path),
					slog.String("method", req.Method),
					slog.String("reason", reason),
				)

				return common.Reject(c, code, msg)
			}

			mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
			if err != nil || !slices.Contains(allowedContentTypes, mediaType) {
				return reject(
					http.StatusUnsupportedMediaType,
					"content_type",
					"Unsupported content type",
				)
			}

			if req.ContentLength > limit {
				return reject(http.StatusRequestEntityTooLarge, "too_large", "Request body too large")
			}

			if mediaType == echo.MIMEMultipartForm {
				req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
				return next(c)
			}

			raw, err := io.ReadAll(io.LimitReader(req.Body, limit+1))
			if err != nil {
				return reject(http.StatusBadRequest, "unreadable", "Unable to read request body")
			}
			if int64(len(raw)) > limit {
				return reject(http.StatusRequestEntityTooLarge, "too_large", "Request body too large")
			}
			req.Body = io.NopCloser(bytes.NewReader(raw))

			body, err := decodeBody(mediaType, raw)
			if err != nil {
				return reject(http.StatusBadRequest, "malformed", "Malformed request body")
			}
			common.SetBody(c, body)

			return next(c)
		}
	}
}

func hasBody(
	req *http.Request,
) bool {
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return req.ContentLength != 0
	}

	return false
}

// decodeBody turns a raw body into the JSON-like value the scanners walk.
func decodeBody(
	mediaType string,
	raw []byte,
) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	switch mediaType {
	case echo.MIMEApplicationJSON:
		var body any
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, err
		}
		return body, nil
	case echo.MIMEApplicationForm:
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return nil, err
		}
		return formValues(values), nil
	}

	return nil, nil
}

func formValues(
	values url.Values,
) map[string]any {
	out := make(map[string]any, len(values))
	for k, vs := range values {
		if len(vs) == 1 {
			out[k] = vs[0]
			continue
		}

		items := make([]any, len(vs))
		for i, v := range vs {
			items[i] = v
		}
		out[k] = items
	}

	return out
}
