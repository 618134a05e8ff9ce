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

package telemetry

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Redacted replaces the value of sensitive log attributes.
const Redacted = "[REDACTED]"

// sensitiveLogKeys are key fragments whose values never reach a log sink.
var sensitiveLogKeys = []string{
	"password",
	"token",
	"secret",
	"signing_key",
	"authorization",
	"cookie",
	"ssn",
	"date_of_birth",
}

type logHandler struct {
	inner slog.Handler
}

// NewLogHandler wraps inner so every record carries the trace_id and
// span_id of the active span and attributes with credential or PHI keys
// are redacted, including attributes nested in groups.
func NewLogHandler(
	inner slog.Handler,
) slog.Handler {
	return &logHandler{inner: inner}
}

func (h *logHandler) Enabled(
	ctx context.Context,
	level slog.Level,
) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *logHandler) Handle(
	ctx context.Context,
	record slog.Record,
) error {
	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(redactAttr(a))
		return true
	})

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		out.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return h.inner.Handle(ctx, out)
}

func (h *logHandler) WithAttrs(
	attrs []slog.Attr,
) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}

	return &logHandler{inner: h.inner.WithAttrs(redacted)}
}

func (h *logHandler) WithGroup(
	name string,
) slog.Handler {
	return &logHandler{inner: h.inner.WithGroup(name)}
}

func redactAttr(
	a slog.Attr,
) slog.Attr {
	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, Redacted)
	}

	if a.Value.Kind() != slog.KindGroup {
		return a
	}

	group := a.Value.Group()
	nested := make([]any, len(group))
	for i, g := range group {
		nested[i] = redactAttr(g)
	}

	return slog.Group(a.Key, nested...)
}

func isSensitiveKey(
	key string,
) bool {
	key = strings.ToLower(key)
	for _, fragment := range sensitiveLogKeys {
		if strings.Contains(key, fragment) {
			return true
		}
	}

	return false
}
