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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName scopes the pipeline instruments.
const MeterName = "github.com/retr0h/caregate"

// Instruments are the counters recorded by the request pipeline.
type Instruments struct {
	rejections   metric.Int64Counter
	auditEntries metric.Int64Counter
	geoLookups   metric.Int64Counter
}

// NewInstruments creates the pipeline counters on meter. A nil meter uses
// the global meter provider.
func NewInstruments(
	meter metric.Meter,
) (*Instruments, error) {
	if meter == nil {
		meter = otel.Meter(MeterName)
	}

	rejections, err := meter.Int64Counter(
		"caregate.security.rejections",
		metric.WithDescription("Requests rejected by a pipeline stage."),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejections counter: %w", err)
	}

	auditEntries, err := meter.Int64Counter(
		"caregate.audit.entries",
		metric.WithDescription("Audit entries finalized, by action and persistence."),
	)
	if err != nil {
		return nil, fmt.Errorf("create audit counter: %w", err)
	}

	geoLookups, err := meter.Int64Counter(
		"caregate.geoip.lookups",
		metric.WithDescription("Geo classification results, by reason."),
	)
	if err != nil {
		return nil, fmt.Errorf("create geoip counter: %w", err)
	}

	return &Instruments{
		rejections:   rejections,
		auditEntries: auditEntries,
		geoLookups:   geoLookups,
	}, nil
}

// RecordRejection counts a request a stage refused.
func (i *Instruments) RecordRejection(
	ctx context.Context,
	stage string,
	reason string,
) {
	if i == nil {
		return
	}

	i.rejections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.String("reason", reason),
	))
}

// RecordAuditEntry counts a finalized audit entry.
func (i *Instruments) RecordAuditEntry(
	ctx context.Context,
	action string,
	persisted bool,
) {
	if i == nil {
		return
	}

	i.auditEntries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.Bool("persisted", persisted),
	))
}

// RecordGeoLookup counts a geo classification.
func (i *Instruments) RecordGeoLookup(
	ctx context.Context,
	reason string,
	allowed bool,
) {
	if i == nil {
		return
	}

	i.geoLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
		attribute.Bool("allowed", allowed),
	))
}
