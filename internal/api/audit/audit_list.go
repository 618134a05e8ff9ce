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
	"context"
	"log/slog"

	"github.com/retr0h/caregate/internal/api/audit/gen"
	"github.com/retr0h/caregate/internal/api/common"
	auditstore "github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/validation"
)

// GetAuditLogs returns a page of entries, newest first.
func (a *Audit) GetAuditLogs(
	ctx context.Context,
	request gen.GetAuditLogsRequestObject,
) (gen.GetAuditLogsResponseObject, error) {
	if errMsg, ok := validation.Struct(request.Params); !ok {
		return gen.GetAuditLogs400JSONResponse{Error: &errMsg}, nil
	}

	limit, offset := common.PageBounds(request.Params.Limit, request.Params.Offset)

	entries, total, err := a.Store.List(ctx, limit, offset)
	if err != nil {
		a.logger.Error(
			"failed to list audit entries",
			slog.String("error", err.Error()),
		)
		errMsg := "failed to list audit entries"
		return gen.GetAuditLogs500JSONResponse{Error: &errMsg}, nil
	}

	items := make([]gen.AuditEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, mapEntryToGen(e))
	}

	return gen.GetAuditLogs200JSONResponse{
		TotalItems: total,
		Items:      items,
	}, nil
}

// mapEntryToGen converts an audit.Entry to the generated API type.
func mapEntryToGen(
	e auditstore.Entry,
) gen.AuditEntry {
	fields := e.Sensitivity.SensitiveFieldNames
	if fields == nil {
		fields = []string{}
	}

	entry := gen.AuditEntry{
		AuditId:   e.ID,
		Timestamp: e.Timestamp,
		Actor: gen.AuditActor{
			Role:   string(e.Actor.Role),
			UserId: optional(e.Actor.UserID),
		},
		SessionId: optional(e.SessionID),
		Request: gen.AuditRequest{
			Method:       e.Request.Method,
			Path:         e.Request.Path,
			ResourceType: optional(e.Request.ResourceType),
			ResourceId:   optional(e.Request.ResourceID),
		},
		Network: gen.AuditNetwork{
			IpAddress: e.Network.IPAddress,
			UserAgent: e.Network.UserAgent,
		},
		Action: string(e.Action),
		Sensitivity: gen.AuditSensitivity{
			TouchesSensitiveResource: e.Sensitivity.TouchesSensitiveResource,
			SensitiveFieldNames:      fields,
		},
		Outcome: gen.AuditOutcome{
			StatusCode:   e.Outcome.StatusCode,
			Success:      e.Outcome.Success,
			ErrorMessage: optional(e.Outcome.ErrorMessage),
		},
		LatencyMs: e.LatencyMs,
	}
	if len(e.Metadata) > 0 {
		entry.Metadata = &e.Metadata
	}

	return entry
}

func optional(
	s string,
) *string {
	if s == "" {
		return nil
	}

	return &s
}
