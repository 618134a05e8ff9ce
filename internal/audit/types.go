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

// Package audit builds and stores the HIPAA access trail: one Entry per API
// request, plus manual entries for sub-operations handlers log themselves.
package audit

import (
	"context"
	"time"
)

// Action is the kind of access an entry records.
type Action string

// Actions recognised by ClassifyAction.
const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
	ActionExport Action = "EXPORT"
	ActionPrint  Action = "PRINT"
)

// Role is the actor's role at the start of the request.
type Role string

const (
	// RoleAdmin is any authenticated back-office session.
	RoleAdmin Role = "admin"
	// RolePublic is an anonymous visitor.
	RolePublic Role = "public"
)

// Actor identifies who made the request.
type Actor struct {
	UserID string `json:"user_id,omitempty"`
	Role   Role   `json:"role"`
}

// Request describes what was requested.
type Request struct {
	Method       string `json:"method"`
	Path         string `json:"path"`
	ResourceType string `json:"resource_type,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
}

// Network describes where the request came from.
type Network struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// Sensitivity records whether personal or health information was involved.
type Sensitivity struct {
	// TouchesSensitiveResource is true for routes that carry PHI.
	TouchesSensitiveResource bool `json:"touches_sensitive_resource"`
	// SensitiveFieldNames are dotted body paths whose key names look like PHI.
	SensitiveFieldNames []string `json:"sensitive_field_names"`
}

// Outcome is the response the client received.
type Outcome struct {
	StatusCode   int    `json:"status_code"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Entry is a single audit record. It is never modified once emitted.
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"audit_id"`
	// Timestamp is when the response completed.
	Timestamp   time.Time         `json:"timestamp"`
	Actor       Actor             `json:"actor"`
	SessionID   string            `json:"session_id,omitempty"`
	Request     Request           `json:"request"`
	Network     Network           `json:"network"`
	Action      Action            `json:"action"`
	Sensitivity Sensitivity       `json:"sensitivity"`
	Outcome     Outcome           `json:"outcome"`
	LatencyMs   int64             `json:"latency_ms"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// ShouldPersist reports whether an entry is worth storing. Successful reads
// of non-sensitive resources are dropped to bound log volume.
func ShouldPersist(
	e Entry,
) bool {
	return e.Sensitivity.TouchesSensitiveResource ||
		!e.Outcome.Success ||
		e.Action != ActionRead
}

// Store persists and retrieves audit entries.
type Store interface {
	// Write persists an audit entry.
	Write(ctx context.Context, entry Entry) error
	// Get retrieves a single audit entry by ID.
	Get(ctx context.Context, id string) (*Entry, error)
	// List retrieves audit entries newest first with pagination. It also
	// returns the total number of entries.
	List(ctx context.Context, limit int, offset int) ([]Entry, int, error)
	// ListAll retrieves every audit entry newest first.
	ListAll(ctx context.Context) ([]Entry, error)
}
