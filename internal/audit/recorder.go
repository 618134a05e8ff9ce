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
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// EmitFunc observes every finalized entry and whether it was persisted.
type EmitFunc func(entry Entry, persisted bool)

// RequestInfo is the request-start snapshot used to build an entry.
type RequestInfo struct {
	Method        string
	Path          string
	Query         url.Values
	IPAddress     string
	UserAgent     string
	UserID        string
	SessionID     string
	Authenticated bool
	// Body is the decoded request body, if any.
	Body any
}

// Recorder builds audit entries and hands persisted ones to a Store.
type Recorder struct {
	logger          *slog.Logger
	store           Store
	sensitiveRoutes []string
	sensitiveFields []string
	now             func() time.Time
	newID           func() string
	onEmit          EmitFunc
	writeTimeout    time.Duration
	// slots bounds concurrent store writes.
	slots chan struct{}
	wg    sync.WaitGroup
}

// Defaults for store writes.
const (
	DefaultMaxInFlight  = 64
	DefaultWriteTimeout = 5 * time.Second
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the time source.
func WithClock(
	now func() time.Time,
) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithIDGenerator overrides how audit ids are generated.
func WithIDGenerator(
	newID func() string,
) Option {
	return func(r *Recorder) {
		r.newID = newID
	}
}

// WithSensitiveRoutes replaces the PHI route prefixes.
func WithSensitiveRoutes(
	routes []string,
) Option {
	return func(r *Recorder) {
		r.sensitiveRoutes = routes
	}
}

// WithSensitiveFields replaces the PHI key fragments.
func WithSensitiveFields(
	fields []string,
) Option {
	return func(r *Recorder) {
		r.sensitiveFields = fields
	}
}

// WithMaxInFlight caps how many store writes run at once. Entries beyond the
// cap wait for a free slot.
func WithMaxInFlight(
	n int,
) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.slots = make(chan struct{}, n)
		}
	}
}

// WithWriteTimeout bounds each store write.
func WithWriteTimeout(
	d time.Duration,
) Option {
	return func(r *Recorder) {
		if d > 0 {
			r.writeTimeout = d
		}
	}
}

// WithEmitHook registers a callback run for every finalized entry.
func WithEmitHook(
	fn EmitFunc,
) Option {
	return func(r *Recorder) {
		r.onEmit = fn
	}
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(
	logger *slog.Logger,
	store Store,
	opts ...Option,
) *Recorder {
	r := &Recorder{
		logger:          logger,
		store:           store,
		sensitiveRoutes: DefaultSensitiveRoutes,
		sensitiveFields: DefaultSensitiveFields,
		now:             time.Now,
		newID:           newEntryID,
		writeTimeout:    DefaultWriteTimeout,
		slots:           make(chan struct{}, DefaultMaxInFlight),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// newEntryID returns a time-ordered id so stores can list by key order.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}

// Pending is an entry whose static fields are known and which waits for the
// response to complete. Finalize emits it at most once.
type Pending struct {
	recorder *Recorder
	entry    Entry
	start    time.Time
	done     atomic.Bool
}

// Begin snapshots the request and returns the pending entry.
func (r *Recorder) Begin(
	info RequestInfo,
) *Pending {
	role := RolePublic
	if info.Authenticated {
		role = RoleAdmin
	}

	resourceType, resourceID := ParseResource(info.Path)

	fields := SensitiveFields(info.Body, r.sensitiveFields)
	if fields == nil {
		fields = []string{}
	}

	return &Pending{
		recorder: r,
		start:    r.now(),
		entry: Entry{
			Actor: Actor{
				UserID: info.UserID,
				Role:   role,
			},
			SessionID: info.SessionID,
			Request: Request{
				Method:       info.Method,
				Path:         info.Path,
				ResourceType: resourceType,
				ResourceID:   resourceID,
			},
			Network: Network{
				IPAddress: info.IPAddress,
				UserAgent: info.UserAgent,
			},
			Action: ClassifyAction(info.Method, info.Path),
			Sensitivity: Sensitivity{
				TouchesSensitiveResource: IsSensitiveRoute(info.Path, r.sensitiveRoutes),
				SensitiveFieldNames:      fields,
			},
			Metadata: SanitizeQuery(info.Query),
		},
	}
}

// Finalize completes the entry with the response outcome and emits it.
// Only the first call has any effect; it reports whether this call emitted.
func (p *Pending) Finalize(
	statusCode int,
	errMsg string,
) bool {
	if !p.done.CompareAndSwap(false, true) {
		return false
	}

	now := p.recorder.now()

	entry := p.entry
	entry.ID = p.recorder.newID()
	entry.Timestamp = now.UTC()
	entry.LatencyMs = now.Sub(p.start).Milliseconds()
	entry.Outcome = Outcome{
		StatusCode:   statusCode,
		Success:      statusCode < 400,
		ErrorMessage: errMsg,
	}

	p.recorder.emit(entry)

	return true
}

// Finalized reports whether the entry has been emitted.
func (p *Pending) Finalized() bool {
	return p.done.Load()
}

// PHIAccess describes a sub-operation that touched protected information.
type PHIAccess struct {
	UserID       string
	SessionID    string
	Action       Action
	ResourceType string
	ResourceID   string
	Fields       []string
	IPAddress    string
	UserAgent    string
	Metadata     map[string]string
}

// LogPHIAccess records a manual entry for work a handler performs beyond
// the request itself. These entries are always persisted.
func (r *Recorder) LogPHIAccess(
	access PHIAccess,
) {
	role := RolePublic
	if access.UserID != "" {
		role = RoleAdmin
	}

	fields := access.Fields
	if fields == nil {
		fields = []string{}
	}

	now := r.now()
	r.emit(Entry{
		ID:        r.newID(),
		Timestamp: now.UTC(),
		Actor: Actor{
			UserID: access.UserID,
			Role:   role,
		},
		SessionID: access.SessionID,
		Request: Request{
			ResourceType: access.ResourceType,
			ResourceID:   access.ResourceID,
		},
		Network: Network{
			IPAddress: access.IPAddress,
			UserAgent: access.UserAgent,
		},
		Action: access.Action,
		Sensitivity: Sensitivity{
			TouchesSensitiveResource: true,
			SensitiveFieldNames:      fields,
		},
		Outcome: Outcome{
			StatusCode: 200,
			Success:    true,
		},
		Metadata: access.Metadata,
	})
}

func (r *Recorder) emit(
	entry Entry,
) {
	persist := ShouldPersist(entry)

	if r.onEmit != nil {
		r.onEmit(entry, persist)
	}

	if !persist {
		return
	}

	r.wg.Add(1)
	r.slots <- struct{}{}
	go func() {
		defer func() {
			<-r.slots
			r.wg.Done()
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
		defer cancel()

		if err := r.store.Write(ctx, entry); err != nil {
			r.logger.Warn(
				"failed to write audit entry",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID),
			)
		}
	}()
}

// Wait blocks until in-flight writes have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}
