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
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avfs/avfs/vfs/osfs"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/retr0h/caregate/internal/api"
	"github.com/retr0h/caregate/internal/api/health"
	"github.com/retr0h/caregate/internal/api/intake"
	"github.com/retr0h/caregate/internal/audit"
	"github.com/retr0h/caregate/internal/audit/export"
	"github.com/retr0h/caregate/internal/cli"
	"github.com/retr0h/caregate/internal/config"
	"github.com/retr0h/caregate/internal/content"
	"github.com/retr0h/caregate/internal/geoip"
	"github.com/retr0h/caregate/internal/ratelimit"
	"github.com/retr0h/caregate/internal/records"
	"github.com/retr0h/caregate/internal/telemetry"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// GetIntakeHandler returns the public form routes and their admin views.
	GetIntakeHandler(
		inquiries records.Repository[intake.Inquiry],
		applications records.Repository[intake.Application],
		contacts records.Repository[intake.Contact],
	) []func(e *echo.Echo)
	// GetAuthHandler returns the login, logout and password reset routes.
	GetAuthHandler() []func(e *echo.Echo)
	// GetContentHandler returns the article and job posting routes.
	GetContentHandler(
		articles records.Repository[content.Article],
		jobs records.Repository[content.Job],
	) []func(e *echo.Echo)
	// GetAuditHandler returns audit handler for registration.
	GetAuditHandler(store audit.Store) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// apiBundle holds what setupAPIServer created besides the server itself.
type apiBundle struct {
	recorder   *audit.Recorder
	components []cli.Lifecycle
	cleanups   []func()
}

// setupAPIServer wires the stores, classifier and recorder into a new
// server and registers every handler.
func setupAPIServer(
	ctx context.Context,
	log *slog.Logger,
	metricsHandler http.Handler,
	metricsPath string,
) (ServerManager, *apiBundle) {
	b := &apiBundle{}
	checks := map[string]func(ctx context.Context) error{}

	instruments, err := telemetry.NewInstruments(nil)
	if err != nil {
		cli.LogFatal(log, "failed to create instruments", err)
	}

	rateStore, rateCheck, rateCleanup := newRateStore(log, appConfig.RateLimit)
	if rateCheck != nil {
		checks["rate_store"] = rateCheck
	}
	if rateCleanup != nil {
		b.cleanups = append(b.cleanups, rateCleanup)
	}

	auditStore, kvCheck, kvCleanup := createAuditStore(log, appConfig.Audit)
	if kvCheck != nil {
		checks["audit_bucket"] = kvCheck
	}
	if kvCleanup != nil {
		b.cleanups = append(b.cleanups, kvCleanup)
	}

	b.recorder = audit.NewRecorder(
		log.With("component", "audit"),
		auditStore,
		audit.WithMaxInFlight(appConfig.Audit.MaxInFlight),
		audit.WithWriteTimeout(appConfig.Audit.WriteTimeout),
		audit.WithEmitHook(func(entry audit.Entry, persisted bool) {
			instruments.RecordAuditEntry(ctx, string(entry.Action), persisted)
		}),
	)
	b.cleanups = append(b.cleanups, b.recorder.Wait)

	opts := []api.Option{
		api.WithRateStore(rateStore),
		api.WithRecorder(b.recorder),
		api.WithInstruments(instruments),
	}
	if appConfig.Geo.Enabled {
		opts = append(opts, api.WithGeoClassifier(newGeoClassifier(log, appConfig.Geo)))
	}

	if scheduler := newExportScheduler(log, auditStore, appConfig.Audit.Export); scheduler != nil {
		b.components = append(b.components, scheduler)
	}

	sm := api.New(appConfig, log, opts...)
	registerAPIHandlers(
		sm,
		&health.DependencyChecker{Checks: checks},
		metricsHandler,
		metricsPath,
		auditStore,
	)

	return sm, b
}

// newRateStore builds the configured rate limit backend with its health
// check and cleanup, either of which may be nil.
func newRateStore(
	log *slog.Logger,
	cfg config.RateLimit,
) (ratelimit.Store, func(context.Context) error, func()) {
	switch cfg.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("using redis rate limit store", slog.String("addr", cfg.Redis.Addr))

		check := func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}

		return ratelimit.NewRedisStore(client, cfg.Redis.Prefix), check, cleanup
	case "token_bucket":
		return ratelimit.NewTokenBucketStore(nil), nil, nil
	default:
		return ratelimit.NewMemoryStore(), nil, nil
	}
}

// createAuditStore returns the in-process log store, combined with the NATS
// bucket when one is configured.
func createAuditStore(
	log *slog.Logger,
	cfg config.Audit,
) (audit.Store, func(context.Context) error, func()) {
	logStore := audit.NewLogStore(log.With("component", "audit"), cfg.LogCapacity)
	if cfg.NATS.URL == "" {
		return logStore, nil, nil
	}

	kv, closeFn, err := cli.OpenAuditKV(log, cfg.NATS)
	if err != nil {
		cli.LogFatal(log, "failed to open audit bucket", err)
	}

	check := func(_ context.Context) error {
		if _, err := kv.Status(); err != nil {
			return fmt.Errorf("audit bucket not accessible: %w", err)
		}

		return nil
	}

	return audit.NewMultiStore(logStore, audit.NewKVStore(log, kv)), check, closeFn
}

func newGeoClassifier(
	log *slog.Logger,
	cfg config.Geo,
) *geoip.Classifier {
	return geoip.NewClassifier(
		log.With("component", "geoip"),
		geoip.NewHTTPLookup(nil, cfg.LookupURL, cfg.Timeout),
		geoip.NewCache(cfg.CacheTTL, cfg.CacheMaxEntries, cfg.SweepInterval, nil),
		geoip.Options{
			TargetCountry:   cfg.TargetCountry,
			OnLookupFailure: geoip.FailurePolicy(cfg.OnLookupFailure),
		},
	)
}

// newExportScheduler returns nil when no schedule is configured.
func newExportScheduler(
	log *slog.Logger,
	store audit.Store,
	cfg config.AuditExport,
) *export.Scheduler {
	if cfg.Schedule == "" {
		return nil
	}

	scheduler, err := export.NewScheduler(
		log.With("component", "export"),
		store,
		osfs.NewWithNoIdm(),
		cfg.Dir,
		cfg.Schedule,
		cfg.BatchSize,
	)
	if err != nil {
		cli.LogFatal(log, "failed to create export scheduler", err)
	}

	return scheduler
}

func registerAPIHandlers(
	sm ServerManager,
	checker health.Checker,
	metricsHandler http.Handler,
	metricsPath string,
	auditStore audit.Store,
) {
	startTime := time.Now()

	handlers := make([]func(e *echo.Echo), 0, 8)
	handlers = append(handlers, sm.GetHealthHandler(checker, startTime, version)...)
	handlers = append(handlers, sm.GetMetricsHandler(metricsHandler, metricsPath)...)
	handlers = append(handlers, sm.GetIntakeHandler(
		records.NewMemory[intake.Inquiry](),
		records.NewMemory[intake.Application](),
		records.NewMemory[intake.Contact](),
	)...)
	handlers = append(handlers, sm.GetAuthHandler()...)
	handlers = append(handlers, sm.GetContentHandler(
		records.NewMemory[content.Article](),
		records.NewMemory[content.Job](),
	)...)
	handlers = append(handlers, sm.GetAuditHandler(auditStore)...)

	sm.RegisterHandlers(handlers)
}

// openAuditReader binds the NATS audit bucket for the offline audit commands.
func openAuditReader(
	log *slog.Logger,
) (audit.Store, func()) {
	if appConfig.Audit.NATS.URL == "" {
		cli.LogFatal(log, "audit.nats.url is required to read audit entries", nil)
	}

	kv, closeFn, err := cli.OpenAuditKV(log, appConfig.Audit.NATS)
	if err != nil {
		cli.LogFatal(log, "failed to open audit bucket", err)
	}

	return audit.NewKVStore(log, kv), closeFn
}
