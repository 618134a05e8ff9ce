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
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/avfs/avfs"
	"github.com/robfig/cron/v3"

	"github.com/retr0h/caregate/internal/audit"
)

// FileNameLayout is the timestamp layout used in scheduled export names.
const FileNameLayout = "2006-01-02T150405Z"

// Scheduler periodically exports the audit store to JSONL files.
type Scheduler struct {
	logger    *slog.Logger
	store     audit.Store
	fs        avfs.VFS
	dir       string
	batchSize int
	now       func() time.Time
	cron      *cron.Cron
}

// NewScheduler creates a Scheduler running on the standard five-field cron
// expression.
func NewScheduler(
	logger *slog.Logger,
	store audit.Store,
	fs avfs.VFS,
	dir string,
	schedule string,
	batchSize int,
) (*Scheduler, error) {
	s := &Scheduler{
		logger:    logger,
		store:     store,
		fs:        fs,
		dir:       dir,
		batchSize: batchSize,
		now:       time.Now,
		cron:      cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("parse export schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins running scheduled exports in the background.
func (s *Scheduler) Start() {
	s.logger.Info("audit export scheduler started", slog.String("dir", s.dir))
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running export or ctx.
func (s *Scheduler) Stop(
	ctx context.Context,
) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce exports every entry to a new timestamped file in the export dir.
func (s *Scheduler) RunOnce(
	ctx context.Context,
) (string, Result, error) {
	path := filepath.Join(
		s.dir,
		fmt.Sprintf("audit-%s.jsonl", s.now().UTC().Format(FileNameLayout)),
	)

	result, err := Run(
		ctx,
		s.logger,
		StoreFetcher(s.store),
		NewFileDestination(s.fs, path),
		Options{BatchSize: s.batchSize},
	)

	return path, result, err
}

func (s *Scheduler) run() {
	path, result, err := s.RunOnce(context.Background())
	if err != nil {
		s.logger.Error(
			"scheduled audit export failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info(
		"scheduled audit export complete",
		slog.String("path", path),
		slog.Int("exported", result.Exported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("total", result.Total),
	)
}
