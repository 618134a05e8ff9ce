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

// Package cli provides shared utilities for the caregate commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/retr0h/caregate/internal/config"
)

// DefaultAuditBucket is used when audit.nats.bucket is empty.
const DefaultAuditBucket = "caregate-audit"

// ParseStorageType maps "memory"/"file" strings to nats.StorageType.
func ParseStorageType(
	s string,
) nats.StorageType {
	if s == "memory" {
		return nats.MemoryStorage
	}

	return nats.FileStorage
}

// BuildAuditKVConfig builds the bucket configuration for the audit store.
func BuildAuditKVConfig(
	auditCfg config.AuditNATS,
) *nats.KeyValueConfig {
	bucket := auditCfg.Bucket
	if bucket == "" {
		bucket = DefaultAuditBucket
	}

	replicas := auditCfg.Replicas
	if replicas < 1 {
		replicas = 1
	}

	return &nats.KeyValueConfig{
		Bucket:      bucket,
		Description: "caregate HIPAA audit entries",
		TTL:         auditCfg.TTL,
		Storage:     ParseStorageType(auditCfg.Storage),
		Replicas:    replicas,
	}
}

// OpenAuditKV connects to NATS and binds the audit bucket, creating it on
// first use. The returned function closes the connection.
func OpenAuditKV(
	logger *slog.Logger,
	auditCfg config.AuditNATS,
) (nats.KeyValue, func(), error) {
	nc, err := nats.Connect(
		auditCfg.URL,
		nats.Name("caregate"),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create jetstream context: %w", err)
	}

	kvCfg := BuildAuditKVConfig(auditCfg)

	kv, err := js.KeyValue(kvCfg.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		logger.Info("creating audit bucket", slog.String("bucket", kvCfg.Bucket))
		kv, err = js.CreateKeyValue(kvCfg)
	}
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("bind audit bucket %s: %w", kvCfg.Bucket, err)
	}

	return kv, nc.Close, nil
}
