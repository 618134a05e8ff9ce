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
package config

import "time"

// Environments accepted for Config.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	// Environment selects production behaviour: HTTPS redirects, redacted
	// errors and the form limiter.
	Environment string    `mapstructure:"environment" validate:"oneof=development production test"`
	Server      Server    `mapstructure:"server"`
	Security    Security  `mapstructure:"security"    mask:"struct"`
	RateLimit   RateLimit `mapstructure:"rate_limit"  mask:"struct"`
	Geo         Geo       `mapstructure:"geo"`
	Audit       Audit     `mapstructure:"audit"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Server configuration settings.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// CORS Cross-Origin Resource Sharing settings.
	CORS CORS `mapstructure:"cors"`
	// StaticPrefix is served without geo classification.
	StaticPrefix string `mapstructure:"static_prefix"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server.
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// Security represents request hardening and session settings.
type Security struct {
	// SigningKey is the key used for signing or validating session tokens.
	SigningKey string `mapstructure:"signing_key" validate:"required" mask:"password"`
	// SessionTTL is how long issued session tokens remain valid.
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	// TrustedProxyHeader names the header carrying the client address when
	// running behind a proxy, e.g. "X-Forwarded-For".
	TrustedProxyHeader string `mapstructure:"trusted_proxy_header"`
	// BodyLimit is the largest accepted request body, e.g. "1M".
	BodyLimit string `mapstructure:"body_limit" validate:"required"`
	// PatternAllowList are path prefixes exempt from the SQLi and XSS scans.
	PatternAllowList []string `mapstructure:"pattern_allow_list"`
	// Admin is the back-office login.
	Admin Admin `mapstructure:"admin" mask:"struct"`
}

// Admin holds the configured back-office credentials.
type Admin struct {
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password" mask:"password"`
	Roles    []string `mapstructure:"roles"`
}

// Limit is a fixed-window ceiling.
type Limit struct {
	Max    int           `mapstructure:"max"    validate:"min=1"`
	Window time.Duration `mapstructure:"window" validate:"gt=0"`
}

// RateLimit configures the named limiters and their backing store.
type RateLimit struct {
	// Backend is "memory", "redis" or "token_bucket".
	Backend       string `mapstructure:"backend" validate:"oneof=memory redis token_bucket"`
	Redis         Redis  `mapstructure:"redis"   mask:"struct"`
	API           Limit  `mapstructure:"api"`
	Form          Limit  `mapstructure:"form"`
	Auth          Limit  `mapstructure:"auth"`
	PasswordReset Limit  `mapstructure:"password_reset"`
}

// Redis connection settings for the shared rate store.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password" mask:"password"`
	DB       int    `mapstructure:"db"`
	// Prefix namespaces rate limit keys.
	Prefix string `mapstructure:"prefix"`
}

// Geo configures the geo-IP classifier.
type Geo struct {
	// Enabled turns geo blocking on.
	Enabled bool `mapstructure:"enabled"`
	// TargetCountry is the ISO country code that is allowed.
	TargetCountry string `mapstructure:"target_country" validate:"len=2"`
	// OnLookupFailure is "allow" (fail open) or "deny" (fail closed).
	OnLookupFailure string `mapstructure:"on_lookup_failure" validate:"oneof=allow deny"`
	// LookupURL is the lookup endpoint with an {ip} placeholder.
	LookupURL       string        `mapstructure:"lookup_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"         validate:"gt=0"`
	CacheMaxEntries int           `mapstructure:"cache_max_entries" validate:"min=1"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
}

// Audit configures where audit entries go.
type Audit struct {
	// LogCapacity is the number of recent entries kept for the admin API.
	LogCapacity int `mapstructure:"log_capacity" validate:"min=1"`
	// MaxInFlight caps concurrent store writes; further entries wait.
	MaxInFlight int `mapstructure:"max_in_flight" validate:"min=1"`
	// WriteTimeout bounds a single store write.
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	NATS         AuditNATS     `mapstructure:"nats"`
	Export       AuditExport   `mapstructure:"export"`
}

// AuditNATS configures the optional JetStream KV audit bucket.
type AuditNATS struct {
	// URL of the NATS server; empty disables the bucket.
	URL      string        `mapstructure:"url"`
	Bucket   string        `mapstructure:"bucket"`
	TTL      time.Duration `mapstructure:"ttl"`
	Storage  string        `mapstructure:"storage"` // "file" or "memory"
	Replicas int           `mapstructure:"replicas"`
}

// AuditExport configures scheduled JSONL exports.
type AuditExport struct {
	// Schedule is a cron expression; empty disables scheduled exports.
	Schedule  string `mapstructure:"schedule"`
	Dir       string `mapstructure:"dir"`
	BatchSize int    `mapstructure:"batch_size"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	// SampleRatio keeps this fraction of new traces; 0 or 1 keeps all.
	SampleRatio float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}
