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

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultConfigFile is read when --config is not given.
const DefaultConfigFile = "/etc/caregate/caregate.yaml"

// EnvPrefix prefixes environment overrides, e.g. CAREGATE_SERVER_PORT.
const EnvPrefix = "CAREGATE"

// legacyEnv maps the deployment's historical variable names onto keys.
var legacyEnv = map[string]string{
	"environment":                   "NODE_ENV",
	"security.trusted_proxy_header": "TRUSTED_PROXY_HEADER",
	"geo.enabled":                   "ENABLE_GEO_BLOCKING",
}

// SetDefaults registers defaults and environment bindings on v.
func SetDefaults(
	v *viper.Viper,
) {
	v.SetDefault("environment", EnvDevelopment)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_prefix", "/static")

	v.SetDefault("security.session_ttl", 8*time.Hour)
	v.SetDefault("security.body_limit", "1M")
	v.SetDefault("security.pattern_allow_list", []string{
		"/api/admin/articles",
		"/api/admin/jobs",
	})
	v.SetDefault("security.admin.roles", []string{"admin"})

	v.SetDefault("rate_limit.backend", "memory")
	v.SetDefault("rate_limit.redis.prefix", "caregate:rl:")
	v.SetDefault("rate_limit.api.max", 100)
	v.SetDefault("rate_limit.api.window", 15*time.Minute)
	v.SetDefault("rate_limit.form.max", 5)
	v.SetDefault("rate_limit.form.window", time.Hour)
	v.SetDefault("rate_limit.auth.max", 10)
	v.SetDefault("rate_limit.auth.window", 15*time.Minute)
	v.SetDefault("rate_limit.password_reset.max", 3)
	v.SetDefault("rate_limit.password_reset.window", time.Hour)

	v.SetDefault("geo.enabled", false)
	v.SetDefault("geo.target_country", "US")
	v.SetDefault("geo.on_lookup_failure", "allow")
	v.SetDefault("geo.lookup_url", "http://ip-api.com/json/{ip}?fields=status,message,country,countryCode")
	v.SetDefault("geo.timeout", 3*time.Second)
	v.SetDefault("geo.cache_ttl", time.Hour)
	v.SetDefault("geo.cache_max_entries", 10000)
	v.SetDefault("geo.sweep_interval", 10*time.Minute)

	v.SetDefault("audit.log_capacity", 5000)
	v.SetDefault("audit.max_in_flight", 64)
	v.SetDefault("audit.write_timeout", 5*time.Second)
	v.SetDefault("audit.nats.bucket", "caregate-audit")
	v.SetDefault("audit.nats.ttl", 6*365*24*time.Hour)
	v.SetDefault("audit.nats.storage", "file")
	v.SetDefault("audit.nats.replicas", 1)
	v.SetDefault("audit.export.dir", "/var/lib/caregate/audit")
	v.SetDefault("audit.export.batch_size", 100)

	v.SetDefault("telemetry.metrics.path", "/metrics")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		// Cannot error: key and env are non-empty.
		_ = v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}
}
