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
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/retr0h/caregate/internal/telemetry"
)

// DefaultLookupURL is an ip-api.com style endpoint. "{ip}" is replaced with
// the escaped address.
const DefaultLookupURL = "http://ip-api.com/json/{ip}?fields=status,message,country,countryCode"

// maxLookupBody caps how much of the upstream response is read.
const maxLookupBody = 64 << 10

// ensure HTTPLookup implements Lookup at compile time.
var _ Lookup = (*HTTPLookup)(nil)

// HTTPLookup queries a JSON geolocation service over HTTP.
type HTTPLookup struct {
	client      *http.Client
	urlTemplate string
}

// NewHTTPLookup creates an HTTPLookup. An empty urlTemplate uses
// DefaultLookupURL; a nil client gets one with the given timeout.
func NewHTTPLookup(
	client *http.Client,
	urlTemplate string,
	timeout time.Duration,
) *HTTPLookup {
	if urlTemplate == "" {
		urlTemplate = DefaultLookupURL
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPLookup{
		client:      client,
		urlTemplate: urlTemplate,
	}
}

// Lookup fetches and decodes the geolocation record for ip.
func (l *HTTPLookup) Lookup(
	ctx context.Context,
	ip string,
) (*LookupResult, error) {
	target := strings.ReplaceAll(l.urlTemplate, "{ip}", url.PathEscape(ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build geoip request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	telemetry.InjectHeaders(ctx, req.Header)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip request: unexpected status %d", resp.StatusCode)
	}

	var res LookupResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxLookupBody)).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode geoip response: %w", err)
	}

	return &res, nil
}
