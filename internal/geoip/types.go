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

// Package geoip decides whether a client address may use the API based on
// the country its address geolocates to.
package geoip

import (
	"context"
	"time"
)

//go:generate go tool mockgen -source=types.go -destination=mocks/lookup.go -package=mocks

// StatusSuccess is the lookup status that marks a usable response.
const StatusSuccess = "success"

// FailurePolicy decides the outcome when the lookup cannot answer.
type FailurePolicy string

const (
	// FailOpen admits the request when the lookup fails.
	FailOpen FailurePolicy = "allow"
	// FailClosed rejects the request when the lookup fails.
	FailClosed FailurePolicy = "deny"
)

// Reasons reported in Result.Reason.
const (
	ReasonUnresolved = "unresolved"
	ReasonPrivate    = "private"
	ReasonCached     = "cached"
	ReasonLookup     = "lookup"
	ReasonFailure    = "lookup_failed"
)

// LookupResult is the response of the external geolocation service. Every
// field is untrusted until Status has been checked.
type LookupResult struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Message     string `json:"message,omitempty"`
}

// Lookup geolocates an IP address.
type Lookup interface {
	Lookup(ctx context.Context, ip string) (*LookupResult, error)
}

// Result is the classifier's decision for one address.
type Result struct {
	// Country is the country label, empty when unknown.
	Country string
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Reason explains how the decision was reached.
	Reason string
}

// CacheEntry is a remembered decision for one address.
type CacheEntry struct {
	Country   string
	Allowed   bool
	Timestamp time.Time
}

// Options configures a Classifier.
type Options struct {
	// TargetCountry is the ISO country code that is allowed.
	TargetCountry string
	// OnLookupFailure is applied when the lookup errors or returns a
	// non-success status.
	OnLookupFailure FailurePolicy
}
