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
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// resourcePattern captures the resource type and optional id after /api or
// /api/admin.
var resourcePattern = regexp.MustCompile(`^/api/(?:admin/)?([^/?#]+)(?:/([^/?#]+))?`)

// DefaultSensitiveRoutes are the route prefixes that carry client or
// caregiver personal and health information.
var DefaultSensitiveRoutes = []string{
	"/api/inquiries",
	"/api/applications",
	"/api/contact",
	"/api/caregivers",
	"/api/admin/inquiries",
	"/api/admin/applications",
	"/api/admin/caregivers",
	"/api/admin/clients",
	"/api/admin/audit",
}

// DefaultSensitiveFields are lowercase fragments of body keys that name PHI.
// Keys are compared with "_" and "-" removed.
var DefaultSensitiveFields = []string{
	"dateofbirth",
	"birthdate",
	"dob",
	"ssn",
	"socialsecurity",
	"medical",
	"diagnosis",
	"medication",
	"condition",
	"allerg",
	"disabilit",
	"insurance",
	"medicare",
	"medicaid",
	"careneeds",
	"healthinfo",
	"phone",
	"email",
	"address",
	"zipcode",
	"driverslicense",
	"emergencycontact",
}

// secretQueryKeys are fragments of query parameter names whose values are
// never written to an audit entry.
var secretQueryKeys = []string{
	"token",
	"password",
	"secret",
	"key",
	"auth",
	"session",
	"signature",
	"code",
}

// RedactedValue replaces secret query parameter values.
const RedactedValue = "[REDACTED]"

// ClassifyAction derives the audit action from the method and path.
// Path keywords take precedence over the method.
func ClassifyAction(
	method string,
	path string,
) Action {
	switch {
	case strings.Contains(path, "/login"):
		return ActionLogin
	case strings.Contains(path, "/logout"):
		return ActionLogout
	case strings.Contains(path, "/export"):
		return ActionExport
	case strings.Contains(path, "/print"):
		return ActionPrint
	}

	switch strings.ToUpper(method) {
	case http.MethodPost:
		return ActionCreate
	case http.MethodGet:
		return ActionRead
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}

// ParseResource extracts the resource type and id from an API path, e.g.
// "/api/admin/inquiries/42" yields ("inquiries", "42").
func ParseResource(
	path string,
) (resourceType string, resourceID string) {
	m := resourcePattern.FindStringSubmatch(path)
	if m == nil {
		return "", ""
	}

	return m[1], m[2]
}

// IsSensitiveRoute reports whether path starts with one of routes.
func IsSensitiveRoute(
	path string,
	routes []string,
) bool {
	for _, prefix := range routes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// SanitizeQuery flattens query parameters into metadata, redacting values
// whose names look like credentials.
func SanitizeQuery(
	query url.Values,
) map[string]string {
	if len(query) == 0 {
		return nil
	}

	out := make(map[string]string, len(query))
	for k, vs := range query {
		if isSecretKey(k) {
			out[k] = RedactedValue
			continue
		}
		out[k] = strings.Join(vs, ",")
	}

	return out
}

func isSecretKey(
	key string,
) bool {
	lk := strings.ToLower(key)
	for _, frag := range secretQueryKeys {
		if strings.Contains(lk, frag) {
			return true
		}
	}

	return false
}
