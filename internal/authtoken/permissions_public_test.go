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
package authtoken_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/authtoken"
)

type PermissionsPublicTestSuite struct {
	suite.Suite
}

func (s *PermissionsPublicTestSuite) TestResolvePermissions() {
	tests := []struct {
		name              string
		roles             []string
		directPermissions []string
		customRoles       map[string][]string
		expectPerms       []string
		expectMissing     []string
	}{
		{
			name:        "admin role gets all permissions",
			roles:       []string{"admin"},
			expectPerms: authtoken.AllPermissions,
		},
		{
			name:  "coordinator handles intake but not audit or content",
			roles: []string{"coordinator"},
			expectPerms: []string{
				authtoken.PermInquiryRead,
				authtoken.PermInquiryWrite,
				authtoken.PermApplicationRead,
				authtoken.PermApplicationWrite,
			},
			expectMissing: []string{
				authtoken.PermAuditRead,
				authtoken.PermAuditExport,
				authtoken.PermContentWrite,
			},
		},
		{
			name:        "editor only writes content",
			roles:       []string{"editor"},
			expectPerms: []string{authtoken.PermContentWrite},
			expectMissing: []string{
				authtoken.PermInquiryRead,
				authtoken.PermAuditRead,
			},
		},
		{
			name:          "unknown role gets no permissions",
			roles:         []string{"unknown"},
			expectMissing: authtoken.AllPermissions,
		},
		{
			name:          "nil roles gets no permissions",
			roles:         nil,
			expectMissing: authtoken.AllPermissions,
		},
		{
			name:              "direct permissions override roles",
			roles:             []string{"admin"},
			directPermissions: []string{authtoken.PermInquiryRead},
			expectPerms:       []string{authtoken.PermInquiryRead},
			expectMissing: []string{
				authtoken.PermInquiryWrite,
				authtoken.PermAuditRead,
			},
		},
		{
			name:  "custom role shadows built-in role",
			roles: []string{"editor"},
			customRoles: map[string][]string{
				"editor": {authtoken.PermInquiryRead},
			},
			expectPerms:   []string{authtoken.PermInquiryRead},
			expectMissing: []string{authtoken.PermContentWrite},
		},
		{
			name:  "multiple roles merge permissions",
			roles: []string{"coordinator", "editor"},
			expectPerms: []string{
				authtoken.PermInquiryRead,
				authtoken.PermContentWrite,
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resolved := authtoken.ResolvePermissions(
				tt.roles,
				tt.directPermissions,
				tt.customRoles,
			)

			for _, p := range tt.expectPerms {
				s.True(resolved[p], "expected permission %s to be present", p)
			}
			for _, p := range tt.expectMissing {
				s.False(resolved[p], "expected permission %s to be absent", p)
			}
		})
	}
}

func (s *PermissionsPublicTestSuite) TestHasPermission() {
	tests := []struct {
		name     string
		resolved map[string]bool
		required string
		expected bool
	}{
		{
			name:     "present permission returns true",
			resolved: map[string]bool{authtoken.PermAuditRead: true},
			required: authtoken.PermAuditRead,
			expected: true,
		},
		{
			name:     "absent permission returns false",
			resolved: map[string]bool{authtoken.PermAuditRead: true},
			required: authtoken.PermAuditExport,
			expected: false,
		},
		{
			name:     "nil resolved set returns false",
			resolved: nil,
			required: authtoken.PermInquiryRead,
			expected: false,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, authtoken.HasPermission(tt.resolved, tt.required))
		})
	}
}

func TestPermissionsPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionsPublicTestSuite))
}
