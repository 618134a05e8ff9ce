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
package geoip_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/caregate/internal/geoip"
)

type IPPublicTestSuite struct {
	suite.Suite
}

func (s *IPPublicTestSuite) TestResolveClientIP() {
	tests := []struct {
		name       string
		header     string
		remoteAddr string
		want       string
	}{
		{
			name:       "when proxy header carries a public address",
			header:     "203.0.113.9, 10.0.0.1",
			remoteAddr: "10.0.0.1:4411",
			want:       "203.0.113.9",
		},
		{
			name:       "when proxy header is private falls back to socket",
			header:     "192.168.1.20",
			remoteAddr: "198.51.100.7:4411",
			want:       "198.51.100.7",
		},
		{
			name:       "when header is garbage falls back to socket",
			header:     "unknown",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "when both are private",
			header:     "10.1.1.1",
			remoteAddr: "127.0.0.1:80",
			want:       "",
		},
		{
			name:       "when nothing is known",
			header:     "",
			remoteAddr: "",
			want:       "",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, geoip.ResolveClientIP(tt.header, tt.remoteAddr))
		})
	}
}

func (s *IPPublicTestSuite) TestRemoteHost() {
	s.Equal("203.0.113.9", geoip.RemoteHost("203.0.113.9:1234"))
	s.Equal("203.0.113.9", geoip.RemoteHost("203.0.113.9"))
	s.Equal("::1", geoip.RemoteHost("[::1]:80"))
}

func TestIPPublicTestSuite(t *testing.T) {
	suite.Run(t, new(IPPublicTestSuite))
}
