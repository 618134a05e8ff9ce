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
	"net/netip"
	"strings"
)

// IsPrivate reports whether ip is a loopback, private, link-local, unique
// local or unspecified address. Such addresses never leave the local
// network and are not geolocated. Unparseable input is not private.
func IsPrivate(
	ip string,
) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}

// IsValid reports whether ip parses as an IPv4 or IPv6 address.
func IsValid(
	ip string,
) bool {
	_, err := netip.ParseAddr(strings.TrimSpace(ip))
	return err == nil
}

// RemoteHost returns the host part of a socket address such as
// "203.0.113.9:51234". Input without a port is returned trimmed.
func RemoteHost(
	remoteAddr string,
) string {
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}

	return strings.Trim(strings.TrimSpace(remoteAddr), "[]")
}

// FirstHeaderValue returns the first comma-separated value of a proxy
// header such as X-Forwarded-For.
func FirstHeaderValue(
	value string,
) string {
	first, _, _ := strings.Cut(value, ",")
	return strings.TrimSpace(first)
}

// ResolveClientIP picks the address to classify. The trusted proxy header's
// first value wins when it is set and public, then the socket address when
// it is public. Otherwise the result is empty and no classification is
// possible.
func ResolveClientIP(
	proxyHeaderValue string,
	remoteAddr string,
) string {
	if ip := FirstHeaderValue(proxyHeaderValue); ip != "" && IsValid(ip) && !IsPrivate(ip) {
		return ip
	}

	if ip := RemoteHost(remoteAddr); IsValid(ip) && !IsPrivate(ip) {
		return ip
	}

	return ""
}
