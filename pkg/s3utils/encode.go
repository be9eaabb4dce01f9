// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3utils

import "strings"

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether c may appear unencoded in a canonical
// request per the AWS SigV4 character set.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

// EncodeQuery percent-encodes a single query key or value using the
// SigV4 character set. Space becomes %20, never '+'.
func EncodeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// EncodePath percent-encodes each segment of an object path, keeping '/'
// as the separator. Empty interior segments are dropped; a leading or
// trailing slash in the input is preserved.
func EncodePath(path string) string {
	if path == "" {
		return ""
	}

	var out string
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if out != "" {
			out += "/"
		}
		out += EncodeQuery(segment)
	}

	if path[0] == '/' {
		out = "/" + out
	}
	if path[len(path)-1] == '/' && out != "/" {
		out += "/"
	}
	return out
}
