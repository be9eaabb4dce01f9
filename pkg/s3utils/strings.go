// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3utils

import (
	"strings"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/logger"
)

// TrimChar trims runs of ch from both ends of s.
func TrimChar(s string, ch byte) string {
	start := 0
	for start < len(s) && s[start] == ch {
		start++
	}
	end := len(s)
	for end > start && s[end-1] == ch {
		end--
	}
	return s[start:end]
}

// CheckNonEmptyString reports whether s is non-empty and carries no
// surrounding whitespace.
func CheckNonEmptyString(s string) bool {
	return s != "" && strings.TrimSpace(s) == s
}

// Printable renders non-printable bytes of s as \xNN escapes.
func Printable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 33 || c > 126 {
			b.WriteString("\\x")
			b.WriteByte(upperhex[c>>4] | 0x20)
			b.WriteByte(upperhex[c&0xf] | 0x20)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// StringToBool converts "true"/"false" (any case) to a bool. Any other
// input is a contract violation by the caller and aborts the process;
// continuing with a guessed value risks a mis-signed request.
func StringToBool(s string) bool {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	logger.Fatal().Str("value", s).Msg("unknown bool string")
	return false
}
