// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package timeutil formats and parses the three date layouts the S3
// protocol uses: the SigV4 signer date, the x-amz-date timestamp, and
// the RFC-1123 HTTP header date.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/s3consts"
)

// httpHeaderFormat carries a literal GMT suffix; output never depends on
// the process locale or time zone database name.
const httpHeaderFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

const iso8601Prefix = "2006-01-02T15:04:05"

// Timestamp is an immutable instant with microsecond precision and a
// flag selecting UTC or local rendering. The zero value is the Unix
// epoch rendered as local time.
type Timestamp struct {
	secs int64
	usec int32 // 0..999999
	utc  bool
}

// Now returns the current instant, rendered as UTC.
func Now() Timestamp {
	return FromTime(time.Now())
}

// FromTime converts t, truncating to microseconds. The result renders
// as UTC regardless of t's location.
func FromTime(t time.Time) Timestamp {
	return Timestamp{
		secs: t.Unix(),
		usec: int32(t.Nanosecond() / 1000),
		utc:  true,
	}
}

// FromUnixMicro builds a Timestamp from epoch seconds, a microsecond
// fraction in [0, 999999], and the UTC-rendering flag.
func FromUnixMicro(secs int64, usec int32, utc bool) Timestamp {
	return Timestamp{secs: secs, usec: usec, utc: utc}
}

// resolve produces the broken-down time for formatting. Done anew on
// every call; never cached.
func (t Timestamp) resolve() time.Time {
	tm := time.Unix(t.secs, int64(t.usec)*1000)
	if t.utc {
		return tm.UTC()
	}
	return tm.Local()
}

// Unix returns the epoch seconds.
func (t Timestamp) Unix() int64 { return t.secs }

// Micros returns the sub-second fraction in microseconds.
func (t Timestamp) Micros() int32 { return t.usec }

// UTC reports whether the instant renders as UTC.
func (t Timestamp) UTC() bool { return t.utc }

// Time returns the resolved time.Time.
func (t Timestamp) Time() time.Time { return t.resolve() }

// Equal reports whether both timestamps denote the same instant.
func (t Timestamp) Equal(o Timestamp) bool {
	return t.secs == o.secs && t.usec == o.usec
}

func (t Timestamp) String() string { return t.FormatISO8601UTC() }

// FormatSignerDate returns the credential-scope date, YYYYMMDD.
func (t Timestamp) FormatSignerDate() string {
	return t.resolve().Format(s3consts.SignerDateFormat)
}

// FormatAmzDate returns the x-amz-date timestamp, YYYYMMDDTHHMMSSZ.
func (t Timestamp) FormatAmzDate() string {
	return t.resolve().Format(s3consts.Iso8601BasicFormat)
}

// FormatHTTPHeader returns the RFC-1123 date used in Date and
// Last-Modified headers.
func (t Timestamp) FormatHTTPHeader() string {
	return t.resolve().Format(httpHeaderFormat)
}

// FormatISO8601UTC returns YYYY-MM-DDTHH:MM:SS.mmmZ with the fraction
// truncated to milliseconds and zero-padded to exactly 3 digits.
func (t Timestamp) FormatISO8601UTC() string {
	return fmt.Sprintf("%s.%03dZ", t.resolve().Format(iso8601Prefix), t.usec/1000)
}

// ParseHTTPHeader parses the FormatHTTPHeader layout. The result
// renders as UTC.
func ParseHTTPHeader(s string) (Timestamp, error) {
	tm, err := time.Parse(httpHeaderFormat, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse http date %q: %w", s, err)
	}
	return Timestamp{secs: tm.Unix(), utc: true}, nil
}

// ParseISO8601UTC parses the FormatISO8601UTC layout. The fractional
// part may carry 0 to 9 digits; it is scaled to microseconds, so the
// round trip through FormatISO8601UTC holds to millisecond precision.
func ParseISO8601UTC(s string) (Timestamp, error) {
	base, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		base = s[:i]
		frac = strings.TrimSuffix(s[i+1:], "Z")
	} else {
		base = strings.TrimSuffix(s, "Z")
	}

	tm, err := time.Parse(iso8601Prefix, base)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse iso8601 date %q: %w", s, err)
	}

	var usec int32
	if frac != "" {
		digits := frac
		if len(digits) > 6 {
			digits = digits[:6]
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Timestamp{}, fmt.Errorf("parse iso8601 fraction %q: %w", s, err)
		}
		for i := len(digits); i < 6; i++ {
			n *= 10
		}
		usec = int32(n)
	}

	return Timestamp{secs: tm.Unix(), usec: usec, utc: true}, nil
}
