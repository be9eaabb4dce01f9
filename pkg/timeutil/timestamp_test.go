// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/timeutil"
)

// 2024-01-02T03:04:05.123456Z
var fixed = timeutil.FromUnixMicro(1704164645, 123456, true)

func TestFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "20240102", fixed.FormatSignerDate())
	assert.Equal(t, "20240102T030405Z", fixed.FormatAmzDate())
	assert.Equal(t, "Tue, 02 Jan 2024 03:04:05 GMT", fixed.FormatHTTPHeader())
	assert.Equal(t, "2024-01-02T03:04:05.123Z", fixed.FormatISO8601UTC())
}

func TestFormatISO8601UTC_Padding(t *testing.T) {
	t.Parallel()

	// 1500us is 1ms; the fraction pads to exactly three digits.
	ts := timeutil.FromUnixMicro(1704164645, 1500, true)
	assert.Equal(t, "2024-01-02T03:04:05.001Z", ts.FormatISO8601UTC())

	ts = timeutil.FromUnixMicro(1704164645, 0, true)
	assert.Equal(t, "2024-01-02T03:04:05.000Z", ts.FormatISO8601UTC())
}

func TestParseISO8601UTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		wantSecs int64
		wantUsec int32
	}{
		{"Millis", "2024-01-02T03:04:05.123Z", 1704164645, 123000},
		{"ShortFraction", "2024-01-02T03:04:05.5Z", 1704164645, 500000},
		{"Micros", "2024-01-02T03:04:05.123456Z", 1704164645, 123456},
		{"Nanos", "2024-01-02T03:04:05.123456789Z", 1704164645, 123456},
		{"NoFraction", "2024-01-02T03:04:05Z", 1704164645, 0},
		{"NoZone", "2024-01-02T03:04:05", 1704164645, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts, err := timeutil.ParseISO8601UTC(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSecs, ts.Unix())
			assert.Equal(t, tt.wantUsec, ts.Micros())
			assert.True(t, ts.UTC())
		})
	}

	_, err := timeutil.ParseISO8601UTC("not-a-date")
	assert.Error(t, err)
	_, err = timeutil.ParseISO8601UTC("2024-01-02T03:04:05.abcZ")
	assert.Error(t, err)
}

func TestISO8601RoundTrip(t *testing.T) {
	t.Parallel()

	for _, usec := range []int32{0, 999, 1000, 123456, 999999} {
		ts := timeutil.FromUnixMicro(1704164645, usec, true)
		parsed, err := timeutil.ParseISO8601UTC(ts.FormatISO8601UTC())
		require.NoError(t, err)
		assert.Equal(t, ts.Unix(), parsed.Unix())
		assert.Equal(t, ts.Micros()/1000, parsed.Micros()/1000, "usec=%d", usec)
	}
}

func TestHTTPHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	parsed, err := timeutil.ParseHTTPHeader(fixed.FormatHTTPHeader())
	require.NoError(t, err)
	assert.Equal(t, fixed.Unix(), parsed.Unix())
	assert.Equal(t, int32(0), parsed.Micros())
	assert.True(t, parsed.UTC())

	_, err = timeutil.ParseHTTPHeader("Tue, 02 Jan 2024")
	assert.Error(t, err)
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 1, 2, 3, 4, 5, 123456789, time.UTC)
	ts := timeutil.FromTime(in)
	assert.Equal(t, int64(1704164645), ts.Unix())
	assert.Equal(t, int32(123456), ts.Micros())
	assert.True(t, ts.UTC())
	assert.True(t, ts.Equal(fixed))
	assert.True(t, in.Truncate(time.Microsecond).Equal(ts.Time()))
}

func TestNow(t *testing.T) {
	t.Parallel()

	before := time.Now().Unix()
	ts := timeutil.Now()
	after := time.Now().Unix()
	assert.GreaterOrEqual(t, ts.Unix(), before)
	assert.LessOrEqual(t, ts.Unix(), after)
	assert.True(t, ts.UTC())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-02T03:04:05.123Z", fixed.String())
}
