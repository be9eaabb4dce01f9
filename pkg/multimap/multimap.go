// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package multimap implements the case-insensitive, multi-valued
// header/query container behind request building and SigV4 canonical
// request construction.
package multimap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/s3utils"
)

var multiSpace = regexp.MustCompile(" +")

// Multimap maps original-case keys to deduplicated value sets, with a
// secondary index from lowercase key to every original-case spelling.
// Lookups are case-insensitive while serialization keeps the casing
// headers were added with. Instances belong to a single request
// builder; not safe for concurrent mutation.
type Multimap struct {
	values map[string]map[string]struct{} // original-case key -> value set
	index  map[string]map[string]struct{} // lowercase key -> spellings
}

// New returns an empty Multimap.
func New() *Multimap {
	return &Multimap{
		values: make(map[string]map[string]struct{}),
		index:  make(map[string]map[string]struct{}),
	}
}

// Add inserts value under key, deduplicating per exact original-case
// key, and records the spelling in the case-insensitive index.
func (m *Multimap) Add(key, value string) {
	if m.values[key] == nil {
		m.values[key] = make(map[string]struct{})
	}
	m.values[key][value] = struct{}{}

	lower := strings.ToLower(key)
	if m.index[lower] == nil {
		m.index[lower] = make(map[string]struct{})
	}
	m.index[lower][key] = struct{}{}
}

// AddAll unions other's entries into m.
func (m *Multimap) AddAll(other *Multimap) {
	if other == nil {
		return
	}
	for key, vals := range other.values {
		for v := range vals {
			m.Add(key, v)
		}
	}
}

// Contains reports case-insensitive key membership.
func (m *Multimap) Contains(key string) bool {
	_, ok := m.index[strings.ToLower(key)]
	return ok
}

// Get returns every value stored under key, case-insensitively,
// aggregated across original-case spellings. Spellings are visited in
// lexicographic order and values are sorted within each spelling, so
// the result is deterministic. Absent keys yield an empty slice.
func (m *Multimap) Get(key string) []string {
	var result []string
	for _, spelling := range m.spellings(strings.ToLower(key)) {
		result = append(result, m.sortedValues(spelling)...)
	}
	return result
}

// GetFront returns the first value of Get, or "" when absent.
func (m *Multimap) GetFront(key string) string {
	if values := m.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// Keys returns every distinct case-insensitive key, lowercased and
// sorted.
func (m *Multimap) Keys() []string {
	keys := make([]string, 0, len(m.index))
	for k := range m.index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct case-insensitive keys.
func (m *Multimap) Len() int {
	return len(m.index)
}

// ToHTTPHeaders renders one "Key: value" line per (key, value) pair in
// original casing, for the transport to copy onto the wire request.
func (m *Multimap) ToHTTPHeaders() []string {
	var headers []string
	for _, key := range m.originalKeys() {
		for _, value := range m.sortedValues(key) {
			headers = append(headers, key+": "+value)
		}
	}
	return headers
}

// ToQueryString renders percent-encoded key=value pairs joined by "&"
// in the container's natural order. Used for literal URL construction;
// signing uses CanonicalQueryString.
func (m *Multimap) ToQueryString() string {
	var b strings.Builder
	for _, key := range m.originalKeys() {
		for _, value := range m.sortedValues(key) {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(s3utils.EncodeQuery(key))
			b.WriteByte('=')
			b.WriteString(s3utils.EncodeQuery(value))
		}
	}
	return b.String()
}

// CanonicalHeaders builds the two signing inputs: the semicolon-joined
// signed header list and the newline-joined canonical header block.
// The authorization and user-agent headers are excluded, keys are
// lowercased, runs of spaces inside values collapse to one space, and
// a key's values (in Get aggregation order) join with commas. Both
// outputs are sorted lexicographically by key.
func (m *Multimap) CanonicalHeaders() (signedHeaders, canonicalHeaders string) {
	merged := make(map[string][]string)
	for lower := range m.index {
		if lower == "authorization" || lower == "user-agent" {
			continue
		}
		for _, spelling := range m.spellings(lower) {
			for _, value := range m.sortedValues(spelling) {
				merged[lower] = append(merged[lower], multiSpace.ReplaceAllString(value, " "))
			}
		}
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+":"+strings.Join(merged[name], ","))
	}

	return strings.Join(names, ";"), strings.Join(lines, "\n")
}

// CanonicalQueryString renders the sorted, percent-encoded query form
// fed into the canonical request.
func (m *Multimap) CanonicalQueryString() string {
	var pairs []string
	for _, key := range m.originalKeys() {
		for _, value := range m.sortedValues(key) {
			pairs = append(pairs, s3utils.EncodeQuery(key)+"="+s3utils.EncodeQuery(value))
		}
	}
	return strings.Join(pairs, "&")
}

// spellings returns the original-case spellings of a lowercase key,
// sorted.
func (m *Multimap) spellings(lower string) []string {
	set := m.index[lower]
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// sortedValues returns the value set of an original-case key, sorted.
func (m *Multimap) sortedValues(key string) []string {
	set := m.values[key]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// originalKeys returns every original-case key, sorted.
func (m *Multimap) originalKeys() []string {
	out := make([]string, 0, len(m.values))
	for k := range m.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
