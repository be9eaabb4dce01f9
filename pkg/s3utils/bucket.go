// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled once; shared read-only by every caller.
var (
	validBucketName       = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.\-:]{1,61}[A-Za-z0-9]$`)
	validBucketNameStrict = regexp.MustCompile(`^[a-z0-9][a-z0-9.\-]{1,61}[a-z0-9]$`)
	ipAddress             = regexp.MustCompile(`^(\d+\.){3}\d+$`)
)

// CheckBucketName validates a bucket name against S3 naming rules before
// any request is built for it. Strict mode applies the subset of rules
// required for virtual-hosted-style addressing. Rules are applied in
// order; the first failure wins.
//
// The strict and non-strict patterns are independent rule sets: the
// non-strict one admits '_' and ':' anywhere and uppercase letters,
// none of which strict allows.
func CheckBucketName(name string, strict bool) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("bucket name cannot be empty")
	}
	if len(name) < 3 {
		return errors.New("bucket name cannot be less than 3 characters")
	}
	if len(name) > 63 {
		return errors.New("bucket name cannot be greater than 63 characters")
	}
	if ipAddress.MatchString(name) {
		return errors.New("bucket name cannot be an IP address")
	}
	if strings.Contains(name, "..") || strings.Contains(name, ".-") || strings.Contains(name, "-.") {
		return errors.New("bucket name contains invalid successive characters '..', '.-' or '-.'")
	}
	if strict {
		if !validBucketNameStrict.MatchString(name) {
			return errors.New("bucket name does not follow S3 standards strictly")
		}
		return nil
	}
	if !validBucketName.MatchString(name) {
		return errors.New("bucket name does not follow S3 standards")
	}
	return nil
}
