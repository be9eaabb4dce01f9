// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3consts

import "github.com/dustin/go-humanize"

// Multipart upload limits.
// http://docs.aws.amazon.com/AmazonS3/latest/dev/UploadingObjects.html
const (
	// MinPartSize is the minimum size of a multipart part (5MiB)
	MinPartSize = 5 * humanize.MiByte
	// MaxPartSize is the maximum size of a multipart part (5GiB)
	MaxPartSize = 5 * humanize.GiByte
	// MaxObjectSize is the maximum size of a multipart object (5TiB)
	MaxObjectSize = 5 * humanize.TiByte
	// MaxMultipartCount is the maximum number of parts per upload (10000)
	// Acceptable part numbers range from 1 to 10000 inclusive
	MaxMultipartCount = 10000
)

// Signature V4 constants consumed by the request signer.
const (
	AuthHeaderV4 = "AWS4-HMAC-SHA256"

	// Iso8601BasicFormat is the x-amz-date timestamp layout
	Iso8601BasicFormat = "20060102T150405Z"
	// SignerDateFormat is the credential-scope date layout
	SignerDateFormat = "20060102"

	// UnsignedPayload is the x-amz-content-sha256 sentinel for requests
	// whose body is not covered by the signature
	UnsignedPayload = "UNSIGNED-PAYLOAD"
	// EmptyPayloadHash is the SHA-256 hex digest of an empty body
	EmptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// Headers the client core reads or writes when building requests.
const (
	// --- Core request / tracing ---
	XAmzDate        = "x-amz-date"
	XAmzRequestID   = "x-amz-request-id"
	XAmzSecurityTok = "x-amz-security-token"

	// --- Authorization ---
	XAmzAlgorithm     = "x-amz-algorithm"
	XAmzCredential    = "x-amz-credential"
	XAmzSignedHeaders = "x-amz-signedheaders"
	XAmzSignature     = "x-amz-signature"
	XAmzExpires       = "x-amz-expires"

	// --- Content / payload ---
	XAmzContentSHA256 = "x-amz-content-sha256"
	XAmzDecodedLength = "x-amz-decoded-content-length"
	ContentMD5        = "content-md5"

	// --- Metadata ---
	XAmzMetaPrefix = "x-amz-meta-"

	// --- Multipart upload ---
	XAmzUploadID   = "x-amz-upload-id"
	XAmzPartNumber = "x-amz-part-number"

	// --- Checksums ---
	XAmzChecksumCRC32     = "x-amz-checksum-crc32"
	XAmzChecksumCRC32C    = "x-amz-checksum-crc32c"
	XAmzChecksumCRC64NVMe = "x-amz-checksum-crc64nvme"
	XAmzChecksumSHA1      = "x-amz-checksum-sha1"
	XAmzChecksumSHA256    = "x-amz-checksum-sha256"
	XAmzChecksumAlgorithm = "x-amz-checksum-algorithm"
	XAmzChecksumMode      = "x-amz-checksum-mode"
)

// Checksum algorithm values
const (
	ChecksumAlgoCRC32     = "CRC32"
	ChecksumAlgoCRC32C    = "CRC32C"
	ChecksumAlgoCRC64NVMe = "CRC64NVME"
	ChecksumAlgoSHA1      = "SHA1"
	ChecksumAlgoSHA256    = "SHA256"
)
