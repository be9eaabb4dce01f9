// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"fmt"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/s3consts"
)

type Algorithm uint8

const (
	AlgorithmNone Algorithm = iota
	AlgorithmCRC32
	AlgorithmCRC32C
	AlgorithmCRC64NVMe
	AlgorithmSHA1
	AlgorithmSHA256
)

var (
	algorithmTypes = map[Algorithm]string{
		AlgorithmNone:      "NONE",
		AlgorithmCRC32:     s3consts.ChecksumAlgoCRC32,
		AlgorithmCRC32C:    s3consts.ChecksumAlgoCRC32C,
		AlgorithmCRC64NVMe: s3consts.ChecksumAlgoCRC64NVMe,
		AlgorithmSHA1:      s3consts.ChecksumAlgoSHA1,
		AlgorithmSHA256:    s3consts.ChecksumAlgoSHA256,
	}
	algorithmNames = map[string]Algorithm{
		"NONE":                         AlgorithmNone,
		s3consts.ChecksumAlgoCRC32:     AlgorithmCRC32,
		s3consts.ChecksumAlgoCRC32C:    AlgorithmCRC32C,
		s3consts.ChecksumAlgoCRC64NVMe: AlgorithmCRC64NVMe,
		s3consts.ChecksumAlgoSHA1:      AlgorithmSHA1,
		s3consts.ChecksumAlgoSHA256:    AlgorithmSHA256,
	}
	algorithmHeaders = map[Algorithm]string{
		AlgorithmCRC32:     s3consts.XAmzChecksumCRC32,
		AlgorithmCRC32C:    s3consts.XAmzChecksumCRC32C,
		AlgorithmCRC64NVMe: s3consts.XAmzChecksumCRC64NVMe,
		AlgorithmSHA1:      s3consts.XAmzChecksumSHA1,
		AlgorithmSHA256:    s3consts.XAmzChecksumSHA256,
	}
)

func (a Algorithm) String() string {
	if name, ok := algorithmTypes[a]; ok {
		return name
	}
	return "NONE"
}

func (a Algorithm) IsValid() bool {
	return a != AlgorithmNone
}

// HeaderName returns the x-amz-checksum-* request header carrying this
// algorithm's value, or "" for AlgorithmNone.
func (a Algorithm) HeaderName() string {
	return algorithmHeaders[a]
}

// Sum computes the base64 header value for b under this algorithm, the
// form S3 expects in x-amz-checksum-* headers.
func (a Algorithm) Sum(b []byte) string {
	switch a {
	case AlgorithmCRC32:
		return base64Uint32(CRC32(b))
	case AlgorithmCRC32C:
		return base64Uint32(CRC32C(b))
	case AlgorithmCRC64NVMe:
		return base64Uint64(CRC64NVMe(b))
	case AlgorithmSHA1:
		return Base64Encode(sum(&sha1Pool, b))
	case AlgorithmSHA256:
		return SHA256Base64(b)
	}
	return ""
}

func ParseAlgorithm(s string) (Algorithm, error) {
	if alg, ok := algorithmNames[s]; ok {
		return alg, nil
	}
	return AlgorithmNone, fmt.Errorf("unknown checksum algorithm %q", s)
}
