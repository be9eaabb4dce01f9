// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/checksum"
	"github.com/LeeDigitalWorks/zapfs-go/pkg/s3consts"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, s3consts.EmptyPayloadHash, checksum.SHA256Hex(nil))
	assert.Equal(t,
		"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		checksum.SHA256Hex([]byte("hello world")))
}

func TestMD5Base64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1B2M2Y8AsgTpgAmY7PhCfg==", checksum.MD5Base64(nil))
	assert.Equal(t, "XrY7u+Ae7tCTyyK7j1rNww==", checksum.MD5Base64([]byte("hello world")))
}

func TestCRC32(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), checksum.CRC32(nil))
	assert.Equal(t, uint32(0xCBF43926), checksum.CRC32([]byte("123456789")))
	assert.Equal(t, uint32(0xE3069283), checksum.CRC32C([]byte("123456789")))
}

func TestCRC64NVMe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0xAE8B14860A799888), checksum.CRC64NVMe([]byte("123456789")))
}

func TestBase64Encode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Zm9vYmFy", checksum.Base64Encode([]byte("foobar")))
	assert.Equal(t, "", checksum.Base64Encode(nil))
}

func TestAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alg    checksum.Algorithm
		name   string
		header string
	}{
		{checksum.AlgorithmCRC32, "CRC32", s3consts.XAmzChecksumCRC32},
		{checksum.AlgorithmCRC32C, "CRC32C", s3consts.XAmzChecksumCRC32C},
		{checksum.AlgorithmCRC64NVMe, "CRC64NVME", s3consts.XAmzChecksumCRC64NVMe},
		{checksum.AlgorithmSHA1, "SHA1", s3consts.XAmzChecksumSHA1},
		{checksum.AlgorithmSHA256, "SHA256", s3consts.XAmzChecksumSHA256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.name, tt.alg.String())
			assert.Equal(t, tt.header, tt.alg.HeaderName())
			assert.True(t, tt.alg.IsValid())

			parsed, err := checksum.ParseAlgorithm(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.alg, parsed)
		})
	}

	_, err := checksum.ParseAlgorithm("MD5")
	assert.Error(t, err)
	assert.False(t, checksum.AlgorithmNone.IsValid())
	assert.Equal(t, "", checksum.AlgorithmNone.HeaderName())
}

func TestAlgorithmSum(t *testing.T) {
	t.Parallel()

	// Header values are base64 of the raw digest bytes.
	assert.Equal(t, "y/Q5Jg==", checksum.AlgorithmCRC32.Sum([]byte("123456789")))
	assert.Equal(t, "4waSgw==", checksum.AlgorithmCRC32C.Sum([]byte("123456789")))
	assert.Equal(t, "2jmj7l5rSw0yVb/vlWAYkK/YBwk=", checksum.AlgorithmSHA1.Sum(nil))
	assert.Equal(t, "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU=", checksum.AlgorithmSHA256.Sum(nil))
	assert.Equal(t, "", checksum.AlgorithmNone.Sum([]byte("x")))
}
