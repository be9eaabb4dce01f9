// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package checksum computes the digests an S3 client needs when building
// requests: payload hashes for signing, Content-MD5 values, and the
// x-amz-checksum-* family.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"hash/crc32"
	"sync"

	"github.com/minio/crc64nvme"
	"github.com/minio/sha256-simd"
)

var (
	sha256Pool = sync.Pool{
		New: func() any {
			return sha256.New()
		},
	}
	sha1Pool = sync.Pool{
		New: func() any {
			return sha1.New()
		},
	}
	md5Pool = sync.Pool{
		New: func() any {
			return md5.New()
		},
	}
	crc32Pool = sync.Pool{
		New: func() any {
			return crc32.NewIEEE()
		},
	}
	crc32cPool = sync.Pool{
		New: func() any {
			return crc32.New(castagnoli)
		},
	}
	crc64nvmePool = sync.Pool{
		New: func() any {
			return crc64nvme.New()
		},
	}
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func sum(pool *sync.Pool, b []byte) []byte {
	h := pool.Get().(hash.Hash)
	h.Write(b)
	digest := h.Sum(nil)
	h.Reset()
	pool.Put(h)
	return digest
}

func sum32(pool *sync.Pool, b []byte) uint32 {
	h := pool.Get().(hash.Hash32)
	h.Write(b)
	v := h.Sum32()
	h.Reset()
	pool.Put(h)
	return v
}

// SHA256Hex returns the lowercase hex SHA-256 digest of b, the form used
// for x-amz-content-sha256 and canonical-request hashing.
func SHA256Hex(b []byte) string {
	return hex.EncodeToString(sum(&sha256Pool, b))
}

// SHA256Base64 returns the base64 SHA-256 digest of b.
func SHA256Base64(b []byte) string {
	return Base64Encode(sum(&sha256Pool, b))
}

// MD5Base64 returns the base64 MD5 digest of b, the Content-MD5 form.
func MD5Base64(b []byte) string {
	return Base64Encode(sum(&md5Pool, b))
}

// CRC32 returns the IEEE CRC-32 checksum of b.
func CRC32(b []byte) uint32 {
	return sum32(&crc32Pool, b)
}

// CRC32C returns the Castagnoli CRC-32 checksum of b.
func CRC32C(b []byte) uint32 {
	return sum32(&crc32cPool, b)
}

// CRC64NVMe returns the CRC-64/NVMe checksum of b.
func CRC64NVMe(b []byte) uint64 {
	h := crc64nvmePool.Get().(hash.Hash64)
	h.Write(b)
	v := h.Sum64()
	h.Reset()
	crc64nvmePool.Put(h)
	return v
}

// Base64Encode returns the standard base64 encoding of b.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func base64Uint32(v uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return Base64Encode(buf[:])
}

func base64Uint64(v uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return Base64Encode(buf[:])
}
