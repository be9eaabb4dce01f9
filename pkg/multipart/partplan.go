// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package multipart plans part sizes and counts for multipart uploads
// under the provider's size limits.
package multipart

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/LeeDigitalWorks/zapfs-go/pkg/s3consts"
)

// UnknownPartCount marks a plan for a stream of unknown length: parts
// are uploaded at PartSize until the source drains, with no
// pre-declared count. Distinct from zero, which would mean an empty
// object.
const UnknownPartCount = -1

// PartPlan is the resolved upload layout. Owned by the caller that
// requested it; never mutated after return.
type PartPlan struct {
	PartSize  int64
	PartCount int
}

// CalcPartInfo resolves the part size and count for an upload.
// objectSize < 0 means the total length is not known in advance, which
// is only plannable when the caller supplies an explicit partSize.
// partSize <= 0 asks for the smallest multiple of MinPartSize that
// covers objectSize in at most MaxMultipartCount parts.
func CalcPartInfo(objectSize, partSize int64) (PartPlan, error) {
	if partSize > 0 {
		if partSize < s3consts.MinPartSize {
			return PartPlan{}, fmt.Errorf("part size %d is not supported; minimum allowed %s",
				partSize, humanize.IBytes(s3consts.MinPartSize))
		}
		if partSize > s3consts.MaxPartSize {
			return PartPlan{}, fmt.Errorf("part size %d is not supported; maximum allowed %s",
				partSize, humanize.IBytes(s3consts.MaxPartSize))
		}
	}

	if objectSize >= 0 {
		if objectSize > s3consts.MaxObjectSize {
			return PartPlan{}, fmt.Errorf("object size %d is not supported; maximum allowed %s",
				objectSize, humanize.IBytes(s3consts.MaxObjectSize))
		}
	} else if partSize <= 0 {
		return PartPlan{}, errors.New("valid part size must be provided when object size is unknown")
	}

	if objectSize < 0 {
		return PartPlan{PartSize: partSize, PartCount: UnknownPartCount}, nil
	}

	if partSize <= 0 {
		// Smallest multiple of MinPartSize covering objectSize in at
		// most MaxMultipartCount parts.
		partSize = ceilDiv(ceilDiv(objectSize, s3consts.MaxMultipartCount), s3consts.MinPartSize) * s3consts.MinPartSize
	}

	if partSize > objectSize {
		partSize = objectSize
	}

	partCount := 1
	if partSize > 0 {
		partCount = int(ceilDiv(objectSize, partSize))
	}
	if partCount > s3consts.MaxMultipartCount {
		return PartPlan{}, fmt.Errorf("object size %d and part size %d make more than %d parts for upload",
			objectSize, partSize, s3consts.MaxMultipartCount)
	}

	return PartPlan{PartSize: partSize, PartCount: partCount}, nil
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// ReadPart fills buf with the next part's bytes. A short final part is
// returned with a nil error; io.EOF means the source was already
// drained at a part boundary.
func ReadPart(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}
