package batchgen

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrCountOutOfRange    = errors.New("item count out of range")
	ErrInvalidAspectRatio = errors.New("invalid or unsupported aspect ratio")
)

// MaxBatchCount is the maximum number of items a single batch may request.
const MaxBatchCount = 6

// ValidateCount validates a batch item count. Zero is a valid no-op batch.
func ValidateCount(count int) error {
	if count < 0 || count > MaxBatchCount {
		return fmt.Errorf("%w: %d (must be 0..%d)", ErrCountOutOfRange, count, MaxBatchCount)
	}
	return nil
}

// ValidateAspectRatio validates a ratio against the provider-supported set.
func ValidateAspectRatio(ratio AspectRatio) error {
	for _, r := range SupportedAspectRatios() {
		if ratio == r {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, ratio)
}
