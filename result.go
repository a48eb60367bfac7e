// Package batchgen generates batches of images from a text prompt, fanning
// out independent provider calls, reporting per-item progress, and keeping
// whatever succeeded.
package batchgen

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedImage represents a single successfully generated image.
//
// Instances are constructed once inside an ItemGenerator and are never
// mutated afterward. The ID is minted locally (never derived from the
// provider response) and is unique within a process lifetime. AspectRatio is
// a copy of the originally requested ratio: the provider does not guarantee
// to echo it, so the generator attaches the requested value itself.
type GeneratedImage struct {
	// ID is an opaque unique token for this image.
	ID string

	// DataURI contains the self-contained encoded payload,
	// e.g. "data:image/png;base64,...".
	DataURI string

	// Prompt is a copy of the originating prompt text, kept for
	// display and audit.
	Prompt string

	// AspectRatio is the ratio that was requested for this image.
	AspectRatio AspectRatio

	// CreatedAt is the capture time (not provider time).
	CreatedAt time.Time
}

// NewGeneratedImage stamps a fresh identifier and capture timestamp onto an
// image record. Generators call this at the moment a provider response has
// been parsed successfully.
func NewGeneratedImage(dataURI, prompt string, ratio AspectRatio) *GeneratedImage {
	return &GeneratedImage{
		ID:          uuid.NewString(),
		DataURI:     dataURI,
		Prompt:      prompt,
		AspectRatio: ratio,
		CreatedAt:   time.Now(),
	}
}
