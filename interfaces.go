package batchgen

import "context"

// ItemGenerator is the core interface for single-item image generation.
// Implement this interface to add support for new providers.
type ItemGenerator interface {
	// GenerateOne issues one generation request and returns the parsed
	// result, or an error if the request failed or returned no image data.
	// Implementations perform no retries; retry policy, if any, belongs to
	// the caller.
	GenerateOne(ctx context.Context, prompt string, config *GenerateConfig) (*GeneratedImage, error)

	// Close releases any resources held by the generator.
	Close() error
}

// CredentialGate reports whether a usable credential is currently selected
// and can ask the hosting environment to select one.
//
// A nil gate is treated as "credential available" — the permissive fallback
// for non-interactive and test contexts.
type CredentialGate interface {
	// HasUsableCredential reports whether generation can proceed.
	HasUsableCredential() bool

	// PromptForCredential asks the user to select a credential. Best
	// effort; may be a no-op.
	PromptForCredential()
}

// ProgressFunc receives the cumulative number of settled (not necessarily
// successful) items after each settlement in a batch.
type ProgressFunc func(settled int)
