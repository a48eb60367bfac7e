package batchgen

import (
	"errors"
	"fmt"
)

// FallbackErrorMessage is used when the provider supplies no message of its own.
const FallbackErrorMessage = "image generation failed"

// ErrNoImageData is returned when a provider call succeeded transport-wise
// but none of the returned content parts carried inline image data.
var ErrNoImageData = errors.New("no image data found in response")

// ErrNoCredential is returned when a batch is requested while the credential
// gate reports no usable credential.
var ErrNoCredential = errors.New("no usable credential selected")

// ProviderCallError is returned when a provider call fails.
type ProviderCallError struct {
	// Message is the provider-supplied message when available, otherwise
	// FallbackErrorMessage.
	Message string

	// Model the request was issued against.
	Model string

	// Err is the underlying error from the provider, if any.
	Err error
}

func (e *ProviderCallError) Error() string {
	return fmt.Sprintf("provider call failed for %s: %s", e.Model, e.Message)
}

func (e *ProviderCallError) Unwrap() error {
	return e.Err
}

// IsProviderCallError checks if an error is a ProviderCallError.
func IsProviderCallError(err error) bool {
	var pcErr *ProviderCallError
	return errors.As(err, &pcErr)
}

// IsNoImageData checks if an error stems from a response without image data.
func IsNoImageData(err error) bool {
	return errors.Is(err, ErrNoImageData)
}
