package batchgen

import (
	"log/slog"
)

// BatcherOption configures the Batcher.
type BatcherOption func(*Batcher)

// WithLogger sets a structured logger for the batcher.
// When set, the batcher logs batch starts, per-item failures, and completions.
func WithLogger(logger *slog.Logger) BatcherOption {
	return func(b *Batcher) {
		b.logger = logger
	}
}

// WithCredentialGate sets a credential gate checked before each batch is
// launched. Without one the batcher assumes a credential is available.
func WithCredentialGate(gate CredentialGate) BatcherOption {
	return func(b *Batcher) {
		b.gate = gate
	}
}
