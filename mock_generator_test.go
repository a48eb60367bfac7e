package batchgen

import (
	"context"
)

// MockItemGenerator is a mock implementation of ItemGenerator.
type MockItemGenerator struct {
	GenerateOneFunc func(ctx context.Context, prompt string, config *GenerateConfig) (*GeneratedImage, error)
	CloseFunc       func() error
}

func (m *MockItemGenerator) GenerateOne(ctx context.Context, prompt string, config *GenerateConfig) (*GeneratedImage, error) {
	if m.GenerateOneFunc != nil {
		return m.GenerateOneFunc(ctx, prompt, config)
	}
	return NewGeneratedImage(EncodePNGDataURI([]byte("fake-image")), prompt, config.AspectRatio), nil
}

func (m *MockItemGenerator) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// mockGate records gate interactions.
type mockGate struct {
	usable   bool
	prompted bool
}

func (g *mockGate) HasUsableCredential() bool { return g.usable }
func (g *mockGate) PromptForCredential()      { g.prompted = true }
