// Package gemini provides an ItemGenerator implementation using Google's
// Gemini API via the official Go SDK: https://github.com/googleapis/go-genai
//
// For Vertex AI or other Google Cloud backends, a separate provider
// implementation could be created using the same SDK with a different backend
// configuration.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/studiogen/batchgen"
	"google.golang.org/genai"
)

// APIModelFlashImage is the actual API name for Gemini 2.5 Flash Image.
const APIModelFlashImage = "gemini-2.5-flash-image"

// userRequestLabel delimits the user's prompt from the persona instruction in
// the combined request text.
const userRequestLabel = "User Request: "

// Generator implements batchgen.ItemGenerator using Google's Gemini API.
//
// A fresh genai.Client is built for every call from the key the KeySource
// currently holds, so a credential selected mid-session is in effect on the
// very next request. Clients this cheaply constructed carry no connection
// state worth caching at this layer.
type Generator struct {
	keys batchgen.KeySource
}

// Ensure Generator implements the interface.
var _ batchgen.ItemGenerator = (*Generator)(nil)

// New creates a Generator that reads its credential from keys. A nil
// KeySource is allowed; the SDK then falls back to the GOOGLE_API_KEY or
// GEMINI_API_KEY environment variables.
func New(keys batchgen.KeySource) *Generator {
	return &Generator{keys: keys}
}

// NewWithAPIKey creates a Generator with a fixed API key.
func NewWithAPIKey(apiKey string) *Generator {
	return New(batchgen.NewKeyStore(apiKey))
}

// GenerateOne issues a single generation request and returns the parsed image.
//
// The prompt is sent verbatim when config.Persona is empty; otherwise the
// persona text is prepended with a labeled delimiter. Call failures surface
// as a *batchgen.ProviderCallError; a transport-level success that carries no
// inline image part fails with batchgen.ErrNoImageData.
func (g *Generator) GenerateOne(ctx context.Context, prompt string, config *batchgen.GenerateConfig) (*batchgen.GeneratedImage, error) {
	if config == nil {
		config = batchgen.DefaultConfig()
	}

	modelName := g.resolveModel(config)

	client, err := g.newClient(ctx)
	if err != nil {
		return nil, providerError(fmt.Errorf("failed to create Gemini client: %w", err), modelName)
	}

	contents := []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: buildInstruction(config.Persona, prompt)},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, modelName, contents, buildGenerateContentConfig(config))
	if err != nil {
		return nil, providerError(err, modelName)
	}

	data, err := firstImagePayload(result)
	if err != nil {
		return nil, err
	}

	return batchgen.NewGeneratedImage(
		batchgen.EncodePNGDataURI(data),
		prompt,
		config.AspectRatio,
	), nil
}

// Close releases any resources held by the generator.
func (g *Generator) Close() error {
	// Clients are per-call; nothing is held between requests.
	return nil
}

// newClient builds a client from the credential currently in effect.
func (g *Generator) newClient(ctx context.Context) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
	}
	if g.keys != nil {
		if key := g.keys.CurrentKey(); key != "" {
			clientCfg.APIKey = key
		}
	}
	return genai.NewClient(ctx, clientCfg)
}

// resolveModel determines which API model name to use.
func (g *Generator) resolveModel(config *batchgen.GenerateConfig) string {
	if config != nil && config.Model != "" {
		return string(config.Model)
	}
	return APIModelFlashImage
}

// buildInstruction combines a persona instruction and a prompt into the
// single request text. The explicit prepend guarantees persona adherence even
// on models that only partially honor a system-instruction channel.
func buildInstruction(persona, prompt string) string {
	if persona == "" {
		return prompt
	}
	return persona + "\n\n" + userRequestLabel + prompt
}

// buildGenerateContentConfig converts our config to Gemini's request format.
func buildGenerateContentConfig(config *batchgen.GenerateConfig) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		// Enable image output
		ResponseModalities: []string{"TEXT", "IMAGE"},
		CandidateCount:     1,
		ImageConfig: &genai.ImageConfig{
			AspectRatio: config.AspectRatio.String(),
			ImageSize:   config.Size.String(),
		},
	}
}

// firstImagePayload locates the inline image payload among the returned
// content parts. The first part carrying image data wins; text commentary
// parts are ignored. A response without one is a failure, not an empty
// success.
func firstImagePayload(result *genai.GenerateContentResponse) ([]byte, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from model: %w", batchgen.ErrNoImageData)
	}

	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, batchgen.ErrNoImageData
}

// providerError normalizes an SDK failure into a ProviderCallError, carrying
// the provider's own message when the error exposes one.
func providerError(err error, model string) *batchgen.ProviderCallError {
	message := batchgen.FallbackErrorMessage

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	return &batchgen.ProviderCallError{
		Message: message,
		Model:   model,
		Err:     err,
	}
}
