package gemini

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/studiogen/batchgen"
)

func TestBuildInstruction(t *testing.T) {
	t.Run("persona is prepended with labeled delimiter", func(t *testing.T) {
		got := buildInstruction("You are a noir photographer.", "a cat on a roof")

		personaIdx := strings.Index(got, "You are a noir photographer.")
		promptIdx := strings.Index(got, "a cat on a roof")
		require.GreaterOrEqual(t, personaIdx, 0)
		require.Greater(t, promptIdx, personaIdx, "persona must come before the prompt")
		assert.Contains(t, got, userRequestLabel+"a cat on a roof")
	})

	t.Run("empty persona sends the prompt verbatim", func(t *testing.T) {
		assert.Equal(t, "a cat on a roof", buildInstruction("", "a cat on a roof"))
	})
}

func TestFirstImagePayload(t *testing.T) {
	t.Run("first inline image part wins, text ignored", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "here is your image"},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("first")}},
						{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("second")}},
					},
				},
			}},
		}

		data, err := firstImagePayload(resp)
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), data)
	})

	t.Run("text-only parts fail with ErrNoImageData", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: "just commentary"}},
				},
			}},
		}

		_, err := firstImagePayload(resp)
		require.Error(t, err)
		assert.True(t, batchgen.IsNoImageData(err))
	})

	t.Run("empty inline payload is not a success", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png"}}},
				},
			}},
		}

		_, err := firstImagePayload(resp)
		assert.True(t, batchgen.IsNoImageData(err))
	})

	t.Run("nil and empty responses fail with ErrNoImageData", func(t *testing.T) {
		_, err := firstImagePayload(nil)
		assert.True(t, batchgen.IsNoImageData(err))

		_, err = firstImagePayload(&genai.GenerateContentResponse{})
		assert.True(t, batchgen.IsNoImageData(err))

		_, err = firstImagePayload(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{}},
		})
		assert.True(t, batchgen.IsNoImageData(err))
	})
}

func TestProviderError(t *testing.T) {
	t.Run("API error message is propagated", func(t *testing.T) {
		apiErr := genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}
		err := providerError(apiErr, APIModelFlashImage)

		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Equal(t, APIModelFlashImage, err.Model)
		assert.True(t, batchgen.IsProviderCallError(err))
	})

	t.Run("opaque errors get the fallback message", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := providerError(cause, APIModelFlashImage)

		assert.Equal(t, batchgen.FallbackErrorMessage, err.Message)
		assert.ErrorIs(t, err, cause)
	})
}

func TestGenerator_ResolveModel(t *testing.T) {
	g := New(nil)

	assert.Equal(t, APIModelFlashImage, g.resolveModel(batchgen.DefaultConfig()))
	assert.Equal(t, APIModelFlashImage, g.resolveModel(&batchgen.GenerateConfig{}))
	assert.Equal(t, "imagen-4.0", g.resolveModel(&batchgen.GenerateConfig{Model: "imagen-4.0"}))
}

func TestGenerator_BuildGenerateContentConfig(t *testing.T) {
	cfg := &batchgen.GenerateConfig{
		AspectRatio: batchgen.AspectRatio16x9,
		Size:        batchgen.ImageSize1K,
	}

	got := buildGenerateContentConfig(cfg)

	assert.Equal(t, []string{"TEXT", "IMAGE"}, got.ResponseModalities)
	assert.Equal(t, int32(1), got.CandidateCount)
	require.NotNil(t, got.ImageConfig)
	assert.Equal(t, "16:9", got.ImageConfig.AspectRatio)
	assert.Equal(t, "1K", got.ImageConfig.ImageSize)
}
