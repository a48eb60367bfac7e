package batchgen

// Model represents a specific image generation model.
type Model string

const (
	// ModelGeminiFlashImage is the default image model served by the Gemini API.
	ModelGeminiFlashImage Model = "gemini-2.5-flash-image"

	ModelDefault Model = ModelGeminiFlashImage
)

// ImageSize represents the output resolution tier for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"

	// DefaultImageSize is the fixed resolution tier sent with every request.
	DefaultImageSize ImageSize = ImageSize1K
)

// AspectRatio represents the aspect ratio for generated images.
// Only the ratios the provider accepts are enumerated here.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
)

// SupportedAspectRatios lists every ratio accepted by the provider, in
// display order. Presentation layers can use it to build a picker.
func SupportedAspectRatios() []AspectRatio {
	return []AspectRatio{
		AspectRatio1x1,
		AspectRatio16x9,
		AspectRatio9x16,
		AspectRatio4x3,
		AspectRatio3x4,
	}
}

// GenerateConfig holds configuration options shared by every item in a batch.
type GenerateConfig struct {
	// Model to use for generation (if empty, the provider's default is used)
	Model Model

	// Persona is a system-style instruction prepended to the prompt.
	// May be empty.
	Persona string

	// AspectRatio of the output images
	AspectRatio AspectRatio

	// Size of the output images (resolution tier)
	Size ImageSize
}

// DefaultConfig returns a GenerateConfig with sensible defaults.
func DefaultConfig() *GenerateConfig {
	return &GenerateConfig{
		Model:       ModelDefault,
		AspectRatio: AspectRatio1x1,
		Size:        DefaultImageSize,
	}
}

// WithPersona returns a copy of the config with the specified persona.
func (c *GenerateConfig) WithPersona(persona string) *GenerateConfig {
	if c == nil {
		return &GenerateConfig{Persona: persona}
	}
	cX := *c
	cX.Persona = persona
	return &cX
}

// String returns the string representation for API calls.
func (a AspectRatio) String() string {
	return string(a)
}

// String returns the string representation for API calls.
func (s ImageSize) String() string {
	return string(s)
}

// String returns the model identifier.
func (m Model) String() string {
	return string(m)
}
