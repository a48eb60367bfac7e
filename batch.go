package batchgen

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Batcher fans out independent single-item generations and aggregates
// whatever succeeded.
//
// A batch degrades gracefully rather than aborting: every item is attempted
// exactly once, a failed item never affects its siblings, and failures are
// logged and dropped instead of being propagated. The only post-launch signal
// a caller gets about failures is a result list shorter than the requested
// count.
type Batcher struct {
	gen    ItemGenerator
	gate   CredentialGate
	logger *slog.Logger
}

// NewBatcher creates a Batcher around an ItemGenerator.
//
// Example:
//
//	gen, err := gemini.New(ctx, keys)
//	if err != nil {
//	    return err
//	}
//	batcher := batchgen.NewBatcher(gen,
//	    batchgen.WithLogger(slog.Default()),
//	    batchgen.WithCredentialGate(keys),
//	)
func NewBatcher(gen ItemGenerator, opts ...BatcherOption) *Batcher {
	b := &Batcher{
		gen:    gen,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GenerateBatch launches count concurrent generations for the same prompt
// and returns the successful results in settlement order.
//
// onProgress, if non-nil, is invoked exactly count times with the cumulative
// settled total (1..count), once per settlement in strictly increasing order.
// Successes and failures advance progress identically; progress alone cannot
// distinguish them. Invocations are serialized, so onProgress need not be
// safe for concurrent use within one batch.
//
// The returned error is non-nil only for pre-launch conditions: an invalid
// count or aspect ratio, or a credential gate reporting no usable credential.
// Once items are launched the call always waits for every settlement and
// returns whatever succeeded, down to an empty list.
//
// Separate GenerateBatch calls share no state; concurrent batches run fully
// independently with interleaved progress.
func (b *Batcher) GenerateBatch(ctx context.Context, prompt string, count int, config *GenerateConfig, onProgress ProgressFunc) ([]GeneratedImage, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	if err := ValidateAspectRatio(config.AspectRatio); err != nil {
		return nil, err
	}

	if b.gate != nil && !b.gate.HasUsableCredential() {
		b.logger.Warn("no usable credential for batch, prompting")
		b.gate.PromptForCredential()
		return nil, ErrNoCredential
	}

	if count == 0 {
		return []GeneratedImage{}, nil
	}

	start := time.Now()

	b.logger.Debug("starting batch generation",
		"model", string(config.Model),
		"count", count,
		"aspect_ratio", string(config.AspectRatio),
		"prompt_length", len(prompt),
	)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		settled int
		results = make([]GeneratedImage, 0, count)
	)

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(item int) {
			defer wg.Done()

			img, err := b.gen.GenerateOne(ctx, prompt, config)

			// One settlement per item: counter increment, progress
			// callback, and result recording happen under the same
			// lock so progress values are strictly increasing and
			// results stay in settlement order.
			mu.Lock()
			defer mu.Unlock()

			settled++
			if onProgress != nil {
				onProgress(settled)
			}

			if err != nil {
				b.logger.Warn("batch item failed",
					"item", item,
					"settled", settled,
					"error", err.Error(),
				)
				return
			}
			results = append(results, *img)
		}(i)
	}

	wg.Wait()

	b.logger.Info("batch generation completed",
		"model", string(config.Model),
		"duration_ms", time.Since(start).Milliseconds(),
		"requested", count,
		"succeeded", len(results),
	)

	return results, nil
}
