package translate

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/language"
)

// Batcher applies the batch policy on top of a raw Backend: one
// batched request per slide, count-mismatch repair through per-item
// calls, per-item fallback when the whole batch fails, and marked
// placeholders when an individual translation is unusable. The result
// always has exactly one entry per input.
type Batcher struct {
	backend Backend
	logger  *slog.Logger
}

// NewBatcher creates a Batcher. A nil logger discards diagnostics.
func NewBatcher(backend Backend, logger *slog.Logger) *Batcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Batcher{backend: backend, logger: logger}
}

// TranslateBatch translates texts order-preservingly. It only fails on
// context cancellation; service-level problems degrade to placeholders.
func (b *Batcher) TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	results, err := b.backend.TranslateBatch(ctx, texts, from, to)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		b.logger.Warn("batch translation failed, falling back to per-item calls", "error", err)
		results = nil
	}

	if len(results) > len(texts) {
		// Extra separators inside translated text; lenient truncation.
		b.logger.Warn("batch returned more fragments than inputs, truncating",
			"want", len(texts), "got", len(results))
		results = results[:len(texts)]
	}
	if len(results) < len(texts) && err == nil && results != nil {
		b.logger.Warn("batch returned fewer results than inputs, backfilling per item",
			"want", len(texts), "got", len(results))
	}

	for len(results) < len(texts) {
		idx := len(results)
		single, err := b.backend.Translate(ctx, texts[idx], from, to)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.logger.Warn("per-item translation failed, substituting placeholder",
				"text", texts[idx], "error", err)
			single = Placeholder(texts[idx])
		}
		results = append(results, single)
	}

	for i, result := range results {
		if strings.TrimSpace(result) == "" {
			b.logger.Warn("empty translation after cleanup, substituting placeholder", "text", texts[i])
			results[i] = Placeholder(texts[i])
		}
	}
	return results, nil
}

// Bind fixes a language pair, yielding the per-slide translator the
// transformation engine consumes.
func (b *Batcher) Bind(from, to language.Tag) *Bound {
	return &Bound{batcher: b, from: from, to: to}
}

// Bound is a Batcher with a fixed language pair.
type Bound struct {
	batcher  *Batcher
	from, to language.Tag
}

// TranslateBatch translates texts with the bound language pair.
func (b *Bound) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return b.batcher.TranslateBatch(ctx, texts, b.from, b.to)
}
