package translate

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/language"
)

// Breaker wraps a Backend with a circuit breaker so a dead translation
// service fails fast instead of being hammered once per remaining text
// block. An open breaker surfaces as an ordinary backend error, which
// the batch policy turns into placeholders.
type Breaker struct {
	backend Backend
	cb      *gobreaker.CircuitBreaker
}

// NewBreaker wraps the backend. The breaker opens after five
// consecutive failures and probes again after thirty seconds.
func NewBreaker(backend Backend) *Breaker {
	return &Breaker{
		backend: backend,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "translation",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Translate calls the wrapped backend through the breaker.
func (b *Breaker) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.Translate(ctx, text, from, to)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// TranslateBatch calls the wrapped backend through the breaker.
func (b *Breaker) TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.backend.TranslateBatch(ctx, texts, from, to)
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}
