package translate_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/birdmanoutman/ppTranslator/internal/testutil"
	"github.com/birdmanoutman/ppTranslator/internal/translate"
)

func TestBreakerPassesThrough(t *testing.T) {
	backend := &testutil.MockBackend{
		Responses: map[string]string{"hello": "bonjour"},
	}
	breaker := translate.NewBreaker(backend)

	got, err := breaker.Translate(context.Background(), "hello",
		language.English, language.French)
	if err != nil || got != "bonjour" {
		t.Errorf("got (%q, %v), want (bonjour, nil)", got, err)
	}

	batch, err := breaker.TranslateBatch(context.Background(),
		[]string{"hello"}, language.English, language.French)
	if err != nil || len(batch) != 1 || batch[0] != "bonjour" {
		t.Errorf("batch = (%v, %v), want ([bonjour], nil)", batch, err)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	wantErr := errors.New("connection refused")
	backend := &testutil.MockBackend{BatchErr: wantErr}
	breaker := translate.NewBreaker(backend)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := breaker.TranslateBatch(ctx, []string{"x"},
			language.English, language.French); !errors.Is(err, wantErr) {
			t.Fatalf("call %d: err = %v, want backend error", i, err)
		}
	}

	// Sixth call must fail fast without touching the backend.
	calls := len(backend.Calls)
	if _, err := breaker.TranslateBatch(ctx, []string{"x"},
		language.English, language.French); err == nil {
		t.Fatal("expected open-breaker error")
	}
	if len(backend.Calls) != calls {
		t.Errorf("backend reached through an open breaker: %d calls, had %d", len(backend.Calls), calls)
	}
}
