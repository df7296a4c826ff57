// Package testutil provides shared test doubles, most notably a
// scriptable translation backend.
package testutil

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// MockBackend is a scriptable translate.Backend. Responses maps input
// text to its translation for single calls; BatchResponses, when set,
// is returned verbatim from the next TranslateBatch call. Every call
// is recorded in Calls.
type MockBackend struct {
	Responses      map[string]string
	BatchResponses [][]string
	Errors         map[string]error
	BatchErr       error
	Calls          []string

	batchCalls int
}

// Translate returns the scripted translation for text, or an error if
// one is scripted. Unscripted texts echo back with a marker so tests
// notice them.
func (m *MockBackend) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("one %s", text))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if resp, ok := m.Responses[text]; ok {
		return resp, nil
	}
	return "mock:" + text, nil
}

// TranslateBatch returns the next scripted batch response, or falls
// back to per-item scripted responses.
func (m *MockBackend) TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("batch %d", len(texts)))

	if m.BatchErr != nil {
		return nil, m.BatchErr
	}
	if m.batchCalls < len(m.BatchResponses) {
		resp := m.BatchResponses[m.batchCalls]
		m.batchCalls++
		return resp, nil
	}

	out := make([]string, 0, len(texts))
	for _, text := range texts {
		translated, err := m.Translate(ctx, text, from, to)
		if err != nil {
			return nil, err
		}
		out = append(out, translated)
	}
	return out, nil
}
