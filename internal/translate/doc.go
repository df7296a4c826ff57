// Package translate provides the translation backend contract and its
// implementations: an Ollama HTTP backend with per-model prompt
// templates, an OpenAI-compatible backend, a circuit breaker wrapper,
// and the batch policy that repairs count mismatches and substitutes
// marked placeholders so no text block is ever dropped silently.
package translate
