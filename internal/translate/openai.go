package translate

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
)

// OpenAI translates through an OpenAI-compatible chat completion API.
// A custom base URL allows any compatible server, including Ollama's
// /v1 endpoint, to serve as the backend.
type OpenAI struct {
	model  string
	client *openai.Client
}

// NewOpenAI creates an OpenAI-compatible backend. baseURL may be empty
// to use the public API.
func NewOpenAI(apiKey, model, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"
	}
	return &OpenAI{
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

// ListModels returns the chat-capable model names the API key can use,
// sorted. Models for other modalities are filtered out.
func (o *OpenAI) ListModels(ctx context.Context) ([]string, error) {
	models, err := o.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var names []string
	for _, m := range models.Models {
		if strings.Contains(m.ID, "gpt") || strings.Contains(m.ID, "chat") {
			names = append(names, m.ID)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Translate translates a single text.
func (o *OpenAI) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	prompt := fmt.Sprintf("Translate the following text from %s to %s. Respond with only the translation, nothing else.\n\n%s",
		from, to, text)
	raw, err := o.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	cleaned := Clean(raw, o.model)
	if cleaned == "" {
		return "", fmt.Errorf("translation of %q came back empty", text)
	}
	return cleaned, nil
}

// TranslateBatch translates separator-joined texts in one request and
// splits the response. The result may be shorter than the input.
func (o *OpenAI) TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	prompt := fmt.Sprintf("Translate the following texts from %s to %s. The texts are separated by %q; return each translation separated by the same token, with no prefixes or explanations.\n\n%s",
		from, to, Separator, strings.Join(texts, Separator))
	raw, err := o.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, fragment := range strings.Split(raw, Separator) {
		if cleaned := Clean(fragment, o.model); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out, nil
}

func (o *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator. Return only the requested translation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
