package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// promptSet holds the prompt templates of one model. Templates use
// {text} and {separator} placeholders.
type promptSet struct {
	toEnglish      string
	toChinese      string
	toEnglishBatch string
	toChineseBatch string
}

// supportedModels maps model names to their prompt templates. Models
// differ in how strictly they must be instructed to return bare
// translations.
var supportedModels = map[string]promptSet{
	"qwen:7b": {
		toEnglish:      "Translate this Chinese text to English. Only return the translation:{text}",
		toChinese:      "Translate this English text to Chinese. Only return the translation:{text}",
		toEnglishBatch: "Translate these Chinese texts to English. Return each translation separated by \"{separator}\" without any prefix or explanation:\n{text}",
		toChineseBatch: "Translate these English texts to Chinese. Return each translation separated by \"{separator}\" without any prefix or explanation:\n{text}",
	},
	"llama3:8b": {
		toEnglish: `<s>[INST] You are a professional translator. Follow these rules strictly:
1. Translate the Chinese text to English
2. Return ONLY the translation
3. No explanations or notes
4. No prefixes like 'Translation:'
5. Keep original punctuation style

Text to translate:
{text}
[/INST]`,
		toChinese: `<s>[INST] You are a professional translator. Follow these rules strictly:
1. Translate the English text to Chinese
2. Return ONLY the translation
3. No explanations or notes
4. No prefixes like '翻译:'
5. Keep original punctuation style

Text to translate:
{text}
[/INST]`,
		toEnglishBatch: `<s>[INST] You are a professional translator. Follow these rules strictly:
1. Translate these Chinese texts to English
2. Return ONLY the translations, separated by "{separator}"
3. No explanations or notes
4. No prefixes like 'Translation:'
5. Keep original punctuation style

Texts to translate:
{text}
[/INST]`,
		toChineseBatch: `<s>[INST] You are a professional translator. Follow these rules strictly:
1. Translate these English texts to Chinese
2. Return ONLY the translations, separated by "{separator}"
3. No explanations or notes
4. No prefixes like '翻译:'
5. Keep original punctuation style

Texts to translate:
{text}
[/INST]`,
	},
}

// SupportedModels returns the names of the models the Ollama backend
// has prompt templates for, sorted.
func SupportedModels() []string {
	names := make([]string, 0, len(supportedModels))
	for name := range supportedModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultOllamaHost is the base URL of a locally running Ollama server.
const DefaultOllamaHost = "http://localhost:11434"

// Ollama translates through a local Ollama server's /api/generate
// endpoint.
type Ollama struct {
	model   string
	host    string
	prompts promptSet
	client  *http.Client
}

// NewOllama creates an Ollama backend for a supported model. The host
// is the server base URL, with or without a trailing slash; an empty
// host means the local default.
func NewOllama(model, host string) (*Ollama, error) {
	prompts, ok := supportedModels[model]
	if !ok {
		return nil, fmt.Errorf("unsupported model %q, supported models: %v", model, SupportedModels())
	}
	if host == "" {
		host = DefaultOllamaHost
	}
	return &Ollama{
		model:   model,
		host:    strings.TrimRight(host, "/"),
		prompts: prompts,
		client:  &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

// CheckConnection probes the server's version endpoint.
func (o *Ollama) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host+"/api/version", nil)
	if err != nil {
		return err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama server unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama server returned status %d", resp.StatusCode)
	}
	return nil
}

// ListModels returns the model names installed on the server, sorted.
func (o *Ollama) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.host+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var decoded struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	names := make([]string, 0, len(decoded.Models))
	for _, m := range decoded.Models {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Translate translates a single text. Output that cleans down to
// nothing is an error, not an empty string.
func (o *Ollama) Translate(ctx context.Context, text string, from, to language.Tag) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	raw, err := o.generate(ctx, o.prompt(text, from, false))
	if err != nil {
		return "", err
	}
	cleaned := Clean(raw, o.model)
	if cleaned == "" {
		return "", fmt.Errorf("translation of %q came back empty", text)
	}
	return cleaned, nil
}

// TranslateBatch joins the texts with the reserved separator, issues
// one generate call and splits the response. Empty fragments are
// dropped, so the result may be shorter than the input.
func (o *Ollama) TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	raw, err := o.generate(ctx, o.prompt(strings.Join(texts, Separator), from, true))
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

func (o *Ollama) prompt(text string, from language.Tag, batch bool) string {
	var template string
	switch {
	case isChinese(from) && batch:
		template = o.prompts.toEnglishBatch
	case isChinese(from):
		template = o.prompts.toEnglish
	case batch:
		template = o.prompts.toChineseBatch
	default:
		template = o.prompts.toChinese
	}
	return strings.NewReplacer("{text}", text, "{separator}", Separator).Replace(template)
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (o *Ollama) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: o.model, Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	return strings.TrimSpace(decoded.Response), nil
}
