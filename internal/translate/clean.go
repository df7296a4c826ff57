package translate

import "strings"

// chatMarkers are model-specific framing tokens that leak into llama3
// output.
var chatMarkers = []string{"<s>", "</s>", "[INST]", "[/INST]", "Assistant:", "Human:"}

// translationPrefixes are lead-ins models prepend despite being told
// not to. Matched case-insensitively at the start of the output.
var translationPrefixes = []string{
	"translation:", "here's the translation:", "translated text:",
	"翻译:", "译文:", "中文翻译:", "英文翻译:",
	"transliteration:", "explanation:", "note:", "chinese:", "english:",
}

// Clean strips model framing from a raw translation: chat markers,
// "Translation:"-style prefixes, wrapping quotes and brackets, and
// redundant whitespace. Returns the empty string when nothing usable
// remains.
func Clean(text, model string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if model == "llama3:8b" {
		for _, marker := range chatMarkers {
			text = strings.ReplaceAll(text, marker, "")
		}
		text = strings.TrimSpace(text)
	}

	for _, prefix := range translationPrefixes {
		if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
			text = strings.TrimSpace(text[len(prefix):])
		}
	}

	text = strings.Trim(text, `"'`)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")

	return strings.Join(strings.Fields(text), " ")
}
