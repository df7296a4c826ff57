package translate

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		model string
		want  string
	}{
		{"plain", "Bonjour", "qwen:7b", "Bonjour"},
		{"surrounding whitespace", "  Bonjour le monde \n", "qwen:7b", "Bonjour le monde"},
		{"translation prefix", "Translation: Bonjour", "qwen:7b", "Bonjour"},
		{"prefix case insensitive", "TRANSLATION: Bonjour", "qwen:7b", "Bonjour"},
		{"chinese prefix", "翻译: 你好", "qwen:7b", "你好"},
		{"wrapping quotes", `"Bonjour"`, "qwen:7b", "Bonjour"},
		{"wrapping brackets", "[Bonjour]", "qwen:7b", "Bonjour"},
		{"internal whitespace collapsed", "Bonjour\n\tle  monde", "qwen:7b", "Bonjour le monde"},
		{"llama3 chat markers", "<s>[INST] Bonjour [/INST]</s>", "llama3:8b", "Bonjour"},
		{"markers kept for other models", "[INST] hi", "qwen:7b", "INST] hi"},
		{"empty", "   ", "qwen:7b", ""},
		{"only markers", "<s></s>", "llama3:8b", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in, tc.model); got != tc.want {
				t.Errorf("Clean(%q, %s) = %q, want %q", tc.in, tc.model, got, tc.want)
			}
		})
	}
}
