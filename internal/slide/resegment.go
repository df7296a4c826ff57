package slide

import (
	"strings"
	"unicode"
)

// punctuation set a translated line may be broken after.
const breakPunctuation = ".,:;?!"

// Resegment splits translatedText into lines that mirror the line
// breaks of originalText. Each original break offset is scaled by the
// length ratio of the two texts and then snapped forward to the nearest
// following whitespace or punctuation mark, whichever comes first; when
// neither exists before the end of the text the unsnapped position is
// used. Offsets are in runes. Empty lines are dropped and the trailing
// remainder becomes the final line. originalText must be non-empty.
func Resegment(originalText, translatedText string) []string {
	translated := []rune(translatedText)
	total := len(translated)

	// Cumulative rune offsets of the original line breaks. The break
	// characters themselves are not counted.
	originalLines := strings.Split(originalText, "\n")
	var breaks []int
	pos := 0
	for _, line := range originalLines[:len(originalLines)-1] {
		pos += len([]rune(line))
		breaks = append(breaks, pos)
	}

	ratio := float64(total) / float64(len([]rune(originalText)))

	var lines []string
	last := 0
	for _, breakOffset := range breaks {
		candidate := int(float64(breakOffset) * ratio)
		if candidate >= total {
			continue
		}

		spacePos := indexSpaceFrom(translated, candidate)
		punctPos := indexPunctFrom(translated, candidate)
		if punctPos != -1 {
			// Break after the punctuation mark, not before it.
			punctPos++
		}

		breakPos := candidate
		switch {
		case spacePos != -1 && punctPos != -1:
			breakPos = min(spacePos, punctPos)
		case spacePos != -1:
			breakPos = spacePos
		case punctPos != -1:
			breakPos = punctPos
		}

		if line := strings.TrimSpace(string(translated[last:breakPos])); line != "" {
			lines = append(lines, line)
		}
		last = breakPos
	}

	if last < total {
		if line := strings.TrimSpace(string(translated[last:])); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// indexSpaceFrom returns the index of the first whitespace rune at or
// after start, or -1.
func indexSpaceFrom(text []rune, start int) int {
	for i := start; i < len(text); i++ {
		if unicode.IsSpace(text[i]) {
			return i
		}
	}
	return -1
}

// indexPunctFrom returns the index of the first breakable punctuation
// rune at or after start, or -1.
func indexPunctFrom(text []rune, start int) int {
	for i := start; i < len(text); i++ {
		if strings.ContainsRune(breakPunctuation, text[i]) {
			return i
		}
	}
	return -1
}
