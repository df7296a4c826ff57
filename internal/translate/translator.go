package translate

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// Separator is the reserved token used to pack multiple texts into one
// request and split the response. It is assumed never to occur in real
// slide content.
const Separator = "|||"

// Backend is the raw translation service contract. Translate returns
// exactly one translation or a distinguishable error, never a silent
// empty string. TranslateBatch is order-preserving but may return
// fewer results than inputs; the Batcher repairs that.
type Backend interface {
	Translate(ctx context.Context, text string, from, to language.Tag) (string, error)
	TranslateBatch(ctx context.Context, texts []string, from, to language.Tag) ([]string, error)
}

// Placeholder returns the visibly marked substitute used when a text
// could not be translated, so the output document stays structurally
// complete and correctable by hand.
func Placeholder(original string) string {
	return fmt.Sprintf("[Translation Error for: %s]", original)
}

// isChinese reports whether the tag's base language is Chinese, which
// selects the zh→en prompt direction.
func isChinese(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "zh"
}
