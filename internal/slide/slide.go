package slide

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/birdmanoutman/ppTranslator/internal/fontsize"
	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// Translator is the external translation collaborator as seen by the
// engine: an order-preserving batch call over all text blocks of one
// slide. Implementations must return exactly one result per input.
type Translator interface {
	TranslateBatch(ctx context.Context, texts []string) ([]string, error)
}

// Engine transforms one slide tree at a time. A slide tree is owned
// exclusively by the caller for the duration of Translate.
type Engine struct {
	translator Translator
	logger     *slog.Logger
}

// NewEngine creates an engine around the given translator. A nil
// logger discards diagnostics.
func NewEngine(translator Translator, logger *slog.Logger) *Engine {
	return &Engine{translator: translator, logger: ensureLogger(logger)}
}

// Translate runs the full per-slide pipeline: extract text blocks,
// step every declared font size one ladder rung down, translate the
// blocks in one batch, re-segment each translation along the
// original's line breaks, append styled translation paragraphs to
// their shapes, and normalize auto-fit across the shape tree. The tree
// is mutated in place. Only a failed translation transport (context
// cancellation included) aborts; per-block translation problems
// degrade to placeholders inside the translator.
func (e *Engine) Translate(ctx context.Context, root *xmltree.Node) error {
	blocks := Extract(root, e.logger)

	adjustDeclaredSizes(root, e.logger)

	if len(blocks) > 0 {
		texts := make([]string, len(blocks))
		for i, b := range blocks {
			texts[i] = b.Text
		}

		translations, err := e.translator.TranslateBatch(ctx, texts)
		if err != nil {
			return err
		}

		for i, block := range blocks {
			if i >= len(translations) || translations[i] == "" {
				continue
			}
			e.appendTranslation(block, translations[i])
		}
	}

	NormalizeAutoFit(root)
	return nil
}

// appendTranslation inserts the translated paragraphs immediately
// after the shape's last existing paragraph.
func (e *Engine) appendTranslation(block TextBlock, translation string) {
	lines := Resegment(block.Text, translation)
	if len(lines) == 0 {
		return
	}
	e.logger.Debug("appending translation", "original", block.Text, "translation", translation)

	paragraphs := block.Shape.FindAll(NSDrawing, tagParagraph)
	if len(paragraphs) == 0 {
		return
	}
	last := paragraphs[len(paragraphs)-1]
	parent := block.Shape.Parent(last)
	if parent == nil {
		return
	}

	for _, para := range Synthesize(block.Paragraph, block.Style, lines) {
		parent.InsertAfter(last, para)
		last = para
	}
}

// adjustDeclaredSizes steps every sz attribute in the tree one ladder
// rung down, exactly once, so the original text cedes room to the
// translation below it. Unparsable sentinel values are left untouched.
func adjustDeclaredSizes(n *xmltree.Node, logger *slog.Logger) {
	if value, ok := n.Attr(attrFontSize); ok {
		if size, err := fontsize.ParseSize(value); err != nil {
			logger.Warn("unparsable font size value, leaving unchanged", "value", value)
		} else {
			n.SetAttr(attrFontSize, strconv.Itoa(fontsize.ShrinkForTranslation(size, false)))
		}
	}
	for _, child := range n.Children {
		adjustDeclaredSizes(child, logger)
	}
}
