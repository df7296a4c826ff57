package slide

import (
	"log/slog"
	"strings"

	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// TextBlock is the text content of one shape: the concatenated
// paragraph text, the shape it came from, the first non-empty paragraph
// as the reference for style cloning, and that paragraph's resolved
// style.
type TextBlock struct {
	Shape     *xmltree.Node
	Paragraph *xmltree.Node
	Text      string
	Style     StyleSpec
}

// Extract walks the slide's shape tree and returns one TextBlock per
// shape that carries visible text. Paragraph texts are trimmed and
// joined with a single line break in document order; empty paragraphs
// are dropped and shapes with only whitespace are skipped.
func Extract(root *xmltree.Node, logger *slog.Logger) []TextBlock {
	logger = ensureLogger(logger)

	var blocks []TextBlock
	for _, shape := range root.FindAll(NSPresentation, tagShape) {
		var (
			parts   []string
			refPara *xmltree.Node
		)
		for _, para := range shape.FindAll(NSDrawing, tagParagraph) {
			var text strings.Builder
			for _, run := range para.ChildrenNamed(NSDrawing, tagRun) {
				if t := run.Child(NSDrawing, tagText); t != nil {
					text.WriteString(t.Text)
				}
			}
			trimmed := strings.TrimSpace(text.String())
			if trimmed == "" {
				continue
			}
			if refPara == nil {
				refPara = para
			}
			parts = append(parts, trimmed)
		}

		if len(parts) == 0 {
			continue
		}
		block := TextBlock{
			Shape:     shape,
			Paragraph: refPara,
			Text:      strings.Join(parts, "\n"),
			Style:     ResolveStyle(refPara, logger),
		}
		logger.Debug("extracted text block", "text", block.Text, "size", block.Style.Size)
		blocks = append(blocks, block)
	}
	return blocks
}
