package slide

import (
	"strconv"

	"github.com/birdmanoutman/ppTranslator/internal/fontsize"
	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// Synthesize builds one new paragraph per line, cloning the reference
// paragraph's paragraph- and run-level style so the translation matches
// the original's look. The run font size is the reference's resolved
// size shrunk for being a translation; every other style attribute is
// copied verbatim. Line text is set as-is, blank lines included.
func Synthesize(ref *xmltree.Node, style StyleSpec, lines []string) []*xmltree.Node {
	refRun := ref.Find(NSDrawing, tagRun)
	var refRunProps *xmltree.Node
	if refRun != nil {
		refRunProps = refRun.Child(NSDrawing, tagRunProps)
	}
	refParaProps := ref.Child(NSDrawing, tagParaProps)

	size := fontsize.ShrinkForTranslation(style.Size, true)

	paragraphs := make([]*xmltree.Node, 0, len(lines))
	for _, line := range lines {
		para := xmltree.NewNode(NSDrawing, tagParagraph)
		if refParaProps != nil {
			props := xmltree.NewNode(NSDrawing, tagParaProps)
			props.CopyStyleFrom(refParaProps)
			para.Append(props)
		}

		run := xmltree.NewNode(NSDrawing, tagRun)
		props := xmltree.NewNode(NSDrawing, tagRunProps)
		props.CopyStyleFrom(refRunProps)
		props.SetAttr(attrFontSize, strconv.Itoa(size))
		run.Append(props)

		text := xmltree.NewNode(NSDrawing, tagText)
		text.Text = line
		run.Append(text)

		para.Append(run)
		paragraphs = append(paragraphs, para)
	}
	return paragraphs
}
