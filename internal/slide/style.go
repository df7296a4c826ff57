package slide

import (
	"log/slog"

	"github.com/birdmanoutman/ppTranslator/internal/fontsize"
	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// StyleSpec is the resolved style of a paragraph. Size is in hundredths
// of a point. Declared reports whether the size was found in the style
// chain or substituted from the default.
type StyleSpec struct {
	Size     int
	Declared bool
}

// ResolveStyle determines the effective font size of a paragraph by
// walking the fallback chain: run properties of any run in document
// order, then the paragraph's default run properties, then the
// end-of-paragraph properties, then the fixed default. It never fails;
// gaps and unparsable size values are reported on the logger only.
func ResolveStyle(p *xmltree.Node, logger *slog.Logger) StyleSpec {
	logger = ensureLogger(logger)

	for _, run := range p.ChildrenNamed(NSDrawing, tagRun) {
		if size, ok := sizeFromProps(run.Child(NSDrawing, tagRunProps), logger); ok {
			return StyleSpec{Size: size, Declared: true}
		}
	}

	if pPr := p.Child(NSDrawing, tagParaProps); pPr != nil {
		if size, ok := sizeFromProps(pPr.Child(NSDrawing, tagDefRunProps), logger); ok {
			return StyleSpec{Size: size, Declared: true}
		}
	}

	if size, ok := sizeFromProps(p.Child(NSDrawing, tagEndParaProps), logger); ok {
		return StyleSpec{Size: size, Declared: true}
	}

	size := fontsize.DefaultSize()
	logger.Warn("no font size declared in style chain, using default",
		"size", fontsize.ToPoints(size))
	return StyleSpec{Size: size}
}

// sizeFromProps reads the sz attribute of a style properties element.
// A missing element, missing attribute or unparsable value yields
// ok=false so resolution continues down the chain.
func sizeFromProps(props *xmltree.Node, logger *slog.Logger) (int, bool) {
	if props == nil {
		return 0, false
	}
	value, ok := props.Attr(attrFontSize)
	if !ok {
		return 0, false
	}
	size, err := fontsize.ParseSize(value)
	if err != nil {
		logger.Warn("unparsable font size value, trying next style source", "value", value)
		return 0, false
	}
	return size, true
}

func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
