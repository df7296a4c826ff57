package slide

import (
	"strings"
	"testing"

	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// mustParse parses a slide XML fragment for tests.
func mustParse(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse(strings.NewReader(doc), Namespaces)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root
}

const slideHeader = `<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`

func wrapParagraph(body string) string {
	return slideHeader + `<p:cSld><p:spTree><p:sp><p:txBody><a:bodyPr/>` + body + `</p:txBody></p:sp></p:spTree></p:cSld></p:sld>`
}

func TestResolveStyleRunWins(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:pPr><a:defRPr sz="1200"/></a:pPr><a:r><a:rPr sz="1800"/><a:t>x</a:t></a:r></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	style := ResolveStyle(para, nil)
	if !style.Declared || style.Size != 1800 {
		t.Errorf("resolve = %+v, want declared 1800 (run wins over paragraph default)", style)
	}
}

func TestResolveStyleFirstRunWins(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:r><a:rPr sz="2800"/><a:t>a</a:t></a:r><a:r><a:rPr sz="1200"/><a:t>b</a:t></a:r></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	if style := ResolveStyle(para, nil); style.Size != 2800 {
		t.Errorf("resolve = %+v, want first run's 2800", style)
	}
}

func TestResolveStyleParagraphDefault(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:pPr><a:defRPr sz="1200"/></a:pPr><a:r><a:rPr/><a:t>x</a:t></a:r></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	if style := ResolveStyle(para, nil); style.Size != 1200 {
		t.Errorf("resolve = %+v, want paragraph default 1200", style)
	}
}

func TestResolveStyleEndParagraphMarker(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:r><a:t>x</a:t></a:r><a:endParaRPr sz="2000"/></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	if style := ResolveStyle(para, nil); style.Size != 2000 {
		t.Errorf("resolve = %+v, want endParaRPr 2000", style)
	}
}

func TestResolveStyleDefault(t *testing.T) {
	root := mustParse(t, wrapParagraph(`<a:p><a:r><a:t>x</a:t></a:r></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	style := ResolveStyle(para, nil)
	if style.Declared {
		t.Error("default style reported as declared")
	}
	if style.Size != 1400 {
		t.Errorf("default size = %d, want 1400", style.Size)
	}
}

func TestResolveStyleSkipsSentinelValue(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:r><a:rPr sz="quarter"/><a:t>x</a:t></a:r><a:endParaRPr sz="1600"/></a:p>`))
	para := root.Find(NSDrawing, tagParagraph)

	if style := ResolveStyle(para, nil); style.Size != 1600 {
		t.Errorf("resolve = %+v, want fall-through to endParaRPr 1600", style)
	}
}
