package slide

import "testing"

func TestExtractJoinsParagraphsWithLineBreak(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:r><a:rPr sz="2400"/><a:t>Hello</a:t></a:r></a:p>`+
			`<a:p></a:p>`+
			`<a:p><a:r><a:t>World</a:t></a:r></a:p>`))

	blocks := Extract(root, nil)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Text != "Hello\nWorld" {
		t.Errorf("text = %q, want %q (empty paragraph dropped)", blocks[0].Text, "Hello\nWorld")
	}
	if blocks[0].Style.Size != 2400 {
		t.Errorf("style size = %d, want 2400", blocks[0].Style.Size)
	}
}

func TestExtractSkipsWhitespaceOnlyShapes(t *testing.T) {
	root := mustParse(t, wrapParagraph(`<a:p><a:r><a:t>   </a:t></a:r></a:p>`))

	if blocks := Extract(root, nil); len(blocks) != 0 {
		t.Errorf("got %d blocks from whitespace-only shape, want 0", len(blocks))
	}
}

func TestExtractConcatenatesRunsWithinParagraph(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p><a:r><a:t>Hello </a:t></a:r><a:r><a:t>World</a:t></a:r></a:p>`))

	blocks := Extract(root, nil)
	if len(blocks) != 1 || blocks[0].Text != "Hello World" {
		t.Fatalf("blocks = %+v, want one block %q", blocks, "Hello World")
	}
}

func TestExtractReferenceParagraphIsFirstNonEmpty(t *testing.T) {
	root := mustParse(t, wrapParagraph(
		`<a:p></a:p>`+
			`<a:p><a:r><a:rPr sz="2000"/><a:t>First</a:t></a:r></a:p>`+
			`<a:p><a:r><a:rPr sz="1000"/><a:t>Second</a:t></a:r></a:p>`))

	blocks := Extract(root, nil)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Style.Size != 2000 {
		t.Errorf("reference style size = %d, want 2000 from first non-empty paragraph", blocks[0].Style.Size)
	}
}

func TestExtractOrderAndGroups(t *testing.T) {
	doc := slideHeader + `<p:cSld><p:spTree>` +
		`<p:sp><p:txBody><a:p><a:r><a:t>one</a:t></a:r></a:p></p:txBody></p:sp>` +
		`<p:grpSp><p:grpSpPr/>` +
		`<p:sp><p:txBody><a:p><a:r><a:t>two</a:t></a:r></a:p></p:txBody></p:sp>` +
		`</p:grpSp>` +
		`<p:sp><p:txBody><a:p><a:r><a:t>three</a:t></a:r></a:p></p:txBody></p:sp>` +
		`</p:spTree></p:cSld></p:sld>`
	root := mustParse(t, doc)

	blocks := Extract(root, nil)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(blocks))
	}
	for i, want := range []string{"one", "two", "three"} {
		if blocks[i].Text != want {
			t.Errorf("block %d = %q, want %q", i, blocks[i].Text, want)
		}
	}
}
