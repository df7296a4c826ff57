package xmltree

import (
	"bytes"
	"strings"
	"testing"
)

const (
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

var testNamespaces = Namespaces{"p": nsP, "a": nsA}

const sampleDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:txBody>
          <a:bodyPr wrap="none"/>
          <a:p>
            <a:r>
              <a:rPr sz="2400" b="1"/>
              <a:t>Hello &amp; welcome</a:t>
            </a:r>
          </a:p>
        </p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sld>`

func parseSample(t *testing.T) *Node {
	t.Helper()
	root, err := Parse(strings.NewReader(sampleDoc), testNamespaces)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return root
}

func TestParse(t *testing.T) {
	root := parseSample(t)

	if !root.Is(nsP, "sld") {
		t.Errorf("root is %v, want p:sld", root.Name)
	}

	text := root.Find(nsA, "t")
	if text == nil {
		t.Fatal("a:t not found")
	}
	if text.Text != "Hello & welcome" {
		t.Errorf("text = %q, want %q", text.Text, "Hello & welcome")
	}

	props := root.Find(nsA, "rPr")
	if props == nil {
		t.Fatal("a:rPr not found")
	}
	if sz, ok := props.Attr("sz"); !ok || sz != "2400" {
		t.Errorf("sz attr = %q, %v", sz, ok)
	}
}

func TestParseDropsInterElementWhitespace(t *testing.T) {
	root := parseSample(t)
	if para := root.Find(nsA, "p"); para.Text != "" {
		t.Errorf("a:p has text %q, want none", para.Text)
	}
}

func TestRoundTrip(t *testing.T) {
	root := parseSample(t)

	var buf bytes.Buffer
	if err := Serialize(&buf, root, testNamespaces); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`,
		`<p:sp>`,
		`<a:rPr sz="2400" b="1"/>`,
		`<a:t>Hello &amp; welcome</a:t>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized output missing %q:\n%s", want, out)
		}
	}

	// The output must parse back to the same structure.
	reparsed, err := Parse(strings.NewReader(out), testNamespaces)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if text := reparsed.Find(nsA, "t"); text == nil || text.Text != "Hello & welcome" {
		t.Error("text did not survive round trip")
	}
}

func TestSerializeUnknownNamespaceFails(t *testing.T) {
	root := NewNode("urn:nobody-declared-this", "x")
	if err := Serialize(&bytes.Buffer{}, root, testNamespaces); err == nil {
		t.Error("Expected error for undeclared namespace")
	}
}

func TestAttrHelpers(t *testing.T) {
	n := NewNode(nsA, "rPr")

	if _, ok := n.Attr("sz"); ok {
		t.Error("Attr found value on empty node")
	}

	n.SetAttr("sz", "1800")
	n.SetAttr("sz", "1400")
	if v, _ := n.Attr("sz"); v != "1400" {
		t.Errorf("sz = %q after SetAttr twice, want 1400", v)
	}
	if len(n.Attrs) != 1 {
		t.Errorf("SetAttr duplicated the attribute: %d attrs", len(n.Attrs))
	}

	n.RemoveAttr("sz")
	if _, ok := n.Attr("sz"); ok {
		t.Error("sz still present after RemoveAttr")
	}
}

func TestInsertAfter(t *testing.T) {
	parent := NewNode(nsA, "txBody")
	first := NewNode(nsA, "p")
	second := NewNode(nsA, "p")
	parent.Append(first)
	parent.Append(second)

	inserted := NewNode(nsA, "p")
	parent.InsertAfter(first, inserted)

	if len(parent.Children) != 3 || parent.Children[1] != inserted {
		t.Error("InsertAfter did not insert in the middle")
	}
	if parent.Children[2] != second {
		t.Error("InsertAfter displaced the following sibling")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := parseSample(t)
	clone := root.Clone()

	clone.Find(nsA, "rPr").SetAttr("sz", "900")
	if sz, _ := root.Find(nsA, "rPr").Attr("sz"); sz != "2400" {
		t.Error("mutating the clone changed the original")
	}
}

func TestParentAndRemove(t *testing.T) {
	root := parseSample(t)
	para := root.Find(nsA, "p")

	parent := root.Parent(para)
	if parent == nil || !parent.Is(nsP, "txBody") {
		t.Fatalf("Parent(a:p) = %v, want p:txBody", parent)
	}

	parent.Remove(para)
	if root.Find(nsA, "p") != nil {
		t.Error("paragraph still present after Remove")
	}
}

func TestCopyStyleFrom(t *testing.T) {
	src := NewNode(nsA, "rPr")
	src.SetAttr("sz", "2000")
	src.SetAttr("b", "1")
	src.Append(NewNode(nsA, "latin"))

	dst := NewNode(nsA, "rPr")
	dst.SetAttr("sz", "1000")
	dst.CopyStyleFrom(src)

	if sz, _ := dst.Attr("sz"); sz != "2000" {
		t.Errorf("sz = %q, want source value 2000", sz)
	}
	if b, _ := dst.Attr("b"); b != "1" {
		t.Error("b attribute not copied")
	}
	if dst.Child(nsA, "latin") == nil {
		t.Error("child element not copied")
	}
	if dst.Child(nsA, "latin") == src.Children[0] {
		t.Error("child was shared, not cloned")
	}
}
