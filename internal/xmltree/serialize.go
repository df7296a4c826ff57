package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// header matches the declaration PowerPoint writes on part files.
const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// Serialize writes the tree as an XML document. Element and attribute
// namespaces are rendered with the prefixes from ns, augmented by any
// xmlns declarations carried in the tree itself. Serialization fails if
// a namespace URI has no known prefix rather than inventing one.
func Serialize(w io.Writer, root *Node, ns Namespaces) error {
	prefixes := map[string]string{xmlNamespace: "xml"}
	for prefix, uri := range ns {
		prefixes[uri] = prefix
	}
	collectDeclarations(root, prefixes)

	var b strings.Builder
	b.WriteString(header)
	if err := writeElement(&b, root, prefixes); err != nil {
		return err
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// collectDeclarations picks up xmlns:prefix="uri" attributes anywhere
// in the tree so that prefixes declared by the document itself survive
// a round trip.
func collectDeclarations(n *Node, prefixes map[string]string) {
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" {
			prefixes[a.Value] = a.Name.Local
		}
	}
	for _, c := range n.Children {
		collectDeclarations(c, prefixes)
	}
}

func writeElement(b *strings.Builder, n *Node, prefixes map[string]string) error {
	name, err := qualifiedName(n.Name, prefixes)
	if err != nil {
		return err
	}

	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range n.Attrs {
		attrName, err := attributeName(a.Name, prefixes)
		if err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(attrName)
		b.WriteString(`="`)
		xml.EscapeText(b, []byte(a.Value))
		b.WriteByte('"')
	}

	if len(n.Children) == 0 && n.Text == "" {
		b.WriteString("/>")
		return nil
	}

	b.WriteByte('>')
	if n.Text != "" {
		xml.EscapeText(b, []byte(n.Text))
	}
	for _, c := range n.Children {
		if err := writeElement(b, c, prefixes); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return nil
}

func qualifiedName(name xml.Name, prefixes map[string]string) (string, error) {
	if name.Space == "" {
		return name.Local, nil
	}
	prefix, ok := prefixes[name.Space]
	if !ok {
		return "", fmt.Errorf("no prefix declared for namespace %q", name.Space)
	}
	if prefix == "" {
		return name.Local, nil
	}
	return prefix + ":" + name.Local, nil
}

func attributeName(name xml.Name, prefixes map[string]string) (string, error) {
	switch {
	case name.Space == "xmlns":
		return "xmlns:" + name.Local, nil
	case name.Space == "" && name.Local == "xmlns":
		return "xmlns", nil
	case name.Space == "":
		return name.Local, nil
	case name.Space == "xml":
		return "xml:" + name.Local, nil
	default:
		return qualifiedName(name, prefixes)
	}
}
