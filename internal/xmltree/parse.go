package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Namespaces maps declared prefixes to namespace URIs. It is passed
// explicitly to Parse and Serialize instead of living in any global
// registry, so two documents with different prefix conventions can be
// processed side by side.
type Namespaces map[string]string

// xmlNamespace is the implicitly declared namespace of the xml: prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Parse reads an XML document into a Node tree. Namespace prefixes are
// resolved to URIs by the decoder; the ns table is not consulted during
// parsing but documents are expected to declare the same URIs it names.
func Parse(r io.Reader, ns Namespaces) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("parse XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root, err := parseElement(dec, start)
			if err != nil {
				return nil, fmt.Errorf("parse XML: %w", err)
			}
			return root, nil
		}
	}
}

func parseElement(dec *xml.Decoder, start xml.StartElement) (*Node, error) {
	n := &Node{Name: start.Name}
	if len(start.Attr) > 0 {
		n.Attrs = make([]xml.Attr, len(start.Attr))
		copy(n.Attrs, start.Attr)
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseElement(dec, t)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Inter-element whitespace from pretty-printed input is
			// dropped; leaf text is kept verbatim, including a text
			// run that is a single space.
			if len(n.Children) == 0 || strings.TrimSpace(text.String()) != "" {
				n.Text = text.String()
			}
			return n, nil
		}
	}
}
