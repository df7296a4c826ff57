package xmltree

import "encoding/xml"

// Node is a single XML element: qualified name, attributes in document
// order, child elements and any character data directly inside the
// element. Character data is only retained for leaf elements; mixed
// content does not occur in the slide schema this tree is used for.
type Node struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Node
	Text     string
}

// NewNode creates an element with the given namespace URI and local name.
func NewNode(space, local string) *Node {
	return &Node{Name: xml.Name{Space: space, Local: local}}
}

// Is reports whether the node has the given namespace URI and local name.
func (n *Node) Is(space, local string) bool {
	return n.Name.Space == space && n.Name.Local == local
}

// Attr returns the value of the named unqualified attribute and whether
// it is present.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named unqualified attribute, replacing an existing
// value or appending a new attribute.
func (n *Node) SetAttr(local, value string) {
	for i, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// RemoveAttr deletes the named unqualified attribute if present.
func (n *Node) RemoveAttr(local string) {
	for i, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			return
		}
	}
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(space, local string) *Node {
	for _, c := range n.Children {
		if c.Is(space, local) {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given name in
// document order.
func (n *Node) ChildrenNamed(space, local string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Is(space, local) {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant (depth-first, document order) with
// the given name, or nil. The receiver itself is not considered.
func (n *Node) Find(space, local string) *Node {
	for _, c := range n.Children {
		if c.Is(space, local) {
			return c
		}
		if found := c.Find(space, local); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given name in document
// order. The receiver itself is not considered.
func (n *Node) FindAll(space, local string) []*Node {
	var out []*Node
	n.findAll(space, local, &out)
	return out
}

func (n *Node) findAll(space, local string, out *[]*Node) {
	for _, c := range n.Children {
		if c.Is(space, local) {
			*out = append(*out, c)
		}
		c.findAll(space, local, out)
	}
}

// Append adds a child element at the end of the child list.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// InsertAfter inserts newChild immediately after the given existing
// child. If ref is not a direct child, newChild is appended.
func (n *Node) InsertAfter(ref, newChild *Node) {
	for i, c := range n.Children {
		if c == ref {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+2:], n.Children[i+1:])
			n.Children[i+1] = newChild
			return
		}
	}
	n.Children = append(n.Children, newChild)
}

// Remove deletes the given direct child if present.
func (n *Node) Remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// RemoveChildrenNamed deletes every direct child with the given name.
func (n *Node) RemoveChildrenNamed(space, local string) {
	kept := n.Children[:0]
	for _, c := range n.Children {
		if !c.Is(space, local) {
			kept = append(kept, c)
		}
	}
	n.Children = kept
}

// Parent returns the direct parent of target within the subtree rooted
// at n, or nil if target is n itself or not in the subtree.
func (n *Node) Parent(target *Node) *Node {
	for _, c := range n.Children {
		if c == target {
			return n
		}
		if p := c.Parent(target); p != nil {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	out := &Node{Name: n.Name, Text: n.Text}
	if len(n.Attrs) > 0 {
		out.Attrs = make([]xml.Attr, len(n.Attrs))
		copy(out.Attrs, n.Attrs)
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}

// CopyStyleFrom copies every attribute and a deep copy of every child
// of src onto the node. Existing attributes with the same name are
// overwritten; other attributes and children are kept.
func (n *Node) CopyStyleFrom(src *Node) {
	if src == nil {
		return
	}
	for _, a := range src.Attrs {
		n.setQualifiedAttr(a)
	}
	for _, c := range src.Children {
		n.Append(c.Clone())
	}
}

func (n *Node) setQualifiedAttr(attr xml.Attr) {
	for i, a := range n.Attrs {
		if a.Name == attr.Name {
			n.Attrs[i].Value = attr.Value
			return
		}
	}
	n.Attrs = append(n.Attrs, attr)
}
