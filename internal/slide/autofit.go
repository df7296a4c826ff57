package slide

import "github.com/birdmanoutman/ppTranslator/internal/xmltree"

// transform attributes that must survive normalization unchanged.
var preservedTransformAttrs = []string{"off", "ext", "chOff", "chExt"}

// NormalizeAutoFit rewrites text-box sizing so boxes grow to fit their
// now-bilingual text. Simple shapes get a shrink-to-fit body; group
// shapes lose only their fixed extent while keeping position and child
// coordinate space intact. Groups are recursed in document order.
func NormalizeAutoFit(root *xmltree.Node) {
	normalizeShapes(root)
}

func normalizeShapes(parent *xmltree.Node) {
	for _, child := range parent.Children {
		switch {
		case child.Is(NSPresentation, tagShape):
			normalizeShapeAutoFit(child)
		case child.Is(NSPresentation, tagGroupShape):
			normalizeGroupTransform(child)
			normalizeShapes(child)
		default:
			normalizeShapes(child)
		}
	}
}

// normalizeShapeAutoFit sets a single shape's text body to shrink to
// fit: existing auto-fit markers and explicit body sizing are removed,
// wrapping and centering flags are asserted, and a shape-auto-fit
// marker is added. Fixed extents on the shape transform are dropped
// while its offset and extent values are kept.
func normalizeShapeAutoFit(shape *xmltree.Node) {
	body := shape.Find(NSPresentation, tagTextBody)
	if body == nil {
		return
	}

	props := body.Child(NSDrawing, tagBodyProps)
	if props == nil {
		props = xmltree.NewNode(NSDrawing, tagBodyProps)
		body.Children = append([]*xmltree.Node{props}, body.Children...)
	}

	props.RemoveChildrenNamed(NSDrawing, tagNoAutofit)
	props.RemoveChildrenNamed(NSDrawing, tagNormAutofit)
	props.RemoveChildrenNamed(NSDrawing, tagShapeAutofit)
	props.RemoveAttr("w")
	props.RemoveAttr("h")

	props.SetAttr("wrap", "square")
	props.SetAttr("rtlCol", "0")
	props.SetAttr("anchor", "ctr")
	props.SetAttr("anchorCtr", "1")
	props.Append(xmltree.NewNode(NSDrawing, tagShapeAutofit))

	if spPr := shape.Child(NSPresentation, tagShapeProps); spPr != nil {
		if xfrm := spPr.Child(NSDrawing, tagTransform); xfrm != nil {
			stripFixedExtent(xfrm, "off", "ext")
		}
	}
}

// normalizeGroupTransform removes the fixed extent from a group's
// transform while re-asserting offset, extent and the child coordinate
// space unchanged.
func normalizeGroupTransform(group *xmltree.Node) {
	grpPr := group.Child(NSPresentation, tagGroupProps)
	if grpPr == nil {
		return
	}
	if xfrm := grpPr.Child(NSDrawing, tagTransform); xfrm != nil {
		stripFixedExtent(xfrm, preservedTransformAttrs...)
	}
}

// stripFixedExtent deletes the cx/cy sizing attributes from a transform
// and writes the named positional attributes back with their original
// values.
func stripFixedExtent(xfrm *xmltree.Node, preserve ...string) {
	saved := make(map[string]string, len(preserve))
	for _, name := range preserve {
		if value, ok := xfrm.Attr(name); ok {
			saved[name] = value
		}
	}

	xfrm.RemoveAttr("cx")
	xfrm.RemoveAttr("cy")

	for _, name := range preserve {
		if value, ok := saved[name]; ok {
			xfrm.SetAttr(name, value)
		}
	}
}
