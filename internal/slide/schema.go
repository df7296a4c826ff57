package slide

import "github.com/birdmanoutman/ppTranslator/internal/xmltree"

// The two namespaces of the slide schema: presentation-level shape
// containers and drawing-level paragraph/run/style elements.
const (
	NSPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSDrawing      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationship = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Namespaces is the prefix table slide documents are parsed and
// serialized with.
var Namespaces = xmltree.Namespaces{
	"p": NSPresentation,
	"a": NSDrawing,
	"r": nsRelationship,
}

// Element names recognized by the engine.
const (
	tagShape        = "sp"
	tagGroupShape   = "grpSp"
	tagShapeProps   = "spPr"
	tagGroupProps   = "grpSpPr"
	tagTransform    = "xfrm"
	tagTextBody     = "txBody"
	tagBodyProps    = "bodyPr"
	tagParagraph    = "p"
	tagParaProps    = "pPr"
	tagRun          = "r"
	tagRunProps     = "rPr"
	tagText         = "t"
	tagDefRunProps  = "defRPr"
	tagEndParaProps = "endParaRPr"
	tagNoAutofit    = "noAutofit"
	tagNormAutofit  = "normAutofit"
	tagShapeAutofit = "spAutoFit"
	attrFontSize    = "sz"
)
