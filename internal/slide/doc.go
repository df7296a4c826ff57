// Package slide implements the slide content transformation engine:
// extracting text blocks from a slide's shape tree with style-cascade
// resolution, re-segmenting translated text across the original line
// breaks, synthesizing styled bilingual paragraphs, and normalizing
// text-box auto-fit behavior. This package is the core coordinator of
// a single slide's transformation.
package slide
