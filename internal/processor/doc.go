// Package processor contains the conversion orchestrator: it opens a
// pptx archive, drives the slide transformation engine over every
// slide in ascending order, reports per-slide progress, and repacks
// the result. This package coordinates the container, engine and
// translation components.
package processor
