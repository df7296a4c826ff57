// Package fontsize normalizes font sizes onto the ladder of standard
// PowerPoint point sizes. Sizes are stored in slide XML as integers in
// hundredths of a point; all ladder arithmetic happens in points.
package fontsize
