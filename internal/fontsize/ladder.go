package fontsize

import (
	"math"
	"strconv"
)

// Ladder is the descending list of standard PowerPoint font sizes in
// points. NextSmaller snaps arbitrary sizes onto it.
var Ladder = []float64{72, 48, 44, 40, 36, 32, 28, 24, 20, 18, 16, 14, 12, 11, 10, 9, 8, 7, 6, 5}

// MinPoints is the smallest font size ever produced, in points.
const MinPoints = 5

// ToPoints converts a stored size (hundredths of a point) to points.
func ToPoints(size int) float64 {
	return float64(size) / 100
}

// FromPoints converts points to the stored hundredths-of-a-point unit.
func FromPoints(points float64) int {
	return int(points * 100)
}

// ParseSize parses a stored size attribute value. Attribute values that
// are not plain integers (sentinel values such as "quarter") are
// reported as an error so the caller can leave them untouched.
func ParseSize(value string) (int, error) {
	return strconv.Atoi(value)
}

// NextSmaller returns the standard size two ladder positions below the
// given size in points, i.e. one rung is skipped. The input is rounded
// to the nearest half point before the ladder is searched. Sizes at or
// below the bottom of the ladder return MinPoints.
func NextSmaller(points float64) float64 {
	rounded := math.Round(points*2) / 2
	for i, std := range Ladder {
		if rounded >= std {
			if i+2 < len(Ladder) {
				return Ladder[i+2]
			}
			return MinPoints
		}
	}
	return MinPoints
}

// ShrinkForTranslation maps a stored size onto its output value: one
// NextSmaller step for being resized at all, and a second step when the
// size belongs to a translated run. The result never drops below
// MinPoints.
func ShrinkForTranslation(size int, isTranslation bool) int {
	points := NextSmaller(ToPoints(size))
	if isTranslation {
		points = NextSmaller(points)
	}
	if points < MinPoints {
		points = MinPoints
	}
	return FromPoints(points)
}

// DefaultSize is the stored size used when no font size is declared
// anywhere in a paragraph's style chain: the nominal 18 points stepped
// down two ladder rungs.
func DefaultSize() int {
	const nominalPoints = 18
	return FromPoints(NextSmaller(nominalPoints))
}
