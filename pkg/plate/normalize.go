package plate

import (
	"sort"
	"strings"
)

// Line is one raw OCR output line with its recognition confidence in [0,1].
type Line struct {
	Text       string
	Confidence float64
}

// DefaultMinConfidence is the line filter threshold applied when callers pass
// a negative value to Normalize.
const DefaultMinConfidence = 0.5

// Normalize turns raw OCR lines into a single cleaned text string: lines at
// or below minConfidence are dropped, survivors are sorted by confidence
// descending (ties keep their input order) and space-joined, then whitespace
// is collapsed. Returns "" when nothing survives.
func Normalize(lines []Line, minConfidence float64) string {
	if minConfidence < 0 {
		minConfidence = DefaultMinConfidence
	}
	kept := make([]Line, 0, len(lines))
	for _, ln := range lines {
		if ln.Confidence > minConfidence {
			kept = append(kept, ln)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Confidence > kept[j].Confidence
	})
	parts := make([]string, 0, len(kept))
	for _, ln := range kept {
		parts = append(parts, ln.Text)
	}
	return normalizeSpace(strings.Join(parts, " "))
}

// normalizeSpace replaces line breaks and tabs with spaces and collapses
// whitespace runs to a single space.
func normalizeSpace(t string) string {
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	return strings.Join(strings.Fields(t), " ")
}
