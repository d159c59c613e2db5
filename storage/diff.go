package storage

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the line level diff from one document text to
// another.
func Diff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// FormatDiff renders diffs with -/+ line markers. When color is set
// deletions and insertions come out red and green instead.
func FormatDiff(diffs []diffpatch.Diff, color bool) string {
	if color {
		return diffpatch.New().DiffPrettyText(diffs)
	}
	var b strings.Builder
	for _, d := range diffs {
		marker := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			marker = "-"
		case diffpatch.DiffInsert:
			marker = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(marker)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}
