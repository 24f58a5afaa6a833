// Package diffview shows a line diff between the pinned preview and the
// current one.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineKind classifies a diff line.
type LineKind int

const (
	LineEqual LineKind = iota
	LineAdded
	LineRemoved
)

// Line is one line of a diff.
type Line struct {
	Kind LineKind
	Text string
}

// Lines computes a line-level diff of before and after.
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []Line
	for _, d := range diffs {
		kind := LineEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = LineAdded
		case diffmatchpatch.DiffDelete:
			kind = LineRemoved
		}
		for _, text := range splitLines(d.Text) {
			out = append(out, Line{Kind: kind, Text: text})
		}
	}
	return out
}

// Changed reports whether lines contain any addition or removal.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Kind != LineEqual {
			return true
		}
	}
	return false
}

// Unified formats lines with "+", "-" and " " prefixes under a
// "--- old / +++ new" header.
func Unified(oldLabel, newLabel string, lines []Line) string {
	var b strings.Builder
	b.WriteString("--- " + oldLabel + "\n")
	b.WriteString("+++ " + newLabel + "\n")
	for _, l := range lines {
		b.WriteString(prefix(l.Kind) + l.Text + "\n")
	}
	return b.String()
}

func prefix(k LineKind) string {
	switch k {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// splitLines splits s on newlines, dropping the empty element after a
// trailing newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
