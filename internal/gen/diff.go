package gen

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff from the on-disk content to the generated one,
// or "" when the two are identical.
func Diff(name, have, want string) string {
	if have == want {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(have, want)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	writeln(&sb, "--- ", name, " (on disk)")
	writeln(&sb, "+++ ", name, " (generated)")
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			prefix = " "
		}
		for _, line := range splitLines(d.Text) {
			writeln(&sb, prefix, line)
		}
	}
	return sb.String()
}

// splitLines splits s on newlines, dropping the empty tail after a final one
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
