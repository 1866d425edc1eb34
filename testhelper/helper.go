package testhelper

import (
	"strings"
	"testing"
)

// TrimIndent prepares a raw-string program fixture: the first line (the newline
// after the opening backquote) is dropped and the indentation of the first
// program line is removed from every line.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 {
		return src
	}
	lines = lines[1:]

	first := lines[0]
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t")
}
