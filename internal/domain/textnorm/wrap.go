package textnorm

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily breaks text into lines of at most width characters, keeping
// at most maxLines lines. Breaks happen only on existing whitespace; words
// are never hyphenated, so a single word longer than width occupies its own
// line. width <= 0 disables wrapping, maxLines <= 0 disables the line cap.
func Wrap(s string, width, maxLines int) string {
	s = strings.TrimSpace(s)
	if s == "" || width <= 0 {
		return s
	}

	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, tok := range strings.Fields(s) {
		tl := utf8.RuneCountInString(tok)
		if curLen > 0 && curLen+1+tl > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(tok)
		curLen += tl
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
