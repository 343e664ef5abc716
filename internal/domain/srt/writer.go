// Package srt serializes reconstructed segments to SubRip format and
// independently re-parses written output to catch structural regressions.
// The writer is deliberately lenient and the auditor deliberately strict;
// the asymmetry is the point.
package srt

import (
	"fmt"
	"math"
	"strings"

	"srtforge/internal/types"
)

// Render serializes segments as SubRip text: 1-based contiguous indices
// regardless of any prior identifiers, a strict HH:MM:SS,mmm time range
// line, an optional "Speaker N: " prefix, the (already wrapped) text, and a
// blank separator line per entry.
func Render(segs []types.Segment) string {
	var b strings.Builder
	for i, s := range segs {
		fmt.Fprintf(&b, "%d\n%s --> %s\n", i+1, Timestamp(s.Start), Timestamp(s.End))
		if s.Speaker != "" {
			b.WriteString(string(s.Speaker))
			b.WriteString(": ")
		}
		b.WriteString(s.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Timestamp formats seconds as HH:MM:SS,mmm. Negative times clamp to zero.
func Timestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int(math.Round(sec * 1000))
	h := ms / 3600000
	m := ms / 60000 % 60
	s := ms / 1000 % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}
