package transcript

import (
	"strings"
	"unicode/utf8"

	"srtforge/internal/types"
)

// MergeShort is the noise-removal pass: it absorbs the open accumulator's
// next neighbor while the accumulator is still too brief (under minSec) or
// too sparse (under minChars), provided the neighbor shares its speaker or
// follows within maxGap seconds of silence. Merged text loses word-level
// granularity; Words is cleared and never reconstructed.
func MergeShort(segs []types.Segment, minSec, maxGap float64, minChars int) []types.Segment {
	out := make([]types.Segment, 0, len(segs))
	for _, c := range segs {
		if len(out) == 0 {
			out = append(out, c)
			continue
		}
		acc := &out[len(out)-1]
		small := acc.Duration() < minSec || utf8.RuneCountInString(acc.Text) < minChars
		adjacent := c.Speaker == acc.Speaker || c.Start-acc.End <= maxGap
		if small && adjacent {
			absorb(acc, c)
			continue
		}
		out = append(out, c)
	}
	return out
}

// JoinParagraphs is the second, looser merge pass aimed at paragraph
// formation: consecutive segments join only on an exact speaker match with a
// silence gap of at most gapMerge — and, unlike MergeShort, both size caps
// are checked on the prospective combined segment before committing, so a
// merge that would exceed joinSec seconds or maxChars characters starts a
// new paragraph instead.
func JoinParagraphs(segs []types.Segment, gapMerge, joinSec float64, maxChars int) []types.Segment {
	out := make([]types.Segment, 0, len(segs))
	for _, c := range segs {
		if len(out) == 0 {
			out = append(out, c)
			continue
		}
		acc := &out[len(out)-1]
		combinedDur := c.End - acc.Start
		combinedChars := utf8.RuneCountInString(acc.Text) + 1 + utf8.RuneCountInString(c.Text)
		if c.Speaker == acc.Speaker &&
			c.Start-acc.End <= gapMerge &&
			combinedDur <= joinSec &&
			combinedChars <= maxChars {
			absorb(acc, c)
			continue
		}
		out = append(out, c)
	}
	return out
}

func absorb(acc *types.Segment, c types.Segment) {
	acc.End = c.End
	acc.Text = joinText(acc.Text, c.Text)
	acc.Words = nil
}

func joinText(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
