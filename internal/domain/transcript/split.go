package transcript

import (
	"math"
	"strings"

	"srtforge/internal/types"
)

// SplitStrategy selects how overlong segments get broken up.
type SplitStrategy string

const (
	// SplitAuto cuts on word timings when the segment carries them and
	// falls back to proportional slicing when it does not.
	SplitAuto SplitStrategy = "auto"
	// SplitWords cuts on word timings only; segments without word detail
	// pass through unchanged.
	SplitWords SplitStrategy = "words"
	// SplitProportional always slices text into uniform time chunks.
	SplitProportional SplitStrategy = "proportional"
)

// Beyond maxSec+splitHardCap the splitter stops waiting for sentence
// punctuation and cuts anyway, so runs without punctuation stay bounded.
const splitHardCap = 1.0

// SplitLong breaks every segment whose duration exceeds maxSec. maxSec <= 0
// disables splitting. Subsegments produced from word timings keep their word
// groups; proportional subsegments carry no word detail, since uniform time
// slices have no per-word mapping to offer.
func SplitLong(segs []types.Segment, maxSec float64, strategy SplitStrategy) []types.Segment {
	if maxSec <= 0 {
		return segs
	}
	out := make([]types.Segment, 0, len(segs))
	for _, s := range segs {
		if s.Duration() <= maxSec {
			out = append(out, s)
			continue
		}
		out = append(out, splitOne(s, maxSec, strategy)...)
	}
	return out
}

func splitOne(s types.Segment, maxSec float64, strategy SplitStrategy) []types.Segment {
	switch strategy {
	case SplitWords:
		return splitByWords(s, maxSec)
	case SplitProportional:
		return splitProportional(s, maxSec)
	default:
		if len(s.Words) > 0 {
			return splitByWords(s, maxSec)
		}
		return splitProportional(s, maxSec)
	}
}

// splitByWords accumulates words into a pending group and flushes it once
// the group's duration reaches maxSec — but only at a sentence boundary,
// unless the hard cap forces the cut. Sentence-boundary cuts win whenever
// both are close.
func splitByWords(s types.Segment, maxSec float64) []types.Segment {
	if len(s.Words) == 0 {
		return []types.Segment{s}
	}

	var out []types.Segment
	var pend []types.Word

	flush := func() {
		text := joinWords(pend)
		if text != "" {
			out = append(out, types.Segment{
				Start:   pend[0].Start,
				End:     pend[len(pend)-1].End,
				Speaker: s.Speaker,
				Text:    text,
				Words:   append([]types.Word(nil), pend...),
			})
		}
		pend = pend[:0]
	}

	for _, w := range s.Words {
		pend = append(pend, w)
		dur := pend[len(pend)-1].End - pend[0].Start
		if dur < maxSec {
			continue
		}
		if endsSentence(joinWords(pend)) || dur > maxSec+splitHardCap {
			flush()
		}
	}
	if len(pend) > 0 {
		flush()
	}

	// A single surviving group means nothing was actually cut; keep the
	// original segment with its exact bounds.
	if len(out) <= 1 {
		return []types.Segment{s}
	}
	return out
}

// splitProportional slices the text into ceil(duration/maxSec) roughly equal
// token groups, each assigned a uniform share of the original span.
func splitProportional(s types.Segment, maxSec float64) []types.Segment {
	dur := s.Duration()
	n := int(math.Ceil(dur / maxSec))
	tokens := strings.Fields(s.Text)
	if n <= 1 || len(tokens) == 0 {
		return []types.Segment{s}
	}
	if n > len(tokens) {
		n = len(tokens)
	}

	step := dur / float64(n)
	out := make([]types.Segment, 0, n)
	for i := 0; i < n; i++ {
		lo := i * len(tokens) / n
		hi := (i + 1) * len(tokens) / n
		text := strings.Join(tokens[lo:hi], " ")
		if text == "" {
			continue
		}
		start := s.Start + float64(i)*step
		end := start + step
		if i == n-1 {
			end = s.End
		}
		out = append(out, types.Segment{
			Start:   start,
			End:     end,
			Speaker: s.Speaker,
			Text:    text,
		})
	}
	if len(out) == 0 {
		return []types.Segment{s}
	}
	return out
}

func joinWords(words []types.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w.Word != "" {
			parts = append(parts, w.Word)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func endsSentence(text string) bool {
	return strings.HasSuffix(text, ".") ||
		strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, "?")
}
