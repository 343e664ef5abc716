// Package textnorm cleans up machine-transcription text for display:
// stutter dedup, punctuation spacing repair, sentence case, line wrapping.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	commaDot         = regexp.MustCompile(`,\s*\.`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.!?;:])`)
	openParenSpace   = regexp.MustCompile(`\(\s+`)
	closeParenSpace  = regexp.MustCompile(`\s+\)`)
	spacedSlash      = regexp.MustCompile(`\s+/\s+`)
	numberWordJoin   = regexp.MustCompile(`(\d)\s+-\s+(\p{L})`)
	multiSpace       = regexp.MustCompile(`\s{2,}`)
)

// Clean normalizes a segment's final text. Order matters: later steps assume
// the earlier cleanup already ran.
func Clean(s string) string {
	s = collapseRepeats(s)
	s = fixPunctuation(s)
	return capitalizeFirst(s)
}

// collapseRepeats drops immediately-repeated word runs ("the the the" →
// "the"), comparing tokens case-insensitively. This is a token scan rather
// than a backreference regex because RE2 has no backreferences.
func collapseRepeats(s string) string {
	tokens := strings.Fields(s)
	out := tokens[:0]
	for _, tok := range tokens {
		if len(out) > 0 && strings.EqualFold(tok, out[len(out)-1]) {
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

func fixPunctuation(s string) string {
	s = commaDot.ReplaceAllString(s, ".")
	s = spaceBeforePunct.ReplaceAllString(s, "$1")
	s = openParenSpace.ReplaceAllString(s, "(")
	s = closeParenSpace.ReplaceAllString(s, ")")
	s = spacedSlash.ReplaceAllString(s, "/")
	s = numberWordJoin.ReplaceAllString(s, "$1-$2")
	// Abbreviations the tokenizer tends to pull apart.
	s = strings.ReplaceAll(s, "U. S.", "U.S.")
	s = strings.ReplaceAll(s, "E. U.", "E.U.")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// capitalizeFirst upper-cases the first alphabetic rune, leaving any leading
// non-alphabetic characters untouched.
func capitalizeFirst(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			return string(runes)
		}
	}
	return s
}
