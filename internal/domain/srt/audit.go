package srt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse marks SRT text that fails the audit grammar. The auditor exists
// to catch malformed output, not tolerate it, so strict timestamps are a
// hard failure rather than a warning.
var ErrParse = errors.New("malformed SRT")

type WarningKind string

const (
	WarnNonMonotonic WarningKind = "non_monotonic"
	WarnOverlap      WarningKind = "overlap"
)

// Warning flags a structural defect between the adjacent entries A and B
// (1-based renumbered indices).
type Warning struct {
	Kind WarningKind `json:"type"`
	A    int         `json:"a"`
	B    int         `json:"b"`
}

// Report carries the auditor's structural findings and descriptive stats.
type Report struct {
	TotalItems      int            `json:"total_items"`
	DurationS       float64        `json:"duration_s"`
	Warnings        []Warning      `json:"warnings"`
	LongSegments    []int          `json:"long_segments_over_10s"`
	ShortSegments   []int          `json:"short_segments_under_0.3s"`
	Speakers        map[string]int `json:"speakers"`
	SpeakerSwitches int            `json:"speaker_switches"`
}

const (
	longThreshold  = 10.0
	shortThreshold = 0.3
)

var (
	timeLineRe = regexp.MustCompile(`^(\d\d:\d\d:\d\d,\d\d\d)\s*-->\s*(\d\d:\d\d:\d\d,\d\d\d)$`)
	// Permissive speaker prefix: diarizer-style SPEAKER_n, our Speaker n,
	// or any capitalized word run up to 30 chars before a colon.
	speakerRe = regexp.MustCompile(`^(SPEAKER_\d+|Speaker \d+|[A-Z][A-Za-z0-9 ]{0,29}):\s*`)
)

type entry struct {
	start   float64
	end     float64
	speaker string
}

// Audit re-parses serialized SRT text with a tolerant block grammar (blank
// line separated; optional, possibly non-numeric index line; strict time
// line; optional speaker prefix on the body) and reports structural
// violations plus descriptive statistics. It is a pure function: the same
// text always yields the same report.
func Audit(text string) (Report, error) {
	entries, err := parseEntries(text)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		TotalItems:    len(entries),
		Warnings:      []Warning{},
		LongSegments:  []int{},
		ShortSegments: []int{},
		Speakers:      map[string]int{},
	}
	if len(entries) > 0 {
		rep.DurationS = entries[len(entries)-1].end - entries[0].start
	}

	for i, e := range entries {
		idx := i + 1 // entries are renumbered 1..n, whatever the file said
		if i > 0 {
			prev := entries[i-1]
			if e.start < prev.start {
				rep.Warnings = append(rep.Warnings, Warning{Kind: WarnNonMonotonic, A: i, B: idx})
			}
			if e.start < prev.end {
				rep.Warnings = append(rep.Warnings, Warning{Kind: WarnOverlap, A: i, B: idx})
			}
			if e.speaker != prev.speaker {
				rep.SpeakerSwitches++
			}
		}
		dur := e.end - e.start
		if dur > longThreshold {
			rep.LongSegments = append(rep.LongSegments, idx)
		}
		if dur < shortThreshold {
			rep.ShortSegments = append(rep.ShortSegments, idx)
		}
		if e.speaker != "" {
			rep.Speakers[e.speaker]++
		}
	}
	return rep, nil
}

func parseEntries(text string) ([]entry, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var entries []entry
	for _, block := range strings.Split(text, "\n\n") {
		lines := nonBlankLines(block)
		if len(lines) == 0 {
			continue
		}

		// First line is an optional index; non-numeric indices are
		// tolerated (and renumbered later) as long as a time line follows.
		timeIdx := 0
		if !strings.Contains(lines[0], "-->") {
			if len(lines) < 2 {
				return nil, fmt.Errorf("%w: block %q has no time line", ErrParse, lines[0])
			}
			timeIdx = 1
		}

		m := timeLineRe.FindStringSubmatch(strings.TrimSpace(lines[timeIdx]))
		if m == nil {
			return nil, fmt.Errorf("%w: bad time line %q", ErrParse, lines[timeIdx])
		}

		e := entry{start: parseTimestamp(m[1]), end: parseTimestamp(m[2])}
		if len(lines) > timeIdx+1 {
			body := lines[timeIdx+1]
			if sm := speakerRe.FindStringSubmatch(body); sm != nil {
				e.speaker = sm[1]
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func nonBlankLines(block string) []string {
	var out []string
	for _, ln := range strings.Split(block, "\n") {
		if strings.TrimSpace(ln) != "" {
			out = append(out, strings.TrimSpace(ln))
		}
	}
	return out
}

// parseTimestamp decodes a strict HH:MM:SS,mmm timestamp. The caller has
// already matched the grammar, so component parses cannot fail.
func parseTimestamp(ts string) float64 {
	h, _ := strconv.Atoi(ts[0:2])
	m, _ := strconv.Atoi(ts[3:5])
	s, _ := strconv.Atoi(ts[6:8])
	ms, _ := strconv.Atoi(ts[9:12])
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}
