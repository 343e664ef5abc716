package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"srtforge/internal/types"
)

// ErrParse marks a structurally malformed transcript document. Missing
// optional fields are never an error; they get documented defaults instead.
var ErrParse = errors.New("malformed transcript JSON")

type rawWord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

type rawSegment struct {
	Start   float64   `json:"start"`
	End     float64   `json:"end"`
	Speaker *string   `json:"speaker"`
	Text    string    `json:"text"`
	Words   []rawWord `json:"words"`
}

// Parse reads a raw transcription document — either a bare array of segment
// objects or {"segments": [...]} — into the internal model, sorted stably
// by (start, end). Missing start/end default to 0, a missing or blank
// speaker becomes SpeakerUnknown, missing text becomes "".
func Parse(data []byte) ([]types.Segment, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}

	var raws []rawSegment
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	case '{':
		var doc struct {
			Segments []rawSegment `json:"segments"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		raws = doc.Segments
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrParse)
	}

	segs := make([]types.Segment, 0, len(raws))
	for _, r := range raws {
		seg := types.Segment{
			Start:   r.Start,
			End:     r.End,
			Speaker: speakerOrUnknown(r.Speaker),
			Text:    strings.TrimSpace(r.Text),
		}
		if len(r.Words) > 0 {
			seg.Words = make([]types.Word, 0, len(r.Words))
			for _, w := range r.Words {
				seg.Words = append(seg.Words, types.Word{
					Start: w.Start,
					End:   w.End,
					Word:  strings.TrimSpace(w.Word),
				})
			}
		}
		segs = append(segs, seg)
	}

	sort.SliceStable(segs, func(i, j int) bool {
		if segs[i].Start != segs[j].Start {
			return segs[i].Start < segs[j].Start
		}
		return segs[i].End < segs[j].End
	})
	return segs, nil
}

func speakerOrUnknown(raw *string) types.Speaker {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return types.SpeakerUnknown
	}
	return types.Speaker(strings.TrimSpace(*raw))
}
