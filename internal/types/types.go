package types

// Speaker is a diarization label. Raw labels from upstream diarizers are
// noisy and inconsistent; the loader substitutes SpeakerUnknown when the
// source carries no label at all, and the normalizer rewrites every label
// to a stable "Speaker N" display name before output.
type Speaker string

// SpeakerUnknown is the sentinel for segments the diarizer left unlabeled.
const SpeakerUnknown Speaker = "UNKNOWN"

// Known reports whether the label identifies an actual speaker.
func (s Speaker) Known() bool { return s != "" && s != SpeakerUnknown }

type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Segment is a timed span of transcript text. Start <= End is the steady
// state, but upstream sources may transiently violate it and the loader
// tolerates that; the timeline corrector restores the invariant before
// anything is written out.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker Speaker `json:"speaker,omitempty"`
	Text    string  `json:"text"`
	Words   []Word  `json:"words,omitempty"`
}

// Duration returns the span length in seconds.
func (s Segment) Duration() float64 { return s.End - s.Start }

// Word is a per-word timing owned by its parent segment. Words is cleared
// whenever segment text is merged or rewritten, since merged text no longer
// has a valid word-to-time mapping.
type Word struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}
