package transcript

import (
	"fmt"

	"srtforge/internal/types"
)

// NormalizeSpeakers maps every raw diarization label to a stable ordinal
// display name, assigned in first-appearance order over the final segment
// sequence. The mapping is a pure function of that order: rerunning it over
// the same sequence yields identical names. The unlabeled sentinel gets an
// ordinal of its own, like any other distinct label.
func NormalizeSpeakers(segs []types.Segment) []types.Segment {
	names := make(map[types.Speaker]types.Speaker)
	for i := range segs {
		raw := segs[i].Speaker
		if raw == "" {
			raw = types.SpeakerUnknown
		}
		name, ok := names[raw]
		if !ok {
			name = types.Speaker(fmt.Sprintf("Speaker %d", len(names)+1))
			names[raw] = name
		}
		segs[i].Speaker = name
	}
	return segs
}
