package transcript

import "srtforge/internal/types"

const (
	// overlapNudge pushes a clashing start slightly past the previous end
	// so floating-point merges never produce exact-zero-width collisions.
	overlapNudge = 0.02
	// minSpan is the minimum renderable caption duration in seconds.
	minSpan = 0.50
)

// FixTimeline removes residual overlaps and zero-length spans left behind by
// the merge passes. One forward scan: a start inside the previous segment is
// clamped just past it, and any span that collapses to nothing is extended
// to the minimum. No segment is ever discarded.
func FixTimeline(segs []types.Segment) []types.Segment {
	for i := range segs {
		if i > 0 && segs[i].Start < segs[i-1].End {
			segs[i].Start = segs[i-1].End + overlapNudge
		}
		if segs[i].End <= segs[i].Start {
			segs[i].End = segs[i].Start + minSpan
		}
	}
	return segs
}
