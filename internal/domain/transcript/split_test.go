package transcript

import (
	"testing"

	"srtforge/internal/types"
)

func words(ws ...types.Word) []types.Word { return ws }

func TestSplitLong_Disabled(t *testing.T) {
	segs := []types.Segment{{Start: 0, End: 100, Text: "long"}}
	got := SplitLong(segs, 0, SplitAuto)
	if len(got) != 1 {
		t.Fatalf("maxSec=0 must disable splitting, got %d segments", len(got))
	}
}

func TestSplitLong_WordLevelPrefersSentenceBoundary(t *testing.T) {
	seg := types.Segment{
		Start:   0,
		End:     20,
		Speaker: "A",
		Words: words(
			types.Word{Start: 0, End: 4, Word: "one"},
			types.Word{Start: 4, End: 8, Word: "two"},
			types.Word{Start: 8, End: 10.5, Word: "three."},
			types.Word{Start: 10.5, End: 15, Word: "four"},
			types.Word{Start: 15, End: 20, Word: "five."},
		),
		Text: "one two three. four five.",
	}
	got := SplitLong([]types.Segment{seg}, 10, SplitAuto)
	if len(got) != 2 {
		t.Fatalf("expected 2 subsegments, got %d", len(got))
	}
	// The pending group reaches 10s at "three." and that text ends a
	// sentence, so the cut lands there rather than at the hard cap.
	if got[0].Text != "one two three." {
		t.Fatalf("unexpected first cut: %q", got[0].Text)
	}
	if got[0].End != 10.5 || got[1].Start != 10.5 {
		t.Fatalf("cut bounds should follow word timings, got %v / %v", got[0].End, got[1].Start)
	}
	if got[1].Speaker != "A" {
		t.Fatalf("speaker must carry over, got %q", got[1].Speaker)
	}
}

func TestSplitLong_HardCapCutsWithoutPunctuation(t *testing.T) {
	seg := types.Segment{
		Start: 0,
		End:   24,
		Words: words(
			types.Word{Start: 0, End: 6, Word: "aa"},
			types.Word{Start: 6, End: 11.5, Word: "bb"},
			types.Word{Start: 11.5, End: 18, Word: "cc"},
			types.Word{Start: 18, End: 24, Word: "dd"},
		),
		Text: "aa bb cc dd",
	}
	got := SplitLong([]types.Segment{seg}, 10, SplitAuto)
	if len(got) < 2 {
		t.Fatalf("hard cap should force a cut, got %d segments", len(got))
	}
	for _, s := range got {
		if s.Duration() > 10+splitHardCap+6 { // one word can overshoot, a run cannot
			t.Fatalf("runaway subsegment: %v", s.Duration())
		}
	}
}

func TestSplitLong_ProportionalFallback(t *testing.T) {
	seg := types.Segment{Start: 0, End: 30, Text: "a b c d e f"}
	got := SplitLong([]types.Segment{seg}, 10, SplitAuto)
	if len(got) != 3 {
		t.Fatalf("expected ceil(30/10)=3 slices, got %d", len(got))
	}
	if got[0].Start != 0 || got[2].End != 30 {
		t.Fatalf("slices must cover the original span, got %v..%v", got[0].Start, got[2].End)
	}
	for _, s := range got {
		if s.Words != nil {
			t.Fatal("proportional slices must not fabricate word timings")
		}
		if s.Text == "" {
			t.Fatal("no empty slices")
		}
	}
}

func TestSplitLong_NoTextReturnsOriginal(t *testing.T) {
	seg := types.Segment{Start: 0, End: 30}
	got := SplitLong([]types.Segment{seg}, 10, SplitAuto)
	if len(got) != 1 || got[0].Start != seg.Start || got[0].End != seg.End || got[0].Text != "" {
		t.Fatalf("splitting nothing must return the original, got %+v", got)
	}
}

func TestSplitLong_StrategyForcing(t *testing.T) {
	seg := types.Segment{
		Start: 0,
		End:   30,
		Words: words(
			types.Word{Start: 0, End: 12, Word: "slow."},
			types.Word{Start: 12, End: 30, Word: "words."},
		),
		Text: "slow. words.",
	}
	if got := SplitLong([]types.Segment{seg}, 10, SplitProportional); got[0].Words != nil {
		t.Fatal("proportional strategy must ignore word timings")
	}
	noWords := types.Segment{Start: 0, End: 30, Text: "a b c"}
	if got := SplitLong([]types.Segment{noWords}, 10, SplitWords); len(got) != 1 {
		t.Fatalf("words strategy without word detail must pass through, got %d", len(got))
	}
}
