package transcript

import (
	"errors"
	"testing"

	"srtforge/internal/types"
)

func TestParse_ObjectForm(t *testing.T) {
	data := []byte(`{"segments":[
		{"start":1.5,"end":2.5,"speaker":"SPEAKER_00","text":"hello","words":[{"start":1.5,"end":2.0,"word":" hello "}]},
		{"start":0.0,"end":1.0,"speaker":null,"text":"first"}
	]}`)
	segs, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	// Stable sort on (start, end) puts the earlier segment first.
	if segs[0].Text != "first" {
		t.Fatalf("expected sorted output, got %q first", segs[0].Text)
	}
	if segs[0].Speaker != types.SpeakerUnknown {
		t.Fatalf("null speaker should map to sentinel, got %q", segs[0].Speaker)
	}
	if segs[1].Words[0].Word != "hello" {
		t.Fatalf("word text should be trimmed, got %q", segs[1].Words[0].Word)
	}
}

func TestParse_BareArray(t *testing.T) {
	segs, err := Parse([]byte(`[{"start":0,"end":1,"text":"a"},{"start":2,"end":3,"text":"b"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
}

func TestParse_MissingFieldsDefault(t *testing.T) {
	segs, err := Parse([]byte(`[{"speaker":"  "}]`))
	if err != nil {
		t.Fatal(err)
	}
	s := segs[0]
	if s.Start != 0 || s.End != 0 {
		t.Fatalf("missing times should default to 0, got %v-%v", s.Start, s.End)
	}
	if s.Speaker != types.SpeakerUnknown {
		t.Fatalf("blank speaker should map to sentinel, got %q", s.Speaker)
	}
	if s.Text != "" {
		t.Fatalf("missing text should default to empty, got %q", s.Text)
	}
}

func TestParse_ToleratesInvertedSpan(t *testing.T) {
	segs, err := Parse([]byte(`[{"start":5.0,"end":4.0,"text":"x"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if segs[0].Start != 5.0 || segs[0].End != 4.0 {
		t.Fatalf("inverted span must be tolerated at load time, got %v-%v", segs[0].Start, segs[0].End)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"truncated": `{"segments":[{"start":`,
		"scalar":    `42`,
		"empty":     ``,
		"bad array": `[{"start":"not a number"}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}
