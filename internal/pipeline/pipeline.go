// Package pipeline composes the segment reconstruction stages into a single
// deterministic run over one transcript file: load, split, merge, join,
// normalize speakers, fix the timeline, clean and wrap text, write SRT,
// then independently audit the written output.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"srtforge/internal/domain/srt"
	"srtforge/internal/domain/textnorm"
	"srtforge/internal/domain/transcript"
	"srtforge/internal/types"
)

// ErrUnsupportedInput rejects transcript paths without a .json extension at
// the outer load boundary.
var ErrUnsupportedInput = errors.New("unsupported transcript input")

// Config is the single explicit tuning surface for the whole engine. Every
// threshold the stages consult lives here so tests can vary them without
// shared state.
type Config struct {
	InputJSON string
	OutSRT    string // default: input with .srt extension
	AuditJSON string // default: OutSRT + ".audit.json"
	Logf      func(format string, args ...any)

	// Pre-splitter. PreSplitMaxSec == 0 disables it.
	PreSplitMaxSec float64
	SplitStrategy  transcript.SplitStrategy

	// Short-segment merger.
	MinSec   float64
	MinChars int
	MaxGap   float64

	// Same-speaker paragraph joiner.
	GapMerge float64
	JoinSec  float64
	MaxChars int

	// Text wrapping.
	WrapWidth int
	MaxLines  int
}

// Default returns the reference tuning.
func Default() Config {
	return Config{
		PreSplitMaxSec: 0,
		SplitStrategy:  transcript.SplitAuto,
		MinSec:         1.0,
		MinChars:       30,
		MaxGap:         0.5,
		GapMerge:       1.0,
		JoinSec:        90,
		MaxChars:       900,
		WrapWidth:      72,
		MaxLines:       3,
	}
}

func (c Config) Validate() error {
	if c.InputJSON == "" {
		return errors.New("input is empty")
	}
	if !strings.EqualFold(filepath.Ext(c.InputJSON), ".json") {
		return fmt.Errorf("%w: %s", ErrUnsupportedInput, c.InputJSON)
	}
	if _, err := os.Stat(c.InputJSON); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.PreSplitMaxSec < 0 {
		return errors.New("pre-split max must be >= 0")
	}
	switch c.SplitStrategy {
	case "", transcript.SplitAuto, transcript.SplitWords, transcript.SplitProportional:
	default:
		return fmt.Errorf("unknown split strategy %q", c.SplitStrategy)
	}
	if c.MinSec < 0 || c.MaxGap < 0 || c.GapMerge < 0 {
		return errors.New("merge thresholds must be >= 0")
	}
	if c.JoinSec <= 0 || c.MaxChars <= 0 {
		return errors.New("paragraph caps must be > 0")
	}
	if c.WrapWidth <= 0 {
		return errors.New("wrap width must be > 0")
	}
	return nil
}

// Run executes the full pipeline over cfg.InputJSON, writes the SRT and
// audit JSON files, and returns the audit report. I/O failures propagate
// unchanged; there is no retry or partial-write recovery.
func Run(cfg Config) (srt.Report, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	data, err := os.ReadFile(cfg.InputJSON)
	if err != nil {
		return srt.Report{}, err
	}
	segs, err := transcript.Parse(data)
	if err != nil {
		return srt.Report{}, err
	}
	logf("loaded %d raw segments", len(segs))

	segs = Process(segs, cfg)
	logf("reconstructed %d segments", len(segs))

	rendered := srt.Render(segs)
	outSRT := cfg.OutSRT
	if outSRT == "" {
		outSRT = strings.TrimSuffix(cfg.InputJSON, filepath.Ext(cfg.InputJSON)) + ".srt"
	}
	if err := os.WriteFile(outSRT, []byte(rendered), 0o644); err != nil {
		return srt.Report{}, err
	}
	logf("wrote %s", outSRT)

	// The audit re-parses the serialized text, not the in-memory segments,
	// so it catches defects the writer itself introduced.
	report, err := srt.Audit(rendered)
	if err != nil {
		return srt.Report{}, err
	}
	auditPath := cfg.AuditJSON
	if auditPath == "" {
		auditPath = strings.TrimSuffix(outSRT, ".srt") + ".audit.json"
	}
	if err := srt.WriteReport(report, auditPath); err != nil {
		return srt.Report{}, err
	}
	logf("audit: %d items, %d warnings (%s)", report.TotalItems, len(report.Warnings), auditPath)
	return report, nil
}

// Process runs the pure in-memory stages in pipeline order. It owns segs
// exclusively and returns the reconstructed sequence.
func Process(segs []types.Segment, cfg Config) []types.Segment {
	segs = transcript.SplitLong(segs, cfg.PreSplitMaxSec, cfg.SplitStrategy)
	segs = transcript.MergeShort(segs, cfg.MinSec, cfg.MaxGap, cfg.MinChars)
	segs = transcript.JoinParagraphs(segs, cfg.GapMerge, cfg.JoinSec, cfg.MaxChars)
	segs = transcript.NormalizeSpeakers(segs)
	segs = transcript.FixTimeline(segs)
	for i := range segs {
		segs[i].Text = textnorm.Wrap(textnorm.Clean(segs[i].Text), cfg.WrapWidth, cfg.MaxLines)
		segs[i].Words = nil
	}
	return segs
}
