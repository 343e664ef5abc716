// Package config loads the optional TOML tuning file that overrides the
// engine's reference thresholds. Real diarization output often needs
// retuning; the file keeps that out of rebuilds.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"srtforge/internal/domain/transcript"
	"srtforge/internal/pipeline"
)

// Tuning mirrors the threshold fields of pipeline.Config.
type Tuning struct {
	PreSplitMaxSec float64 `toml:"pre_split_max_sec"`
	SplitStrategy  string  `toml:"split_strategy"`

	MinSec   float64 `toml:"min_sec"`
	MinChars int     `toml:"min_chars"`
	MaxGap   float64 `toml:"max_gap"`

	GapMerge float64 `toml:"gap_merge"`
	JoinSec  float64 `toml:"join_sec"`
	MaxChars int     `toml:"max_chars"`

	WrapWidth int `toml:"wrap_width"`
	MaxLines  int `toml:"max_lines"`
}

// Default returns the reference tuning.
func Default() Tuning {
	d := pipeline.Default()
	return Tuning{
		PreSplitMaxSec: d.PreSplitMaxSec,
		SplitStrategy:  string(d.SplitStrategy),
		MinSec:         d.MinSec,
		MinChars:       d.MinChars,
		MaxGap:         d.MaxGap,
		GapMerge:       d.GapMerge,
		JoinSec:        d.JoinSec,
		MaxChars:       d.MaxChars,
		WrapWidth:      d.WrapWidth,
		MaxLines:       d.MaxLines,
	}
}

// Load reads the tuning file at path over the defaults. Unknown keys are an
// error so typos don't silently fall back to defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	return t, nil
}

// Apply copies the tuning onto a pipeline config, leaving its path and
// logging fields alone.
func (t Tuning) Apply(cfg pipeline.Config) pipeline.Config {
	cfg.PreSplitMaxSec = t.PreSplitMaxSec
	cfg.SplitStrategy = transcript.SplitStrategy(t.SplitStrategy)
	cfg.MinSec = t.MinSec
	cfg.MinChars = t.MinChars
	cfg.MaxGap = t.MaxGap
	cfg.GapMerge = t.GapMerge
	cfg.JoinSec = t.JoinSec
	cfg.MaxChars = t.MaxChars
	cfg.WrapWidth = t.WrapWidth
	cfg.MaxLines = t.MaxLines
	return cfg
}
