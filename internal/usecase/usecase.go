// Package usecase orchestrates the transcribe flow: prepare audio with the
// audio tool, run the ASR backend, and persist the raw segment JSON that
// the reconstruction pipeline consumes.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"srtforge/internal/ports"
	"srtforge/internal/types"
)

type Deps struct {
	Audio ports.AudioTool
	ASR   ports.ASR
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Media    string
	CacheDir string
	OutJSON  string
	Logf     func(format string, args ...any)
}

type Result struct {
	Transcript types.Transcript
	OutJSON    string
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if err := os.MkdirAll(in.CacheDir, 0o755); err != nil {
		return Result{}, err
	}
	wav := filepath.Join(in.CacheDir, "audio.wav")
	logf("extracting audio from %s", in.Media)
	if err := u.d.Audio.ExtractAudioMono16k(ctx, in.Media, wav); err != nil {
		return Result{}, err
	}

	if dur, err := u.d.Audio.ProbeDuration(ctx, in.Media); err == nil {
		logf("media duration: %s", dur.Truncate(time.Second))
	}

	tr, err := u.d.ASR.Transcribe(ctx, wav, in.CacheDir)
	if err != nil {
		return Result{}, err
	}
	logf("transcribed %d segments", len(tr.Segments))

	b, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("marshal transcript: %w", err)
	}
	if err := os.WriteFile(in.OutJSON, append(b, '\n'), 0o644); err != nil {
		return Result{}, err
	}
	logf("wrote %s", in.OutJSON)
	return Result{Transcript: tr, OutJSON: in.OutJSON}, nil
}
