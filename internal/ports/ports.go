package ports

import (
	"context"
	"time"

	"srtforge/internal/types"
)

// AudioTool prepares upload media for transcription.
type AudioTool interface {
	ExtractAudioMono16k(ctx context.Context, inMedia, outWav string) error
	ProbeDuration(ctx context.Context, inMedia string) (time.Duration, error)
}

// ASR turns prepared audio into a raw diarized transcript.
type ASR interface {
	Transcribe(ctx context.Context, wavPath, cacheDir string) (types.Transcript, error)
}
