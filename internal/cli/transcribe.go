package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"srtforge/internal/ports"
	"srtforge/internal/ports/adapters/ffmpeg"
	"srtforge/internal/ports/adapters/whisperapi"
	"srtforge/internal/ports/adapters/whispercpp"
	"srtforge/internal/usecase"
)

func newTranscribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <media file>",
		Short: "Produce raw segment JSON from a recording (ffmpeg + whisper backend)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, args[0])
		},
	}
	cmd.Flags().String("backend", "api", "Transcription backend: api|whispercpp")
	cmd.Flags().String("model", "whisper-1", "Model name (api) or ggml model path (whispercpp)")
	cmd.Flags().String("base-url", "", "API base URL (or WHISPER_BASE_URL)")
	cmd.Flags().String("whisper-bin", "whisper-cli", "whisper.cpp binary path")
	cmd.Flags().String("out", "", "Output segment JSON path (default: input with .json extension)")
	cmd.Flags().String("cache", ".cache", "Working directory for extracted audio")
	return cmd
}

func runTranscribe(cmd *cobra.Command, media string) error {
	backend, _ := cmd.Flags().GetString("backend")
	model, _ := cmd.Flags().GetString("model")
	baseURL, _ := cmd.Flags().GetString("base-url")
	whisperBin, _ := cmd.Flags().GetString("whisper-bin")
	outJSON, _ := cmd.Flags().GetString("out")
	cacheDir, _ := cmd.Flags().GetString("cache")

	if baseURL == "" {
		baseURL = os.Getenv("WHISPER_BASE_URL")
	}
	if outJSON == "" {
		outJSON = strings.TrimSuffix(media, filepath.Ext(media)) + ".json"
	}

	var asr ports.ASR
	switch backend {
	case "api":
		apiKey := os.Getenv("WHISPER_API_KEY")
		if apiKey == "" {
			return errors.New("WHISPER_API_KEY is required for the api backend (set it in .env)")
		}
		asr = whisperapi.New(apiKey, model, baseURL)
	case "whispercpp":
		asr = whispercpp.New(whisperBin, model)
	default:
		return errors.New("unknown backend: " + backend)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Hour)
	defer cancel()

	uc := usecase.New(usecase.Deps{
		Audio: ffmpeg.New("", ""),
		ASR:   asr,
	})
	_, err := uc.Run(ctx, usecase.Input{
		Media:    media,
		CacheDir: cacheDir,
		OutJSON:  outJSON,
		Logf:     logf,
	})
	return err
}

// ensure adapters implement ports
var (
	_ ports.AudioTool = (*ffmpeg.Adapter)(nil)
	_ ports.ASR       = (*whispercpp.Adapter)(nil)
	_ ports.ASR       = (*whisperapi.Adapter)(nil)
)
