// Package whisperapi talks to an OpenAI-compatible audio transcription
// endpoint (POST {base}/v1/audio/transcriptions, verbose_json response).
package whisperapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"srtforge/internal/types"
)

type Adapter struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func New(apiKey, model, baseURL string) *Adapter {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &Adapter{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Minute},
	}
}

type verboseResponse struct {
	Segments []struct {
		Start   float64 `json:"start"`
		End     float64 `json:"end"`
		Speaker *string `json:"speaker"`
		Text    string  `json:"text"`
		Words   []struct {
			Start float64 `json:"start"`
			End   float64 `json:"end"`
			Word  string  `json:"word"`
		} `json:"words"`
	} `json:"segments"`
}

func (a *Adapter) Transcribe(ctx context.Context, wavPath, cacheDir string) (types.Transcript, error) {
	body, contentType, err := buildRequestBody(wavPath, a.model)
	if err != nil {
		return types.Transcript{}, err
	}

	url := a.baseURL + "/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return types.Transcript{}, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Transcript{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return types.Transcript{}, fmt.Errorf("transcription API status %d: %s", resp.StatusCode, truncate(rb, 512))
	}

	var vr verboseResponse
	if err := json.Unmarshal(rb, &vr); err != nil {
		return types.Transcript{}, fmt.Errorf("decode transcription response: %w", err)
	}

	tr := types.Transcript{}
	for _, s := range vr.Segments {
		seg := types.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  strings.TrimSpace(s.Text),
		}
		if s.Speaker != nil {
			seg.Speaker = types.Speaker(strings.TrimSpace(*s.Speaker))
		}
		for _, w := range s.Words {
			seg.Words = append(seg.Words, types.Word{Start: w.Start, End: w.End, Word: strings.TrimSpace(w.Word)})
		}
		tr.Segments = append(tr.Segments, seg)
	}
	return tr, nil
}

func buildRequestBody(wavPath, model string) (*bytes.Buffer, string, error) {
	f, err := os.Open(wavPath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(wavPath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("model", model); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("timestamp_granularities[]", "segment"); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
