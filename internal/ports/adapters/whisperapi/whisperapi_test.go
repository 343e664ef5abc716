package whisperapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeWav(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("RIFFfakewav"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe_DecodesVerboseJSON(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if r.URL.Path != "/v1/audio/transcriptions" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.FormValue("response_format") != "verbose_json" {
			http.Error(w, "wrong format", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"segments":[
			{"start":0.0,"end":2.0,"speaker":"SPEAKER_00","text":" hello ","words":[{"start":0.0,"end":1.0,"word":" hello "}]},
			{"start":2.0,"end":4.0,"speaker":null,"text":"world"}
		]}`))
	}))
	defer srv.Close()

	a := New("test-key", "whisper-1", srv.URL)
	tr, err := a.Transcribe(context.Background(), writeWav(t), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(tr.Segments))
	}
	if tr.Segments[0].Text != "hello" || tr.Segments[0].Words[0].Word != "hello" {
		t.Fatalf("text should be trimmed: %+v", tr.Segments[0])
	}
	if tr.Segments[0].Speaker != "SPEAKER_00" {
		t.Fatalf("speaker lost: %+v", tr.Segments[0])
	}
	if tr.Segments[1].Speaker != "" {
		t.Fatalf("null speaker should stay empty for the loader to default: %q", tr.Segments[1].Speaker)
	}
}

func TestTranscribe_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := New("test-key", "whisper-1", srv.URL)
	_, err := a.Transcribe(context.Background(), writeWav(t), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status error, got %v", err)
	}
}
