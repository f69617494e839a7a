package speech

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient(DefaultConfig("")); err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestSynthesize(t *testing.T) {
	mp3 := []byte("ID3\x04fake-mp3-bytes")
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth = %q", got)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(mp3)
	})

	audio, err := client.Synthesize(t.Context(), "The mitochondria is the powerhouse of the cell.")
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if string(audio) != string(mp3) {
		t.Errorf("audio bytes mismatch: got %d bytes", len(audio))
	}
}

func TestSynthesize_EmptyText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty text")
	})

	if _, err := client.Synthesize(t.Context(), ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestTranscribe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("model = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "Cell Biology"}`))
	})

	text, err := client.Transcribe(t.Context(), strings.NewReader("fake-wav-bytes"), "subject.wav")
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if text != "Cell Biology" {
		t.Errorf("text = %q, want Cell Biology", text)
	}
}
