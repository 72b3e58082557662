package azuretts

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lexiqai/tts-cli/internal/audio"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		key:        "test-key",
		baseURL:    srv.URL,
	}
}

func TestSynthesizeSuccess(t *testing.T) {
	wavBytes := audio.EncodeWAV(make([]byte, 480), 24000, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write(wavBytes)
	}))
	defer srv.Close()

	got, err := testClient(srv).Synthesize(context.Background(), "hello", "en-US-AvaNeural")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(wavBytes) {
		t.Errorf("got %d bytes, want %d", len(got), len(wavBytes))
	}
}

func TestSynthesizeRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/cognitiveservices/v1" {
			t.Errorf("path = %q, want /cognitiveservices/v1", r.URL.Path)
		}
		if got := r.Header.Get("Ocp-Apim-Subscription-Key"); got != "test-key" {
			t.Errorf("subscription key header = %q", got)
		}
		if got := r.Header.Get("X-Microsoft-OutputFormat"); got != OutputFormat {
			t.Errorf("output format header = %q, want %q", got, OutputFormat)
		}
		if got := r.Header.Get("Content-Type"); got != "application/ssml+xml" {
			t.Errorf("content type = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		ssml := string(body)
		if !strings.Contains(ssml, "<voice name='en-US-EmmaMultilingualNeural'>") {
			t.Errorf("SSML missing voice element: %s", ssml)
		}
		if !strings.Contains(ssml, "a &amp; b") {
			t.Errorf("SSML text not XML-escaped: %s", ssml)
		}

		w.Write([]byte("RIFFdata"))
	}))
	defer srv.Close()

	if _, err := testClient(srv).Synthesize(context.Background(), "a & b", "en-US-EmmaMultilingualNeural"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSynthesizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid subscription key"))
	}))
	defer srv.Close()

	_, err := testClient(srv).Synthesize(context.Background(), "hello", "en-US-AvaNeural")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Detail != "invalid subscription key" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
	// Both the reason and the provider detail survive in the message
	msg := apiErr.Error()
	if !strings.Contains(msg, "Unauthorized") || !strings.Contains(msg, "invalid subscription key") {
		t.Errorf("error message lost diagnostics: %q", msg)
	}
}

func TestSynthesizeEmptyInputs(t *testing.T) {
	c := NewClient("k", "eastus")
	if _, err := c.Synthesize(context.Background(), "", "en-US-AvaNeural"); err == nil {
		t.Error("expected error for empty text")
	}
	if _, err := c.Synthesize(context.Background(), "hello", ""); err == nil {
		t.Error("expected error for empty voice")
	}
}

func TestSynthesizeContextCanceled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testClient(srv).Synthesize(ctx, "hello", "en-US-AvaNeural"); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestStubSynthesizer(t *testing.T) {
	stub := NewStubSynthesizer()
	data, err := stub.Synthesize(context.Background(), "hi", "en-US-AvaNeural")
	if err != nil {
		t.Fatalf("stub failed: %v", err)
	}

	clip, err := audio.DecodeWAV(data)
	if err != nil {
		t.Fatalf("stub output is not valid WAV: %v", err)
	}
	if clip.SampleRate != 24000 {
		t.Errorf("SampleRate = %d, want 24000", clip.SampleRate)
	}
	if len(clip.PCM) != 2*480 {
		t.Errorf("PCM length = %d, want %d", len(clip.PCM), 2*480)
	}
}
