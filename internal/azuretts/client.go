// Package azuretts is a minimal REST client for the Azure Cognitive
// Services text-to-speech endpoint.
package azuretts

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout for HTTP requests. The CLI adds no deadline of its
	// own on top of this.
	DefaultTimeout = 30 * time.Second

	// OutputFormat requested from the service. The RIFF container makes
	// each response a self-contained WAV file.
	OutputFormat = "riff-24khz-16bit-mono-pcm"

	userAgent = "lexiq-tts-cli"
)

// Client wraps HTTP calls to the Azure Speech TTS REST API.
type Client struct {
	httpClient *http.Client
	key        string
	baseURL    string
}

// NewClient constructs a client for the given subscription key and
// service region. No network call happens here.
func NewClient(key, region string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		key:     key,
		baseURL: fmt.Sprintf("https://%s.tts.speech.microsoft.com", region),
	}
}

// Synthesize performs one blocking synthesis call and returns the full
// WAV payload. A fresh request is built per call; nothing is shared
// across calls except the HTTP client's connection pool.
//
// The service writes audio in a single response; there is no guarantee
// of atomicity if the connection drops mid-body, so callers persisting
// to disk may observe partial files on failure.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("azuretts: text is required")
	}
	if voice == "" {
		return nil, fmt.Errorf("azuretts: voice is required")
	}

	body, err := buildSSML(text, voice)
	if err != nil {
		return nil, fmt.Errorf("azuretts: build request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cognitiveservices/v1", strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("azuretts: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("X-Microsoft-OutputFormat", OutputFormat)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azuretts: http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Detail:     strings.TrimSpace(string(errBody)),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("azuretts: read audio response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("azuretts: service returned empty audio")
	}

	return audio, nil
}

// buildSSML renders the SSML request body with the text XML-escaped.
func buildSSML(text, voice string) (string, error) {
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(text)); err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"<speak version='1.0' xml:lang='en-US'><voice name='%s'>%s</voice></speak>",
		voice, escaped.String(),
	), nil
}
