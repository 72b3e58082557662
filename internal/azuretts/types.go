package azuretts

import (
	"context"
	"fmt"
)

// Synthesizer converts one text unit into WAV audio bytes.
type Synthesizer interface {
	// Synthesize performs one blocking synthesis call and returns the
	// complete WAV payload for the given text and voice.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// APIError is a provider-reported synthesis failure. Reason carries the
// service's cancellation reason; Detail carries the error body when the
// service supplied one. Both are preserved for diagnostics.
type APIError struct {
	StatusCode int
	Reason     string
	Detail     string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("speech synthesis canceled: %s (status %d)", e.Reason, e.StatusCode)
	if e.Detail != "" {
		msg += fmt.Sprintf("\nError details: %s", e.Detail)
	}
	return msg
}
