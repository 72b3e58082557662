package azuretts

import (
	"context"
	"fmt"

	"github.com/lexiqai/tts-cli/internal/audio"
)

// StubSynthesizer implements Synthesizer with deterministic silent WAV
// output. It is intended for tests and environments where the real
// Azure Speech service is unavailable.
type StubSynthesizer struct{}

// NewStubSynthesizer returns a stub producing silence proportional to
// the input text length.
func NewStubSynthesizer() *StubSynthesizer {
	return &StubSynthesizer{}
}

// Synthesize returns a valid WAV payload of silence, 10 ms of audio per
// input character at 24 kHz mono.
func (s *StubSynthesizer) Synthesize(_ context.Context, text, voice string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("azuretts: text is required")
	}
	if voice == "" {
		return nil, fmt.Errorf("azuretts: voice is required")
	}

	// 480 bytes = 10 ms at 24 kHz mono PCM16
	pcm := make([]byte, len(text)*480)
	return audio.EncodeWAV(pcm, 24000, 1), nil
}
