// Package player plays decoded audio clips on the default output device.
package player

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/lexiqai/tts-cli/internal/audio"
)

// Speaker plays clips through the default audio device. The underlying
// oto context is process-wide and pinned to the format of the first
// clip played; later clips must match it.
type Speaker struct {
	mu         sync.Mutex
	ctx        *oto.Context
	sampleRate int
	channels   int
}

// New returns a Speaker. The audio device is opened lazily on the
// first Play call.
func New() *Speaker {
	return &Speaker{}
}

// Play blocks until the clip has fully drained to the device.
func (s *Speaker) Play(clip *audio.Clip) error {
	if len(clip.PCM) == 0 {
		return fmt.Errorf("player: empty clip")
	}

	ctx, err := s.context(clip)
	if err != nil {
		return err
	}

	p := ctx.NewPlayer(bytes.NewReader(clip.PCM))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Err(); err != nil {
		p.Close()
		return fmt.Errorf("player: playback: %w", err)
	}
	return p.Close()
}

func (s *Speaker) context(clip *audio.Clip) (*oto.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		if s.sampleRate != clip.SampleRate || s.channels != clip.Channels {
			return nil, fmt.Errorf("player: clip format %d Hz/%d ch does not match open device %d Hz/%d ch",
				clip.SampleRate, clip.Channels, s.sampleRate, s.channels)
		}
		return s.ctx, nil
	}

	ctx, ready, err := oto.NewContext(clip.SampleRate, clip.Channels, clip.BitDepth/8)
	if err != nil {
		return nil, fmt.Errorf("player: open audio device: %w", err)
	}
	<-ready

	s.ctx = ctx
	s.sampleRate = clip.SampleRate
	s.channels = clip.Channels
	return s.ctx, nil
}
