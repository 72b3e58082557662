package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lexiqai/tts-cli/internal/audio"
	"github.com/lexiqai/tts-cli/internal/azuretts"
	"github.com/lexiqai/tts-cli/internal/namer"
	"github.com/lexiqai/tts-cli/internal/textsource"
)

// clipPlayer is the playback sink. Satisfied by player.Speaker.
type clipPlayer interface {
	Play(*audio.Clip) error
}

// runner executes one CLI invocation: a single text or a file of lines,
// strictly sequential, aborting on the first failure.
type runner struct {
	synth   azuretts.Synthesizer
	speaker clipPlayer
	logger  zerolog.Logger
	out     io.Writer

	voice     string
	prefix    string
	output    string
	outputDir string
	play      bool
}

func (r *runner) runText(ctx context.Context, text string) error {
	if r.play {
		r.logger.Debug().Str("text", truncate(text, 50)).Msg("playing text")
		if err := r.speak(ctx, text); err != nil {
			return err
		}
		fmt.Fprintln(r.out, "✓ Audio played successfully")
		return nil
	}

	out := r.output
	if out == "" {
		out = "output.wav"
	}
	r.logger.Debug().Str("path", out).Msg("synthesizing to file")
	if err := r.save(ctx, text, out); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✓ Audio saved to: %s\n", out)
	return nil
}

func (r *runner) runFile(ctx context.Context, path string) error {
	lines, err := textsource.FromFile(path)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no text found in file: %s", path)
	}

	fmt.Fprintf(r.out, "Processing %d lines from %s\n", len(lines), path)

	for i, line := range lines {
		idx := i + 1

		if r.play {
			r.logger.Debug().Int("line", idx).Str("text", truncate(line, 50)).Msg("playing line")
			if err := r.speak(ctx, line); err != nil {
				return fmt.Errorf("line %d: %w", idx, err)
			}
			fmt.Fprintf(r.out, "✓ Played line %d\n", idx)
			continue
		}

		outPath, err := namer.OutputPath(r.prefix, idx, r.outputDir)
		if err != nil {
			return fmt.Errorf("line %d: %w", idx, err)
		}
		r.logger.Debug().Int("line", idx).Str("path", outPath).Msg("synthesizing line")
		if err := r.save(ctx, line, outPath); err != nil {
			return fmt.Errorf("line %d: %w", idx, err)
		}
		fmt.Fprintf(r.out, "✓ Saved line %d to: %s\n", idx, outPath)
	}

	if !r.play {
		fmt.Fprintf(r.out, "\n✓ All %d audio files saved to: %s\n", len(lines), r.outputDir)
	}
	return nil
}

// save synthesizes text and persists the WAV payload. The write is not
// atomic; a failure mid-write can leave a partial file behind.
func (r *runner) save(ctx context.Context, text, path string) error {
	data, err := r.synth.Synthesize(ctx, text, r.voice)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

func (r *runner) speak(ctx context.Context, text string) error {
	data, err := r.synth.Synthesize(ctx, text, r.voice)
	if err != nil {
		return err
	}
	clip, err := audio.DecodeWAV(data)
	if err != nil {
		return err
	}
	r.logger.Debug().Dur("duration", clip.Duration()).Msg("clip decoded")
	return r.speaker.Play(clip)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
