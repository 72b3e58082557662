// Package audio handles the WAV payloads returned by the synthesis
// service: decoding them for playback and building small in-memory
// fixtures for tests.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Clip is a decoded WAV payload: raw 16-bit little-endian PCM plus the
// parameters the playback device needs.
type Clip struct {
	SampleRate int
	Channels   int
	BitDepth   int
	PCM        []byte
}

// Duration returns the clip's playback duration.
func (c *Clip) Duration() time.Duration {
	bytesPerSecond := c.SampleRate * c.Channels * c.BitDepth / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(len(c.PCM)) * time.Second / time.Duration(bytesPerSecond)
}

// DecodeWAV parses a complete WAV payload into a Clip.
// Only 16-bit PCM is supported, which is what the service returns for
// the riff-24khz-16bit-mono-pcm output format.
func DecodeWAV(data []byte) (*Clip, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, fmt.Errorf("audio: not a valid WAV payload")
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: decode WAV: %w", err)
	}
	if d.BitDepth != 16 {
		return nil, fmt.Errorf("audio: unsupported bit depth %d", d.BitDepth)
	}

	return &Clip{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   int(d.BitDepth),
		PCM:        pcmBytes(buf),
	}, nil
}

// pcmBytes flattens decoded samples into 16-bit little-endian bytes.
func pcmBytes(buf *gaudio.IntBuffer) []byte {
	pcm := make([]byte, len(buf.Data)*2)
	for i, s := range buf.Data {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(s)))
	}
	return pcm
}

// EncodeWAV wraps raw 16-bit little-endian PCM in a RIFF/WAVE header.
// The go-audio encoder wants an io.WriteSeeker, so for in-memory
// payloads the header is written directly.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	const bitDepth = 16
	byteRate := sampleRate * channels * bitDepth / 8
	blockAlign := channels * bitDepth / 8

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(pcm)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	binary.Write(&b, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&b, binary.LittleEndian, uint16(bitDepth))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(pcm)))
	b.Write(pcm)
	return b.Bytes()
}
