// Package speech turns text into the base64 WAV data URIs the browser
// client plays back.
package speech

import (
	"context"
	"fmt"

	"github.com/hireready/interview-api/internal/speech/tts"
	"github.com/hireready/interview-api/pkg/chunker"
	"github.com/hireready/interview-api/pkg/datauri"
)

// Synthesizer feeds text through a TTS backend chunk by chunk and stitches
// the results into a single WAV payload. Chunking keeps each synthesis
// request short; long inputs degrade both latency and voice quality.
type Synthesizer struct {
	provider   tts.Provider
	chunkLimit int
	voice      string
}

func NewSynthesizer(provider tts.Provider, chunkLimit int, voice string) *Synthesizer {
	if chunkLimit <= 0 {
		chunkLimit = chunker.DefaultLimit
	}
	return &Synthesizer{provider: provider, chunkLimit: chunkLimit, voice: voice}
}

// Speak synthesizes text and returns it as a data:audio/wav;base64 URI.
func (s *Synthesizer) Speak(ctx context.Context, text string) (string, error) {
	chunks := chunker.Split(text, s.chunkLimit)
	if len(chunks) == 0 {
		return "", fmt.Errorf("nothing to synthesize")
	}

	var pcm []byte
	sampleRate := 0

	for i, chunk := range chunks {
		res, err := s.provider.Synthesize(ctx, tts.SynthesisRequest{Input: chunk, Voice: s.voice})
		if err != nil {
			return "", fmt.Errorf("synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}

		switch res.Format {
		case tts.FormatPCM16:
			pcm = append(pcm, res.Audio...)
			sampleRate = res.SampleRate
		case tts.FormatWAV:
			samples, rate, err := ExtractPCM(res.Audio)
			if err != nil {
				return "", fmt.Errorf("parse chunk %d audio: %w", i+1, err)
			}
			pcm = append(pcm, samples...)
			sampleRate = rate
		default:
			return "", fmt.Errorf("unsupported audio format %q from %s", res.Format, s.provider.Name())
		}
	}

	return datauri.Encode("audio/wav", EncodeWAV(pcm, sampleRate)), nil
}
