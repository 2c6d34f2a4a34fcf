package tts

import "context"

// Audio formats a backend may produce.
const (
	FormatWAV   = "wav"   // complete RIFF/WAVE file
	FormatPCM16 = "pcm16" // raw 16-bit little-endian mono samples
)

// SynthesisRequest holds the parameters for one chunk of speech.
type SynthesisRequest struct {
	Input string
	Voice string
}

// SynthesisResult holds the generated audio.
type SynthesisResult struct {
	Audio      []byte
	Format     string // FormatWAV or FormatPCM16
	SampleRate int
}

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
