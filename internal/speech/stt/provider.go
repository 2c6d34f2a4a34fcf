package stt

import "context"

// TranscriptionResult holds the speech-to-text output.
type TranscriptionResult struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// Provider is the interface for speech-to-text backends. Audio arrives
// in memory, already decoded from the client's data URI.
type Provider interface {
	Transcribe(ctx context.Context, audio []byte) (*TranscriptionResult, error)
	Name() string
}
