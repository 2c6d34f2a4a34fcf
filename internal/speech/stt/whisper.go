package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// WhisperConfig configures a Whisper-compatible transcription endpoint:
// either the OpenAI API or a local whisper.cpp server, which speaks the
// same protocol. Start the local server with:
//
//	./server -m models/ggml-base.en.bin --port 8178
type WhisperConfig struct {
	APIKey  string // empty for a local server
	BaseURL string // default: "https://api.openai.com/v1"
	Model   string // default: "whisper-1"
}

// Whisper transcribes audio via an OpenAI-compatible /audio/transcriptions
// endpoint using a multipart upload.
type Whisper struct {
	cfg        WhisperConfig
	httpClient *http.Client
	name       string
}

func NewWhisper(cfg WhisperConfig) *Whisper {
	name := "openai-whisper"
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	} else if cfg.APIKey == "" {
		name = "local-whisper"
	}
	if cfg.Model == "" {
		cfg.Model = "whisper-1"
	}
	return &Whisper{
		cfg:  cfg,
		name: name,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
	}
}

func (w *Whisper) Name() string { return w.name }

func (w *Whisper) Transcribe(ctx context.Context, audio []byte) (*TranscriptionResult, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio payload")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "answer.wav")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err = fw.Write(audio); err != nil {
		return nil, fmt.Errorf("write audio data: %w", err)
	}

	_ = mw.WriteField("model", w.cfg.Model)
	_ = mw.WriteField("response_format", "verbose_json")

	if err = mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", w.cfg.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	if w.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+w.cfg.APIKey)
	}

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcription failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp struct {
		Text     string  `json:"text"`
		Language string  `json:"language"`
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return &TranscriptionResult{
		Text:     apiResp.Text,
		Language: apiResp.Language,
		Duration: apiResp.Duration,
	}, nil
}
