package tts

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PiperConfig configures the local Piper TTS backend. Voice selection is
// a property of the model file, not a runtime flag.
type PiperConfig struct {
	BinPath    string // default: "piper"
	ModelPath  string // required: path to the .onnx voice model
	SampleRate int    // PCM rate of the voice model, default 22050
}

// Piper synthesizes speech by piping text through the Piper binary.
// With --output-raw Piper writes raw 16-bit mono PCM to stdout.
type Piper struct {
	cfg PiperConfig
}

func NewPiper(cfg PiperConfig) *Piper {
	if cfg.BinPath == "" {
		cfg.BinPath = "piper"
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 22050
	}
	return &Piper{cfg: cfg}
}

func (p *Piper) Name() string { return "local-piper" }

func (p *Piper) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	if p.cfg.ModelPath == "" {
		return nil, fmt.Errorf("piper model path is required (set TTS_LOCAL_PIPER_MODEL)")
	}

	cmd := exec.CommandContext(ctx, p.cfg.BinPath, "--model", p.cfg.ModelPath, "--output-raw")
	cmd.Stdin = strings.NewReader(req.Input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("piper failed: %w (stderr: %s)", err, stderr.String())
	}

	return &SynthesisResult{
		Audio:      stdout.Bytes(),
		Format:     FormatPCM16,
		SampleRate: p.cfg.SampleRate,
	}, nil
}
