package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/speech"
	"github.com/hireready/interview-api/internal/speech/stt"
	"github.com/hireready/interview-api/pkg/datauri"
)

// Service drives the mock-interview flow: it owns the session manager and
// orchestrates transcription, speech synthesis, and feedback generation.
type Service struct {
	sessions    *Manager
	transcriber stt.Provider
	synth       *speech.Synthesizer
	gateway     llm.Gateway
	model       string
}

func NewService(sessions *Manager, transcriber stt.Provider, synth *speech.Synthesizer, gw llm.Gateway, model string) *Service {
	return &Service{
		sessions:    sessions,
		transcriber: transcriber,
		synth:       synth,
		gateway:     gw,
		model:       model,
	}
}

// StartResult is the response to starting a new interview.
type StartResult struct {
	SessionID string
	Question  string
	Audio     string // data URI
}

// Start begins a fresh session and synthesizes the first question.
func (s *Service) Start(ctx context.Context) (*StartResult, error) {
	sessionID, question := s.sessions.Start()

	audio, err := s.synth.Speak(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("synthesize question: %w", err)
	}

	return &StartResult{
		SessionID: sessionID,
		Question:  question,
		Audio:     audio,
	}, nil
}

// AnswerResult is the response to a submitted answer.
type AnswerResult struct {
	Transcript   string
	NextQuestion string
	Audio        string // data URI, empty when complete
	Complete     bool
}

// SubmitAnswer transcribes the uploaded audio, records it against the
// current question, and returns the next question with synthesized audio.
// Returns ErrNoActiveSession / ErrInterviewComplete when called outside an
// in-progress session.
func (s *Service) SubmitAnswer(ctx context.Context, audioDataURI string) (*AnswerResult, error) {
	// Guard the state before paying for transcription.
	switch s.sessions.State() {
	case StateIdle:
		return nil, ErrNoActiveSession
	case StateComplete:
		return nil, ErrInterviewComplete
	}

	audio, err := datauri.Decode(audioDataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAudio, err)
	}

	result, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("transcribe answer: %w", err)
	}
	transcript := strings.TrimSpace(result.Text)

	rec, err := s.sessions.RecordAnswer(transcript)
	if err != nil {
		return nil, err
	}

	if rec.Complete {
		return &AnswerResult{Transcript: transcript, Complete: true}, nil
	}

	questionAudio, err := s.synth.Speak(ctx, rec.NextQuestion)
	if err != nil {
		return nil, fmt.Errorf("synthesize next question: %w", err)
	}

	return &AnswerResult{
		Transcript:   transcript,
		NextQuestion: rec.NextQuestion,
		Audio:        questionAudio,
	}, nil
}

// Reset abandons any session and returns to idle.
func (s *Service) Reset() {
	s.sessions.Reset()
}

// Feedback evaluates one question/answer pair and returns the written
// evaluation plus its synthesized audio.
func (s *Service) Feedback(ctx context.Context, question, answer string) (text, audio string, err error) {
	resp, err := s.gateway.Chat(ctx, llm.ChatRequest{
		Model:       s.model,
		Messages:    []llm.Message{{Role: "user", Content: buildFeedbackPrompt(question, answer)}},
		MaxTokens:   250,
		Temperature: 0.2,
	})
	if err != nil {
		return "", "", fmt.Errorf("feedback completion: %w", err)
	}

	text = StripInstructionEcho(resp.Content)

	audio, err = s.synth.Speak(ctx, text)
	if err != nil {
		return "", "", fmt.Errorf("synthesize feedback: %w", err)
	}
	return text, audio, nil
}

const instructionClose = "[/INST]"

// StripInstructionEcho drops everything up to and including the last
// instruction-closing marker. Instruct-tuned models sometimes echo the
// prompt back before answering.
func StripInstructionEcho(output string) string {
	if i := strings.LastIndex(output, instructionClose); i >= 0 {
		output = output[i+len(instructionClose):]
	}
	return strings.TrimSpace(output)
}

func buildFeedbackPrompt(question, answer string) string {
	return fmt.Sprintf(`[INST]
You are an interview evaluator.

Analyze the candidate's answer objectively.
Do not praise or encourage.
Focus only on clarity, relevance, depth, and structure.

Question:
%s

Answer:
%s

Respond strictly in this format:

1. Strengths:
2. Weaknesses:
3. Missing elements:
4. How to improve:
[/INST]
`, question, answer)
}
