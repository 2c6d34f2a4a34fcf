package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireready/interview-api/internal/interview"
	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/speech"
	"github.com/hireready/interview-api/internal/speech/stt"
	"github.com/hireready/interview-api/internal/speech/tts"
	"github.com/hireready/interview-api/pkg/datauri"
)

type stubTranscriber struct{ text string }

func (s *stubTranscriber) Transcribe(ctx context.Context, audio []byte) (*stt.TranscriptionResult, error) {
	return &stt.TranscriptionResult{Text: s.text}, nil
}
func (s *stubTranscriber) Name() string { return "stub-stt" }

type stubSpeaker struct{}

func (s *stubSpeaker) Synthesize(ctx context.Context, req tts.SynthesisRequest) (*tts.SynthesisResult, error) {
	return &tts.SynthesisResult{Audio: []byte{1, 2}, Format: tts.FormatPCM16, SampleRate: 22050}, nil
}
func (s *stubSpeaker) Name() string { return "stub-tts" }

type stubGateway struct {
	reply  string
	models []llm.ModelInfo
}

func (s *stubGateway) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return &llm.ChatResponse{Content: s.reply}, nil
}
func (s *stubGateway) Embed(ctx context.Context, req llm.EmbeddingRequest) (*llm.EmbeddingResponse, error) {
	return &llm.EmbeddingResponse{}, nil
}
func (s *stubGateway) Provider(name string) (llm.Provider, error) { return nil, nil }
func (s *stubGateway) ListModels() []llm.ModelInfo                { return s.models }

func newTestHandler(transcript string) *InterviewHandler {
	synth := speech.NewSynthesizer(&stubSpeaker{}, 0, "")
	svc := interview.NewService(
		interview.NewManager(interview.DefaultQuestions),
		&stubTranscriber{text: transcript},
		synth,
		&stubGateway{reply: "1. Strengths: none."},
		"mistral",
	)
	return NewInterviewHandler(svc)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func answerBody() string {
	uri := datauri.Encode("audio/wav", []byte("audio bytes"))
	return `{"audio_data":"` + uri + `"}`
}

func TestStartReturnsFirstQuestion(t *testing.T) {
	h := newTestHandler("")

	rec := httptest.NewRecorder()
	h.Start(rec, httptest.NewRequest(http.MethodPost, "/interview/start_interview", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, interview.DefaultQuestions[0], body["question"])
	assert.NotEmpty(t, body["session_id"])
	assert.Contains(t, body["tts_audio"], "data:audio/wav;base64,")
}

func TestSubmitAnswerWithoutSessionConflicts(t *testing.T) {
	h := newTestHandler("an answer")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/submit_answer", strings.NewReader(answerBody()))
	h.SubmitAnswer(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitAnswerFlow(t *testing.T) {
	h := newTestHandler("my answer")

	rec := httptest.NewRecorder()
	h.Start(rec, httptest.NewRequest(http.MethodPost, "/interview/start_interview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/submit_answer", strings.NewReader(answerBody()))
	h.SubmitAnswer(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "my answer", body["transcribed_text"])
	assert.Equal(t, interview.DefaultQuestions[1], body["next_question"])
}

func TestSubmitAnswerMissingBody(t *testing.T) {
	h := newTestHandler("")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/submit_answer", strings.NewReader(`{}`))
	h.SubmitAnswer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnswerMalformedAudio(t *testing.T) {
	h := newTestHandler("")

	rec := httptest.NewRecorder()
	h.Start(rec, httptest.NewRequest(http.MethodPost, "/interview/start_interview", nil))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/submit_answer", strings.NewReader(`{"audio_data":"nonsense"}`))
	h.SubmitAnswer(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedback(t *testing.T) {
	h := newTestHandler("")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/get_single_feedback",
		strings.NewReader(`{"question":"Tell me about yourself","answer":"I build backends."}`))
	h.Feedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "1. Strengths: none.", body["feedback"])
	assert.Contains(t, body["feedback_audio"], "data:audio/wav;base64,")
}

func TestResetReturnsToIdle(t *testing.T) {
	h := newTestHandler("an answer")

	rec := httptest.NewRecorder()
	h.Start(rec, httptest.NewRequest(http.MethodPost, "/interview/start_interview", nil))

	rec = httptest.NewRecorder()
	h.Reset(rec, httptest.NewRequest(http.MethodPost, "/interview/reset_interview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/submit_answer", strings.NewReader(answerBody()))
	h.SubmitAnswer(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
