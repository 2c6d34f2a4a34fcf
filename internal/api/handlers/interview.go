package handlers

import (
	"errors"
	"net/http"

	"github.com/hireready/interview-api/internal/interview"
)

// InterviewHandler serves the mock-interview flow.
type InterviewHandler struct {
	svc *interview.Service
}

func NewInterviewHandler(svc *interview.Service) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Start(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"session_id": result.SessionID,
		"question":   result.Question,
		"tts_audio":  result.Audio,
	})
}

type answerRequest struct {
	AudioData string `json:"audio_data" validate:"required"`
}

func (h *InterviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "audio_data is required")
		return
	}

	result, err := h.svc.SubmitAnswer(r.Context(), req.AudioData)
	switch {
	case err == nil:
	case errors.Is(err, interview.ErrNoActiveSession),
		errors.Is(err, interview.ErrInterviewComplete):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, interview.ErrBadAudio):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if result.Complete {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":            true,
			"interview_complete": true,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"transcribed_text": result.Transcript,
		"next_question":    result.NextQuestion,
		"tts_audio":        result.Audio,
	})
}

type feedbackRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

func (h *InterviewHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "question and answer are required")
		return
	}

	feedback, audio, err := h.svc.Feedback(r.Context(), req.Question, req.Answer)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"feedback":       feedback,
		"feedback_audio": audio,
	})
}

func (h *InterviewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset()
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
