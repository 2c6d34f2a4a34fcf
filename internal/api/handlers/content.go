package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/llm"
)

// ContentHandler serves the interview-preparation content routes.
type ContentHandler struct {
	assistant *content.Assistant
	gateway   llm.Gateway
	device    string
}

func NewContentHandler(assistant *content.Assistant, gw llm.Gateway, device string) *ContentHandler {
	return &ContentHandler{assistant: assistant, gateway: gw, device: device}
}

func (h *ContentHandler) Companies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.assistant.Companies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if companies == nil {
		companies = []string{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *ContentHandler) Roles(w http.ResponseWriter, r *http.Request) {
	company := chi.URLParam(r, "company")
	roles, err := h.assistant.Roles(r.Context(), company)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if roles == nil {
		roles = []string{}
	}
	writeJSON(w, http.StatusOK, roles)
}

type contentRequest struct {
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	SectionType string `json:"section_type" validate:"required"`
}

func (h *ContentHandler) Content(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "company, role and section_type are required")
		return
	}

	kind, ok := content.ParseSectionKind(req.SectionType)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown section_type")
		return
	}

	section, err := h.assistant.SectionContent(r.Context(), req.Company, req.Role, kind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"content": section})
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

func (h *ContentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(r, &req) {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.assistant.Respond(r.Context(), req.Message, req.Company, req.Role)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"response": reply,
		"device":   h.device,
	})
}

func (h *ContentHandler) Status(w http.ResponseWriter, r *http.Request) {
	count, err := h.assistant.DocumentCount(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	models := h.gateway.ListModels()
	if models == nil {
		models = []llm.ModelInfo{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"device":             h.device,
		"gpu_name":           "None",
		"openvino_available": false,
		"loaded_documents":   count,
		"available_models":   models,
	})
}
