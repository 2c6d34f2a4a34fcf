package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/llm"
)

type stubStore struct {
	count int
}

func (s *stubStore) Companies(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubStore) Roles(ctx context.Context, company string) ([]string, error) {
	return nil, nil
}
func (s *stubStore) RawContent(ctx context.Context, company, role string) (string, error) {
	return "", nil
}
func (s *stubStore) Upsert(ctx context.Context, doc content.Document) error { return nil }
func (s *stubStore) Count(ctx context.Context) (int, error)                 { return s.count, nil }
func (s *stubStore) SimilaritySearch(ctx context.Context, query []float32, topK int) ([]content.Document, error) {
	return nil, nil
}

func TestStatusReportsModelsAndDocuments(t *testing.T) {
	gw := &stubGateway{models: []llm.ModelInfo{
		{Provider: "ollama", Model: "mistral"},
		{Provider: "ollama", Model: "nomic-embed-text"},
	}}
	assistant := content.NewAssistant(&stubStore{count: 7}, gw, nil, "mistral")
	h := NewContentHandler(assistant, gw, "ollama/mistral")

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ollama/mistral", body["device"])
	assert.Equal(t, float64(7), body["loaded_documents"])

	models, ok := body["available_models"].([]any)
	require.True(t, ok)
	require.Len(t, models, 2)
	first, ok := models[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ollama", first["provider"])
	assert.Equal(t, "mistral", first["model"])
}

func TestStatusWithoutModels(t *testing.T) {
	gw := &stubGateway{}
	assistant := content.NewAssistant(&stubStore{}, gw, nil, "mistral")
	h := NewContentHandler(assistant, gw, "ollama/mistral")

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	models, ok := body["available_models"].([]any)
	require.True(t, ok)
	assert.Empty(t, models)
}
