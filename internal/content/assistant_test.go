package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireready/interview-api/internal/llm"
)

type fakeStore struct {
	companies []string
	roles     []string
	raw       string
	count     int
	similar   []Document
}

func (f *fakeStore) Companies(ctx context.Context) ([]string, error) { return f.companies, nil }
func (f *fakeStore) Roles(ctx context.Context, company string) ([]string, error) {
	return f.roles, nil
}
func (f *fakeStore) RawContent(ctx context.Context, company, role string) (string, error) {
	return f.raw, nil
}
func (f *fakeStore) Upsert(ctx context.Context, doc Document) error { return nil }
func (f *fakeStore) Count(ctx context.Context) (int, error)         { return f.count, nil }
func (f *fakeStore) SimilaritySearch(ctx context.Context, query []float32, topK int) ([]Document, error) {
	return f.similar, nil
}

type fakeGateway struct {
	lastChat   llm.ChatRequest
	reply      string
	embeddings [][]float32
	embedErr   error
}

func (f *fakeGateway) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.lastChat = req
	return &llm.ChatResponse{Content: f.reply}, nil
}

func (f *fakeGateway) Embed(ctx context.Context, req llm.EmbeddingRequest) (*llm.EmbeddingResponse, error) {
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return &llm.EmbeddingResponse{Embeddings: f.embeddings}, nil
}

func (f *fakeGateway) Provider(name string) (llm.Provider, error) { return nil, nil }
func (f *fakeGateway) ListModels() []llm.ModelInfo                { return nil }

func TestAssistantSectionContent(t *testing.T) {
	store := &fakeStore{raw: sampleDoc}
	a := NewAssistant(store, &fakeGateway{}, nil, "mistral")

	got, err := a.SectionContent(context.Background(), "Infosys", "Software Engineer", SectionTips)
	require.NoError(t, err)
	assert.Equal(t, "Be concise. Use the STAR method for behavioral questions.", got)
}

func TestAssistantSectionContentNoDocument(t *testing.T) {
	a := NewAssistant(&fakeStore{}, &fakeGateway{}, nil, "mistral")

	got, err := a.SectionContent(context.Background(), "Nowhere", "Nobody", SectionTips)
	require.NoError(t, err)
	assert.Equal(t, NoContentFound, got)
}

func TestAssistantRespondCapsSentences(t *testing.T) {
	gw := &fakeGateway{reply: "First. Second. Third. Fourth. Fifth."}
	a := NewAssistant(&fakeStore{raw: sampleDoc}, gw, nil, "mistral")

	got, err := a.Respond(context.Background(), "How should I prepare?", "Infosys", "Software Engineer")
	require.NoError(t, err)
	assert.Equal(t, "First. Second. Third.", got)
}

func TestAssistantRespondPromptIncludesContext(t *testing.T) {
	gw := &fakeGateway{reply: "Fine."}
	a := NewAssistant(&fakeStore{raw: sampleDoc}, gw, nil, "mistral")

	_, err := a.Respond(context.Background(), "What should I study?", "Infosys", "Software Engineer")
	require.NoError(t, err)

	require.Len(t, gw.lastChat.Messages, 1)
	prompt := gw.lastChat.Messages[0].Content
	assert.Contains(t, prompt, "DBMS normalization")
	assert.Contains(t, prompt, "What should I study?")
	assert.Equal(t, 120, gw.lastChat.MaxTokens)
	assert.InDelta(t, 0.6, gw.lastChat.Temperature, 1e-9)
	assert.InDelta(t, 0.9, gw.lastChat.TopP, 1e-9)
}

func TestAssistantRespondTruncatesContext(t *testing.T) {
	long := strings.Repeat("x", contextBudget+500)
	gw := &fakeGateway{reply: "Fine."}
	a := NewAssistant(&fakeStore{raw: long}, gw, nil, "mistral")

	_, err := a.Respond(context.Background(), "hello", "Infosys", "Software Engineer")
	require.NoError(t, err)

	prompt := gw.lastChat.Messages[0].Content
	assert.NotContains(t, prompt, strings.Repeat("x", contextBudget+1))
	assert.Contains(t, prompt, strings.Repeat("x", contextBudget))
}

func TestAssistantRespondSimilarityFallback(t *testing.T) {
	gw := &fakeGateway{
		reply:      "Answer.",
		embeddings: [][]float32{{0.1, 0.2}},
	}
	store := &fakeStore{
		similar: []Document{{Content: "Closest document content."}},
	}
	a := NewAssistant(store, gw, nil, "mistral")

	_, err := a.Respond(context.Background(), "general question", "", "")
	require.NoError(t, err)
	assert.Contains(t, gw.lastChat.Messages[0].Content, "Closest document content.")
}

func TestAssistantRespondWithoutEmbeddings(t *testing.T) {
	// Embedding failures must not fail the chat; the model just answers
	// without document context.
	gw := &fakeGateway{reply: "Answer.", embedErr: assert.AnError}
	a := NewAssistant(&fakeStore{}, gw, nil, "mistral")

	got, err := a.Respond(context.Background(), "general question", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Answer.", got)
}
