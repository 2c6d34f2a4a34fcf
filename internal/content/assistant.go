package content

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hireready/interview-api/internal/cache"
	"github.com/hireready/interview-api/internal/llm"
)

const (
	contextBudget   = 800 // characters of stored content fed to the model
	listCacheTTL    = 5 * time.Minute
	sectionCacheTTL = 15 * time.Minute
)

// Assistant answers interview-preparation queries from stored content and
// the language-model gateway. All lookups go through the cache when one
// is configured; cache failures fall through to the store.
type Assistant struct {
	store   Store
	gateway llm.Gateway
	cache   *cache.Cache
	model   string
}

func NewAssistant(store Store, gw llm.Gateway, c *cache.Cache, defaultModel string) *Assistant {
	return &Assistant{store: store, gateway: gw, cache: c, model: defaultModel}
}

func (a *Assistant) Companies(ctx context.Context) ([]string, error) {
	var companies []string
	if a.cache.Get(ctx, "companies", &companies) == nil {
		return companies, nil
	}

	companies, err := a.store.Companies(ctx)
	if err != nil {
		return nil, err
	}
	a.cacheSet(ctx, "companies", companies, listCacheTTL)
	return companies, nil
}

func (a *Assistant) Roles(ctx context.Context, company string) ([]string, error) {
	key := "roles:" + Tag(company, "")
	var roles []string
	if a.cache.Get(ctx, key, &roles) == nil {
		return roles, nil
	}

	roles, err := a.store.Roles(ctx, company)
	if err != nil {
		return nil, err
	}
	a.cacheSet(ctx, key, roles, listCacheTTL)
	return roles, nil
}

// SectionContent extracts one section of the stored document for a
// company/role pair. Missing documents and missing sections come back as
// sentinel strings, never as errors.
func (a *Assistant) SectionContent(ctx context.Context, company, role string, kind SectionKind) (string, error) {
	key := fmt.Sprintf("section:%s:%s", Tag(company, role), kind)
	var cached string
	if a.cache.Get(ctx, key, &cached) == nil {
		return cached, nil
	}

	raw, err := a.store.RawContent(ctx, company, role)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return NoContentFound, nil
	}

	section := ExtractSection(raw, kind)
	a.cacheSet(ctx, key, section, sectionCacheTTL)
	return section, nil
}

// Respond answers a free-form question grounded in stored content. When a
// company/role pair is given its document is the context; otherwise the
// closest documents by embedding similarity are used. The reply is capped
// at three sentences.
func (a *Assistant) Respond(ctx context.Context, message, company, role string) (string, error) {
	docContext, err := a.lookupContext(ctx, message, company, role)
	if err != nil {
		return "", err
	}

	prompt := buildChatPrompt(message, docContext)

	resp, err := a.gateway.Chat(ctx, llm.ChatRequest{
		Model:       a.model,
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		MaxTokens:   120,
		Temperature: 0.6,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	return LimitSentences(resp.Content, maxReplySentences), nil
}

func (a *Assistant) DocumentCount(ctx context.Context) (int, error) {
	return a.store.Count(ctx)
}

func (a *Assistant) lookupContext(ctx context.Context, message, company, role string) (string, error) {
	if company != "" || role != "" {
		return a.store.RawContent(ctx, company, role)
	}

	// No tag given: fall back to similarity search over the message.
	embedResp, err := a.gateway.Embed(ctx, llm.EmbeddingRequest{Input: []string{message}})
	if err != nil || len(embedResp.Embeddings) == 0 {
		slog.Debug("embedding unavailable, answering without context", "error", err)
		return "", nil
	}

	docs, err := a.store.SimilaritySearch(ctx, embedResp.Embeddings[0], 1)
	if err != nil || len(docs) == 0 {
		return "", nil
	}
	return docs[0].Content, nil
}

func buildChatPrompt(query, docContext string) string {
	if runes := []rune(docContext); len(runes) > contextBudget {
		docContext = string(runes[:contextBudget])
	}
	return fmt.Sprintf(`[INST]
You are an interview assistant.

Context:
%s

User question:
%s

Give a clear, concise answer in 2-3 sentences.
No self references.
[/INST]
`, docContext, query)
}

func (a *Assistant) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := a.cache.Set(ctx, key, value, ttl); err != nil {
		slog.Debug("cache set failed", "key", key, "error", err)
	}
}
