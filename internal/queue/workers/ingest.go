package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/queue"
	"github.com/hireready/interview-api/pkg/textextract"
)

// IngestWorker turns a spooled upload into a stored interview document:
// extract text, derive company/role from the filename, embed, upsert.
type IngestWorker struct {
	store      content.Store
	gateway    llm.Gateway
	parser     *content.FilenameParser
	embedModel string
}

func NewIngestWorker(store content.Store, gw llm.Gateway, parser *content.FilenameParser, embedModel string) *IngestWorker {
	return &IngestWorker{
		store:      store,
		gateway:    gw,
		parser:     parser,
		embedModel: embedModel,
	}
}

func (w *IngestWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.ContentIngestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	slog.Info("ingesting content file", "file", payload.FileName)

	data, err := os.ReadFile(payload.SpoolPath)
	if err != nil {
		return fmt.Errorf("read spooled upload: %w", err)
	}

	text, err := textextract.Extract(bytes.NewReader(data), int64(len(data)), filepath.Ext(payload.FileName))
	if err != nil {
		return fmt.Errorf("extract text from %s: %w", payload.FileName, err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text content in %s", payload.FileName)
	}

	company, role := w.parser.Parse(payload.FileName)
	doc := content.Document{
		Company: strings.ToLower(company),
		Role:    strings.ToLower(role),
		Tag:     content.Tag(company, role),
		Content: text,
	}

	// Embedding powers the untagged-chat similarity fallback; a document
	// without one is still fully usable through its tag.
	if resp, err := w.gateway.Embed(ctx, llm.EmbeddingRequest{
		Model: w.embedModel,
		Input: []string{text},
	}); err != nil {
		slog.Warn("embedding failed, storing without one", "tag", doc.Tag, "error", err)
	} else if len(resp.Embeddings) > 0 {
		doc.Embedding = resp.Embeddings[0]
	}

	if err := w.store.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("store document %s: %w", doc.Tag, err)
	}

	if err := os.Remove(payload.SpoolPath); err != nil {
		slog.Warn("failed to remove spooled upload", "path", payload.SpoolPath, "error", err)
	}

	slog.Info("content ingested", "tag", doc.Tag)
	return nil
}
