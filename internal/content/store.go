package content

import (
	"context"

	"github.com/google/uuid"
)

// Document is one stored interview-preparation document, keyed by the
// normalized "<company> - <role>" tag. Created at ingestion time and
// immutable afterwards; re-ingesting the same tag replaces the row.
type Document struct {
	ID        uuid.UUID
	Company   string // lowercase
	Role      string // lowercase
	Tag       string
	Content   string
	Embedding []float32
}

// Store is the content repository the assistant reads from.
type Store interface {
	Companies(ctx context.Context) ([]string, error)
	Roles(ctx context.Context, company string) ([]string, error)
	// RawContent returns the stored text for a company/role pair, or ""
	// when nothing is stored under that tag.
	RawContent(ctx context.Context, company, role string) (string, error)
	Upsert(ctx context.Context, doc Document) error
	Count(ctx context.Context) (int, error)
	// SimilaritySearch returns the topK documents closest to the query
	// embedding, used when a chat request names no company/role.
	SimilaritySearch(ctx context.Context, query []float32, topK int) ([]Document, error)
}
