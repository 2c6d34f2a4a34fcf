package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PgStore keeps interview documents in Postgres with a pgvector embedding
// column per document.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Companies(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx,
		"SELECT DISTINCT company FROM interview_documents ORDER BY company")
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, titleCase(c))
	}
	return companies, rows.Err()
}

func (s *PgStore) Roles(ctx context.Context, company string) ([]string, error) {
	rows, err := s.db.Query(ctx,
		"SELECT DISTINCT role FROM interview_documents WHERE company = $1 ORDER BY role",
		strings.ToLower(company))
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, titleCase(r))
	}
	return roles, rows.Err()
}

func (s *PgStore) RawContent(ctx context.Context, company, role string) (string, error) {
	rows, err := s.db.Query(ctx,
		"SELECT content FROM interview_documents WHERE tag = $1 ORDER BY created_at",
		Tag(company, role))
	if err != nil {
		return "", fmt.Errorf("get content: %w", err)
	}
	defer rows.Close()

	var parts []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return "", fmt.Errorf("scan content: %w", err)
		}
		parts = append(parts, c)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return strings.Join(parts, "\n\n"), nil
}

func (s *PgStore) Upsert(ctx context.Context, doc Document) error {
	id := doc.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var embedding any
	if len(doc.Embedding) > 0 {
		embedding = pgvector.NewVector(doc.Embedding)
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO interview_documents (id, tag, company, role, content, embedding)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (tag) DO UPDATE SET content = $5, embedding = $6`,
		id, doc.Tag, doc.Company, doc.Role, doc.Content, embedding,
	)
	if err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.Tag, err)
	}
	return nil
}

func (s *PgStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM interview_documents").Scan(&n); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

func (s *PgStore) SimilaritySearch(ctx context.Context, query []float32, topK int) ([]Document, error) {
	if topK <= 0 {
		topK = 3
	}

	embedding := pgvector.NewVector(query)

	rows, err := s.db.Query(ctx,
		`SELECT id, tag, company, role, content
		 FROM interview_documents
		 WHERE embedding IS NOT NULL
		 ORDER BY embedding <=> $1
		 LIMIT $2`,
		embedding, topK,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Tag, &d.Company, &d.Role, &d.Content); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
