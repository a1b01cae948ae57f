package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	domain "github.com/steadyday/steadyday/internal/domain/corpus"
)

// PostgresChunkStore persists chunks in Postgres and ranks with pgvector.
type PostgresChunkStore struct {
	pool *pgxpool.Pool
}

// NewPostgresChunkStore constructs the store.
func NewPostgresChunkStore(pool *pgxpool.Pool) *PostgresChunkStore {
	return &PostgresChunkStore{pool: pool}
}

// Replace deletes then reinserts all chunks for a source in one transaction.
func (r *PostgresChunkStore) Replace(ctx context.Context, sourceName string, chunks []domain.Chunk) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM corpus_chunks WHERE source_name = $1`, sourceName); err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for _, chunk := range chunks {
		batch.Queue(`
			INSERT INTO corpus_chunks (id, source_name, chunk_index, content, token_count, embedding, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, chunk.ID, chunk.SourceName, chunk.ChunkIndex, chunk.Content, chunk.TokenCount, pgvector.NewVector(chunk.Embedding), chunk.CreatedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SearchSimilar ranks by L2 distance via pgvector.
func (r *PostgresChunkStore) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]domain.ScoredChunk, error) {
	if limit <= 0 {
		limit = 3
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, source_name, chunk_index, content, token_count, created_at,
			(1.0 / (1.0 + (embedding <-> $1))) AS score
		FROM corpus_chunks
		ORDER BY (embedding <-> $1) ASC
		LIMIT $2
	`, pgvector.NewVector(embedding), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ScoredChunk
	for rows.Next() {
		var sc domain.ScoredChunk
		if err := rows.Scan(
			&sc.Chunk.ID, &sc.Chunk.SourceName, &sc.Chunk.ChunkIndex, &sc.Chunk.Content,
			&sc.Chunk.TokenCount, &sc.Chunk.CreatedAt, &sc.Score,
		); err != nil {
			return nil, err
		}
		results = append(results, sc)
	}
	return results, rows.Err()
}

var _ domain.ChunkStore = (*PostgresChunkStore)(nil)
