package corpus

import (
	"context"
	"io"
)

// SourceLoader fetches a source and extracts its plain text.
type SourceLoader interface {
	Load(ctx context.Context, src Source) (string, error)
}

// Chunker splits extracted text into candidate pieces.
type Chunker interface {
	Chunk(text string) []ChunkCandidate
}

// Embedder produces embeddings for free form text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ChunkStore persists embedded chunks and runs similarity search.
// Replace swaps all chunks for a source atomically so re-ingestion
// never leaves stale passages behind.
type ChunkStore interface {
	Replace(ctx context.Context, sourceName string, chunks []Chunk) error
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]ScoredChunk, error)
}

// ObjectStorage keeps raw snapshots of ingested sources (R2/S3/local).
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}
