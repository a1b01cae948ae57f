package corpus

import (
	"time"

	"github.com/google/uuid"
)

// SourceKind tells the loader how to extract text.
type SourceKind string

const (
	SourceKindPDF SourceKind = "pdf"
	SourceKindURL SourceKind = "url"
)

// Source names one advisory document to ingest.
type Source struct {
	Name string
	URL  string
	Kind SourceKind
}

// Chunk is an embedded slice of an ingested source.
type Chunk struct {
	ID         uuid.UUID `json:"id"`
	SourceName string    `json:"sourceName"`
	ChunkIndex int       `json:"chunkIndex"`
	Content    string    `json:"content"`
	TokenCount int       `json:"tokenCount"`
	Embedding  []float32 `json:"embedding"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChunkCandidate is produced by the chunker before embedding.
type ChunkCandidate struct {
	Index      int
	Content    string
	TokenCount int
}

// ScoredChunk bundles a chunk and its similarity score.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}
