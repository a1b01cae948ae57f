// Package repo provides chunk store backends for the corpus.
package repo

import (
	"context"
	"math"
	"sort"
	"sync"

	domain "github.com/steadyday/steadyday/internal/domain/corpus"
)

// MemoryChunkStore keeps embedded chunks in memory and ranks by cosine
// similarity. The default backend when no database is configured.
type MemoryChunkStore struct {
	mu   sync.RWMutex
	data map[string][]domain.Chunk
}

// NewMemoryChunkStore constructs the store.
func NewMemoryChunkStore() *MemoryChunkStore {
	return &MemoryChunkStore{data: make(map[string][]domain.Chunk)}
}

// Replace swaps all chunks for a source.
func (r *MemoryChunkStore) Replace(_ context.Context, sourceName string, chunks []domain.Chunk) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[sourceName] = chunks
	return nil
}

// SearchSimilar scans every chunk and returns the top matches by cosine
// similarity, best first.
func (r *MemoryChunkStore) SearchSimilar(_ context.Context, embedding []float32, limit int) ([]domain.ScoredChunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []domain.ScoredChunk
	for _, chunks := range r.data {
		for _, chunk := range chunks {
			results = append(results, domain.ScoredChunk{
				Chunk: chunk,
				Score: cosineSimilarity(embedding, chunk.Embedding),
			})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

var _ domain.ChunkStore = (*MemoryChunkStore)(nil)

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
