// Package corpus manages the advisory document corpus: ingestion of NEA
// publications into embedded chunks, and similarity retrieval of the
// passages that ground report advice.
package corpus

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/steadyday/steadyday/pkg/errors"
)

// Config drives ingestion and retrieval limits.
type Config struct {
	TopPassages int
}

// Service orchestrates corpus ingestion and retrieval.
type Service struct {
	cfg      Config
	sources  []Source
	loader   SourceLoader
	chunker  Chunker
	embedder Embedder
	store    ChunkStore
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(cfg Config, sources []Source, loader SourceLoader, chunker Chunker, embedder Embedder, store ChunkStore, logger *slog.Logger) *Service {
	if cfg.TopPassages <= 0 {
		cfg.TopPassages = 3
	}
	return &Service{
		cfg:      cfg,
		sources:  sources,
		loader:   loader,
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		logger:   logger.With("component", "corpus.service"),
	}
}

// IngestAll loads, chunks, embeds, and stores every configured source.
// A failing source is logged and skipped so one dead link never blocks
// the rest of the corpus. The returned count is the number of sources
// successfully ingested.
func (s *Service) IngestAll(ctx context.Context) (int, error) {
	ingested := 0
	for _, src := range s.sources {
		if err := s.ingest(ctx, src); err != nil {
			s.logger.Warn("source ingestion failed, skipping", "source", src.Name, "error", err)
			continue
		}
		ingested++
	}
	if ingested == 0 && len(s.sources) > 0 {
		return 0, apperrors.Wrap("ingestion_error", "no corpus source could be ingested", nil)
	}
	s.logger.Info("corpus ingestion complete", "ingested", ingested, "total", len(s.sources))
	return ingested, nil
}

func (s *Service) ingest(ctx context.Context, src Source) error {
	text, err := s.loader.Load(ctx, src)
	if err != nil {
		return apperrors.Wrap("load_error", "failed to load source", err)
	}

	candidates := s.chunker.Chunk(text)
	if len(candidates) == 0 {
		return apperrors.Wrap("invalid_input", "source yielded no content", nil)
	}

	texts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		texts = append(texts, c.Content)
	}
	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return apperrors.Wrap("embedding_error", "failed to embed chunks", err)
	}
	if len(embeddings) != len(candidates) {
		return apperrors.Wrap("embedding_error", "embedding count mismatch", nil)
	}

	now := time.Now()
	chunks := make([]Chunk, 0, len(candidates))
	for i, c := range candidates {
		embedding := make([]float32, len(embeddings[i]))
		copy(embedding, embeddings[i])
		chunks = append(chunks, Chunk{
			ID:         uuid.New(),
			SourceName: src.Name,
			ChunkIndex: c.Index,
			Content:    c.Content,
			TokenCount: c.TokenCount,
			Embedding:  embedding,
			CreatedAt:  now,
		})
	}
	if err := s.store.Replace(ctx, src.Name, chunks); err != nil {
		return apperrors.Wrap("storage_error", "failed to persist chunks", err)
	}
	s.logger.Info("source ingested", "source", src.Name, "chunks", len(chunks))
	return nil
}

// Retrieve returns the contents of the passages most similar to the query,
// capped at TopPassages, best match first.
func (s *Service) Retrieve(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Wrap("invalid_input", "query cannot be empty", nil)
	}
	embeddings, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, apperrors.Wrap("embedding_error", "failed to embed query", err)
	}
	if len(embeddings) == 0 {
		return nil, apperrors.Wrap("embedding_error", "no embedding returned", nil)
	}
	results, err := s.store.SearchSimilar(ctx, embeddings[0], s.cfg.TopPassages)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "similarity search failed", err)
	}
	passages := make([]string, 0, len(results))
	for _, r := range results {
		passages = append(passages, r.Chunk.Content)
	}
	return passages, nil
}
